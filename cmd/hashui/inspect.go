package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/internal/inspect"
)

func inspectCmd() *cobra.Command {
	var (
		opts bootOptions
		addr string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Run a demo behind the inspector server",
		Long: `Run a demo on an in-memory document and serve the inspector.

The inspector exposes the latest snapshot, state, markup and routes
over HTTP, streams render events over a WebSocket, and serves
Prometheus metrics.

Examples:
  hashui inspect
  hashui inspect --demo counter --addr :7331`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Inspector.Addr = addr
			}

			s, err := boot(cfg, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			insp := inspect.New(s.app, s.doc, inspect.WithName(cfg.Name))
			if err := s.app.Initialize(); err != nil {
				return err
			}
			defer s.app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			w := cmd.OutOrStdout()
			printBanner(w)
			success(w, "Inspecting %s (%s demo)", cfg.Name, opts.demo)
			info(w, "http://%s", cfg.Inspector.Addr)
			info(w, "Press Ctrl+C to stop")

			errCh := make(chan error, 1)
			go func() {
				errCh <- insp.Serve(ctx, cfg.Inspector.Addr)
				cancel()
			}()

			if err := s.doc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return <-errCh
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")

	return cmd
}
