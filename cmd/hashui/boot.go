package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/hashui/internal/config"
	"github.com/vango-dev/hashui/internal/demo"
	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
	"github.com/vango-dev/hashui/pkg/telemetry"
)

// demos are the applications the CLI can run.
var demos = map[string]func(*app.App) error{
	"counter": demo.Counter,
	"todo": func(a *app.App) error {
		_, err := demo.NewTodoList(a)
		return err
	},
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bootOptions are the flags shared by render and inspect.
type bootOptions struct {
	demo     string
	hash     string
	htmlPath string
}

func (o *bootOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.demo, "demo", "d", "todo", "Demo application ("+strings.Join(demoNames(), ", ")+")")
	cmd.Flags().StringVar(&o.hash, "hash", "", "Initial URL fragment (default from defaultRoute)")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "HTML file to use as the document")
}

// session is a booted demo: configuration, document and app.
type session struct {
	cfg    *config.Config
	doc    *memdom.Document
	app    *app.App
	logger *slog.Logger
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

// boot builds the document and installs the demo. The app is not
// initialized so callers can attach observers first.
func boot(cfg *config.Config, opts bootOptions, logOut io.Writer) (*session, error) {
	install, ok := demos[opts.demo]
	if !ok {
		return nil, errors.New(errors.CodeInvalidConfig).
			WithDetailf("unknown demo %q", opts.demo).
			WithSuggestion("Use one of: " + strings.Join(demoNames(), ", "))
	}

	shell, err := documentShell(cfg.RootSelector, opts.htmlPath)
	if err != nil {
		return nil, err
	}

	logger := cfg.Log.NewLogger(logOut)
	hash := opts.hash
	if hash == "" {
		hash = "#" + cfg.DefaultRoute
	}
	doc, err := memdom.Parse(shell, memdom.WithHash(hash), memdom.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	tel := telemetry.New(
		telemetry.WithMetrics(telemetry.NewMetrics(telemetry.WithNamespace(cfg.Metrics.Namespace))),
		telemetry.WithTracer(otel.Tracer(cfg.Tracing.TracerName)),
	)
	a := app.New(cfg.RootSelector,
		app.WithHost(doc),
		app.WithLogger(logger),
		app.WithTelemetry(tel),
	)
	if err := install(a); err != nil {
		return nil, err
	}

	return &session{cfg: cfg, doc: doc, app: a, logger: logger}, nil
}

// documentShell returns the markup the document starts from: the file at
// htmlPath, or a single element built from a simple root selector.
func documentShell(selector, htmlPath string) (string, error) {
	if htmlPath != "" {
		data, err := os.ReadFile(htmlPath)
		if err != nil {
			return "", errors.New(errors.CodeInvalidConfig).
				WithDetailf("read %s", htmlPath).
				Wrap(err)
		}
		return string(data), nil
	}

	switch {
	case strings.HasPrefix(selector, "#") && isIdent(selector[1:]):
		return fmt.Sprintf(`<div id="%s"></div>`, selector[1:]), nil
	case strings.HasPrefix(selector, ".") && isIdent(selector[1:]):
		return fmt.Sprintf(`<div class="%s"></div>`, selector[1:]), nil
	case isIdent(selector):
		return fmt.Sprintf(`<%s></%s>`, selector, selector), nil
	}
	return "", errors.New(errors.CodeInvalidConfig).
		WithDetailf("cannot build a document for rootSelector %q", selector).
		WithSuggestion("Pass --html with a document that contains the root element")
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r == '-', r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
