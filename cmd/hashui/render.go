package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
)

func renderCmd() *cobra.Command {
	var (
		opts     bootOptions
		steps    []string
		document bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo and print the resulting markup",
		Long: `Initialize a demo against an in-memory document, replay the given
steps, and print the root element.

Steps run in order, each draining the task queue afterwards:
  click:<selector>          click an element
  dblclick:<selector>       double-click an element
  type:<selector>=<text>    replace a control's value
  press:<selector>=<key>    press a key on an element
  blur:<selector>           blur an element
  navigate:<fragment>       change the URL fragment

Examples:
  hashui render --demo counter --step click:.inc --step click:.inc
  hashui render --step type:.new-todo=milk --step press:.new-todo=Enter
  hashui render --hash '#/active' --document`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := boot(cfg, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.app.Initialize(); err != nil {
				return err
			}
			s.doc.Flush()

			for _, step := range steps {
				if err := runStep(s.doc, step); err != nil {
					return err
				}
				s.doc.Flush()
			}

			out := s.doc.HTML()
			if !document {
				out = s.doc.Find(cfg.RootSelector).OuterHTML()
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "Interaction to replay (repeatable)")
	cmd.Flags().BoolVar(&document, "document", false, "Print the whole document instead of the root")

	return cmd
}

// runStep performs one scripted interaction.
func runStep(doc *memdom.Document, step string) error {
	action, arg, ok := strings.Cut(step, ":")
	if !ok {
		return stepError(step, "missing ':'")
	}
	if action == "navigate" {
		doc.Navigate(arg)
		return nil
	}

	selector, value, _ := strings.Cut(arg, "=")
	el := doc.Find(selector)
	if el == nil {
		return stepError(step, fmt.Sprintf("no element matches %q", selector))
	}

	switch action {
	case "click":
		doc.Click(el)
	case "dblclick":
		doc.DblClick(el)
	case "type":
		doc.Type(el, value)
	case "press":
		doc.Press(el, value)
	case "blur":
		doc.Blur(el)
	default:
		return stepError(step, fmt.Sprintf("unknown action %q", action))
	}
	return nil
}

func stepError(step, reason string) error {
	return errors.New(errors.CodeInvalidConfig).
		WithDetailf("step %q: %s", step, reason)
}
