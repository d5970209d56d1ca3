package vtest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
)

// Harness is an initialized application mounted on an in-memory document.
type Harness struct {
	t   testing.TB
	App *app.App
	Doc *memdom.Document
}

// MountOption configures Mount.
type MountOption func(*mountConfig)

type mountConfig struct {
	shell    string
	selector string
	hash     string
	logger   *slog.Logger
}

// WithShell sets the initial document markup and root selector.
func WithShell(markup, selector string) MountOption {
	return func(c *mountConfig) {
		c.shell = markup
		c.selector = selector
	}
}

// WithHash sets the initial URL fragment.
func WithHash(fragment string) MountOption {
	return func(c *mountConfig) {
		c.hash = fragment
	}
}

// WithLogger sets the application logger. Logs are discarded by default.
func WithLogger(l *slog.Logger) MountOption {
	return func(c *mountConfig) {
		c.logger = l
	}
}

// Mount installs an application with install and initializes it. Any
// failure stops the test.
func Mount(t testing.TB, install func(*app.App) error, opts ...MountOption) *Harness {
	t.Helper()
	cfg := mountConfig{
		shell:    `<div id="app"></div>`,
		selector: "#app",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var docOpts []memdom.Option
	if cfg.hash != "" {
		docOpts = append(docOpts, memdom.WithHash(cfg.hash))
	}
	doc, err := memdom.Parse(cfg.shell, docOpts...)
	if err != nil {
		t.Fatalf("vtest: parse shell: %v", err)
	}

	a := app.New(cfg.selector, app.WithHost(doc), app.WithLogger(cfg.logger))
	if err := install(a); err != nil {
		t.Fatalf("vtest: install: %v", err)
	}
	if err := a.Initialize(); err != nil {
		t.Fatalf("vtest: initialize: %v", err)
	}
	doc.Flush()
	t.Cleanup(a.Close)

	return &Harness{t: t, App: a, Doc: doc}
}

// Find returns the element matching selector, failing the test when none does.
func (h *Harness) Find(selector string) *memdom.Element {
	h.t.Helper()
	el := h.Doc.Find(selector)
	if el == nil {
		h.t.Fatalf("vtest: no element matches %q in:\n%s", selector, truncate(h.HTML(), 500))
	}
	return el
}

// Has reports whether any element matches selector.
func (h *Harness) Has(selector string) bool {
	return h.Doc.Find(selector) != nil
}

// Click clicks the element matching selector.
func (h *Harness) Click(selector string) {
	h.t.Helper()
	h.Doc.Click(h.Find(selector))
	h.Doc.Flush()
}

// DblClick double-clicks the element matching selector.
func (h *Harness) DblClick(selector string) {
	h.t.Helper()
	h.Doc.DblClick(h.Find(selector))
	h.Doc.Flush()
}

// Type replaces the value of the control matching selector.
func (h *Harness) Type(selector, text string) {
	h.t.Helper()
	h.Doc.Type(h.Find(selector), text)
	h.Doc.Flush()
}

// Press presses key on the element matching selector.
func (h *Harness) Press(selector, key string) {
	h.t.Helper()
	h.Doc.Press(h.Find(selector), key)
	h.Doc.Flush()
}

// Navigate changes the URL fragment and waits for the route to dispatch.
func (h *Harness) Navigate(fragment string) {
	h.Doc.Navigate(fragment)
	h.Doc.Flush()
}

// Text returns the text of the element matching selector.
func (h *Harness) Text(selector string) string {
	h.t.Helper()
	return h.Find(selector).TextContent()
}

// HTML returns the markup inside the application root.
func (h *Harness) HTML() string {
	if root := h.Doc.Find(h.App.Selector()); root != nil {
		return root.InnerHTML()
	}
	return ""
}

// ExpectText asserts the text of the element matching selector.
func (h *Harness) ExpectText(selector, want string) {
	h.t.Helper()
	if got := h.Text(selector); got != want {
		h.t.Errorf("text of %q = %q, want %q", selector, got, want)
	}
}

// ExpectCount asserts how many elements match selector.
func (h *Harness) ExpectCount(selector string, want int) {
	h.t.Helper()
	if got := len(h.Doc.QuerySelectorAll(selector)); got != want {
		h.t.Errorf("%q matched %d elements, want %d", selector, got, want)
	}
}
