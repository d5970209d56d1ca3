package memdom

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/vango-dev/hashui/pkg/dom"
)

// Document is an in-memory document and host environment.
type Document struct {
	root *html.Node

	// nodes maps parsed or created html nodes to their wrapper.
	nodes     map[*html.Node]*Element
	selectors map[string]cascadia.Sel
	active    *Element

	hash     string
	history  []string
	hashSubs map[int]func(string)
	nextSub  int

	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}

	logger *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the document logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithHash sets the initial fragment.
func WithHash(fragment string) Option {
	return func(d *Document) {
		d.hash = normalizeHash(fragment)
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	return MustParse("", opts...)
}

// Parse creates a document from body markup.
func Parse(markup string, opts ...Option) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("memdom: parse: %w", err)
	}
	d := &Document{
		root:      root,
		nodes:     make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.Sel),
		hashSubs:  make(map[int]func(string)),
		wake:      make(chan struct{}, 1),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.hash != "" {
		d.history = append(d.history, d.hash)
	}
	return d, nil
}

// MustParse is Parse that panics on error.
func MustParse(markup string, opts ...Option) *Document {
	d, err := Parse(markup, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Body returns the body element.
func (d *Document) Body() *Element {
	if n := d.query(d.root, "body"); n != nil {
		return d.wrap(n)
	}
	return nil
}

// QuerySelector searches the whole document.
func (d *Document) QuerySelector(selector string) dom.Node {
	n := d.query(d.root, selector)
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// QuerySelectorAll returns every match in document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	matches := cascadia.QueryAll(d.root, sel)
	out := make([]*Element, len(matches))
	for i, n := range matches {
		out[i] = d.wrap(n)
	}
	return out
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Node {
	return d.Create(tag)
}

// Create is CreateElement returning the concrete type.
func (d *Document) Create(tag string) *Element {
	n := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tag),
	}
	return d.wrap(n)
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	if d.active != nil && !d.active.Connected() {
		d.active = nil
	}
	return d.active
}

// HTML serializes the whole document.
func (d *Document) HTML() string {
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		d.logger.Error("render document", "error", err)
	}
	return b.String()
}

func (d *Document) query(root *html.Node, selector string) *html.Node {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	return cascadia.Query(root, sel)
}

func (d *Document) compile(selector string) (cascadia.Sel, bool) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, true
	}
	sel, err := cascadia.Parse(selector)
	if err != nil {
		d.logger.Warn("invalid selector", "selector", selector, "error", err)
		return nil, false
	}
	d.selectors[selector] = sel
	return sel, true
}

func (d *Document) wrap(n *html.Node) *Element {
	if e, ok := d.nodes[n]; ok {
		return e
	}
	e := &Element{doc: d, n: n}
	d.nodes[n] = e
	return e
}

// forget drops wrappers of a detached subtree.
func (d *Document) forget(n *html.Node) {
	if d.active != nil && d.active.n == n {
		d.active = nil
	}
	delete(d.nodes, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// Hash returns the current fragment including "#", or "".
func (d *Document) Hash() string {
	return d.hash
}

// PushHash records a history entry without a hashchange notification,
// like history.pushState.
func (d *Document) PushHash(fragment string) {
	d.hash = normalizeHash(fragment)
	d.history = append(d.history, d.hash)
}

// Navigate changes the fragment the way a user or location.hash
// assignment does: a history entry is added and hashchange fires as a
// queued task. Navigating to the current fragment does nothing.
func (d *Document) Navigate(fragment string) {
	fragment = normalizeHash(fragment)
	if fragment == d.hash {
		return
	}
	d.hash = fragment
	d.history = append(d.history, fragment)
	d.fireHashChange(fragment)
}

// Back returns to the previous history entry and fires hashchange.
// It reports false when there is no previous entry.
func (d *Document) Back() bool {
	if len(d.history) < 2 {
		return false
	}
	d.history = d.history[:len(d.history)-1]
	prev := d.history[len(d.history)-1]
	if prev == d.hash {
		return true
	}
	d.hash = prev
	d.fireHashChange(prev)
	return true
}

// History returns a copy of the history entries, oldest first.
func (d *Document) History() []string {
	out := make([]string, len(d.history))
	copy(out, d.history)
	return out
}

// OnHashChange subscribes fn to fragment changes.
func (d *Document) OnHashChange(fn func(fragment string)) (cancel func()) {
	id := d.nextSub
	d.nextSub++
	d.hashSubs[id] = fn
	return func() { delete(d.hashSubs, id) }
}

func (d *Document) fireHashChange(fragment string) {
	d.Defer(func() {
		for i := 0; i < d.nextSub; i++ {
			if fn, ok := d.hashSubs[i]; ok {
				fn(fragment)
			}
		}
	})
}

func normalizeHash(fragment string) string {
	if fragment == "" || fragment == "#" {
		return ""
	}
	if !strings.HasPrefix(fragment, "#") {
		return "#" + fragment
	}
	return fragment
}

// Defer schedules fn after the current task.
func (d *Document) Defer(fn func()) {
	d.Post(fn)
}

// Post enqueues fn. It is safe to call from any goroutine.
func (d *Document) Post(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.tasks = append(d.tasks, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (d *Document) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}

// Flush runs queued tasks in scheduling order, including tasks queued while
// flushing, and returns how many ran.
func (d *Document) Flush() int {
	ran := 0
	for {
		d.mu.Lock()
		if len(d.tasks) == 0 {
			d.mu.Unlock()
			return ran
		}
		task := d.tasks[0]
		d.tasks = d.tasks[1:]
		d.mu.Unlock()

		task()
		ran++
	}
}

// Run drains the task queue whenever work is posted until ctx is done.
// All document access must then happen on Run's goroutine, through Post.
func (d *Document) Run(ctx context.Context) error {
	d.Flush()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.wake:
			d.Flush()
		}
	}
}

var _ dom.Host = (*Document)(nil)
