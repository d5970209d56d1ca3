package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/core"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/render"
	"github.com/vango-dev/hashui/pkg/router"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// RenderFunc builds the element trees for a state.
type RenderFunc func(state store.State) ([]*vdom.VNode, error)

// Single adapts a function returning one tree to a RenderFunc.
func Single(fn func(state store.State) *vdom.VNode) RenderFunc {
	if fn == nil {
		return nil
	}
	return func(state store.State) ([]*vdom.VNode, error) {
		return []*vdom.VNode{fn(state)}, nil
	}
}

// RenderInfo describes a committed render.
type RenderInfo struct {
	Generation uint64
	Nodes      int
	Roots      int
	Duration   time.Duration
}

// App is a client-side application bound to one root container.
type App struct {
	selector string
	ctx      *core.Context
	renderer *render.Renderer
	router   *router.Router
	logger   *slog.Logger

	root        dom.Node
	renderFn    RenderFunc
	initialized bool
	cancelHash  func()

	observers []func(RenderInfo)
	onError   func(error)
}

// New creates an uninitialized App that renders into the first element
// matching selector.
func New(selector string, opts ...Option) *App {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	ctx := o.ctx
	if ctx == nil {
		ctx = core.New(o.host,
			core.WithLogger(o.logger),
			core.WithTelemetry(o.telemetry),
		)
	}

	a := &App{
		selector: selector,
		ctx:      ctx,
		renderer: render.New(ctx),
		router:   router.New(ctx),
		logger:   ctx.Component("app"),
	}
	a.onError = a.logError
	return a
}

// SetRenderFunction sets the function that produces the element trees and
// routes notifying store updates to Render.
func (a *App) SetRenderFunction(fn RenderFunc) error {
	if fn == nil {
		return errors.New(errors.CodeInvalidRenderFunc)
	}
	a.renderFn = fn
	a.ctx.Store.SetUpdateCallback(a.storeUpdated)
	return nil
}

// AddRoute registers a route handler. See router.Router.AddRoute.
func (a *App) AddRoute(path string, handler func()) bool {
	return a.router.AddRoute(path, handler)
}

// Initialize locates the root container, starts listening for fragment
// changes, dispatches the current route and renders. Calling it again
// logs a warning and does nothing.
func (a *App) Initialize() error {
	if a.initialized {
		a.logger.Warn("already initialized")
		return nil
	}
	if a.ctx.Host == nil {
		return errors.New(errors.CodeRootNotFound).WithDetail("no host document")
	}
	root := a.ctx.Host.QuerySelector(a.selector)
	if root == nil {
		return errors.New(errors.CodeRootNotFound).WithDetailf("selector %q", a.selector)
	}
	a.root = root

	a.cancelHash = a.ctx.Host.OnHashChange(func(fragment string) {
		a.router.ExecuteRoute(fragment)
	})

	initial := a.ctx.Host.Hash()
	if initial == "" {
		initial = router.RootPath
	}
	a.router.ExecuteRoute(initial)

	a.initialized = true
	a.logger.Info("initialized", "selector", a.selector, "route", a.router.Current())
	return a.Render()
}

// Render calls the render function with the current state and replaces the
// root's content with the result.
func (a *App) Render() error {
	if a.renderFn == nil {
		return errors.New(errors.CodeNoRenderFunction)
	}
	if !a.initialized {
		return errors.New(errors.CodeNotInitialized)
	}

	start := time.Now()
	elements, err := a.build()
	if err != nil {
		a.ctx.Metrics().RecordRenderError("render-func")
		return err
	}
	if err := a.renderer.Render(a.root, elements); err != nil {
		return err
	}

	info := RenderInfo{
		Generation: a.renderer.Generation(),
		Nodes:      a.renderer.Len(),
		Roots:      len(elements),
		Duration:   time.Since(start),
	}
	for _, fn := range a.observers {
		fn(info)
	}
	return nil
}

// build runs the render function. Factory helpers panic with a validation
// error on malformed trees; that panic is returned as the error.
func (a *App) build() (elements []*vdom.VNode, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if verr, ok := r.(*vdom.ValidationError); ok {
			err = verr
			return
		}
		err = errors.New(errors.CodeRenderFunctionPanic).WithDetail(fmt.Sprint(r))
	}()

	elements, err = a.renderFn(a.ctx.Store.GetState())
	if err != nil {
		return nil, fmt.Errorf("app: render function: %w", err)
	}
	return elements, nil
}

func (a *App) storeUpdated(store.State) {
	if !a.initialized {
		a.logger.Debug("state changed before initialize, render skipped")
		return
	}
	if err := a.Render(); err != nil {
		a.onError(err)
	}
}

func (a *App) logError(err error) {
	a.logger.Error("render failed", "error", err)
}

// GetState returns the live state.
func (a *App) GetState() store.State {
	return a.ctx.Store.GetState()
}

// SetState merges partial into the state. With notify the app renders
// again after the listeners ran.
func (a *App) SetState(partial store.State, notify bool) bool {
	return a.ctx.Store.SetState(partial, notify)
}

// After runs fn once the current task, including any render it triggers,
// has finished.
func (a *App) After(fn func()) {
	if a.ctx.Host == nil || fn == nil {
		return
	}
	a.ctx.Host.Defer(fn)
}

// Focus focuses the first rendered node matching selector.
func (a *App) Focus(selector string, mode dom.FocusMode) bool {
	return a.renderer.Focus(selector, mode)
}

// FindNode returns the first rendered node matching selector.
func (a *App) FindNode(selector string) dom.Node {
	return a.renderer.FindNode(selector, nil)
}

// OnRender registers fn to run after every committed render.
func (a *App) OnRender(fn func(RenderInfo)) {
	if fn != nil {
		a.observers = append(a.observers, fn)
	}
}

// OnError replaces the handler for errors from store-driven renders. nil
// restores the default, which logs.
func (a *App) OnError(fn func(error)) {
	if fn == nil {
		fn = a.logError
	}
	a.onError = fn
}

// Close stops listening for fragment changes.
func (a *App) Close() {
	if a.cancelHash != nil {
		a.cancelHash()
		a.cancelHash = nil
	}
}

// Initialized reports whether Initialize has completed.
func (a *App) Initialized() bool { return a.initialized }

// Selector returns the root selector.
func (a *App) Selector() string { return a.selector }

// Root returns the root container, or nil before Initialize.
func (a *App) Root() dom.Node { return a.root }

// Context returns the runtime context.
func (a *App) Context() *core.Context { return a.ctx }

// Router returns the route table.
func (a *App) Router() *router.Router { return a.router }

// Renderer returns the renderer.
func (a *App) Renderer() *render.Renderer { return a.renderer }
