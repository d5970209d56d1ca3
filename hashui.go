// Package hashui provides the public API of the hashui runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/hashui"
//
// Usage:
//
//	a := hashui.CreateApp("#app", hashui.WithHost(doc))
//	a.SetRenderFunction(hashui.Single(func(s hashui.State) *hashui.VNode {
//	    n, _ := s["count"].(int)
//	    return vdom.Button(vdom.OnClick(func() {
//	        a.SetState(hashui.State{"count": n + 1}, true)
//	    }), vdom.Textf("Count: %d", n))
//	}))
//	a.AddRoute("/", func() {})
//	err := a.Initialize()
//
// Element factories live in pkg/vdom, hosts in pkg/dom/memdom and
// pkg/dom/jsdom.
package hashui

import (
	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/telemetry"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// =============================================================================
// Application
// =============================================================================

// App is the orchestrator that owns the store, renderer and router.
type App = app.App

// Option configures an App.
type Option = app.Option

// RenderFunc builds the element list for a state snapshot.
type RenderFunc = app.RenderFunc

// RenderInfo describes one committed render.
type RenderInfo = app.RenderInfo

// CreateApp creates an application that renders into the first element
// matching selector. Nothing touches the document until Initialize.
//
// Example:
//
//	a := hashui.CreateApp("#app", hashui.WithHost(memdom.MustParse(`<div id="app"></div>`)))
func CreateApp(selector string, opts ...Option) *App {
	return app.New(selector, opts...)
}

// Single adapts a render function that returns one root element.
func Single(fn func(State) *VNode) RenderFunc {
	return app.Single(fn)
}

var (
	WithHost      = app.WithHost
	WithLogger    = app.WithLogger
	WithContext   = app.WithContext
	WithTelemetry = app.WithTelemetry
)

// Telemetry bundles the metrics and tracer an App reports to. Build one
// with NewTelemetry and the options of pkg/telemetry.
type Telemetry = telemetry.Telemetry

// NewTelemetry creates a Telemetry for WithTelemetry.
func NewTelemetry(opts ...telemetry.Option) *Telemetry {
	return telemetry.New(opts...)
}

// Errors returned by App, matched with errors.Is.
var (
	ErrRootNotFound          = app.ErrRootNotFound
	ErrNoRenderFunction      = app.ErrNoRenderFunction
	ErrNotInitialized        = app.ErrNotInitialized
	ErrInvalidRenderFunction = app.ErrInvalidRenderFunction
	ErrRenderPanic           = app.ErrRenderPanic
)

// =============================================================================
// State and elements
// =============================================================================

// State is a store snapshot or a partial update.
type State = store.State

// VNode is a virtual element.
type VNode = vdom.VNode

// Attrs holds attributes and event handlers.
type Attrs = vdom.Attrs

// ValidationError reports a malformed element tree.
type ValidationError = vdom.ValidationError

// CreateElement builds a validated element.
//
// Example:
//
//	li, err := hashui.CreateElement("li", hashui.Attrs{"class": "done"}, "milk", []*hashui.VNode{})
func CreateElement(tag string, attrs Attrs, text string, children []*VNode) (*VNode, error) {
	return vdom.NewElement(tag, attrs, text, children)
}

// =============================================================================
// Host
// =============================================================================

// Host is the document environment an App runs in.
type Host = dom.Host

// Node is a live document node.
type Node = dom.Node

// Event is delivered to element listeners.
type Event = dom.Event

// FocusMode controls caret placement when focusing a node.
type FocusMode = dom.FocusMode

const (
	FocusDefault = dom.FocusDefault
	FocusEnd     = dom.FocusEnd
	FocusSelect  = dom.FocusSelect
)
