// Package app binds the store, the router and the renderer into an
// application with a one-way lifecycle.
//
// An App starts uninitialized. Initialize finds the root container,
// subscribes to fragment changes, dispatches the current route and performs
// the first render. From then on every notifying state update renders the
// whole tree again:
//
//	SetState(partial, true) -> listeners -> update callback -> Render
//	Render -> renderer writes the tree back with SetState(..., false)
//
// The renderer's write is silent, so a render never triggers another one.
//
// # Basic Usage
//
//	a := app.New("#app", app.WithHost(host))
//	a.SetRenderFunction(app.Single(func(s store.State) *vdom.VNode {
//	    n, _ := s["count"].(int)
//	    return vdom.Button(vdom.OnClick(func() {
//	        a.SetState(store.State{"count": n + 1}, true)
//	    }), vdom.Textf("Count: %d", n))
//	}))
//	a.AddRoute("/", func() {})
//	if err := a.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Precondition failures are returned as coded errors that match the
// exported sentinels with errors.Is. Errors raised by a render that a state
// update triggered have no caller to return to; they go to the OnError hook,
// which logs them by default.
package app
