// Package router maps URL fragments to handlers.
//
// Routes are exact paths such as "/" or "/active". A fragment that names no
// registered route falls back to "/". After a handler runs, the router makes
// the visible fragment match the dispatched path, pushing a history entry
// only when they differ so that dispatching never triggers another
// fragment-change notification.
//
//	r := router.New(ctx)
//	r.AddRoute("/", showAll)
//	r.AddRoute("/active", showActive)
//	r.ExecuteRoute("#/active")
package router
