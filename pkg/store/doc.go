// Package store provides the reactive state container for hashui.
//
// A Store holds one mapping of application state, a list of passive
// listeners and a single update callback. Updates are shallow merges:
// only the top-level keys present in an update are replaced.
//
// Usage:
//
//	s := store.New()
//	s.Subscribe(func(st store.State) { log.Println("count", st["count"]) })
//	s.SetUpdateCallback(func(store.State) { app.Render() })
//
//	s.SetState(store.State{"count": 1}, true)  // listeners, then callback
//	s.SetState(store.State{"vdom": tree}, false) // silent: nothing fires
//
// Notification is synchronous and unbatched; every notifying SetState runs
// every listener and the callback before it returns.
package store
