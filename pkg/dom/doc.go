// Package dom defines the host capabilities the hashui runtime needs from a
// live document: querying nodes, creating nodes, reading and pushing the URL
// fragment, subscribing to fragment changes and scheduling continuations.
//
// The runtime never touches a browser global directly. Two hosts ship with
// the module:
//
//   - memdom: an in-memory document with a cooperative task queue, used by
//     tests, the CLI and the inspector
//   - jsdom: a syscall/js host for GOOS=js GOARCH=wasm builds
//
// Both hosts share two rules the renderer relies on:
//
//   - A host returns the same Node value for the same live node, so nodes
//     can be used as map keys across queries.
//   - The propagation path of an event is fixed when it is dispatched. A
//     listener that rebuilds the document does not stop the event from
//     reaching the removed ancestors' listeners; those listeners are
//     released afterwards.
package dom
