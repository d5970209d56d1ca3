// Package jsdom is the browser dom.Host for GOOS=js GOARCH=wasm builds.
//
// Elements wrap syscall/js values. Every listener is a js.Func tracked by
// the Document and released when the children of an ancestor are replaced,
// which is what a full re-render does. Defer uses a zero-delay setTimeout
// and PushHash uses history.pushState, so neither fires hashchange.
package jsdom
