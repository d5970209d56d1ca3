// Package memdom is an in-memory dom.Host.
//
// Nodes are golang.org/x/net/html nodes, selectors are evaluated with
// cascadia, and live properties the markup does not carry (checked, value,
// caret, listeners, focus) are kept on the Element wrapper. A Document also
// owns a cooperative task queue: Defer and Post enqueue work, Flush drains
// it on the calling goroutine, and Run drains it until the context ends.
//
// Browser behaviours that matter to the runtime are mirrored: PushHash does
// not fire hashchange, Navigate and Back do (asynchronously, as a queued
// task), and detached nodes cannot take focus.
//
//	doc := memdom.MustParse(`<div id="app"></div>`)
//	btn := doc.QuerySelector("#app button").(*memdom.Element)
//	doc.Click(btn)
//	doc.Flush()
package memdom
