// Package inspect serves a development inspector for a running application.
//
// The inspector exposes the application's state, its rendered document, its
// route table and its metrics over HTTP, and streams render events over a
// websocket:
//
//	GET  /state            sanitized store contents as JSON
//	GET  /document         inner HTML of the root container
//	GET  /vdom             markup of the last rendered element trees
//	GET  /routes           registered routes and the current route
//	GET  /metrics          prometheus metrics
//	POST /navigate?hash=   change the fragment as a user would
//	GET  /ws               render and error events
//
// HTTP handlers never touch the application directly. They read a snapshot
// taken on the event loop after each render, and navigation is posted back
// to the loop through memdom.Document.Post.
package inspect
