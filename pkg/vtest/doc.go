// Package vtest provides testing helpers for hashui applications.
//
// It reduces boilerplate when testing render functions and whole
// applications by providing render assertions and a mounted harness backed
// by an in-memory document.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, demo.Counter)
//	    h.Click(".inc")
//	    h.ExpectText(".count", "Count: 1")
//	}
//
// # Render Assertions
//
// The Expect helpers serialize an element tree and search the markup:
//
//	vtest.ExpectContains(t, node, "Welcome")
//	vtest.ExpectElement(t, node, "button")
//	vtest.ExpectAttribute(t, node, "class", "btn-primary")
//
// # Harness
//
// Every interaction on a Harness drains the document task queue
// afterwards, so deferred work such as focus continuations has run by the
// time the next assertion executes.
package vtest
