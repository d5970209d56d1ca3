// Package vdom provides the element model for hashui.
//
// A VNode describes one prospective UI node: a tag, attributes, optional
// text and ordered children. Trees are plain data, validated eagerly when
// they are built, never mutated afterwards, and rebuilt from scratch on
// every render.
//
// # Core Types
//
// VNode is the element. Attrs holds attribute values, which are primitives
// (string, bool, numbers) or event handlers (func() or func(dom.Event))
// under keys starting with "on".
//
// # Construction
//
// NewElement is the checked constructor and reports malformed input as a
// *ValidationError naming the offending node:
//
//	li, err := vdom.NewElement("li", vdom.Attrs{"class": "item"}, "Milk", []*vdom.VNode{})
//
// The variadic factories build the same shape in a compact form and panic
// with a *ValidationError instead of returning it:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    Button("+", OnClick(increment)),
//	)
package vdom
