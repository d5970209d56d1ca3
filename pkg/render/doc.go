// Package render materializes virtual element trees into live document
// nodes.
//
// Rendering is a full replace: every call to Render clears the container and
// builds fresh nodes for the whole tree. There is no diffing and no identity
// is kept between renders.
//
// # Basic Usage
//
//	ctx := core.New(host)
//	r := render.New(ctx)
//	err := r.Render(container, []*vdom.VNode{
//	    vdom.Div(vdom.Class("counter"),
//	        vdom.Button(vdom.OnClick(inc), "+1"),
//	    ),
//	})
//
// Render validates every element before touching the document, so a
// malformed tree leaves the previous output in place.
//
// # Attributes
//
// Attributes are applied in key order:
//
//   - "on" + name with a func() or func(dom.Event) value becomes an event
//     listener for the lower-cased name ("onClick" listens for "click")
//   - "checked" sets the live checked property and mirrors a presence
//     attribute
//   - boolean attributes such as "disabled" are written empty when true and
//     omitted when false
//   - other non-nil values are stringified; nil values are skipped
//
// # Bookkeeping
//
// The Renderer keeps an arena that maps each materialized element to its
// node and back, addressed by a Handle. The arena belongs to one render
// generation and is wiped when the next render starts, so nodes from earlier
// renders can be dropped by the host without the renderer holding them.
//
// After each render the store holds the rendered elements under StateKeyVDOM
// and the container under StateKeyContainer. Both are written silently so
// the write does not trigger another render.
package render
