package memdom

import "github.com/vango-dev/hashui/pkg/dom"

// nonBubbling events are delivered to the target only.
var nonBubbling = map[string]bool{
	"focus": true,
	"blur":  true,
}

// Dispatch delivers an event of type typ to e and then to each ancestor.
// The propagation path is fixed before any listener runs, as in browsers,
// so a listener that rebuilds the document does not change who receives
// the event. It reports whether a listener called PreventDefault.
func (d *Document) Dispatch(e *Element, typ string, key string) bool {
	path := []*Element{e}
	if !nonBubbling[typ] {
		for p := e.Parent(); p != nil; p = p.Parent() {
			path = append(path, p)
		}
	}

	prevented := false
	ev := dom.Event{
		Type:           typ,
		Target:         e,
		Key:            key,
		Value:          e.Value(),
		Checked:        e.Checked(),
		PreventDefault: func() { prevented = true },
	}
	for _, cur := range path {
		// Copy so listeners added during dispatch wait for the next event.
		fns := append([]func(dom.Event){}, cur.listeners[typ]...)
		for _, fn := range fns {
			fn(ev)
		}
	}
	return prevented
}

// Click simulates a user click. Checkboxes and radios toggle their checked
// property first and also receive a change event.
func (d *Document) Click(e *Element) {
	t, _ := e.GetAttribute("type")
	toggles := e.TagName() == "input" && (t == "checkbox" || t == "radio")
	if toggles {
		if t == "radio" {
			e.checked = true
		} else {
			e.checked = !e.checked
		}
	}
	d.Dispatch(e, "click", "")
	if toggles {
		d.Dispatch(e, "change", "")
	}
}

// DblClick simulates a double click.
func (d *Document) DblClick(e *Element) {
	d.Dispatch(e, "dblclick", "")
}

// Type replaces the control value and fires an input event.
func (d *Document) Type(e *Element, text string) {
	e.SetValue(text)
	d.Dispatch(e, "input", "")
}

// Press fires keydown then keyup for key.
func (d *Document) Press(e *Element, key string) {
	d.Dispatch(e, "keydown", key)
	d.Dispatch(e, "keyup", key)
}

// Blur removes focus from e and fires a blur event.
func (d *Document) Blur(e *Element) {
	if d.active == e {
		d.active = nil
	}
	d.Dispatch(e, "blur", "")
}

// Find is QuerySelector returning the concrete element type.
func (d *Document) Find(selector string) *Element {
	n := d.query(d.root, selector)
	if n == nil {
		return nil
	}
	return d.wrap(n)
}
