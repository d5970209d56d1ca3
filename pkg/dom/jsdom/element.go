//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/vango-dev/hashui/pkg/dom"
)

// Element wraps a browser element.
type Element struct {
	v   js.Value
	doc *Document
}

// JSValue returns the wrapped js.Value.
func (e *Element) JSValue() js.Value { return e.v }

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) SetTextContent(text string) { e.v.Set("textContent", text) }
func (e *Element) TextContent() string        { return e.v.Get("textContent").String() }

func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *Element) RemoveAttribute(name string)     { e.v.Call("removeAttribute", name) }

// GetAttribute reports false when the attribute is absent.
func (e *Element) GetAttribute(name string) (string, bool) {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return "", false
	}
	return a.String(), true
}

func (e *Element) SetChecked(checked bool) { e.v.Set("checked", checked) }
func (e *Element) Checked() bool           { return e.v.Get("checked").Truthy() }

// AddEventListener wraps fn in a js.Func owned by the document. It is
// released after an ancestor's children are replaced.
func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(e.doc.event(args[0], e))
		}
		return nil
	})
	e.v.Call("addEventListener", event, cb)
	e.doc.track(e.v, event, cb)
}

// AppendChild appends child when it belongs to this package.
func (e *Element) AppendChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	e.v.Call("appendChild", c.v)
}

// ReplaceChildren removes every child and schedules the release of their
// listeners.
func (e *Element) ReplaceChildren() {
	e.doc.releaseWithin(e.v)
	e.v.Call("replaceChildren")
}

func (e *Element) QuerySelector(selector string) dom.Node {
	return e.doc.query(e.v, selector)
}

// Focusable mirrors the browser's sequential focus rules closely enough
// for form controls and links.
func (e *Element) Focusable() bool {
	if !e.v.Get("isConnected").Truthy() || e.v.Get("disabled").Truthy() {
		return false
	}
	return e.v.Get("tabIndex").Int() >= 0
}

// Focus focuses the element and reports whether it became active.
func (e *Element) Focus() bool {
	if !e.Focusable() {
		return false
	}
	e.v.Call("focus")
	return e.doc.doc.Get("activeElement").Equal(e.v)
}

func (e *Element) Value() string {
	if v := e.v.Get("value"); v.Type() == js.TypeString {
		return v.String()
	}
	return ""
}

// SetSelectionRange is ignored by controls without a text selection,
// such as checkboxes, which throw in the browser.
func (e *Element) SetSelectionRange(start, end int) {
	e.safeCall("setSelectionRange", start, end)
}

func (e *Element) Select() {
	e.safeCall("select")
}

func (e *Element) safeCall(method string, args ...any) {
	defer func() {
		if r := recover(); r != nil {
			e.doc.logger.Debug("element call failed", "method", method, "tag", e.TagName())
		}
	}()
	if e.v.Get(method).Type() != js.TypeFunction {
		return
	}
	e.v.Call(method, args...)
}
