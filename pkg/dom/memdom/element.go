package memdom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/hashui/pkg/dom"
)

// focusableTags can take focus unless disabled.
var focusableTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
	"button":   true,
}

// Element is a live node in a Document.
type Element struct {
	doc *Document
	n   *html.Node

	checked   bool
	value     string
	valueSet  bool
	selStart  int
	selEnd    int
	listeners map[string][]func(dom.Event)
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.n }

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return e.n.Data }

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.removeChildren()
	if text != "" {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == name && e.n.Attr[i].Namespace == "" {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == name && e.n.Attr[i].Namespace == "" {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

// GetAttribute returns an attribute value.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.n.Attr {
		if a.Key == name && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetChecked sets the live checked property only.
func (e *Element) SetChecked(checked bool) { e.checked = checked }

// Checked returns the live checked property.
func (e *Element) Checked() bool { return e.checked }

// AddEventListener appends fn to the listeners for event.
func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]func(dom.Event))
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// ListenerCount returns how many listeners are attached for event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// AppendChild appends child, detaching it from any previous parent.
func (e *Element) AppendChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		e.doc.logger.Warn("append of foreign node ignored", "parent", e.n.Data)
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	e.n.AppendChild(c.n)
}

// ReplaceChildren removes every child.
func (e *Element) ReplaceChildren() {
	e.removeChildren()
}

func (e *Element) removeChildren() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	if e.n.Parent == nil || e.n.Parent.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(e.n.Parent)
}

// QuerySelector returns the first matching descendant.
func (e *Element) QuerySelector(selector string) dom.Node {
	n := e.doc.query(e.n, selector)
	if n == nil {
		return nil
	}
	return e.doc.wrap(n)
}

// Connected reports whether the element is attached to the document.
func (e *Element) Connected() bool {
	for n := e.n; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Focusable reports whether Focus would succeed.
func (e *Element) Focusable() bool {
	if !e.Connected() || e.HasAttribute("disabled") {
		return false
	}
	if focusableTags[e.n.Data] || e.HasAttribute("tabindex") {
		return true
	}
	return e.n.Data == "a" && e.HasAttribute("href")
}

// Focus makes the element the document's active element.
func (e *Element) Focus() bool {
	if !e.Focusable() {
		return false
	}
	e.doc.active = e
	return true
}

// Focused reports whether e is the active element.
func (e *Element) Focused() bool {
	return e.doc.ActiveElement() == e
}

// Value returns the control value: the live value once set, otherwise the
// value attribute, or the text for a textarea.
func (e *Element) Value() string {
	if e.valueSet {
		return e.value
	}
	if e.n.Data == "textarea" {
		return e.TextContent()
	}
	v, _ := e.GetAttribute("value")
	return v
}

// SetValue sets the live value and moves the caret to the end.
func (e *Element) SetValue(v string) {
	e.value = v
	e.valueSet = true
	l := len([]rune(v))
	e.selStart, e.selEnd = l, l
}

// SetSelectionRange sets the selection, clamped to the value length.
func (e *Element) SetSelectionRange(start, end int) {
	l := len([]rune(e.Value()))
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > l {
			return l
		}
		return i
	}
	e.selStart, e.selEnd = clamp(start), clamp(end)
	if e.selEnd < e.selStart {
		e.selEnd = e.selStart
	}
}

// SelectionRange returns the current selection.
func (e *Element) SelectionRange() (start, end int) {
	return e.selStart, e.selEnd
}

// Select selects the whole value.
func (e *Element) Select() {
	e.selStart, e.selEnd = 0, len([]rune(e.Value()))
}

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	if err := html.Render(&b, e.n); err != nil {
		e.doc.logger.Error("render element", "tag", e.n.Data, "error", err)
	}
	return b.String()
}

// InnerHTML serializes the children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			e.doc.logger.Error("render element", "tag", e.n.Data, "error", err)
		}
	}
	return b.String()
}

var _ dom.Node = (*Element)(nil)
