//go:build js && wasm

package jsdom

import (
	"fmt"
	"log/slog"
	"sync"
	"syscall/js"

	"github.com/vango-dev/hashui/pkg/dom"
)

// nodeIDProp is the property stamped on every wrapped JS node so the same
// node always yields the same *Element.
const nodeIDProp = "__hashuiNode"

// listener is a js.Func attached to a node, kept so it can be released
// once the node leaves the document.
type listener struct {
	node  js.Value
	event string
	fn    js.Func
}

// Document is the browser document behind a dom.Host.
type Document struct {
	global js.Value
	doc    js.Value
	logger *slog.Logger

	mu        sync.Mutex
	listeners []listener
	elements  map[int]*Element
	nextNode  int

	hashFn   js.Func
	hashSubs map[int]func(string)
	nextSub  int
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the document logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// New binds to the global document. It panics outside a browser.
func New(opts ...Option) *Document {
	global := js.Global()
	doc := global.Get("document")
	if !doc.Truthy() {
		panic("jsdom: no global document")
	}
	d := &Document{
		global:   global,
		doc:      doc,
		logger:   slog.Default(),
		hashSubs: make(map[int]func(string)),
		elements: make(map[int]*Element),
		nextNode: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// QuerySelector searches the whole document. Invalid selectors yield nil.
func (d *Document) QuerySelector(selector string) dom.Node {
	return d.query(d.doc, selector)
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Node {
	return d.wrap(d.doc.Call("createElement", tag))
}

// Hash returns location.hash.
func (d *Document) Hash() string {
	return d.global.Get("location").Get("hash").String()
}

// PushHash adds a history entry without firing hashchange.
func (d *Document) PushHash(fragment string) {
	d.global.Get("history").Call("pushState", js.Null(), "", fragment)
}

// OnHashChange subscribes fn to the window hashchange event.
func (d *Document) OnHashChange(fn func(fragment string)) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hashFn.IsUndefined() {
		d.hashFn = js.FuncOf(func(js.Value, []js.Value) any {
			d.fireHashChange(d.Hash())
			return nil
		})
		d.global.Call("addEventListener", "hashchange", d.hashFn)
	}

	id := d.nextSub
	d.nextSub++
	d.hashSubs[id] = fn
	return func() {
		d.mu.Lock()
		delete(d.hashSubs, id)
		d.mu.Unlock()
	}
}

func (d *Document) fireHashChange(fragment string) {
	d.mu.Lock()
	subs := make([]func(string), 0, len(d.hashSubs))
	for i := 0; i < d.nextSub; i++ {
		if fn, ok := d.hashSubs[i]; ok {
			subs = append(subs, fn)
		}
	}
	d.mu.Unlock()

	for _, fn := range subs {
		fn(fragment)
	}
}

// Defer runs fn from a zero-delay timer, after the current task.
func (d *Document) Defer(fn func()) {
	if fn == nil {
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.global.Call("setTimeout", cb, 0)
}

// Release detaches the hashchange listener and every element listener.
func (d *Document) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.hashFn.IsUndefined() {
		d.global.Call("removeEventListener", "hashchange", d.hashFn)
		d.hashFn.Release()
		d.hashFn = js.Func{}
	}
	for _, l := range d.listeners {
		l.node.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	d.listeners = nil
	d.elements = make(map[int]*Element)
}

// ListenerCount returns the number of js.Func listeners attached to nodes
// still in the document.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Document) track(node js.Value, event string, fn js.Func) {
	d.mu.Lock()
	d.listeners = append(d.listeners, listener{node: node, event: event, fn: fn})
	d.mu.Unlock()
}

// releaseWithin detaches the listeners and wrappers of parent's
// descendants. The js.Funcs are released from a later task so an event
// that is still propagating through the removed nodes reaches them, as it
// does on memdom.
func (d *Document) releaseWithin(parent js.Value) {
	d.mu.Lock()
	var dropped []listener
	kept := d.listeners[:0]
	for _, l := range d.listeners {
		if !l.node.Equal(parent) && parent.Call("contains", l.node).Bool() {
			dropped = append(dropped, l)
			continue
		}
		kept = append(kept, l)
	}
	d.listeners = kept
	for id, el := range d.elements {
		if !el.v.Equal(parent) && parent.Call("contains", el.v).Bool() {
			delete(d.elements, id)
		}
	}
	d.mu.Unlock()

	if len(dropped) == 0 {
		return
	}
	d.Defer(func() {
		for _, l := range dropped {
			l.node.Call("removeEventListener", l.event, l.fn)
			l.fn.Release()
		}
	})
}

func (d *Document) query(root js.Value, selector string) (n dom.Node) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("selector rejected", "selector", selector, "error", fmt.Sprint(r))
			n = nil
		}
	}()
	v := root.Call("querySelector", selector)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return d.wrap(v)
}

// wrap returns the cached wrapper of v, creating one on first sight.
func (d *Document) wrap(v js.Value) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id := v.Get(nodeIDProp); id.Type() == js.TypeNumber {
		if el, ok := d.elements[id.Int()]; ok {
			return el
		}
	}
	id := d.nextNode
	d.nextNode++
	v.Set(nodeIDProp, id)
	el := &Element{v: v, doc: d}
	d.elements[id] = el
	return el
}

// event converts a browser event for a listener attached to target.
func (d *Document) event(ev js.Value, target *Element) dom.Event {
	out := dom.Event{
		Type:   ev.Get("type").String(),
		Target: target,
		PreventDefault: func() {
			ev.Call("preventDefault")
		},
	}
	if k := ev.Get("key"); k.Type() == js.TypeString {
		out.Key = k.String()
	}
	src := ev.Get("target")
	if v := src.Get("value"); v.Type() == js.TypeString {
		out.Value = v.String()
	}
	out.Checked = src.Get("checked").Truthy()
	return out
}

var (
	_ dom.Host = (*Document)(nil)
	_ dom.Node = (*Element)(nil)
)
