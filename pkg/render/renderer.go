package render

import (
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/core"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/telemetry"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// Store keys written after every render.
const (
	StateKeyVDOM      = "vdom"
	StateKeyContainer = "container"
)

// Render error stages reported to metrics.
const (
	stageValidate    = "validate"
	stageMaterialize = "materialize"
)

// Renderer turns element trees into live nodes of the context's host.
type Renderer struct {
	ctx    *core.Context
	logger *slog.Logger
	arena  *arena
}

// New creates a Renderer for ctx.
func New(ctx *core.Context) *Renderer {
	return &Renderer{
		ctx:    ctx,
		logger: ctx.Component("render"),
		arena:  newArena(),
	}
}

// Materialize creates the live node for node and its subtree and records
// every element in the current generation. Listeners are created fresh.
func (r *Renderer) Materialize(node *vdom.VNode) (dom.Node, error) {
	if node == nil {
		return nil, typeError(errors.CodeNotAnElement, "element is nil")
	}
	if node.Tag == "" {
		return nil, typeError(errors.CodeNotAnElement, "element has no tag")
	}
	if node.Attrs == nil {
		return nil, typeError(errors.CodeAttributesType, "element <%s> has no attribute mapping", node.Tag)
	}

	n := r.ctx.Host.CreateElement(node.Tag)
	if n == nil {
		return nil, typeError(errors.CodeNotAnElement, "host could not create <%s>", node.Tag)
	}
	// Registered before the children so handles follow document order.
	r.arena.add(node, n)

	if node.Text != "" {
		n.SetTextContent(node.Text)
	}
	r.applyAttrs(n, node)

	for _, child := range node.Children {
		c, err := r.Materialize(child)
		if err != nil {
			return nil, err
		}
		n.AppendChild(c)
	}
	return n, nil
}

func (r *Renderer) applyAttrs(n dom.Node, node *vdom.VNode) {
	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Attrs[key]
		switch {
		case value == nil:
			continue
		case vdom.IsEventKey(key) && vdom.IsHandler(value):
			n.AddEventListener(vdom.EventName(key), vdom.Listener(value))
		case vdom.IsHandler(value):
			r.logger.Warn("handler on non-event attribute skipped", "tag", node.Tag, "attr", key)
		case key == vdom.CheckedKey:
			// Truthy reads the string "false" as unchecked, unlike a browser.
			on := vdom.Truthy(value)
			n.SetChecked(on)
			if on {
				n.SetAttribute(key, "")
			} else {
				n.RemoveAttribute(key)
			}
		case isBooleanAttr(key):
			// Only a Go bool toggles presence; any other value is stringified.
			if b, ok := value.(bool); ok {
				if b {
					n.SetAttribute(key, "")
				}
				continue
			}
			n.SetAttribute(key, vdom.Stringify(value))
		default:
			n.SetAttribute(key, vdom.Stringify(value))
		}
	}
}

// Render replaces the children of container with freshly materialized
// nodes for elements. Every element is validated and materialized into a
// new generation before anything is written; on failure the document, the
// store and the current generation are left untouched.
func (r *Renderer) Render(container dom.Node, elements []*vdom.VNode) (err error) {
	start := time.Now()
	metrics := r.ctx.Metrics()
	_, span := r.ctx.Telemetry.Start(r.ctx.Base, "hashui.render",
		attribute.Int("roots", len(elements)),
	)
	defer func() { telemetry.End(span, err) }()

	if err := r.check(container, elements); err != nil {
		metrics.RecordRenderError(stageValidate)
		r.logger.Warn("render rejected", "error", err)
		return err
	}

	prev := r.arena
	r.arena = prev.successor()
	nodes := make([]dom.Node, 0, len(elements))
	for _, el := range elements {
		n, err := r.Materialize(el)
		if err != nil {
			r.arena = prev
			metrics.RecordRenderError(stageMaterialize)
			r.logger.Warn("render aborted", "error", err)
			return err
		}
		nodes = append(nodes, n)
	}
	gen := r.arena.generation

	r.ctx.Store.SetState(store.State{
		StateKeyVDOM:      elements,
		StateKeyContainer: container,
	}, false)
	container.ReplaceChildren()
	for _, n := range nodes {
		container.AppendChild(n)
	}

	d := time.Since(start)
	metrics.RecordRender(gen, r.arena.len(), d)
	span.SetAttributes(
		attribute.Int64("generation", int64(gen)),
		attribute.Int("nodes", r.arena.len()),
	)
	r.logger.Debug("rendered",
		"generation", gen,
		"roots", len(elements),
		"nodes", r.arena.len(),
		"duration", d,
	)
	return nil
}

func (r *Renderer) check(container dom.Node, elements []*vdom.VNode) error {
	if container == nil {
		return typeError(errors.CodeNoContainer, "container is nil")
	}
	if elements == nil {
		return typeError(errors.CodeMissingElements, "elements is nil")
	}
	for i, el := range elements {
		if el == nil {
			return typeError(errors.CodeNotAnElement, "elements[%d] is nil", i)
		}
		if err := vdom.Validate(el); err != nil {
			return err
		}
	}
	return nil
}

// FindNode returns the first node matching selector under root. A nil root
// searches the most recently rendered container, or the whole document
// before the first render.
func (r *Renderer) FindNode(selector string, root dom.Node) dom.Node {
	if root == nil {
		root = r.Container()
	}
	if root != nil {
		return root.QuerySelector(selector)
	}
	if r.ctx.Host == nil {
		return nil
	}
	return r.ctx.Host.QuerySelector(selector)
}

// Container returns the container of the most recent render, or nil.
func (r *Renderer) Container() dom.Node {
	v, ok := r.ctx.Store.Get(StateKeyContainer)
	if !ok {
		return nil
	}
	n, _ := v.(dom.Node)
	return n
}

// Focus focuses the first node matching selector and places the caret
// according to mode. It reports whether a node took focus.
func (r *Renderer) Focus(selector string, mode dom.FocusMode) bool {
	n := r.FindNode(selector, nil)
	if n == nil {
		r.logger.Debug("focus target not found", "selector", selector)
		return false
	}
	return dom.ApplyFocus(n, mode)
}

// Generation returns the number of the current render generation.
func (r *Renderer) Generation() uint64 {
	return r.arena.generation
}

// Len returns how many elements the current generation materialized.
func (r *Renderer) Len() int {
	return r.arena.len()
}

// HandleOf returns the handle of an element from the current generation.
func (r *Renderer) HandleOf(v *vdom.VNode) (Handle, bool) {
	h, ok := r.arena.byElement[v]
	return h, ok
}

// Resolve returns the node a handle addresses. Handles from earlier
// generations do not resolve.
func (r *Renderer) Resolve(h Handle) (dom.Node, bool) {
	if !r.arena.valid(h) {
		return nil, false
	}
	return r.arena.nodes[h.Index], true
}

// NodeFor returns the live node materialized for v in the current
// generation.
func (r *Renderer) NodeFor(v *vdom.VNode) (dom.Node, bool) {
	h, ok := r.arena.byElement[v]
	if !ok {
		return nil, false
	}
	return r.Resolve(h)
}

// ElementFor returns the element that produced n in the current
// generation.
func (r *Renderer) ElementFor(n dom.Node) (*vdom.VNode, bool) {
	h, ok := r.arena.byNode[n]
	if !ok || !r.arena.valid(h) {
		return nil, false
	}
	return r.arena.elements[h.Index], true
}
