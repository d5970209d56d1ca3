package render

import (
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// Handle addresses one materialized element inside a render generation.
// A Handle from an earlier generation never resolves.
type Handle struct {
	Generation uint64
	Index      int
}

// arena records the elements materialized during one generation.
type arena struct {
	generation uint64
	elements   []*vdom.VNode
	nodes      []dom.Node
	byElement  map[*vdom.VNode]Handle
	byNode     map[dom.Node]Handle
}

func newArena() *arena {
	return &arena{
		byElement: make(map[*vdom.VNode]Handle),
		byNode:    make(map[dom.Node]Handle),
	}
}

// successor returns an empty arena for the following generation. The
// receiver stays intact so a failed render can fall back to it.
func (a *arena) successor() *arena {
	next := newArena()
	next.generation = a.generation + 1
	return next
}

func (a *arena) add(v *vdom.VNode, n dom.Node) Handle {
	h := Handle{Generation: a.generation, Index: len(a.nodes)}
	a.elements = append(a.elements, v)
	a.nodes = append(a.nodes, n)
	a.byElement[v] = h
	a.byNode[n] = h
	return h
}

func (a *arena) valid(h Handle) bool {
	return h.Generation == a.generation && h.Index >= 0 && h.Index < len(a.nodes)
}

func (a *arena) len() int {
	return len(a.nodes)
}
