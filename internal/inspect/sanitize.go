package inspect

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/render"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sanitizeState copies state into values that encode as JSON. Handlers
// become "<handler>", live nodes become their tag and element trees become
// markup.
func sanitizeState(state store.State) map[string]any {
	out := make(map[string]any, len(state))
	for key, value := range state {
		out[key] = sanitize(value)
	}
	return out
}

func sanitize(v any) any {
	switch x := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	case func(), func(dom.Event):
		return "<handler>"
	case dom.Node:
		return "<" + x.TagName() + ">"
	case *vdom.VNode:
		return render.Markup(x)
	case []*vdom.VNode:
		return render.Markup(x...)
	case store.State:
		return sanitizeState(x)
	case map[string]any:
		return sanitizeState(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = sanitize(item)
		}
		return out
	}
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return v
}
