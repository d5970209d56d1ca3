package render

import (
	"sort"
	"strings"

	"github.com/vango-dev/hashui/pkg/vdom"
)

// Markup serializes element trees to HTML the way Render would lay them out
// in the document. Event handlers are written as data-on-<event> markers.
// It is meant for previews and debugging output.
func Markup(elements ...*vdom.VNode) string {
	var b strings.Builder
	for _, el := range elements {
		writeMarkup(&b, el)
	}
	return b.String()
}

func writeMarkup(b *strings.Builder, node *vdom.VNode) {
	if node == nil {
		return
	}
	b.WriteByte('<')
	b.WriteString(node.Tag)
	writeAttrs(b, node)
	b.WriteByte('>')
	if vdom.IsVoidElement(node.Tag) {
		return
	}

	b.WriteString(escapeHTML(node.Text))
	for _, child := range node.Children {
		writeMarkup(b, child)
	}
	b.WriteString("</")
	b.WriteString(node.Tag)
	b.WriteByte('>')
}

func writeAttrs(b *strings.Builder, node *vdom.VNode) {
	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Attrs[key]
		switch {
		case value == nil:
		case vdom.IsEventKey(key) && vdom.IsHandler(value):
			events = append(events, vdom.EventName(key))
		case vdom.IsHandler(value):
		case key == vdom.CheckedKey || isBooleanAttr(key):
			if vdom.Truthy(value) {
				b.WriteByte(' ')
				b.WriteString(key)
			}
		default:
			b.WriteByte(' ')
			b.WriteString(key)
			b.WriteString(`="`)
			b.WriteString(escapeAttr(vdom.Stringify(value)))
			b.WriteByte('"')
		}
	}
	for _, name := range events {
		b.WriteString(` data-on-`)
		b.WriteString(name)
	}
}
