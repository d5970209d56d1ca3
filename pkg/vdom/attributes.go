package vdom

import (
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf creates an attribute with an arbitrary key.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Empty class names are dropped.
func Class(classes ...string) Attr {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return attr("class", strings.Join(kept, " "))
}

// ClassIf returns name when cond is true and "" otherwise, for use with Class.
func ClassIf(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Form attributes

func Type(t string) Attr            { return attr("type", t) }
func Name(n string) Attr            { return attr("name", n) }
func Value(v string) Attr           { return attr("value", v) }
func Placeholder(p string) Attr     { return attr("placeholder", p) }
func For(id string) Attr            { return attr("for", id) }
func Href(url string) Attr          { return attr("href", url) }
func TabIndex(i int) Attr           { return attr("tabindex", i) }
func Autofocus() Attr               { return attr("autofocus", true) }
func Disabled(disabled bool) Attr   { return attr("disabled", disabled) }
func Readonly(readonly bool) Attr   { return attr("readonly", readonly) }
func AriaLabel(label string) Attr   { return attr("aria-label", label) }
func Title(title string) Attr       { return attr("title", title) }
func Role(role string) Attr         { return attr("role", role) }
func Hidden(hidden bool) Attr       { return attr("hidden", hidden) }
func Selected(selected bool) Attr   { return attr("selected", selected) }
func Checked(checked bool) Attr     { return attr(CheckedKey, checked) }
func Maxlength(n int) Attr          { return attr("maxlength", n) }
func Autocomplete(mode string) Attr { return attr("autocomplete", mode) }

// CheckedKey is the attribute mirrored to both the live checked property and
// a presence attribute by the renderer.
const CheckedKey = "checked"

// Stringify renders a primitive attribute value the way it is written to
// the document.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float32:
		return fmt.Sprintf("%g", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truthy reports whether an attribute value counts as set for presence
// attributes such as checked.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	default:
		return Stringify(v) != "0"
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
