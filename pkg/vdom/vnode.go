package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/dom"
)

// VNode is one virtual element.
type VNode struct {
	Tag      string   // Element tag name (e.g., "div")
	Attrs    Attrs    // Attributes and event handlers
	Text     string   // Inner text, set before children are appended
	Children []*VNode // Child elements in order
}

// Attrs holds attributes and event handlers.
type Attrs map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// ValidationError reports a malformed element tree.
type ValidationError struct {
	// Path locates the offending node, e.g. "ul > li[2]".
	Path string

	// Code is the registered error code.
	Code string

	// Reason describes what is wrong with the node.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("vdom: invalid element at %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the coded error so callers can match on the code.
func (e *ValidationError) Unwrap() error {
	return errors.New(e.Code)
}

// NewElement builds a validated element. It fails when tag is empty, attrs
// or children are nil, a child is nil, an attribute value has an
// unsupported type, or any descendant fails the same checks.
func NewElement(tag string, attrs Attrs, text string, children []*VNode) (*VNode, error) {
	node := &VNode{
		Tag:      tag,
		Attrs:    attrs,
		Text:     text,
		Children: children,
	}
	if err := Validate(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Must panics if err is non-nil and returns node otherwise.
func Must(node *VNode, err error) *VNode {
	if err != nil {
		panic(err)
	}
	return node
}

// Validate checks node and all of its descendants.
func Validate(node *VNode) error {
	if node == nil {
		return &ValidationError{Path: "<root>", Code: errors.CodeNilChild, Reason: "element is nil"}
	}
	return validate(node, pathLabel(node.Tag))
}

func validate(node *VNode, path string) error {
	if node.Tag == "" {
		return invalid(path, errors.CodeEmptyTag, "")
	}
	if node.Attrs == nil {
		return invalid(path, errors.CodeMissingAttributes, "")
	}
	for key, value := range node.Attrs {
		if !validAttrValue(value) {
			return invalid(path, errors.CodeInvalidAttribute,
				fmt.Sprintf("attribute %q has unsupported type %T", key, value))
		}
	}
	if node.Children == nil {
		return invalid(path, errors.CodeMissingChildren, "")
	}
	for i, child := range node.Children {
		if child == nil {
			return invalid(fmt.Sprintf("%s > [%d]", path, i), errors.CodeNilChild, "")
		}
		childPath := fmt.Sprintf("%s > %s[%d]", path, pathLabel(child.Tag), i)
		if err := validate(child, childPath); err != nil {
			return err
		}
	}
	return nil
}

func invalid(path, code, reason string) *ValidationError {
	if reason == "" {
		if t, ok := errors.GetTemplate(code); ok {
			reason = strings.ToLower(t.Message[:1]) + t.Message[1:]
		}
	}
	return &ValidationError{Path: path, Code: code, Reason: reason}
}

func pathLabel(tag string) string {
	if tag == "" {
		return "?"
	}
	return tag
}

// validAttrValue reports whether v is a primitive or a supported handler.
func validAttrValue(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case func(), func(dom.Event):
		return true
	default:
		return false
	}
}

// Count returns the number of elements in the tree rooted at v.
func (v *VNode) Count() int {
	if v == nil {
		return 0
	}
	n := 1
	for _, c := range v.Children {
		n += c.Count()
	}
	return n
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil {
		return false
	}
	for key, value := range v.Attrs {
		if IsEventKey(key) && IsHandler(value) {
			return true
		}
	}
	return false
}
