package vdom

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/dom"
)

func leaf(tag string) *VNode {
	return &VNode{Tag: tag, Attrs: Attrs{}, Children: []*VNode{}}
}

func TestNewElementValid(t *testing.T) {
	child := Must(NewElement("li", Attrs{"class": "item"}, "Milk", []*VNode{}))
	node, err := NewElement("ul", Attrs{
		"id":       "list",
		"hidden":   false,
		"tabindex": 3,
		"onclick":  func() {},
		"oninput":  func(dom.Event) {},
		"title":    nil,
	}, "", []*VNode{child})
	if err != nil {
		t.Fatalf("NewElement() error = %v", err)
	}
	if node.Tag != "ul" || len(node.Children) != 1 || node.Children[0] != child {
		t.Errorf("unexpected node %+v", node)
	}
	if node.Count() != 2 {
		t.Errorf("Count() = %d, want 2", node.Count())
	}
}

func TestNewElementInvalid(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		attrs    Attrs
		children []*VNode
		wantCode string
		wantPath string
	}{
		{"empty tag", "", Attrs{}, []*VNode{}, errors.CodeEmptyTag, "?"},
		{"nil attrs", "div", nil, []*VNode{}, errors.CodeMissingAttributes, "div"},
		{"nil children", "div", Attrs{}, nil, errors.CodeMissingChildren, "div"},
		{"nil child", "div", Attrs{}, []*VNode{leaf("p"), nil}, errors.CodeNilChild, "div > [1]"},
		{"struct attribute", "div", Attrs{"style": struct{}{}}, []*VNode{}, errors.CodeInvalidAttribute, "div"},
		{"wrong handler shape", "div", Attrs{"onclick": func(int) {}}, []*VNode{}, errors.CodeInvalidAttribute, "div"},
		{"child with empty tag", "ul", Attrs{}, []*VNode{leaf("li"), leaf("")}, errors.CodeEmptyTag, "ul > ?[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := NewElement(tt.tag, tt.attrs, "", tt.children)
			if node != nil {
				t.Errorf("expected nil node, got %+v", node)
			}
			var ve *ValidationError
			if !stderrors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", ve.Code, tt.wantCode)
			}
			if ve.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", ve.Path, tt.wantPath)
			}
			if !stderrors.Is(err, errors.New(tt.wantCode)) {
				t.Errorf("errors.Is should match code %s", tt.wantCode)
			}
		})
	}
}

func TestValidateReportsDeepDescendant(t *testing.T) {
	bad := &VNode{Tag: "span", Attrs: nil, Children: []*VNode{}}
	tree := &VNode{Tag: "div", Attrs: Attrs{}, Children: []*VNode{
		leaf("h1"),
		{Tag: "ul", Attrs: Attrs{}, Children: []*VNode{
			leaf("li"),
			leaf("li"),
			{Tag: "li", Attrs: Attrs{}, Children: []*VNode{bad}},
		}},
	}}

	err := Validate(tree)
	if err == nil {
		t.Fatal("expected validation error")
	}
	want := "div > ul[1] > li[2] > span[0]"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not reference %q", err.Error(), want)
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	Must(NewElement("", Attrs{}, "", []*VNode{}))
}

func TestIsInteractive(t *testing.T) {
	if leaf("div").IsInteractive() {
		t.Error("plain element should not be interactive")
	}
	n := Button(OnClick(func() {}))
	if !n.IsInteractive() {
		t.Error("button with onclick should be interactive")
	}
	var nilNode *VNode
	if nilNode.IsInteractive() {
		t.Error("nil node should not be interactive")
	}
}
