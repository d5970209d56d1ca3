package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	node := vdom.Div(vdom.Class("card"), vdom.H2("Title"), vdom.Button(vdom.OnClick(func() {}), "Go"))

	html := RenderToString(node)
	if !strings.Contains(html, `<div class="card">`) {
		t.Errorf("html = %q", html)
	}

	ExpectContains(t, node, "Title")
	ExpectNotContains(t, node, "Missing")
	ExpectElement(t, node, "button")
	ExpectAttribute(t, node, "class", "card")
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}

func clicker(a *app.App) error {
	a.SetState(store.State{"n": 0}, false)
	a.AddRoute("/", func() { a.SetState(store.State{"page": "home"}, true) })
	a.AddRoute("/about", func() { a.SetState(store.State{"page": "about"}, true) })
	return a.SetRenderFunction(app.Single(func(s store.State) *vdom.VNode {
		n, _ := s["n"].(int)
		page, _ := s["page"].(string)
		return vdom.Div(
			vdom.P(vdom.ID("page"), page),
			vdom.Button(vdom.OnClick(func() { a.SetState(store.State{"n": n + 1}, true) }), vdom.Textf("%d", n)),
			vdom.Input(vdom.Class("name"), vdom.OnKeyDown(func(e dom.Event) {
				if e.Key == "Enter" {
					a.SetState(store.State{"page": e.Value}, true)
				}
			})),
		)
	}))
}

func TestHarness(t *testing.T) {
	h := Mount(t, clicker)

	h.ExpectText("#page", "home")
	h.Click("button")
	h.Click("button")
	h.ExpectText("button", "2")
	h.ExpectCount("#app > div", 1)

	h.Navigate("#/about")
	h.ExpectText("#page", "about")

	h.Type(".name", "typed")
	h.Press(".name", "Enter")
	h.ExpectText("#page", "typed")

	if h.Has(".missing") {
		t.Error("Has(.missing) = true")
	}
	if !strings.HasPrefix(h.HTML(), "<div>") {
		t.Errorf("HTML() = %q", h.HTML())
	}
}

func TestMountOptions(t *testing.T) {
	h := Mount(t, clicker,
		WithShell(`<main class="root"></main>`, ".root"),
		WithHash("#/about"),
	)
	h.ExpectText("#page", "about")
	if h.App.Selector() != ".root" {
		t.Errorf("Selector() = %q", h.App.Selector())
	}
}
