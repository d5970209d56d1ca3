package demo

import (
	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// Counter installs a counter on a.
func Counter(a *app.App) error {
	a.SetState(store.State{"count": 0}, false)
	a.AddRoute("/", func() {})
	return a.SetRenderFunction(app.Single(func(s store.State) *vdom.VNode {
		n, _ := s["count"].(int)
		set := func(v int) func() {
			return func() { a.SetState(store.State{"count": v}, true) }
		}
		return vdom.Div(vdom.Class("counter"),
			vdom.H1("Counter"),
			vdom.P(vdom.Class("count"), vdom.Textf("Count: %d", n)),
			vdom.Button(vdom.Class("dec"), vdom.OnClick(set(n-1)), "-1"),
			vdom.Button(vdom.Class("inc"), vdom.OnClick(set(n+1)), "+1"),
			vdom.Button(vdom.Class("reset"), vdom.Disabled(n == 0), vdom.OnClick(set(0)), "Reset"),
		)
	}))
}
