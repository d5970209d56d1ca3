package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
	"github.com/vango-dev/hashui/pkg/render"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, opts ...memdom.Option) (*App, *memdom.Document) {
	t.Helper()
	doc := memdom.MustParse(`<div id="app"></div>`, opts...)
	return New("#app", WithHost(doc), WithLogger(quietLogger())), doc
}

func counter(a *App) RenderFunc {
	return Single(func(s store.State) *vdom.VNode {
		n, _ := s["count"].(int)
		return vdom.Div(vdom.ID("counter"),
			vdom.Span(vdom.Class("value"), vdom.Textf("Count: %d", n)),
			vdom.Button(vdom.OnClick(func() {
				a.SetState(store.State{"count": n + 1}, true)
			}), "+1"),
		)
	})
}

func TestCounterEndToEnd(t *testing.T) {
	a, doc := newTestApp(t)
	require.NoError(t, a.SetRenderFunction(counter(a)))
	a.AddRoute("/", func() {})
	a.SetState(store.State{"count": 0}, false)

	require.NoError(t, a.Initialize())
	assert.Equal(t, "Count: 0", doc.Find(".value").TextContent())

	first := doc.Find("#counter button")
	doc.Click(first)
	second := doc.Find("#counter button")
	assert.NotSame(t, first, second, "each render creates a new button")
	doc.Click(second)

	assert.Equal(t, "Count: 2", doc.Find(".value").TextContent())
	assert.Equal(t, 2, a.GetState()["count"])
	assert.Len(t, doc.QuerySelectorAll("#counter"), 1, "full replace must not duplicate roots")
}

func TestQueriesWithoutHost(t *testing.T) {
	a := New("#app", WithLogger(quietLogger()))

	assert.Nil(t, a.FindNode("#x"))
	assert.False(t, a.Focus("#x", dom.FocusDefault))
	assert.NotPanics(t, func() { a.After(func() {}) })
}

func TestRenderPreconditions(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Render()
	assert.True(t, errors.Is(err, ErrNoRenderFunction), "got %v", err)

	require.NoError(t, a.SetRenderFunction(counter(a)))
	err = a.Render()
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)

	err = a.SetRenderFunction(nil)
	assert.True(t, errors.Is(err, ErrInvalidRenderFunction), "got %v", err)
}

func TestInitializeRootNotFound(t *testing.T) {
	doc := memdom.MustParse(`<div id="other"></div>`)
	a := New("#app", WithHost(doc), WithLogger(quietLogger()))
	require.NoError(t, a.SetRenderFunction(counter(a)))

	err := a.Initialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.Contains(t, err.Error(), `"#app"`)
	assert.False(t, a.Initialized())

	noHost := New("#app", WithLogger(quietLogger()))
	assert.True(t, errors.Is(noHost.Initialize(), ErrRootNotFound))
}

func TestInitializeDispatchesCurrentRoute(t *testing.T) {
	a, doc := newTestApp(t, memdom.WithHash("#/active"))
	var routes []string
	a.AddRoute("/", func() { routes = append(routes, "/") })
	a.AddRoute("/active", func() { routes = append(routes, "/active") })
	require.NoError(t, a.SetRenderFunction(counter(a)))

	require.NoError(t, a.Initialize())
	assert.Equal(t, []string{"/active"}, routes)

	require.NoError(t, a.Initialize(), "second Initialize is a warning")
	assert.Equal(t, []string{"/active"}, routes)
	assert.Equal(t, uint64(1), a.Renderer().Generation())

	doc.Navigate("#/")
	doc.Flush()
	assert.Equal(t, []string{"/active", "/"}, routes)

	a.Close()
	doc.Navigate("#/active")
	doc.Flush()
	assert.Len(t, routes, 2, "closed app must not dispatch")
}

func TestInitializeWithoutFragmentUsesRoot(t *testing.T) {
	a, doc := newTestApp(t)
	hit := false
	a.AddRoute("/", func() { hit = true })
	require.NoError(t, a.SetRenderFunction(counter(a)))

	require.NoError(t, a.Initialize())
	assert.True(t, hit)
	assert.Equal(t, "#/", doc.Hash())
}

func TestRouteHandlerUpdatesStateAndRenders(t *testing.T) {
	a, doc := newTestApp(t)
	a.AddRoute("/", func() { a.SetState(store.State{"filter": "all"}, true) })
	a.AddRoute("/active", func() { a.SetState(store.State{"filter": "active"}, true) })
	require.NoError(t, a.SetRenderFunction(Single(func(s store.State) *vdom.VNode {
		f, _ := s["filter"].(string)
		return vdom.P(vdom.ID("filter"), f)
	})))

	require.NoError(t, a.Initialize())
	assert.Equal(t, "all", doc.Find("#filter").TextContent())

	doc.Navigate("#/active")
	doc.Flush()
	assert.Equal(t, "active", doc.Find("#filter").TextContent())
}

func TestSilentUpdateDoesNotRender(t *testing.T) {
	a, doc := newTestApp(t)
	a.AddRoute("/", func() {})
	require.NoError(t, a.SetRenderFunction(counter(a)))
	require.NoError(t, a.Initialize())

	renders := 0
	a.OnRender(func(RenderInfo) { renders++ })

	assert.True(t, a.SetState(store.State{"count": 5}, false))
	assert.Equal(t, 0, renders)
	assert.Equal(t, "Count: 0", doc.Find(".value").TextContent())

	assert.True(t, a.SetState(store.State{}, true))
	assert.Equal(t, 1, renders)
	assert.Equal(t, "Count: 5", doc.Find(".value").TextContent())

	assert.False(t, a.SetState(nil, true))
	assert.Equal(t, 1, renders)
}

func TestFeedbackLoopTerminates(t *testing.T) {
	a, _ := newTestApp(t)
	a.AddRoute("/", func() {})

	listenerCalls := 0
	a.Context().Store.Subscribe(func(store.State) { listenerCalls++ })
	var infos []RenderInfo
	a.OnRender(func(info RenderInfo) { infos = append(infos, info) })
	require.NoError(t, a.SetRenderFunction(counter(a)))
	require.NoError(t, a.Initialize())

	a.SetState(store.State{"count": 1}, true)

	assert.Equal(t, 1, listenerCalls, "render writes must be silent")
	require.Len(t, infos, 2)
	assert.Equal(t, uint64(2), infos[1].Generation)
	assert.Equal(t, 3, infos[1].Nodes)
	assert.Equal(t, 1, infos[1].Roots)

	stored, ok := a.GetState()[render.StateKeyVDOM].([]*vdom.VNode)
	require.True(t, ok)
	assert.Len(t, stored, 1)
	assert.Equal(t, a.Root(), a.GetState()[render.StateKeyContainer])
}

func TestRenderRecoversValidationPanic(t *testing.T) {
	a, doc := newTestApp(t)
	a.AddRoute("/", func() {})
	broken := false
	require.NoError(t, a.SetRenderFunction(func(s store.State) ([]*vdom.VNode, error) {
		if broken {
			return []*vdom.VNode{vdom.Div(vdom.El(""))}, nil
		}
		return []*vdom.VNode{vdom.P("ok")}, nil
	}))
	require.NoError(t, a.Initialize())

	var hookErr error
	a.OnError(func(err error) { hookErr = err })
	broken = true
	a.SetState(store.State{"x": 1}, true)

	var verr *vdom.ValidationError
	require.True(t, errors.As(hookErr, &verr), "got %v", hookErr)
	assert.Equal(t, "<p>ok</p>", doc.Find("#app").InnerHTML(), "failed render must not touch the document")
}

func TestRenderRecoversOtherPanics(t *testing.T) {
	a, _ := newTestApp(t)
	a.AddRoute("/", func() {})
	require.NoError(t, a.SetRenderFunction(func(store.State) ([]*vdom.VNode, error) {
		panic("boom")
	}))

	err := a.Initialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRenderPanic))
	assert.Contains(t, err.Error(), "boom")
}

func TestAfterRunsOnceRenderHasCommitted(t *testing.T) {
	a, doc := newTestApp(t)
	a.AddRoute("/", func() {})

	require.NoError(t, a.SetRenderFunction(Single(func(s store.State) *vdom.VNode {
		editing, _ := s["editing"].(bool)
		if !editing {
			return vdom.Label(vdom.ID("title"), vdom.OnDblClick(func() {
				a.SetState(store.State{"editing": true}, true)
				a.After(func() { a.Focus(".edit", dom.FocusEnd) })
			}), "buy milk")
		}
		return vdom.Input(vdom.Class("edit"), vdom.Value("buy milk"))
	})))
	require.NoError(t, a.Initialize())

	doc.DblClick(doc.Find("#title"))
	edit := doc.Find(".edit")
	require.NotNil(t, edit)
	assert.False(t, edit.Focused(), "focus waits for the deferred continuation")

	doc.Flush()
	assert.True(t, edit.Focused())
	start, end := edit.SelectionRange()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
	assert.Equal(t, dom.Node(edit), a.FindNode(".edit"))
}

func TestOnErrorDefaultRestored(t *testing.T) {
	a, _ := newTestApp(t)
	called := false
	a.OnError(func(error) { called = true })
	a.OnError(nil)
	a.onError(errors.New(errors.CodeNotInitialized))
	assert.False(t, called)
}
