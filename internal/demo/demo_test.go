package demo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
	"github.com/vango-dev/hashui/pkg/vtest"
)

func newApp(t *testing.T) (*app.App, *memdom.Document) {
	t.Helper()
	doc := memdom.MustParse(`<div id="app"></div>`)
	a := app.New("#app", app.WithHost(doc), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return a, doc
}

func TestCounter(t *testing.T) {
	h := vtest.Mount(t, Counter)

	h.ExpectText(".count", "Count: 0")
	if !h.Find(".reset").HasAttribute("disabled") {
		t.Error("reset should be disabled at zero")
	}

	h.Click(".inc")
	h.Click(".inc")
	h.ExpectText(".count", "Count: 2")
	assert.False(t, h.Find(".reset").HasAttribute("disabled"))

	h.Click(".reset")
	h.Click(".dec")
	h.ExpectText(".count", "Count: -1")
	h.ExpectCount(".counter", 1)
}

type todoFixture struct {
	app  *app.App
	doc  *memdom.Document
	list *TodoList
}

func newTodo(t *testing.T, titles ...string) *todoFixture {
	t.Helper()
	a, doc := newApp(t)
	list, err := NewTodoList(a)
	require.NoError(t, err)
	require.NoError(t, a.Initialize())

	f := &todoFixture{app: a, doc: doc, list: list}
	for _, title := range titles {
		f.add(title)
	}
	return f
}

func (f *todoFixture) add(title string) {
	input := f.doc.Find(".new-todo")
	f.doc.Type(input, title)
	f.doc.Press(input, "Enter")
}

func (f *todoFixture) labels() []string {
	var out []string
	for _, el := range f.doc.QuerySelectorAll(".todo-list li label") {
		out = append(out, el.TextContent())
	}
	return out
}

func TestTodoEmptyHidesMainAndFooter(t *testing.T) {
	f := newTodo(t)

	assert.NotNil(t, f.doc.Find(".new-todo"))
	assert.Nil(t, f.doc.Find(".main"))
	assert.Nil(t, f.doc.Find(".footer"))
	assert.Equal(t, FilterAll, f.list.Filter())
}

func TestTodoAdd(t *testing.T) {
	f := newTodo(t, "buy milk", "  ", "walk dog")

	assert.Equal(t, []string{"buy milk", "walk dog"}, f.labels())
	assert.Equal(t, "2 items left", f.doc.Find(".todo-count").TextContent())
	assert.Nil(t, f.doc.Find(".clear-completed"))
	assert.False(t, f.list.Add("   "))
}

func TestTodoAddRefocusesNewField(t *testing.T) {
	f := newTodo(t)
	input := f.doc.Find(".new-todo")
	require.True(t, input.Focus())

	f.add("milk")
	fresh := f.doc.Find(".new-todo")
	assert.NotSame(t, input, fresh)
	assert.False(t, fresh.Focused(), "focus waits for the deferred continuation")

	f.doc.Flush()
	assert.True(t, fresh.Focused())
	assert.Equal(t, "", fresh.Value())
}

func TestTodoToggle(t *testing.T) {
	f := newTodo(t, "buy milk", "walk dog")

	f.doc.Click(f.doc.Find(".todo-list .toggle"))

	first := f.doc.Find(".todo-list li")
	class, _ := first.GetAttribute("class")
	assert.Equal(t, "completed", class)
	assert.True(t, f.doc.Find(".todo-list .toggle").Checked())
	assert.Equal(t, "1 item left", f.doc.Find(".todo-count").TextContent())
	assert.NotNil(t, f.doc.Find(".clear-completed"))
	assert.False(t, f.doc.Find("#toggle-all").Checked())
}

func TestTodoToggleAll(t *testing.T) {
	f := newTodo(t, "a", "b")

	f.doc.Click(f.doc.Find("#toggle-all"))
	assert.Len(t, f.doc.QuerySelectorAll(".todo-list li.completed"), 2)
	assert.True(t, f.doc.Find("#toggle-all").Checked())
	assert.Equal(t, "0 items left", f.doc.Find(".todo-count").TextContent())

	f.doc.Click(f.doc.Find("#toggle-all"))
	assert.Empty(t, f.doc.QuerySelectorAll(".todo-list li.completed"))
}

func TestTodoFilters(t *testing.T) {
	f := newTodo(t, "a", "b", "c")
	f.doc.Click(f.doc.Find(".todo-list .toggle"))

	f.doc.Navigate("#/active")
	f.doc.Flush()
	assert.Equal(t, FilterActive, f.list.Filter())
	assert.Equal(t, []string{"b", "c"}, f.labels())
	href, _ := f.doc.Find(".filters a.selected").GetAttribute("href")
	assert.Equal(t, "#/active", href)

	f.doc.Navigate("#/completed")
	f.doc.Flush()
	assert.Equal(t, []string{"a"}, f.labels())

	f.doc.Navigate("#/")
	f.doc.Flush()
	assert.Equal(t, []string{"a", "b", "c"}, f.labels())
	assert.Equal(t, "2 items left", f.doc.Find(".todo-count").TextContent(), "count ignores the filter")
}

func TestTodoRemoveAndClearCompleted(t *testing.T) {
	f := newTodo(t, "a", "b", "c")

	f.doc.Click(f.doc.Find(".todo-list .destroy"))
	assert.Equal(t, []string{"b", "c"}, f.labels())

	f.doc.Click(f.doc.Find(".todo-list .toggle"))
	f.doc.Click(f.doc.Find(".clear-completed"))
	assert.Equal(t, []string{"c"}, f.labels())
	assert.Len(t, f.list.Todos(), 1)
}

func TestTodoEditFocusesField(t *testing.T) {
	f := newTodo(t, "buy milk")

	f.doc.DblClick(f.doc.Find(".todo-list label"))
	edit := f.doc.Find(".todo-list li.editing .edit")
	require.NotNil(t, edit)
	assert.Equal(t, "buy milk", edit.Value())
	assert.False(t, edit.Focused(), "focus happens after the render commits")

	f.doc.Flush()
	assert.True(t, edit.Focused())
	start, end := edit.SelectionRange()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
}

func TestTodoEditSave(t *testing.T) {
	f := newTodo(t, "buy milk")
	f.doc.DblClick(f.doc.Find(".todo-list label"))
	f.doc.Flush()

	edit := f.doc.Find(".edit")
	f.doc.Type(edit, "  buy bread ")
	f.doc.Press(edit, "Enter")

	assert.Nil(t, f.doc.Find(".edit"))
	assert.Equal(t, []string{"buy bread"}, f.labels())

	f.doc.Blur(edit)
	assert.Equal(t, []string{"buy bread"}, f.labels(), "blur after save is ignored")
}

func TestTodoEditCancel(t *testing.T) {
	f := newTodo(t, "buy milk")
	f.doc.DblClick(f.doc.Find(".todo-list label"))

	edit := f.doc.Find(".edit")
	f.doc.Type(edit, "changed")
	f.doc.Press(edit, "Escape")

	assert.Nil(t, f.doc.Find(".edit"))
	assert.Equal(t, []string{"buy milk"}, f.labels())
}

func TestTodoEditBlurSaves(t *testing.T) {
	f := newTodo(t, "buy milk")
	f.doc.DblClick(f.doc.Find(".todo-list label"))

	edit := f.doc.Find(".edit")
	f.doc.Type(edit, "buy oat milk")
	f.doc.Blur(edit)

	assert.Equal(t, []string{"buy oat milk"}, f.labels())
}

func TestTodoEditEmptyRemoves(t *testing.T) {
	f := newTodo(t, "a", "b")
	f.doc.DblClick(f.doc.Find(".todo-list label"))

	edit := f.doc.Find(".edit")
	f.doc.Type(edit, "   ")
	f.doc.Press(edit, "Enter")

	assert.Equal(t, []string{"b"}, f.labels())
}
