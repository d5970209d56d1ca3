package demo

import (
	"strings"

	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// Todo is one to-do item.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filters, keyed by route.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
)

// State keys.
const (
	KeyTodos   = "todos"
	KeyFilter  = "filter"
	KeyEditing = "editing"
)

type filterRoute struct {
	path, filter, label string
}

var routes = []filterRoute{
	{"/", FilterAll, "All"},
	{"/active", FilterActive, "Active"},
	{"/completed", FilterCompleted, "Completed"},
}

// TodoList is the to-do application.
type TodoList struct {
	app    *app.App
	nextID int
}

// NewTodoList installs the to-do application on a.
func NewTodoList(a *app.App) (*TodoList, error) {
	t := &TodoList{app: a, nextID: 1}
	a.SetState(store.State{
		KeyTodos:   []Todo{},
		KeyFilter:  FilterAll,
		KeyEditing: 0,
	}, false)

	for _, r := range routes {
		filter := r.filter
		a.AddRoute(r.path, func() {
			a.SetState(store.State{KeyFilter: filter}, true)
		})
	}
	if err := a.SetRenderFunction(t.render); err != nil {
		return nil, err
	}
	return t, nil
}

// Todos returns the current items.
func (t *TodoList) Todos() []Todo {
	todos, _ := t.app.GetState()[KeyTodos].([]Todo)
	return todos
}

// Filter returns the active filter.
func (t *TodoList) Filter() string {
	f, _ := t.app.GetState()[KeyFilter].(string)
	return f
}

func (t *TodoList) editing() int {
	id, _ := t.app.GetState()[KeyEditing].(int)
	return id
}

// Add appends an item and returns focus to the new-item field once the
// list has been rebuilt. Blank titles are ignored.
func (t *TodoList) Add(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	todos := append(t.copyTodos(), Todo{ID: t.nextID, Title: title})
	t.nextID++
	if !t.app.SetState(store.State{KeyTodos: todos}, true) {
		return false
	}
	t.app.After(func() {
		t.app.Focus(".new-todo", dom.FocusDefault)
	})
	return true
}

// Toggle flips the completion of one item.
func (t *TodoList) Toggle(id int) {
	t.update(id, func(td *Todo) { td.Completed = !td.Completed })
}

// ToggleAll completes every item, or reopens all when all are complete.
func (t *TodoList) ToggleAll() {
	todos := t.copyTodos()
	done := !allCompleted(todos)
	for i := range todos {
		todos[i].Completed = done
	}
	t.app.SetState(store.State{KeyTodos: todos}, true)
}

// Remove deletes one item.
func (t *TodoList) Remove(id int) {
	kept := make([]Todo, 0, len(t.Todos()))
	for _, td := range t.Todos() {
		if td.ID != id {
			kept = append(kept, td)
		}
	}
	t.app.SetState(store.State{KeyTodos: kept}, true)
}

// ClearCompleted deletes every completed item.
func (t *TodoList) ClearCompleted() {
	kept := make([]Todo, 0, len(t.Todos()))
	for _, td := range t.Todos() {
		if !td.Completed {
			kept = append(kept, td)
		}
	}
	t.app.SetState(store.State{KeyTodos: kept}, true)
}

// Edit switches an item to its edit field and focuses it once rendered.
func (t *TodoList) Edit(id int) {
	t.app.SetState(store.State{KeyEditing: id}, true)
	t.app.After(func() {
		t.app.Focus(".todo-list .edit", dom.FocusEnd)
	})
}

// Save ends editing of id with title. An empty title removes the item.
func (t *TodoList) Save(id int, title string) {
	if t.editing() != id {
		return
	}
	t.app.SetState(store.State{KeyEditing: 0}, false)
	title = strings.TrimSpace(title)
	if title == "" {
		t.Remove(id)
		return
	}
	t.update(id, func(td *Todo) { td.Title = title })
}

// Cancel ends editing without saving.
func (t *TodoList) Cancel() {
	t.app.SetState(store.State{KeyEditing: 0}, true)
}

func (t *TodoList) update(id int, fn func(*Todo)) {
	todos := t.copyTodos()
	for i := range todos {
		if todos[i].ID == id {
			fn(&todos[i])
		}
	}
	t.app.SetState(store.State{KeyTodos: todos}, true)
}

func (t *TodoList) copyTodos() []Todo {
	src := t.Todos()
	out := make([]Todo, len(src))
	copy(out, src)
	return out
}

func allCompleted(todos []Todo) bool {
	for _, td := range todos {
		if !td.Completed {
			return false
		}
	}
	return len(todos) > 0
}

func visible(todos []Todo, filter string) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, td := range todos {
		switch {
		case filter == FilterActive && td.Completed:
		case filter == FilterCompleted && !td.Completed:
		default:
			out = append(out, td)
		}
	}
	return out
}

func (t *TodoList) render(s store.State) ([]*vdom.VNode, error) {
	todos, _ := s[KeyTodos].([]Todo)
	filter, _ := s[KeyFilter].(string)
	editing, _ := s[KeyEditing].(int)

	return []*vdom.VNode{
		vdom.Section(vdom.Class("todoapp"),
			t.header(),
			vdom.When(len(todos) > 0, func() *vdom.VNode {
				return t.main(todos, filter, editing)
			}),
			vdom.When(len(todos) > 0, func() *vdom.VNode {
				return t.footer(todos, filter)
			}),
		),
	}, nil
}

func (t *TodoList) header() *vdom.VNode {
	return vdom.Header(vdom.Class("header"),
		vdom.H1("todos"),
		vdom.Input(
			vdom.Class("new-todo"),
			vdom.Placeholder("What needs to be done?"),
			vdom.Autofocus(),
			vdom.OnKeyDown(func(e dom.Event) {
				if e.Key == "Enter" {
					t.Add(e.Value)
				}
			}),
		),
	)
}

func (t *TodoList) main(todos []Todo, filter string, editing int) *vdom.VNode {
	return vdom.Section(vdom.Class("main"),
		vdom.Input(
			vdom.ID("toggle-all"),
			vdom.Class("toggle-all"),
			vdom.Type("checkbox"),
			vdom.Checked(allCompleted(todos)),
			vdom.OnChange(t.ToggleAll),
		),
		vdom.Label(vdom.For("toggle-all"), "Mark all as complete"),
		vdom.Ul(vdom.Class("todo-list"),
			vdom.Map(visible(todos, filter), func(_ int, td Todo) *vdom.VNode {
				return t.item(td, td.ID == editing)
			}),
		),
	)
}

func (t *TodoList) item(td Todo, editing bool) *vdom.VNode {
	id := td.ID
	cls := vdom.Class(vdom.ClassIf(td.Completed, "completed"), vdom.ClassIf(editing, "editing"))

	if editing {
		return vdom.Li(cls, vdom.Data("id", vdom.Textf("%d", id)),
			vdom.Input(
				vdom.Class("edit"),
				vdom.Value(td.Title),
				vdom.OnKeyDown(func(e dom.Event) {
					switch e.Key {
					case "Enter":
						t.Save(id, e.Value)
					case "Escape":
						t.Cancel()
					}
				}),
				vdom.OnBlur(func(e dom.Event) { t.Save(id, e.Value) }),
			),
		)
	}

	return vdom.Li(cls, vdom.Data("id", vdom.Textf("%d", id)),
		vdom.Div(vdom.Class("view"),
			vdom.Input(
				vdom.Class("toggle"),
				vdom.Type("checkbox"),
				vdom.Checked(td.Completed),
				vdom.OnChange(func() { t.Toggle(id) }),
			),
			vdom.Label(vdom.OnDblClick(func() { t.Edit(id) }), td.Title),
			vdom.Button(vdom.Class("destroy"), vdom.AriaLabel("Delete"), vdom.OnClick(func() { t.Remove(id) })),
		),
	)
}

func (t *TodoList) footer(todos []Todo, filter string) *vdom.VNode {
	left, done := 0, 0
	for _, td := range todos {
		if td.Completed {
			done++
		} else {
			left++
		}
	}
	unit := "items"
	if left == 1 {
		unit = "item"
	}

	return vdom.Footer(vdom.Class("footer"),
		vdom.Span(vdom.Class("todo-count"), vdom.Textf("%d %s left", left, unit)),
		vdom.Ul(vdom.Class("filters"),
			vdom.Map(routes, func(_ int, r filterRoute) *vdom.VNode {
				return vdom.Li(
					vdom.A(vdom.Href("#"+r.path), vdom.Class(vdom.ClassIf(filter == r.filter, "selected")), r.label),
				)
			}),
		),
		vdom.If(done > 0, vdom.Button(vdom.Class("clear-completed"), vdom.OnClick(t.ClearCompleted), "Clear completed")),
	)
}
