package dom

// Node is a live document node.
type Node interface {
	// TagName returns the lower-case tag name.
	TagName() string

	SetTextContent(text string)
	TextContent() string

	SetAttribute(name, value string)
	RemoveAttribute(name string)
	GetAttribute(name string) (string, bool)

	// SetChecked sets the live boolean "checked" property.
	SetChecked(checked bool)
	Checked() bool

	// AddEventListener attaches fn for the named event ("click", "input").
	AddEventListener(event string, fn func(Event))

	AppendChild(child Node)

	// ReplaceChildren removes every child of the node.
	ReplaceChildren()

	// QuerySelector returns the first descendant matching selector, or nil.
	QuerySelector(selector string) Node

	// Focusable reports whether Focus would succeed.
	Focusable() bool

	// Focus focuses the node. It returns false when the node cannot take focus.
	Focus() bool

	// Value returns the current value of a form control.
	Value() string

	// SetSelectionRange positions the text caret or selection.
	SetSelectionRange(start, end int)

	// Select selects all text of a form control.
	Select()
}

// Document is the query-root and create-node capability.
type Document interface {
	// QuerySelector searches the whole document.
	QuerySelector(selector string) Node

	// CreateElement creates a detached node.
	CreateElement(tag string) Node
}

// Host is everything the runtime consumes from its environment.
type Host interface {
	Document

	// Hash returns the current fragment including the leading "#",
	// or "" when no fragment is set.
	Hash() string

	// PushHash pushes a history entry for fragment without firing
	// a fragment-change notification.
	PushHash(fragment string)

	// OnHashChange subscribes fn to fragment changes. fn receives the new
	// fragment including "#". The returned func cancels the subscription.
	OnHashChange(fn func(fragment string)) (cancel func())

	// Defer schedules fn to run after the current task has completed.
	Defer(fn func())
}

// Event is delivered to listeners attached through AddEventListener.
type Event struct {
	// Type is the event name without the "on" prefix.
	Type string

	// Target is the node the event was dispatched to.
	Target Node

	// Key is set for keyboard events.
	Key string

	// Value is the target's value at dispatch time for form controls.
	Value string

	// Checked is the target's checked property at dispatch time.
	Checked bool

	// PreventDefault cancels the host's default action when non-nil.
	PreventDefault func()
}

// FocusMode controls caret placement for Focus.
type FocusMode int

const (
	// FocusDefault only focuses the node.
	FocusDefault FocusMode = iota
	// FocusEnd places the caret after the last character.
	FocusEnd
	// FocusSelect selects all text.
	FocusSelect
)

// String returns the mode name.
func (m FocusMode) String() string {
	switch m {
	case FocusDefault:
		return "default"
	case FocusEnd:
		return "end"
	case FocusSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParseFocusMode maps "default", "end" and "select" to a FocusMode.
// Unknown names fall back to FocusDefault.
func ParseFocusMode(s string) FocusMode {
	switch s {
	case "end":
		return FocusEnd
	case "select":
		return FocusSelect
	default:
		return FocusDefault
	}
}

// ApplyFocus focuses n and positions the caret according to mode.
func ApplyFocus(n Node, mode FocusMode) bool {
	if n == nil || !n.Focusable() {
		return false
	}
	if !n.Focus() {
		return false
	}
	switch mode {
	case FocusEnd:
		l := len([]rune(n.Value()))
		n.SetSelectionRange(l, l)
	case FocusSelect:
		n.Select()
	}
	return true
}
