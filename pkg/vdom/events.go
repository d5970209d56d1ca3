package vdom

import (
	"strings"

	"github.com/vango-dev/hashui/pkg/dom"
)

// EventPrefix marks attribute keys that bind event listeners.
const EventPrefix = "on"

// EventHandler binds a handler under an "on"-prefixed attribute key.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func() or func(dom.Event)
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: EventPrefix + name, Handler: handler}
}

// On binds a handler for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// IsEventKey reports whether key carries the event prefix.
func IsEventKey(key string) bool {
	return len(key) > len(EventPrefix) && strings.HasPrefix(key, EventPrefix)
}

// EventName strips the prefix and lower-cases the rest:
// "onClick" becomes "click".
func EventName(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EventPrefix))
}

// IsHandler reports whether value is a callable the renderer can bind.
func IsHandler(value any) bool {
	switch value.(type) {
	case func(), func(dom.Event):
		return true
	default:
		return false
	}
}

// Listener adapts a handler value to the listener shape hosts accept.
// It returns nil when value is not a handler.
func Listener(value any) func(dom.Event) {
	switch h := value.(type) {
	case func():
		return func(dom.Event) { h() }
	case func(dom.Event):
		return h
	default:
		return nil
	}
}
