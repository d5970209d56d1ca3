package store

import (
	"log/slog"
)

// State is the application state mapping.
type State map[string]any

// Listener is notified after every notifying update.
type Listener func(State)

// Observer receives the outcome of every SetState call.
// It is used for metrics and never affects the update.
type Observer func(notify, accepted bool)

// Store holds state and its notification channels.
type Store struct {
	state     State
	listeners []*listenerEntry
	update    Listener
	observer  Observer
	logger    *slog.Logger
}

type listenerEntry struct {
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver sets an update observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		state:  make(State),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns the live state mapping. It is not a copy.
func (s *Store) GetState() State {
	return s.state
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.state[key]
	return v, ok
}

// SetState shallow-merges partial into the state. A nil partial is rejected
// with false and no side effect. When notify is true every listener runs in
// registration order, then the update callback.
func (s *Store) SetState(partial State, notify bool) bool {
	if partial == nil {
		s.logger.Warn("state update rejected", "reason", "partial is nil")
		s.observe(notify, false)
		return false
	}

	for key, value := range partial {
		s.state[key] = value
	}
	s.observe(notify, true)

	if !notify {
		return true
	}

	// Listeners added during notification run from the next update on.
	entries := make([]*listenerEntry, len(s.listeners))
	copy(entries, s.listeners)
	for _, e := range entries {
		if e.fn != nil {
			e.fn(s.state)
		}
	}
	if s.update != nil {
		s.update(s.state)
	}
	return true
}

// Update is SetState with notification.
func (s *Store) Update(partial State) bool {
	return s.SetState(partial, true)
}

// Subscribe adds a listener and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	entry := &listenerEntry{fn: fn}
	s.listeners = append(s.listeners, entry)
	return func() {
		for i, e := range s.listeners {
			if e == entry {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				entry.fn = nil
				return
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (s *Store) Listeners() int {
	return len(s.listeners)
}

// SetUpdateCallback replaces the update callback. Passing nil clears it.
func (s *Store) SetUpdateCallback(fn Listener) {
	s.update = fn
}

func (s *Store) observe(notify, accepted bool) {
	if s.observer != nil {
		s.observer(notify, accepted)
	}
}
