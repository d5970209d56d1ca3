// Package core holds the runtime context shared by the renderer, the router
// and the application. One Context is created per application and threaded
// by reference into each component; nothing in hashui is a process global.
package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/telemetry"
)

// Context is the explicit runtime context.
type Context struct {
	// ID identifies the application instance in logs and the inspector.
	ID string

	// Host is the live document environment.
	Host dom.Host

	// Store is the application's reactive store.
	Store *store.Store

	// Logger is the base structured logger.
	Logger *slog.Logger

	// Telemetry records metrics and spans.
	Telemetry *telemetry.Telemetry

	// Base is the parent context for spans.
	Base context.Context
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the base logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithTelemetry sets the telemetry bundle.
func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(c *Context) {
		if t != nil {
			c.Telemetry = t
		}
	}
}

// WithStore sets a pre-built store.
func WithStore(s *store.Store) Option {
	return func(c *Context) {
		if s != nil {
			c.Store = s
		}
	}
}

// WithID sets the instance id.
func WithID(id string) Option {
	return func(c *Context) {
		if id != "" {
			c.ID = id
		}
	}
}

// WithBase sets the parent context for spans.
func WithBase(ctx context.Context) Option {
	return func(c *Context) {
		if ctx != nil {
			c.Base = ctx
		}
	}
}

// New creates a Context bound to host.
func New(host dom.Host, opts ...Option) *Context {
	c := &Context{
		Host:   host,
		Logger: slog.Default(),
		Base:   context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ID == "" {
		c.ID = newID()
	}
	c.Logger = c.Logger.With("app_id", c.ID)
	if c.Telemetry == nil {
		c.Telemetry = telemetry.New()
	}
	if c.Store == nil {
		metrics := c.Telemetry.Metrics
		c.Store = store.New(
			store.WithLogger(c.Component("store")),
			store.WithObserver(metrics.RecordStateUpdate),
		)
	}
	return c
}

// Component returns the logger for a named component.
func (c *Context) Component(name string) *slog.Logger {
	return c.Logger.With("component", name)
}

// Metrics returns the metrics of the context's telemetry.
func (c *Context) Metrics() *telemetry.Metrics {
	if c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Metrics
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
