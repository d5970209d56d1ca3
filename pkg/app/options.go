package app

import (
	"log/slog"

	"github.com/vango-dev/hashui/pkg/core"
	"github.com/vango-dev/hashui/pkg/dom"
	"github.com/vango-dev/hashui/pkg/telemetry"
)

type options struct {
	host      dom.Host
	logger    *slog.Logger
	ctx       *core.Context
	telemetry *telemetry.Telemetry
}

// Option configures an App.
type Option func(*options)

// WithHost sets the document environment the app renders into.
func WithHost(h dom.Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithLogger sets the base logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext uses an existing runtime context. Its host, logger and
// telemetry take precedence over the other options.
func WithContext(c *core.Context) Option {
	return func(o *options) {
		o.ctx = c
	}
}

// WithTelemetry sets the metrics and tracing bundle.
func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(o *options) {
		o.telemetry = t
	}
}
