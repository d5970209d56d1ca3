package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the instrumentation name used for spans.
const DefaultTracerName = "hashui"

// Telemetry bundles metrics and tracing for one runtime context.
type Telemetry struct {
	Metrics *Metrics
	tracer  trace.Tracer
}

// Option configures Telemetry.
type Option func(*Telemetry)

// WithTracer sets the tracer used for spans.
func WithTracer(t trace.Tracer) Option {
	return func(tel *Telemetry) {
		if t != nil {
			tel.tracer = t
		}
	}
}

// WithMetrics sets the metrics instance.
func WithMetrics(m *Metrics) Option {
	return func(tel *Telemetry) {
		tel.Metrics = m
	}
}

// New creates Telemetry with fresh metrics and the global tracer.
func New(opts ...Option) *Telemetry {
	t := &Telemetry{}
	for _, opt := range opts {
		opt(t)
	}
	if t.Metrics == nil {
		t.Metrics = NewMetrics()
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(DefaultTracerName)
	}
	return t
}

// Start opens a span named name.
func (t *Telemetry) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if t == nil || t.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// End closes span, recording err when it is non-nil.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
