// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the hashui runtime.
//
// A Telemetry value is created once per runtime context. Metrics are
// registered on a private registry by default so that several applications
// can live in one process; pass WithRegistry to expose them elsewhere.
// Tracing goes through the global otel provider unless a tracer is given,
// which makes it a no-op until the host application installs an SDK.
package telemetry
