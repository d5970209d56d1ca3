package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the runtime metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hashui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry receives the metrics. Default: a fresh prometheus.Registry.
	Registry *prometheus.Registry
}

// MetricsOption configures the runtime metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		if namespace != "" {
			c.Namespace = namespace
		}
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hashui",
		Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}
}

// Metrics holds the runtime collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	rendersTotal      prometheus.Counter
	renderDuration    prometheus.Histogram
	renderErrors      *prometheus.CounterVec
	nodesMaterialized prometheus.Counter
	generation        prometheus.Gauge
	stateUpdates      *prometheus.CounterVec
	routeDispatches   *prometheus.CounterVec
	historyPushes     prometheus.Counter
}

// NewMetrics creates and registers the runtime collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(config.Registry)
	counterOpts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}
	}

	return &Metrics{
		registry: config.Registry,

		rendersTotal: factory.NewCounter(counterOpts(
			"renders_total", "Total number of committed full renders")),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Duration of full-replace renders in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderErrors: factory.NewCounterVec(counterOpts(
			"render_errors_total", "Renders aborted by an error, by stage"), []string{"stage"}),

		nodesMaterialized: factory.NewCounter(counterOpts(
			"nodes_materialized_total", "Live nodes created by the renderer")),

		generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_generation",
			Help:        "Current render generation",
			ConstLabels: config.ConstLabels,
		}),

		stateUpdates: factory.NewCounterVec(counterOpts(
			"state_updates_total", "State updates by notification mode and result"), []string{"mode", "result"}),

		routeDispatches: factory.NewCounterVec(counterOpts(
			"route_dispatches_total", "Route dispatches by result"), []string{"result"}),

		historyPushes: factory.NewCounter(counterOpts(
			"history_pushes_total", "History entries pushed by the router")),
	}
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRender records a committed render.
func (m *Metrics) RecordRender(generation uint64, nodes int, d time.Duration) {
	if m == nil {
		return
	}
	m.rendersTotal.Inc()
	m.renderDuration.Observe(d.Seconds())
	m.nodesMaterialized.Add(float64(nodes))
	m.generation.Set(float64(generation))
}

// RecordRenderError records an aborted render. stage is "validate",
// "materialize" or "render-func".
func (m *Metrics) RecordRenderError(stage string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(stage).Inc()
}

// RecordStateUpdate records a SetState call.
func (m *Metrics) RecordStateUpdate(notify, accepted bool) {
	if m == nil {
		return
	}
	mode := "silent"
	if notify {
		mode = "notify"
	}
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.stateUpdates.WithLabelValues(mode, result).Inc()
}

// Route dispatch results.
const (
	RouteMatched   = "matched"
	RouteFallback  = "fallback"
	RouteUnhandled = "unhandled"
)

// RecordRoute records a route dispatch and whether history was pushed.
func (m *Metrics) RecordRoute(result string, pushed bool) {
	if m == nil {
		return
	}
	m.routeDispatches.WithLabelValues(result).Inc()
	if pushed {
		m.historyPushes.Inc()
	}
}
