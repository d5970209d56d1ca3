package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/vango-dev/hashui/internal/errors"
)

const (
	// DefaultRootSelector is the selector of the root container.
	DefaultRootSelector = "#app"

	// DefaultRoute is the route dispatched when the fragment is empty.
	DefaultRoute = "/"

	// DefaultInspectorAddr is the inspector listen address.
	DefaultInspectorAddr = "127.0.0.1:7331"

	// DefaultNamespace is the metrics namespace and tracer name.
	DefaultNamespace = "hashui"
)

// Config is the complete project configuration.
type Config struct {
	// Name is the application name shown by the inspector.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// RootSelector locates the root container.
	RootSelector string `json:"rootSelector,omitempty" yaml:"rootSelector,omitempty"`

	// DefaultRoute is the initial fragment when the document has none.
	DefaultRoute string `json:"defaultRoute,omitempty" yaml:"defaultRoute,omitempty"`

	// Log configures structured logging.
	Log LogConfig `json:"log" yaml:"log"`

	// Inspector configures the development inspector server.
	Inspector InspectorConfig `json:"inspector" yaml:"inspector"`

	// Metrics configures prometheus collectors.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Tracing configures otel spans.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// InspectorConfig contains inspector server settings.
type InspectorConfig struct {
	// Enabled starts the inspector with the run command.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Addr is the listen address.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains tracing settings.
type TracingConfig struct {
	// TracerName is the instrumentation name of spans.
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "hashui"
	}
	if c.RootSelector == "" {
		c.RootSelector = DefaultRootSelector
	}
	if c.DefaultRoute == "" {
		c.DefaultRoute = DefaultRoute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Inspector.Addr == "" {
		c.Inspector.Addr = DefaultInspectorAddr
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := cascadia.Parse(c.RootSelector); err != nil {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("rootSelector %q is not a valid selector", c.RootSelector).
			Wrap(err)
	}
	if !strings.HasPrefix(c.DefaultRoute, "/") {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("defaultRoute %q must start with /", c.DefaultRoute)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("log.format %q must be text or json", c.Log.Format)
	}
	if !validName(c.Metrics.Namespace) {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("metrics.namespace %q may only contain letters, digits and underscores", c.Metrics.Namespace)
	}
	return nil
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// SlogLevel returns the configured slog level, or info when it is invalid.
func (l LogConfig) SlogLevel() slog.Level {
	level, _ := parseLevel(l.Level)
	return level
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}
