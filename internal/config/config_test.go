package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/hashui/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.RootSelector != DefaultRootSelector {
		t.Errorf("RootSelector = %q, want %q", cfg.RootSelector, DefaultRootSelector)
	}
	if cfg.DefaultRoute != "/" {
		t.Errorf("DefaultRoute = %q", cfg.DefaultRoute)
	}
	if cfg.Inspector.Addr != DefaultInspectorAddr || cfg.Inspector.Enabled {
		t.Errorf("Inspector = %+v", cfg.Inspector)
	}
	if cfg.Metrics.Namespace != "hashui" || cfg.Tracing.TracerName != "hashui" {
		t.Errorf("Metrics/Tracing = %+v %+v", cfg.Metrics, cfg.Tracing)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hashui.yaml"), `
name: todo
rootSelector: "#todoapp"
log:
  level: debug
  format: json
inspector:
  enabled: true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "todo" || cfg.RootSelector != "#todoapp" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.Inspector.Enabled || cfg.Inspector.Addr != DefaultInspectorAddr {
		t.Errorf("Inspector = %+v", cfg.Inspector)
	}
	if cfg.Path() != filepath.Join(dir, "hashui.yaml") {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hashui.json"), `{"name":"counter","defaultRoute":"/active","metrics":{"namespace":"demo"}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "counter" || cfg.DefaultRoute != "/active" || cfg.Metrics.Namespace != "demo" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hashui.json"), `{"name":"from-json"}`)
	writeFile(t, filepath.Join(dir, "hashui.yml"), "name: from-yml\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "from-yml" {
		t.Errorf("Name = %q, want from-yml", cfg.Name)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != "" || cfg.RootSelector != DefaultRootSelector {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hashui.yaml"), "name: file\n")
	t.Setenv("HASHUI_NAME", "env")
	t.Setenv("HASHUI_ROOT_SELECTOR", ".root")
	t.Setenv("HASHUI_INSPECTOR_ENABLED", "true")
	t.Setenv("HASHUI_INSPECTOR_ADDR", ":9000")
	t.Setenv("HASHUI_TRACING_TRACER_NAME", "todo")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "env" || cfg.RootSelector != ".root" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Inspector.Enabled || cfg.Inspector.Addr != ":9000" {
		t.Errorf("Inspector = %+v", cfg.Inspector)
	}
	if cfg.Tracing.TracerName != "todo" {
		t.Errorf("TracerName = %q", cfg.Tracing.TracerName)
	}
}

func TestEnvInvalidBool(t *testing.T) {
	t.Setenv("HASHUI_INSPECTOR_ENABLED", "maybe")

	_, err := Load(t.TempDir())
	if !errors.Is(err, errors.New(errors.CodeInvalidConfig)) {
		t.Errorf("error = %v, want invalid config", err)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"), FormatYAML)
	if !errors.Is(err, errors.New(errors.CodeConfigParse)) {
		t.Errorf("yaml error = %v", err)
	}
	_, err = Parse([]byte("{"), FormatJSON)
	if !errors.Is(err, errors.New(errors.CodeConfigParse)) {
		t.Errorf("json error = %v", err)
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.New(errors.CodeConfigParse)) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad selector", func(c *Config) { c.RootSelector = "#app[" }, "rootSelector"},
		{"relative route", func(c *Config) { c.DefaultRoute = "active" }, "defaultRoute"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad namespace", func(c *Config) { c.Metrics.Namespace = "my-app" }, "metrics.namespace"},
		{"leading digit", func(c *Config) { c.Metrics.Namespace = "1app" }, "metrics.namespace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.New(errors.CodeInvalidConfig)) {
				t.Fatalf("error = %v, want invalid config", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name %s", err, tt.field)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	for _, name := range []string{"hashui.yaml", "hashui.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := New()
			cfg.Name = "saved"
			cfg.Inspector.Enabled = true
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if loaded.Name != "saved" || !loaded.Inspector.Enabled {
				t.Errorf("loaded = %+v", loaded)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("json output = %q", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
