package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vango-dev/hashui/pkg/store"
	"github.com/vango-dev/hashui/pkg/telemetry"
)

func TestNewDefaults(t *testing.T) {
	c := New(nil)
	if c.Store == nil || c.Telemetry == nil || c.Logger == nil || c.Base == nil {
		t.Fatalf("New() left fields unset: %+v", c)
	}
	if _, err := uuid.Parse(c.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", c.ID, err)
	}
	if c.Metrics() != c.Telemetry.Metrics {
		t.Error("Metrics() should return telemetry metrics")
	}
}

func TestContextsAreIndependent(t *testing.T) {
	a, b := New(nil), New(nil)
	a.Store.SetState(store.State{"x": 1}, false)
	if _, ok := b.Store.Get("x"); ok {
		t.Error("stores must not be shared between contexts")
	}
	if a.ID == b.ID {
		t.Error("ids must differ")
	}
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := store.New()
	tel := telemetry.New()

	c := New(nil, WithLogger(logger), WithStore(s), WithTelemetry(tel), WithID("app-1"))
	if c.Store != s || c.Telemetry != tel || c.ID != "app-1" {
		t.Fatal("options not applied")
	}

	c.Component("router").Info("hello")
	out := buf.String()
	if !strings.Contains(out, "app_id=app-1") || !strings.Contains(out, "component=router") {
		t.Errorf("log line missing attributes: %q", out)
	}
}
