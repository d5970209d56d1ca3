package telemetry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRender(t *testing.T) {
	m := NewMetrics()
	m.RecordRender(1, 4, 2*time.Millisecond)
	m.RecordRender(2, 3, time.Millisecond)

	if got := testutil.ToFloat64(m.rendersTotal); got != 2 {
		t.Errorf("renders_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.nodesMaterialized); got != 7 {
		t.Errorf("nodes_materialized_total = %v, want 7", got)
	}
	if got := testutil.ToFloat64(m.generation); got != 2 {
		t.Errorf("render_generation = %v, want 2", got)
	}
}

func TestRecordStateUpdateLabels(t *testing.T) {
	m := NewMetrics()
	m.RecordStateUpdate(true, true)
	m.RecordStateUpdate(false, true)
	m.RecordStateUpdate(false, true)
	m.RecordStateUpdate(true, false)

	cases := []struct {
		mode, result string
		want         float64
	}{
		{"notify", "accepted", 1},
		{"silent", "accepted", 2},
		{"notify", "rejected", 1},
	}
	for _, c := range cases {
		got := testutil.ToFloat64(m.stateUpdates.WithLabelValues(c.mode, c.result))
		if got != c.want {
			t.Errorf("state_updates_total{%s,%s} = %v, want %v", c.mode, c.result, got, c.want)
		}
	}
}

func TestRecordRoute(t *testing.T) {
	m := NewMetrics()
	m.RecordRoute(RouteMatched, true)
	m.RecordRoute(RouteFallback, false)
	m.RecordRoute(RouteUnhandled, false)

	if got := testutil.ToFloat64(m.historyPushes); got != 1 {
		t.Errorf("history_pushes_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.routeDispatches.WithLabelValues(RouteFallback)); got != 1 {
		t.Errorf("route_dispatches_total{fallback} = %v, want 1", got)
	}
}

func TestNamespaceAndRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("todo"), WithSubsystem("ui"))
	m.RecordRenderError("validate")

	if m.Registry() != reg {
		t.Fatal("Registry() should return the configured registry")
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, f := range families {
		if !strings.HasPrefix(f.GetName(), "todo_ui_") {
			t.Errorf("metric %q lacks namespace prefix", f.GetName())
		}
		if f.GetName() == "todo_ui_render_errors_total" {
			found = true
		}
	}
	if !found {
		t.Error("render_errors_total not gathered")
	}
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("second NewMetrics panicked: %v", r)
		}
	}()
	NewMetrics()
	NewMetrics()
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordRender(1, 1, time.Millisecond)
	m.RecordRenderError("validate")
	m.RecordStateUpdate(true, true)
	m.RecordRoute(RouteMatched, true)
	if m.Registry() != nil {
		t.Error("nil metrics should have nil registry")
	}
}

func TestSpans(t *testing.T) {
	tel := New()
	if tel.Metrics == nil {
		t.Fatal("New() should create metrics")
	}
	ctx, span := tel.Start(context.Background(), "hashui.render")
	if ctx == nil || span == nil {
		t.Fatal("Start() returned nil")
	}
	End(span, errors.New("boom"))

	_, span = tel.Start(context.TODO(), "hashui.route")
	End(span, nil)
}
