package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistersAgainstInjectedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RequestsTotal.WithLabelValues("realtime", "success").Inc()
	m.SessionInvalidated.Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var found bool
	for _, f := range families {
		if f.GetName() == "vehiclecore_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("vehiclecore_requests_total not registered")
	}
}

func TestNewWithNilRegistererDoesNotPanic(t *testing.T) {
	m := New(nil)
	m.CommandOutcomes.WithLabelValues("1", "success").Inc()

	var metric dto.Metric
	c, err := m.CommandOutcomes.GetMetricWithLabelValues("1", "success")
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	if err := c.Write(&metric); err != nil {
		t.Fatalf("write: %v", err)
	}
	if metric.GetCounter().GetValue() != 1 {
		t.Fatalf("expected counter value 1, got %v", metric.GetCounter().GetValue())
	}
}
