package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()

	pb := &dto.Metric{}
	if err := g.Write(pb); err != nil {
		t.Fatalf("failed to read gauge: %v", err)
	}
	return pb.GetGauge().GetValue()
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	pb := &dto.Metric{}
	if err := c.Write(pb); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return pb.GetCounter().GetValue()
}
