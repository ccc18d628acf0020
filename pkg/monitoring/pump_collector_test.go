package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/syncq/go-syncq/pkg/pump"
)

// stubPumpStats is a PumpStatsProvider with fixed counters.
type stubPumpStats struct {
	stats pump.Stats
}

func (s stubPumpStats) Stats() pump.Stats {
	return s.stats
}

func TestPumpCollector(t *testing.T) {
	provider := stubPumpStats{stats: pump.Stats{
		Batches:    5,
		Items:      320,
		SinkErrors: 2,
	}}

	c := NewPumpCollector("syncq", "pump-1", provider)

	expected := `
# HELP syncq_pump_batches_total Total number of batches delivered to the sink
# TYPE syncq_pump_batches_total counter
syncq_pump_batches_total{pump="pump-1"} 5
# HELP syncq_pump_items_total Total number of items delivered to the sink
# TYPE syncq_pump_items_total counter
syncq_pump_items_total{pump="pump-1"} 320
# HELP syncq_pump_sink_errors_total Total number of failed sink deliveries
# TYPE syncq_pump_sink_errors_total counter
syncq_pump_sink_errors_total{pump="pump-1"} 2
`

	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics:\n%v", err)
	}
}

func TestPumpCollector_Lint(t *testing.T) {
	c := NewPumpCollector("syncq", "pump-1", stubPumpStats{})

	problems, err := testutil.CollectAndLint(c)
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	for _, p := range problems {
		t.Errorf("lint problem on %s: %s", p.Metric, p.Text)
	}
}
