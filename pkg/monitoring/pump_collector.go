package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/syncq/go-syncq/pkg/pump"
)

// PumpStatsProvider yields a point-in-time snapshot of pump counters.
// It is satisfied by *pump.Pump.
type PumpStatsProvider interface {
	Stats() pump.Stats
}

// PumpCollector exposes a pump's stats as Prometheus metrics.
type PumpCollector struct {
	provider PumpStatsProvider

	batchesTotal    *prometheus.Desc
	itemsTotal      *prometheus.Desc
	sinkErrorsTotal *prometheus.Desc
}

var _ prometheus.Collector = (*PumpCollector)(nil)

// NewPumpCollector creates a collector for the named pump.
func NewPumpCollector(namespace, name string, provider PumpStatsProvider) *PumpCollector {
	labels := prometheus.Labels{"pump": name}

	return &PumpCollector{
		provider: provider,
		batchesTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pump", "batches_total"),
			"Total number of batches delivered to the sink",
			nil, labels,
		),
		itemsTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pump", "items_total"),
			"Total number of items delivered to the sink",
			nil, labels,
		),
		sinkErrorsTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pump", "sink_errors_total"),
			"Total number of failed sink deliveries",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *PumpCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.batchesTotal
	ch <- c.itemsTotal
	ch <- c.sinkErrorsTotal
}

// Collect implements prometheus.Collector.
func (c *PumpCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.provider.Stats()

	ch <- prometheus.MustNewConstMetric(c.batchesTotal, prometheus.CounterValue, float64(stats.Batches))
	ch <- prometheus.MustNewConstMetric(c.itemsTotal, prometheus.CounterValue, float64(stats.Items))
	ch <- prometheus.MustNewConstMetric(c.sinkErrorsTotal, prometheus.CounterValue, float64(stats.SinkErrors))
}
