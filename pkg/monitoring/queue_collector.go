package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/syncq/go-syncq/pkg/queue"
)

// QueueStatsProvider yields a point-in-time snapshot of queue counters.
// It is satisfied by *queue.Blocking.
type QueueStatsProvider interface {
	Stats() queue.Stats
}

// QueueCollector exposes a queue's stats as Prometheus metrics.
//
// It implements prometheus.Collector and reads the stats on every scrape,
// so it must be registered with a registry by the caller. Nothing is
// registered globally.
type QueueCollector struct {
	provider QueueStatsProvider

	size            *prometheus.Desc
	capacity        *prometheus.Desc
	enqueuedTotal   *prometheus.Desc
	dequeuedTotal   *prometheus.Desc
	blockedEnqueues *prometheus.Desc
	blockedDequeues *prometheus.Desc
	closed          *prometheus.Desc
}

var _ prometheus.Collector = (*QueueCollector)(nil)

// NewQueueCollector creates a collector for the named queue.
func NewQueueCollector(namespace, name string, provider QueueStatsProvider) *QueueCollector {
	labels := prometheus.Labels{"queue": name}

	return &QueueCollector{
		provider: provider,
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "size"),
			"Number of items currently in the queue",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "capacity"),
			"Maximum number of items the queue holds, 0 when unbounded",
			nil, labels,
		),
		enqueuedTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "enqueued_total"),
			"Total number of items enqueued",
			nil, labels,
		),
		dequeuedTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "dequeued_total"),
			"Total number of items dequeued",
			nil, labels,
		),
		blockedEnqueues: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "blocked_enqueues"),
			"Number of producers currently blocked on a full queue",
			nil, labels,
		),
		blockedDequeues: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "blocked_dequeues"),
			"Number of consumers currently blocked on an empty queue",
			nil, labels,
		),
		closed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "closed"),
			"Whether the queue is closed (1) or open (0)",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.enqueuedTotal
	ch <- c.dequeuedTotal
	ch <- c.blockedEnqueues
	ch <- c.blockedDequeues
	ch <- c.closed
}

// Collect implements prometheus.Collector.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.provider.Stats()

	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(stats.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.enqueuedTotal, prometheus.CounterValue, float64(stats.Enqueued))
	ch <- prometheus.MustNewConstMetric(c.dequeuedTotal, prometheus.CounterValue, float64(stats.Dequeued))
	ch <- prometheus.MustNewConstMetric(c.blockedEnqueues, prometheus.GaugeValue, float64(stats.BlockedEnqueues))
	ch <- prometheus.MustNewConstMetric(c.blockedDequeues, prometheus.GaugeValue, float64(stats.BlockedDequeues))

	closed := 0.0
	if stats.Closed {
		closed = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.closed, prometheus.GaugeValue, closed)
}
