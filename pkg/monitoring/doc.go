/*
Package monitoring exposes queue and pump stats as Prometheus metrics.

Collectors read the stats on every scrape and register nothing globally,
so the caller decides which registry they live in:

	reg := prometheus.NewRegistry()
	reg.MustRegister(monitoring.NewQueueCollector("syncq", "main", q))
	reg.MustRegister(monitoring.NewPumpCollector("syncq", p.ID(), p))

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
*/
package monitoring
