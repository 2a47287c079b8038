package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// Query rate by resolved intent kind. Watch for: fallback-heavy
	// traffic (users not finding the phrasing that works).
	QueriesTotal *prometheus.CounterVec

	// Time to resolve and render one response. Everything is in-memory;
	// p99 above a few milliseconds means an aggregation regression.
	QueryDuration prometheus.Histogram

	// Queries that fell through the whole cascade to a canned suggestion.
	FallbackRepliesTotal prometheus.Counter

	// Size of the record store after load. Zero means the data file was
	// missing or empty and every answer degrades to "no data".
	RecordsLoaded prometheus.Gauge
)

func init() {
	registry = prometheus.NewRegistry()

	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_queries_total",
		Help: "Queries answered, by resolved intent kind.",
	}, []string{"intent"})

	QueryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "assistant_query_duration_seconds",
		Help:    "Time to resolve and render one query.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	FallbackRepliesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assistant_fallback_replies_total",
		Help: "Queries answered with a canned fallback suggestion.",
	})

	RecordsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "assistant_records_loaded",
		Help: "Air quality readings loaded at startup.",
	})

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		QueriesTotal,
		QueryDuration,
		FallbackRepliesTotal,
		RecordsLoaded,
	)
}

// ObserveQuery records one answered query.
func ObserveQuery(intentKind string, elapsed time.Duration) {
	QueriesTotal.WithLabelValues(intentKind).Inc()
	QueryDuration.Observe(elapsed.Seconds())
	if intentKind == "fallback" {
		FallbackRepliesTotal.Inc()
	}
}

// SetRecordsLoaded publishes the store size after load.
func SetRecordsLoaded(n int) {
	RecordsLoaded.Set(float64(n))
}

// Handler serves the private registry for the diagnostics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
