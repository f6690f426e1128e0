// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts handled requests by method, route pattern and status
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tripsplit",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests handled, by method, route and status code.",
}, []string{"method", "route", "status"})

// HTTPDuration observes request latency by method and route pattern
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "tripsplit",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// SummariesComputed counts trip summaries by weight mode
var SummariesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tripsplit",
	Subsystem: "settlement",
	Name:      "summaries_total",
	Help:      "Trip summaries computed, by weight mode.",
}, []string{"mode"})

// TransfersPerSummary observes how many transfers a summary needed
var TransfersPerSummary = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "tripsplit",
	Subsystem: "settlement",
	Name:      "transfers_per_summary",
	Help:      "Number of settlement transfers produced per summary.",
	Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
})
