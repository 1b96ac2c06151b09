// Package metrics holds the Prometheus collectors of the inventory service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// Outcome label values.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeError      = "error"
)

var (
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Asset form submissions by outcome.",
	}, []string{"outcome"})

	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Record store calls by operation and outcome.",
	}, []string{"backend", "op", "outcome"})

	StoreLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Record store call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "op"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_cache_lookups_total",
		Help:      "Record cache lookups by result (hit, miss).",
	}, []string{"result"})

	HTTPRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveStore records one store call.
func ObserveStore(backend, op string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	StoreOperations.WithLabelValues(backend, op, outcome).Inc()
	StoreLatency.WithLabelValues(backend, op).Observe(time.Since(started).Seconds())
}
