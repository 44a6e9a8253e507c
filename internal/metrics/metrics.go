// Package metrics defines Prometheus metrics for phone-resale.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "phone_resale"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Listing metrics.
var (
	// ListingAttemptsTotal counts evaluations by platform and outcome, where
	// outcome is "listed" or a failure reason.
	ListingAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_attempts_total",
		Help:      "Total number of listing attempts by platform and outcome.",
	}, []string{"platform", "outcome"})
)

// Import metrics.
var (
	PhonesImportedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "phones_imported_total",
		Help:      "Total number of phones added through bulk import.",
	})

	ImportFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_failures_total",
		Help:      "Total number of rejected bulk imports.",
	})
)

// Inventory metrics, refreshed by the scheduler.
var (
	InventoryPhones = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_phones",
		Help:      "Number of phone records in inventory by condition.",
	}, []string{"condition"})

	InventoryUnits = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_units",
		Help:      "Total stock units across all phone records.",
	})

	ListablePhones = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "listable_phones",
		Help:      "Number of phones that would currently list successfully, by platform.",
	}, []string{"platform"})

	InventoryRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "inventory_refresh_duration_seconds",
		Help:      "Duration of inventory metric refreshes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// RateLimitedTotal counts write requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "rate_limited_total",
	Help:      "Total number of write requests rejected with 429, by method.",
}, []string{"method"})
