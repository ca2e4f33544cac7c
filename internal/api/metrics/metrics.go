// Package metrics defines and registers all custom Prometheus metrics for the
// gallery back-office. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gallery"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordsCreatedTotal counts successfully created records.
// Label:
//   - entity: "role", "user", "category", "image"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// RecordsDeletedTotal counts successfully deleted records.
// Label:
//   - entity: "role", "user", "category", "image"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)

// UploadsStoredTotal counts image files written by the asset store.
var UploadsStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded image files stored.",
	},
)

// UploadsRemovedTotal counts image files disposed of after their record was
// replaced or deleted.
var UploadsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_removed_total",
		Help:      "Total number of stored image files removed.",
	},
)

// AssetCleanupFailuresTotal counts best-effort file removals that failed. The
// record operation still succeeds; this is the only place those failures are
// visible besides the log.
var AssetCleanupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_cleanup_failures_total",
		Help:      "Total number of failed best-effort asset file removals.",
	},
)

// RequestDuration measures HTTP request latency.
// Labels:
//   - method: HTTP method
//   - path: registered route path (not the raw URL)
//   - status: numeric HTTP status
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path", "status"},
)
