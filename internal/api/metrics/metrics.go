// Package metrics defines and registers all custom Prometheus metrics for the
// rental spaces API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Booking lifecycle metrics ────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings that were successfully created.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingTransitionsTotal counts successful status transitions.
// Label:
//   - to: the status applied by the transition ("confirmed" or "cancelled")
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of successful booking status transitions, by target status.",
	},
	[]string{"to"},
)

// BookingRejectionsTotal counts booking operations rejected before any write.
// Label:
//   - reason: short description of the rejection (e.g. "invalid_state", "validation", "not_found")
var BookingRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_rejections_total",
		Help:      "Total number of rejected booking operations, by reason.",
	},
	[]string{"reason"},
)

// InvoiceAmount observes the amount of each simulated invoice issued on a
// successful payment.
var InvoiceAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "invoice_amount",
		Help:      "Distribution of invoice amounts for confirmed bookings.",
		Buckets:   prometheus.ExponentialBuckets(25, 2, 10), // 25 … ~12800
	},
)

// ── Cache metrics ────────────────────────────────────────────────────────────

// CacheOpsTotal counts space cache operations by outcome.
// Label:
//   - result: "hit", "miss", "set", "del", or "error"
var CacheOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_ops_total",
		Help:      "Total number of space cache operations, by result.",
	},
	[]string{"result"},
)
