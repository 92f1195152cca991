// Package metrics defines and registers all custom Prometheus metrics for
// the WasteMap collection API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// /metrics endpoint exposes them alongside the echo HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wastemap"

// RequestsCreatedTotal counts newly created pickup requests.
// Label:
//   - waste_type: the request's waste category (e.g. "Recyclable")
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of pickup requests created, by waste type.",
	},
	[]string{"waste_type"},
)

// StatusTransitionsTotal counts admin status transitions.
// Label:
//   - status: the status applied (e.g. "Completed")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of request status transitions, by applied status.",
	},
	[]string{"status"},
)

// RequestsDeletedTotal counts permanently deleted requests.
var RequestsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_deleted_total",
		Help:      "Total number of pickup requests deleted.",
	},
)

// StatsCacheTotal counts stats snapshot cache lookups.
// Label:
//   - result: "hit" (snapshot served from cache) or "miss" (counted from store)
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of stats cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
