// Package metrics defines and registers all custom Prometheus metrics for the
// todo API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto; the echoprometheus middleware exposes them on /metrics alongside
// the standard HTTP request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found", "validation", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate", "validation", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// MutationsTotal counts todo mutations.
// Labels:
//   - op:     "create", "edit", "delete"
//   - result: "success", "validation", "not_found", "forbidden", "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of todo mutations, labelled by operation and result.",
	},
	[]string{"op", "result"},
)

// RateLimitedTotal counts mutation requests rejected by the rate limiter.
// Label:
//   - path: the route that was rejected
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the per-user rate limiter.",
	},
	[]string{"path"},
)

// SessionsDestroyedTotal counts explicit session teardowns.
// Label:
//   - mode: "single" (logout) or "all_devices" (logout from all devices)
var SessionsDestroyedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed by explicit logout, labelled by mode.",
	},
	[]string{"mode"},
)
