// Package metrics defines all custom Prometheus metrics for the blog API.
// It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at package init and
// are exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications in the auth middleware.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostMutationsTotal counts mutating post operations.
// Labels:
//   - action: "create", "update", or "delete"
//   - result: "ok", "forbidden", "not_found", or "error"
var PostMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_mutations_total",
		Help:      "Total number of post create/update/delete operations, by action and result.",
	},
	[]string{"action", "result"},
)

// PostCacheTotal counts post cache lookups.
// Label:
//   - result: "hit" or "miss"
var PostCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_cache_total",
		Help:      "Total number of post cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
