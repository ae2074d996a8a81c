// Package metrics defines and registers all custom Prometheus metrics for
// the cattery API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cattery"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "unknown_principal"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// AuthzDenialsTotal counts authorization denials.
// Label:
//   - policy: "role" (endpoint role requirement) or "ownership"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by policy.",
	},
	[]string{"policy"},
)

// ResourceMutationsTotal counts successful resource mutations.
// Labels:
//   - resource: "cat", "breed", "user", "client"
//   - action: "create", "update", "delete"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "action"},
)
