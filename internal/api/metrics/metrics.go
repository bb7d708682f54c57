// Package metrics defines the custom Prometheus metrics for the classhub
// API. It is the single source of truth for metric names, labels, and
// help strings. Request-level metrics (latency, status codes) come from
// the echoprometheus middleware; the counters here track domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "classhub"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure" (failures are uniform — unknown user
//     and wrong password are deliberately indistinguishable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: the role the account was created with ("student", "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// SnippetsCreatedTotal counts newly created snippets.
var SnippetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snippets_created_total",
		Help:      "Total number of snippets created.",
	},
)

// SnippetCacheTotal counts snippet-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var SnippetCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snippet_cache_total",
		Help:      "Total number of snippet list cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
