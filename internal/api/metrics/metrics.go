// Package metrics defines and registers all custom Prometheus metrics for the
// credit management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// /metrics endpoint exposed by the router serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "credit"

// CustomersCreatedTotal counts successfully registered customers.
var CustomersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_created_total",
		Help:      "Total number of customers successfully registered.",
	},
)

// CreditsCreatedTotal counts successfully created credits.
var CreditsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credits_created_total",
		Help:      "Total number of credits successfully created.",
	},
)

// ValidationFailuresTotal counts requests rejected at the DTO validation
// boundary.
var ValidationFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected with field validation errors.",
	},
)

// CreditLookupCacheTotal counts credit-by-code cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (loaded from the repository)
var CreditLookupCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credit_lookup_cache_total",
		Help:      "Total number of credit-by-code cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
