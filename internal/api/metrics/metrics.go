// Package metrics defines and registers the custom Prometheus metrics for the
// profile directory. Metrics are registered on the default registry by
// promauto when the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profiledir"

// ── HTTP metrics ─────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/api/profiles/:id"), never the raw path
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Directory metrics ────────────────────────────────────────────────────────

// ProfileMutations counts successful writes.
// Label:
//   - op: "create", "update" or "delete"
var ProfileMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_mutations_total",
		Help:      "Total number of successful profile mutations, by operation.",
	},
	[]string{"op"},
)

// LoginAttempts counts login outcomes.
// Label:
//   - result: "success", "invalid_credentials", "forbidden" or "error"
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Chat metrics ─────────────────────────────────────────────────────────────

// ChatIntents counts classified chat messages by intent.
var ChatIntents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_intents_total",
		Help:      "Total number of chat messages, by classified intent.",
	},
	[]string{"intent"},
)

// ChatUpstreamFailures counts classifier failures.
// Label:
//   - kind: "rate_limited", "temporarily_unavailable", "error", "unparseable" or "not_configured"
var ChatUpstreamFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_upstream_failures_total",
		Help:      "Total number of chat messages the classifier could not serve, by failure kind.",
	},
	[]string{"kind"},
)

// ChatDuration measures the full classify-and-dispatch round trip.
var ChatDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_duration_seconds",
		Help:      "Duration of chat handling including the classifier call.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	},
)
