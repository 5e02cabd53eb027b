package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	SessionLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_session_logins_total",
			Help: "Total number of completed OIDC logins",
		},
	)

	SessionLogouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_session_logouts_total",
			Help: "Total number of logouts",
		},
	)

	IdPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_idp_requests_total",
			Help: "Total number of identity provider requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_db_query_duration_seconds",
			Help:    "Time to complete telemetry store queries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"query"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_db_query_errors_total",
			Help: "Total number of telemetry store query errors",
		},
		[]string{"query"},
	)
)
