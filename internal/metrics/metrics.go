package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, partitioned by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	AssociationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "associations_created_total",
		Help: "Number of participant gift associations created by draws.",
	})

	TokensRevokedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokens_revoked_total",
		Help: "Number of tokens added to the revocation store.",
	})
)
