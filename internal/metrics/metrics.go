package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_upstream_requests_total",
			Help: "Total number of chat-completion requests by stage and outcome",
		},
		[]string{"stage", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "estimator_upstream_request_duration_seconds",
			Help: "Duration of chat-completion requests in seconds",
		},
		[]string{"stage"},
	)

	PayloadRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_upstream_payload_rejected_total",
			Help: "Total number of model payloads that failed schema validation",
		},
		[]string{"stage"},
	)

	QuotesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estimator_quotes_started_total",
			Help: "Total number of clarification stages completed",
		},
	)

	EstimatesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estimator_estimates_completed_total",
			Help: "Total number of estimation stages completed",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_http_requests_total",
			Help: "Total number of handled HTTP requests by path, method and status",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "estimator_http_request_duration_seconds",
			Help: "Duration of handled HTTP requests in seconds",
		},
		[]string{"path", "method"},
	)
)
