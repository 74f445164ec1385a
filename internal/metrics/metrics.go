package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safetrip_http_requests_total",
			Help: "Total number of HTTP requests by operation and status code",
		},
		[]string{"operation", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safetrip_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Outbound calls (llm, geocoder, news)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safetrip_upstream_requests_total",
			Help: "Total number of calls to third-party services by result",
		},
		[]string{"upstream", "result"}, // success, failure, rejected
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safetrip_upstream_request_duration_seconds",
			Help:    "Duration of calls to third-party services in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"upstream"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "safetrip_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// SOS
	SOSEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safetrip_sos_emails_total",
			Help: "SOS emails by delivery result",
		},
		[]string{"result"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safetrip_events_published_total",
			Help: "Domain events handed to the event publisher",
		},
		[]string{"type", "result"},
	)
)
