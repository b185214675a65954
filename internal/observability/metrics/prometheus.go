package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	durationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

	// DispatchesTotal counts dispatch requests by event type and outcome
	// ("sent", "disabled", "error").
	DispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_notify_dispatches_total",
			Help: "Total number of notification dispatch requests, by event type and outcome.",
		},
		[]string{"event_type", "outcome"},
	)

	// DeliveriesTotal counts per-channel delivery attempts by status.
	DeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_notify_deliveries_total",
			Help: "Total number of per-channel delivery attempts, by channel and status.",
		},
		[]string{"channel", "status"},
	)

	// LeadsIngested counts leads accepted through the integration webhook.
	LeadsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_notify_leads_ingested_total",
			Help: "Total number of leads accepted through the integration webhook, by source.",
		},
		[]string{"source"},
	)

	// DispatchDuration measures the full dispatch request duration.
	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lead_notify_dispatch_duration_seconds",
			Help:    "Histogram of dispatch duration in seconds, by event type and success status.",
			Buckets: durationBuckets,
		},
		[]string{"event_type", "success"},
	)

	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_notify_http_requests_total",
			Help: "Total number of HTTP requests, by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lead_notify_http_request_duration_seconds",
			Help:    "Histogram of HTTP request duration in seconds, by endpoint.",
			Buckets: durationBuckets,
		},
		[]string{"endpoint"},
	)
)

// MetricsHandler returns the HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// ObserveDispatch simplifies observing dispatch duration.
func ObserveDispatch(eventType string, success bool, start time.Time) {
	successStr := "false"
	if success {
		successStr = "true"
	}
	DispatchDuration.WithLabelValues(eventType, successStr).Observe(time.Since(start).Seconds())
}
