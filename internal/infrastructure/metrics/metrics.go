package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AgentSync API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Chat messages stored, by role
	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "chat_messages_total",
			Help:      "Total chat messages persisted",
		},
		[]string{"role"},
	)

	// Completion round-trip duration
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "completion_duration_seconds",
			Help:      "Chat completion round-trip duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	CompletionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "completion_errors_total",
			Help:      "Total failed chat completion calls",
		},
		[]string{"model"},
	)

	// OTP flow counters
	OTPSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "otp_sent_total",
			Help:      "Total verification codes dispatched",
		},
	)

	OTPVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "otp_verifications_total",
			Help:      "Verification attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Stale verification rows removed by the sweep job
	OTPSweptTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agentsync",
			Subsystem: "api",
			Name:      "otp_swept_total",
			Help:      "Stale verification codes removed",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}
