package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by the recorder.
const (
	MetricResourceRequest       = "resource_request"
	MetricResourceDuration      = "resource_request_duration"
	MetricAuthorizationDecision = "authorization_decision"
	MetricNotification          = "notification"
	MetricCircuitBreakerState   = "circuit_breaker_state"
	MetricSeededRecords         = "seeded_records"
)

type PrometheusMetrics struct {
	resourceRequests       *prometheus.CounterVec
	resourceDuration       *prometheus.HistogramVec
	authorizationDecisions *prometheus.CounterVec
	notifications          *prometheus.CounterVec
	circuitBreakerState    *prometheus.GaugeVec
	seededRecords          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the resource metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		resourceRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resource_requests_total",
				Help: "Total number of resource operations by outcome",
			},
			[]string{"entity", "operation", "status"},
		),
		resourceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resource_request_duration_seconds",
				Help:    "Resource operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity", "operation"},
		),
		authorizationDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authorization_decisions_total",
				Help: "Total number of authorization decisions",
			},
			[]string{"entity", "operation", "decision"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Total number of resource notifications by outcome",
			},
			[]string{"entity", "status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		seededRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seeded_records_total",
				Help: "Total number of fake records created by the development seeder",
			},
			[]string{"entity"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case MetricResourceRequest:
		m.resourceRequests.WithLabelValues(entity, operation, status).Inc()
	case MetricAuthorizationDecision:
		m.authorizationDecisions.WithLabelValues(entity, operation, tags["decision"]).Inc()
	case MetricNotification:
		m.notifications.WithLabelValues(entity, status).Inc()
	case MetricSeededRecords:
		m.seededRecords.WithLabelValues(entity).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	switch name {
	case MetricResourceDuration:
		m.resourceDuration.WithLabelValues(tags["entity"], tags["operation"]).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
