package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	m := recorder.(*PrometheusMetrics)

	tags := map[string]string{"entity": "bank_account", "operation": "create", "status": "success"}
	recorder.IncrementCounter(MetricResourceRequest, tags)
	recorder.IncrementCounter(MetricResourceRequest, tags)
	recorder.IncrementCounter(MetricNotification, map[string]string{"entity": "bank_account", "status": "failed"})
	recorder.IncrementCounter(MetricAuthorizationDecision, map[string]string{"entity": "company", "operation": "read", "decision": "deny"})
	recorder.RecordProcessingTime(MetricResourceDuration, 15*time.Millisecond, tags)
	recorder.RecordGauge(MetricCircuitBreakerState, 1, map[string]string{"service": "authorization"})
	recorder.IncrementCounter("unknown_metric", tags)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resourceRequests.WithLabelValues("bank_account", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("bank_account", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authorizationDecisions.WithLabelValues("company", "read", "deny")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("authorization")))

	count, err := testutil.GatherAndCount(reg, "resource_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
