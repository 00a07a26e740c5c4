package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.IncrementCounter("category.write.success", map[string]string{"operation": "add_keyword"})
	m.IncrementCounter("category.write.success", map[string]string{"operation": "add_keyword"})
	m.IncrementCounter("category.write.failed", map[string]string{"operation": "put"})
	m.IncrementCounter("statement.loaded", map[string]string{"format": FormatCSV, "status": "success"})
	m.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	m.IncrementCounter("authentication_event", map[string]string{})
	m.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.categoryWrites.WithLabelValues("add_keyword", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.categoryWrites.WithLabelValues("put", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statementsLoaded.WithLabelValues(FormatCSV, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authenticationEventsTotal.WithLabelValues("login")))
}

func TestPrometheusMetrics_GaugesAndDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.RecordGauge("sessions.active", 3, nil)
	m.RecordGauge("circuit_breaker.state", float64(StateHalfOpen), map[string]string{"service": "openai"})
	m.RecordProcessingTime("statement.load", 25*time.Millisecond)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("openai")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.statementLoadDuration))
}
