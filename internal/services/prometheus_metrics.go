package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	categoryWrites            *prometheus.CounterVec
	categoryReadFailures      *prometheus.CounterVec
	statementsLoaded          *prometheus.CounterVec
	statementRows             *prometheus.CounterVec
	statementLoadDuration     prometheus.Histogram
	overridesTotal            *prometheus.CounterVec
	assistantRequests         *prometheus.CounterVec
	assistantDuration         prometheus.Histogram
	circuitBreakerState       *prometheus.GaugeVec
	bankFeedRequests          *prometheus.CounterVec
	bankFeedDuration          prometheus.Histogram
	archiveWrites             *prometheus.CounterVec
	activeSessions            prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the application metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		categoryWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_writes_total",
				Help: "Total number of category map writes",
			},
			[]string{"operation", "status"},
		),
		categoryReadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_read_failures_total",
				Help: "Category reads that fell back to the default map",
			},
			[]string{"operation"},
		),
		statementsLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_loaded_total",
				Help: "Total number of statements loaded",
			},
			[]string{"format", "status"},
		),
		statementRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_total",
				Help: "Statement rows loaded by flow",
			},
			[]string{"flow"},
		),
		statementLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_load_duration_milliseconds",
				Help:    "Statement parse and classify duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		overridesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_overrides_total",
				Help: "Manual category overrides",
			},
			[]string{"status"},
		),
		assistantRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_requests_total",
				Help: "Total number of categorization assistant requests",
			},
			[]string{"provider", "operation", "status"},
		),
		assistantDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assistant_request_duration_seconds",
				Help:    "Categorization assistant request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		bankFeedRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankfeed_requests_total",
				Help: "Total number of bank feed API requests",
			},
			[]string{"operation", "status"},
		),
		bankFeedDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bankfeed_request_duration_seconds",
				Help:    "Bank feed API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		archiveWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_archive_writes_total",
				Help: "Raw statement archive writes",
			},
			[]string{"status"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Current number of dashboard sessions held in memory",
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "category.write.success":
		m.categoryWrites.WithLabelValues(operation, "success").Inc()
	case "category.write.failed":
		m.categoryWrites.WithLabelValues(operation, "failed").Inc()
	case "category.read.failed":
		m.categoryReadFailures.WithLabelValues(operation).Inc()
	case "statement.loaded":
		m.statementsLoaded.WithLabelValues(tags["format"], status).Inc()
	case "statement.row":
		m.statementRows.WithLabelValues(tags["flow"]).Inc()
	case "category.override":
		m.overridesTotal.WithLabelValues(status).Inc()
	case "assistant.request":
		m.assistantRequests.WithLabelValues(tags["provider"], operation, status).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "bankfeed.request":
		m.bankFeedRequests.WithLabelValues(operation, status).Inc()
	case "archive.write":
		m.archiveWrites.WithLabelValues(status).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement.load":
		m.statementLoadDuration.Observe(float64(duration.Milliseconds()))
	case "assistant.request":
		m.assistantDuration.Observe(duration.Seconds())
	case "bankfeed.request":
		m.bankFeedDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "sessions.active":
		m.activeSessions.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that drops everything, for the CLI and
// tests that do not assert on metrics.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
