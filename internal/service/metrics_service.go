package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the dashboard
// process.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
	incidentRows    prometheus.Gauge
	analyticsTiming *prometheus.HistogramVec
	sessionsLive    prometheus.GaugeFunc
}

// NewMetricsService registers the core collectors. sessionCount feeds the
// live-session gauge and may be nil.
func NewMetricsService(sessionCount func() int) *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	submissionTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_submissions_total",
		Help: "Total accepted incident submissions by intensity",
	}, []string{"intensity"})

	incidentRows := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "incident_log_rows",
		Help: "Current row count of the in-memory incident table",
	})

	analyticsTiming := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_query_duration_seconds",
		Help:    "Duration of analytics computations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	sessionsLive := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "sessions_live",
		Help: "Number of live navigation sessions",
	}, func() float64 {
		if sessionCount == nil {
			return 0
		}
		return float64(sessionCount())
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, submissionTotal, incidentRows, analyticsTiming, sessionsLive, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		submissionTotal: submissionTotal,
		incidentRows:    incidentRows,
		analyticsTiming: analyticsTiming,
		sessionsLive:    sessionsLive,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveSubmission counts an accepted incident submission.
func (m *MetricsService) ObserveSubmission(intensity int) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(fmt.Sprintf("%d", intensity)).Inc()
	m.incidentRows.Inc()
}

// SetIncidentRows primes the row gauge after seeding.
func (m *MetricsService) SetIncidentRows(n int) {
	if m == nil {
		return
	}
	m.incidentRows.Set(float64(n))
}

// ObserveAnalyticsQuery records analytics computation timing.
func (m *MetricsService) ObserveAnalyticsQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.analyticsTiming.WithLabelValues(operation).Observe(duration.Seconds())
}
