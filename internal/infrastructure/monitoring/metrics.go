package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics exported by the scoring service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	PredictionsTotal    *prometheus.CounterVec
	ResponseCacheEvents *prometheus.CounterVec
}

// NewMetrics creates and registers the Prometheus metrics.
func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer registers the metrics against a specific
// registerer. Tests use a fresh registry to avoid duplicate registration.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskbank_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskbank_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		PredictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskbank_predictions_total",
				Help: "Total number of prediction requests by outcome.",
			},
			[]string{"result"},
		),
		ResponseCacheEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskbank_response_cache_events_total",
				Help: "Response cache hits and misses.",
			},
			[]string{"route", "event"},
		),
	}
}

// RecordHTTPRequest records the counter/histogram pair for one request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPrediction records the outcome of one prediction request.
func (m *Metrics) RecordPrediction(result string) {
	m.PredictionsTotal.WithLabelValues(result).Inc()
}

// RecordCacheEvent records a response cache hit or miss for a route.
func (m *Metrics) RecordCacheEvent(route, event string) {
	m.ResponseCacheEvents.WithLabelValues(route, event).Inc()
}
