package httpapi

import (
	"net/http"
	"strconv"
	"time"

	indictrans "github.com/arhrid/indic-translator-sub001"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the translation API.
type Metrics struct {
	registry prometheus.Registerer

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	BackendErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics. A nil registry uses the default registerer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indictrans_requests_total",
				Help: "Total number of translation API requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "indictrans_request_duration_seconds",
				Help:    "Translation API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "indictrans_cache_hits_total",
				Help: "Translation requests served from the cache",
			},
		),
		CacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "indictrans_cache_misses_total",
				Help: "Translation requests dispatched to the backend",
			},
		),
		BackendErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indictrans_backend_errors_total",
				Help: "Terminal backend failures by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest records one completed API request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a cache hit or miss for a successful translation.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}

// ObserveBackendError records a terminal backend failure.
func (m *Metrics) ObserveBackendError(kind indictrans.ErrorKind) {
	m.BackendErrors.WithLabelValues(string(kind)).Inc()
}

// HTTPHandler returns the /metrics endpoint handler.
func (m *Metrics) HTTPHandler() http.Handler {
	if gatherer, ok := m.registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
