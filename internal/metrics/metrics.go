package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SchemesImported     prometheus.Counter
	RevisionsSuperseded *prometheus.CounterVec
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "capital_schemes_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "capital_schemes_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SchemesImported: factory.NewCounter(prometheus.CounterOpts{
			Name: "capital_schemes_schemes_imported_total",
			Help: "Total number of schemes imported from ATE",
		}),
		RevisionsSuperseded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "capital_schemes_revisions_superseded_total",
			Help: "Total number of revisions superseded by authority updates, by revision kind",
		}, []string{"kind"}),
	}
}

// ObserveRequest records a completed HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AddSchemesImported increments the imported schemes counter by n
func (m *Metrics) AddSchemesImported(n int) {
	m.SchemesImported.Add(float64(n))
}

// IncrementSuperseded increments the superseded revisions counter for kind
func (m *Metrics) IncrementSuperseded(kind string) {
	m.RevisionsSuperseded.WithLabelValues(kind).Inc()
}
