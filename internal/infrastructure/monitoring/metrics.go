// Package monitoring provides Prometheus metrics for the API server.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pantrysage/v2/internal/domain/grocery"
)

// Metrics holds the application's Prometheus collectors
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	listsGenerated  *prometheus.CounterVec
	itemsClassified prometheus.Counter
	warningsRaised  *prometheus.CounterVec
}

// NewMetrics registers and returns the application metrics
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrysage_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pantrysage_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		listsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrysage_shopping_lists_generated_total",
			Help: "Shopping list generation passes by outcome",
		}, []string{"outcome"}),
		itemsClassified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pantrysage_items_classified_total",
			Help: "Ingredient names run through the classifier",
		}),
		warningsRaised: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pantrysage_dietary_warnings_total",
			Help: "Dietary warnings raised by severity",
		}, []string{"severity"}),
	}
}

// RecordListGeneration counts one generation pass.
func (m *Metrics) RecordListGeneration(outcome string) {
	m.listsGenerated.WithLabelValues(outcome).Inc()
}

// RecordClassification counts one classified ingredient name.
func (m *Metrics) RecordClassification() {
	m.itemsClassified.Inc()
}

// InstrumentClassifier wraps a classifier so every name routed through
// it lands on the classification counter. The container composes this
// around the keyword classifier shared by the pantry and shopping
// services.
func (m *Metrics) InstrumentClassifier(inner grocery.Classifier) grocery.Classifier {
	return &instrumentedClassifier{inner: inner, metrics: m}
}

type instrumentedClassifier struct {
	inner   grocery.Classifier
	metrics *Metrics
}

func (c *instrumentedClassifier) Classify(name string) grocery.Category {
	c.metrics.RecordClassification()
	return c.inner.Classify(name)
}

// RecordWarning counts one dietary warning.
func (m *Metrics) RecordWarning(severity string) {
	m.warningsRaised.WithLabelValues(severity).Inc()
}

// Handler returns the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments HTTP requests with the route pattern as label.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
