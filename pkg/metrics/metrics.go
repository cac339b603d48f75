package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	quotesCreated   prometheus.Counter
	webhookOutcomes *prometheus.CounterVec
	webhookDuration prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	quotesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotes_created_total",
		Help: "Quotes persisted by the submission pipeline.",
	})
	webhookOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_relay_outcomes_total",
		Help: "Webhook relay attempts by outcome.",
	}, []string{"outcome"})
	webhookDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "webhook_relay_duration_seconds",
		Help:    "Duration of outbound webhook calls.",
		Buckets: prometheus.DefBuckets,
	})
	registry.MustRegister(requests, duration, quotesCreated, webhookOutcomes, webhookDuration)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		quotesCreated:   quotesCreated,
		webhookOutcomes: webhookOutcomes,
		webhookDuration: webhookDuration,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// IncQuoteCreated counts a persisted quote.
func (m *Metrics) IncQuoteCreated() {
	if m == nil || m.quotesCreated == nil {
		return
	}
	m.quotesCreated.Inc()
}

// ObserveWebhook records one relay attempt.
func (m *Metrics) ObserveWebhook(outcome string, duration time.Duration) {
	if m == nil || m.webhookOutcomes == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.webhookOutcomes.WithLabelValues(outcome).Inc()
	m.webhookDuration.Observe(duration.Seconds())
}

// Middleware records request counts and latency per chi route.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
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

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
