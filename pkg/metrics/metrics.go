// Package metrics exposes Prometheus HTTP request metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelService = "service"
	labelMethod  = "method"
	labelRoute   = "route"
	labelStatus  = "status"
)

// HTTPMetrics counts requests and observes their latency per route pattern.
type HTTPMetrics struct {
	service  string
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request collectors plus the Go and process collectors on
// a private registry.
func NewHTTPMetrics(service string) *HTTPMetrics {
	reg := prometheus.NewRegistry()
	m := &HTTPMetrics{
		service:  service,
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{labelService, labelMethod, labelRoute, labelStatus},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{labelService, labelMethod, labelRoute},
		),
	}
	reg.MustRegister(
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records one observation per request. The route label is the chi route pattern,
// so /products/1 and /products/2 share a series.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.latency.WithLabelValues(m.service, r.Method, route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(m.service, r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// Registry returns the registry behind Handler, for other exporters to register on.
func (m *HTTPMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return "unmatched"
}
