// Package metrics exposes Prometheus collectors for HTTP traffic and operator
// command invocations. Each Metrics value owns its registry so servers (and
// tests) don't share global state.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/corey/operator-gui/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "operator_gui"

// Metrics implements ports.InvocationObserver and instruments HTTP handlers.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	invocations        *prometheus.CounterVec
	invocationDuration *prometheus.HistogramVec
	invocationInFlight prometheus.Gauge
}

// New creates a Metrics with every collector registered on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		}, []string{"method", "path"}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Operator command invocations by action and outcome.",
		}, []string{"action", "outcome"}),
		invocationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Wall time of operator command invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
		}, []string{"action"}),
		invocationInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "invocations_inflight",
			Help:      "Operator command child processes currently running.",
		}),
	}
	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.invocations,
		m.invocationDuration,
		m.invocationInFlight,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// InvocationStarted implements ports.InvocationObserver.
func (m *Metrics) InvocationStarted(action ports.Action) {
	m.invocationInFlight.Inc()
}

// InvocationFinished implements ports.InvocationObserver.
func (m *Metrics) InvocationFinished(inv ports.Invocation) {
	m.invocationInFlight.Dec()
	m.invocations.WithLabelValues(string(inv.Action), inv.Outcome).Inc()
	m.invocationDuration.WithLabelValues(string(inv.Action)).Observe(inv.Duration.Seconds())
}

// Instrument wraps next with HTTP metrics collection. Scrapes of /metrics
// are not counted.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)
		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// knownPaths bounds the path label; anything else is "other".
var knownPaths = map[string]bool{
	"/":           true,
	"/start":      true,
	"/stop":       true,
	"/api/health": true,
}

func canonicalPath(raw string) string {
	if raw == "" {
		return "/"
	}
	if knownPaths[raw] {
		return raw
	}
	return "other"
}
