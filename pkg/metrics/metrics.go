// Package metrics records panel round trips in Prometheus.
package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder publishes Prometheus metrics for server manager requests.
type Recorder struct {
	gatherer prometheus.Gatherer
	handler  http.Handler

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRecorder constructs a Prometheus-backed Recorder. When reg is nil a dedicated
// registry is created so multiple recorders can coexist without conflicting with
// the global default registerer.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "servermanager",
		Subsystem: "panel",
		Name:      "requests_total",
		Help:      "Total admin API requests sent to hosting panels.",
	}, []string{"manager", "endpoint", "outcome"})

	// Panel calls create users and websites, so the tail reaches the request timeout.
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "servermanager",
		Subsystem: "panel",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for admin API requests.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"manager", "endpoint"})

	reg.MustRegister(requests, latency)

	return &Recorder{
		gatherer: reg,
		handler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		requests: requests,
		latency:  latency,
	}
}

// Handler exposes the Prometheus HTTP handler for the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "metrics unavailable", http.StatusServiceUnavailable)
		})
	}
	return r.handler
}

// Gatherer returns the underlying Prometheus gatherer.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.gatherer
}

// ObserveRequest records the outcome and latency of one panel request.
func (r *Recorder) ObserveRequest(manager, endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	managerLabel := normalizeLabel(manager)
	endpointLabel := normalizeLabel(endpoint)
	r.requests.WithLabelValues(managerLabel, endpointLabel, normalizeLabel(outcome)).Inc()
	r.latency.WithLabelValues(managerLabel, endpointLabel).Observe(elapsed.Seconds())
}

func normalizeLabel(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
