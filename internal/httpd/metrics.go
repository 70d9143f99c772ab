// Package httpd: Prometheus instrumentation for the trace endpoint.
package httpd

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the server's Prometheus collectors on a private registry,
// so multiple servers (and tests) never fight over global registration.
type Metrics struct {
	registry *prometheus.Registry

	// Traces counts trace computations by outcome: "ok" or "parse_error".
	Traces *prometheus.CounterVec

	// Duration observes wall time of one parse+trace+encode cycle.
	Duration prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "msttrace_traces_total",
				Help: "Total number of trace computations, by outcome.",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "msttrace_trace_duration_seconds",
				Help: "Duration of one parse+trace+encode cycle.",
			},
		),
	}
	m.registry.MustRegister(m.Traces, m.Duration)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
