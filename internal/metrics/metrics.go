// Package metrics owns the prometheus instrumentation for the EcoSim
// API. All collectors live on a dedicated registry so tests can
// construct isolated instances without touching global state.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	// SimulationsTotal counts scenario simulations served.
	SimulationsTotal prometheus.Counter

	// ClaimsAnalyzedTotal counts claim analyses served.
	ClaimsAnalyzedTotal prometheus.Counter

	// DocumentsAuditedTotal counts live-audit records served, by risk.
	DocumentsAuditedTotal *prometheus.CounterVec

	// RequestDuration observes HTTP latency by route and status.
	RequestDuration *prometheus.HistogramVec
}

// New constructs and registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SimulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosim_simulations_total",
			Help: "Number of scenario simulations run.",
		}),
		ClaimsAnalyzedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosim_claims_analyzed_total",
			Help: "Number of greenwashing claim analyses run.",
		}),
		DocumentsAuditedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecosim_documents_audited_total",
			Help: "Number of live-audit documents processed, by risk level.",
		}, []string{"risk_level"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecosim_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
	}

	registry.MustRegister(
		m.SimulationsTotal,
		m.ClaimsAnalyzedTotal,
		m.DocumentsAuditedTotal,
		m.RequestDuration,
	)
	return m
}

// Handler exposes the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
