// Package metrics exposes Prometheus instrumentation for the wallet client
// and the event coordinator.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wallet_dapp"

// Metrics owns a dedicated registry. It implements both
// adapter.RequestObserver and service.EventRecorder.
type Metrics struct {
	registry *prometheus.Registry

	events       *prometheus.CounterVec
	nodeRequests *prometheus.CounterVec
	nodeLatency  *prometheus.HistogramVec
}

// New registers all collectors, including the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "UI events processed by the coordinator.",
		}, []string{"event", "outcome"}),
		nodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_requests_total",
			Help:      "JSON-RPC requests sent to the wallet node.",
		}, []string{"method", "outcome"}),
		nodeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_request_duration_seconds",
			Help:      "Latency of JSON-RPC requests to the wallet node.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		m.events,
		m.nodeRequests,
		m.nodeLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordEvent counts one processed UI event.
func (m *Metrics) RecordEvent(event, outcome string) {
	m.events.WithLabelValues(event, outcome).Inc()
}

// ObserveRequest counts one node round trip and records its latency.
func (m *Metrics) ObserveRequest(method, outcome string, duration time.Duration) {
	m.nodeRequests.WithLabelValues(method, outcome).Inc()
	m.nodeLatency.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
