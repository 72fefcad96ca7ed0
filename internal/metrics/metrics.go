// Package metrics provides Prometheus metrics for fman operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors on a private registry, so tests and multiple engines
// never collide on the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal         *prometheus.CounterVec
	validationFailuresTotal *prometheus.CounterVec
	snapshotEntries         prometheus.Gauge
	snapshotBuildDuration   prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fman_operations_total",
				Help: "Total number of executed file operations",
			},
			[]string{"command", "result"},
		),
		validationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fman_validation_failures_total",
				Help: "Total number of submissions rejected before reaching the filesystem",
			},
			[]string{"command"},
		),
		snapshotEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "fman_snapshot_entries",
				Help: "Number of entries in the current directory snapshot",
			},
		),
		snapshotBuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fman_snapshot_build_duration_seconds",
				Help:    "Time to list the root directory",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.operationsTotal,
		m.validationFailuresTotal,
		m.snapshotEntries,
		m.snapshotBuildDuration,
	)
	return m
}

// RecordOperation counts one executed operation. result is "success" or a failure reason.
func (m *Metrics) RecordOperation(command, result string) {
	m.operationsTotal.WithLabelValues(command, result).Inc()
}

// RecordValidationFailure counts one rejected submission.
func (m *Metrics) RecordValidationFailure(command string) {
	m.validationFailuresTotal.WithLabelValues(command).Inc()
}

// RecordSnapshot records the size and build time of a freshly built snapshot.
func (m *Metrics) RecordSnapshot(entries int, took time.Duration) {
	m.snapshotEntries.Set(float64(entries))
	m.snapshotBuildDuration.Observe(took.Seconds())
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// NewServer returns an HTTP server exposing Handler at /metrics on addr.
// The caller owns starting and shutting it down.
func (m *Metrics) NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
