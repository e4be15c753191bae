// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a set of collectors bound to its own registry, so independent
// instances never collide.
type Metrics struct {
	reg *prometheus.Registry

	StepsTotal  *prometheus.CounterVec
	RunsTotal   *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		StepsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_steps_total",
			Help: "Total number of Advance calls, labelled by algorithm.",
		}, []string{"algorithm"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_runs_total",
			Help: "Total number of finished runs, labelled by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_run_duration_seconds",
			Help:    "Wall-clock time from first step to termination.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"algorithm"}),
	}
}

// ObserveStep counts one Advance call.
func (m *Metrics) ObserveStep(algorithm string) {
	m.StepsTotal.WithLabelValues(algorithm).Inc()
}

// ObserveRun records a finished run. outcome is a RunState name
// ("Found", "Exhausted") or "error"/"cancelled".
func (m *Metrics) ObserveRun(algorithm, outcome string, elapsed time.Duration) {
	m.RunsTotal.WithLabelValues(algorithm, outcome).Inc()
	m.RunDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Gatherer exposes the registry, e.g. for promhttp or testutil.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

// WriteTextfile writes the current values in the Prometheus text format,
// atomically, for the node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
