package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instrumentation for render jobs: one
// vector per countable event, one histogram per timed operation.
type Metrics struct {
	jobsTotal    *prometheus.CounterVec
	jobDuration  prometheus.Histogram
	rowsRendered prometheus.Counter
	marchSteps   prometheus.Histogram
	registry     *prometheus.Registry
}

// NewMetrics creates and registers render-job metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		jobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdfield_render_jobs_total",
				Help: "Total number of render jobs by outcome",
			},
			[]string{"outcome"}, // "success", "cancelled", "error"
		),
		jobDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sdfield_render_job_duration_seconds",
				Help:    "Render job wall-clock duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		rowsRendered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sdfield_render_rows_total",
				Help: "Total number of image rows rendered",
			},
		),
		marchSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sdfield_render_march_steps",
				Help:    "Sphere-tracing iterations per primary ray",
				Buckets: prometheus.LinearBuckets(0, 16, 16),
			},
		),
		registry: registry,
	}

	m.registry.MustRegister(m.jobsTotal, m.jobDuration, m.rowsRendered, m.marchSteps)
	return m
}

// Registry exposes the underlying Prometheus registry, e.g. for mounting
// under /metrics in pkg/server.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordJob records the outcome and duration of a completed render job.
func (m *Metrics) RecordJob(outcome string, duration time.Duration) {
	m.jobsTotal.WithLabelValues(outcome).Inc()
	m.jobDuration.Observe(duration.Seconds())
}

// RecordRow records completion of a single image row.
func (m *Metrics) RecordRow() { m.rowsRendered.Inc() }

// RecordMarchSteps records how many sphere-tracing iterations a ray took.
func (m *Metrics) RecordMarchSteps(steps int) { m.marchSteps.Observe(float64(steps)) }
