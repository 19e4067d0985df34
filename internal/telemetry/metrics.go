// Package telemetry instruments alignment runs: prometheus metrics on a
// private registry, dumped in the node-exporter textfile format, and
// OpenTelemetry spans around each phase of a run.
package telemetry

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gotoh/align"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of gotoh_runs_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors of one process. The zero value is not usable;
// use New.
type Metrics struct {
	reg *prometheus.Registry

	// runs counts alignment runs by mode and outcome
	runs *prometheus.CounterVec

	// alignments counts emitted co-optimal alignments by mode
	alignments *prometheus.CounterVec

	// truncated counts runs cut short by the path cap
	truncated prometheus.Counter

	// verifyFailures counts alignments whose re-score missed the optimum
	verifyFailures prometheus.Counter

	// fillDuration tracks fill latency
	fillDuration prometheus.Histogram

	// tracebackDuration tracks traceback latency
	tracebackDuration prometheus.Histogram

	// cells tracks grid size (rows·cols) per run
	cells prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gotoh_runs_total",
			Help: "Total alignment runs by mode and outcome",
		}, []string{"mode", "outcome"}),
		alignments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gotoh_alignments_total",
			Help: "Total co-optimal alignments emitted by mode",
		}, []string{"mode"}),
		truncated: f.NewCounter(prometheus.CounterOpts{
			Name: "gotoh_truncated_runs_total",
			Help: "Runs whose enumeration stopped at the path cap",
		}),
		verifyFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "gotoh_verify_failures_total",
			Help: "Alignments whose re-score differed from the reported optimum",
		}),
		fillDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gotoh_fill_duration_seconds",
			Help:    "Fill phase duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		tracebackDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gotoh_traceback_duration_seconds",
			Help:    "Traceback phase duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		}),
		cells: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gotoh_grid_cells",
			Help:    "Cells per DP grid (rows times columns)",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
	}
}

// Registry exposes the private registry for gathering and tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveFill records one fill phase over a rows×cols grid.
func (m *Metrics) ObserveFill(d time.Duration, rows, cols int) {
	m.fillDuration.Observe(d.Seconds())
	m.cells.Observe(float64(rows) * float64(cols))
}

// ObserveTraceback records one traceback phase.
func (m *Metrics) ObserveTraceback(d time.Duration) {
	m.tracebackDuration.Observe(d.Seconds())
}

// RecordRun counts a finished run. res is ignored when err is set.
func (m *Metrics) RecordRun(mode align.Mode, res align.Result, err error) {
	if err != nil {
		m.runs.WithLabelValues(mode.String(), OutcomeError).Inc()
		return
	}
	m.runs.WithLabelValues(mode.String(), OutcomeOK).Inc()
	m.alignments.WithLabelValues(mode.String()).Add(float64(len(res.Alignments)))
	if res.Truncated {
		m.truncated.Inc()
	}
}

// RecordVerifyFailure counts one alignment that failed re-scoring.
func (m *Metrics) RecordVerifyFailure() { m.verifyFailures.Inc() }

// WriteTextfile writes every metric to path atomically, in the format read by
// the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
