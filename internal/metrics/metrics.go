// Package metrics holds the Prometheus collectors of one pipeline run.
//
// A batch run has no scrape endpoint; collectors live on a private registry
// that is dumped to a node-exporter textfile at the end of the run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the run collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	SamplesBuilt    prometheus.Counter
	FamiliesMerged  prometheus.Counter
	NullCells       prometheus.Counter
	FeatureWarnings *prometheus.CounterVec
	FamilyDuration  prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		SamplesBuilt: f.NewCounter(prometheus.CounterOpts{
			Name: "opgraph_samples_built_total",
			Help: "Total number of sample graphs built from opcode sequences.",
		}),
		FamiliesMerged: f.NewCounter(prometheus.CounterOpts{
			Name: "opgraph_families_merged_total",
			Help: "Total number of family union graphs produced.",
		}),
		NullCells: f.NewCounter(prometheus.CounterOpts{
			Name: "opgraph_feature_null_cells_total",
			Help: "Total number of feature cells left null (NaN).",
		}),
		FeatureWarnings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "opgraph_feature_warnings_total",
			Help: "Total number of feature columns that failed, labelled by column.",
		}, []string{"column"}),
		FamilyDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "opgraph_family_duration_seconds",
			Help:    "Wall time to build, merge and featurize one family.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}
}

// SampleBuilt counts n built sample graphs.
func (m *Metrics) SampleBuilt(n int) {
	if m == nil {
		return
	}
	m.SamplesBuilt.Add(float64(n))
}

// FamilyDone records one finished family.
func (m *Metrics) FamilyDone(elapsed time.Duration, nullCells int) {
	if m == nil {
		return
	}
	m.FamiliesMerged.Inc()
	m.NullCells.Add(float64(nullCells))
	m.FamilyDuration.Observe(elapsed.Seconds())
}

// Warning counts a failed feature column.
func (m *Metrics) Warning(column string) {
	if m == nil {
		return
	}
	m.FeatureWarnings.WithLabelValues(column).Inc()
}

// WriteTextfile dumps the registry in text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.Registry)
}
