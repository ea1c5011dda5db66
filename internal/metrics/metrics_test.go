package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgraph/internal/metrics"
)

func TestMetrics_Record(t *testing.T) {
	m := metrics.New()
	m.SampleBuilt(3)
	m.FamilyDone(20*time.Millisecond, 4)
	m.Warning("closeness-wtd")
	m.Warning("closeness-wtd")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.SamplesBuilt))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FamiliesMerged))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.NullCells))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FeatureWarnings.WithLabelValues("closeness-wtd")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FamilyDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.SampleBuilt(1)
	m.FamilyDone(time.Second, 1)
	m.Warning("degree")
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := metrics.New()
	m.SampleBuilt(2)

	path := filepath.Join(t.TempDir(), "opgraph.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "opgraph_samples_built_total 2"))
}
