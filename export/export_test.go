package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgraph/builder"
	"github.com/katalvlaran/opgraph/export"
	"github.com/katalvlaran/opgraph/features"
	"github.com/katalvlaran/opgraph/results"
)

func collected(t *testing.T) *results.Table {
	t.Helper()
	g, err := builder.Sequence([]string{"mov", "push", "mov"})
	require.NoError(t, err)
	tbl, _, err := features.Compute(context.Background(), g, nil)
	require.NoError(t, err)
	res, err := results.Collect([]*features.Table{tbl}, []string{"zeus"})
	require.NoError(t, err)

	return res
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "", export.FormatFloat(math.NaN()))
	assert.Equal(t, "inf", export.FormatFloat(math.Inf(1)))
	assert.Equal(t, "-inf", export.FormatFloat(math.Inf(-1)))
	assert.Equal(t, "0.5", export.FormatFloat(0.5))
	assert.Equal(t, "3", export.FormatFloat(3))
}

func TestWriteCSV(t *testing.T) {
	res := collected(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, res))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1+res.Len())
	assert.Equal(t, res.Header(), recs[0])
	assert.Equal(t, []string{"zeus", "mov", "2"}, recs[1][:3])
	assert.Equal(t, []string{"zeus", "push", "1"}, recs[2][:3])

	assert.ErrorIs(t, export.WriteCSV(&buf, nil), export.ErrNilTable)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "features.csv")
	require.NoError(t, export.WriteFile(path, collected(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("family,node,node-weight,")))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".features.csv.*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestWriteDistances(t *testing.T) {
	var buf bytes.Buffer
	inf := math.Inf(1)
	err := export.WriteDistances(&buf, []string{"a", "b"}, [][]float64{{0, 1}, {inf, 0}})
	require.NoError(t, err)
	assert.Equal(t, "name,a,b\na,0,1\nb,inf,0\n", buf.String())

	err = export.WriteDistances(&buf, []string{"a"}, [][]float64{{0, 1}})
	assert.ErrorIs(t, err, export.ErrShape)
	err = export.WriteDistances(&buf, []string{"a", "b"}, [][]float64{{0}})
	assert.ErrorIs(t, err, export.ErrShape)
}
