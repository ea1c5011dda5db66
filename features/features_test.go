package features_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/opgraph/builder"
	"github.com/katalvlaran/opgraph/centrality"
	"github.com/katalvlaran/opgraph/core"
	"github.com/katalvlaran/opgraph/features"
)

const eps = 1e-6

func mustSequence(t *testing.T, seq ...string) *core.Graph {
	t.Helper()
	g, err := builder.Sequence(seq)
	require.NoError(t, err)

	return g
}

func mustColumn(t *testing.T, tbl *features.Table, col string) []float64 {
	t.Helper()
	vals, err := tbl.Column(col)
	require.NoError(t, err)

	return vals
}

// TableSuite covers the FeatureTable lifecycle.
type TableSuite struct {
	suite.Suite
	g   *core.Graph
	tbl *features.Table
}

func (s *TableSuite) SetupTest() {
	g, err := builder.Sequence([]string{"mov", "push", "call"})
	s.Require().NoError(err)
	s.g = g
	s.tbl, err = features.NewTable(g)
	s.Require().NoError(err)
}

func (s *TableSuite) TestPlaceholders() {
	s.Equal(features.Columns(), s.tbl.Columns())
	s.Equal([]string{"mov", "push", "call"}, s.tbl.Rows())
	s.Equal(3, s.tbl.Len())
	s.Equal(3*len(features.Columns()), s.tbl.NullCount())

	v, err := s.tbl.Value("push", features.ColDegree)
	s.Require().NoError(err)
	s.True(math.IsNaN(v))
}

func (s *TableSuite) TestSetAndRead() {
	s.Require().NoError(s.tbl.Set(features.ColDegree, []float64{1, 2, 1}))

	v, err := s.tbl.Value("push", features.ColDegree)
	s.Require().NoError(err)
	s.Equal(2.0, v)

	rec := s.tbl.Record(1)
	s.Len(rec, len(features.Columns()))
	s.Equal(2.0, rec[3])

	_, err = s.tbl.Value("nop", features.ColDegree)
	s.ErrorIs(err, features.ErrUnknownRow)
	_, err = s.tbl.Column("pagerank")
	s.ErrorIs(err, features.ErrUnknownColumn)
}

func (s *TableSuite) TestSetErrors() {
	s.ErrorIs(s.tbl.Set("pagerank", []float64{1, 2, 3}), features.ErrUnknownColumn)
	s.ErrorIs(s.tbl.Set(features.ColDegree, []float64{1}), features.ErrColumnLength)

	s.tbl.Freeze()
	s.True(s.tbl.Frozen())
	s.ErrorIs(s.tbl.Set(features.ColDegree, []float64{1, 2, 3}), features.ErrFrozen)
}

func (s *TableSuite) TestColumnIsCopy() {
	s.Require().NoError(s.tbl.Set(features.ColDegree, []float64{1, 2, 1}))
	col, err := s.tbl.Column(features.ColDegree)
	s.Require().NoError(err)
	col[0] = 99

	v, _ := s.tbl.Value("mov", features.ColDegree)
	s.Equal(1.0, v)
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func TestCompute_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := features.Compute(ctx, nil, nil)
	assert.ErrorIs(t, err, features.ErrNilGraph)

	_, _, err = features.Compute(ctx, core.NewGraph(), nil)
	assert.ErrorIs(t, err, features.ErrEmptyGraph)

	g := mustSequence(t, "a", "b")
	_, _, err = features.Compute(ctx, g, mustSequence(t, "b", "a"))
	assert.ErrorIs(t, err, features.ErrViewMismatch)

	// Same vertices, different edges.
	loop := mustSequence(t, "a", "b", "a")
	_, _, err = features.Compute(ctx, loop, g)
	assert.ErrorIs(t, err, features.ErrViewMismatch)
	_, _, err = features.Compute(ctx, g, loop.Unweighted())
	assert.ErrorIs(t, err, features.ErrViewMismatch)
	swapped := core.NewGraph()
	require.NoError(t, swapped.AddVertex("a", 1))
	require.NoError(t, swapped.AddVertex("b", 1))
	require.NoError(t, swapped.AddEdge("b", "a", 1))
	_, _, err = features.Compute(ctx, g, swapped)
	assert.ErrorIs(t, err, features.ErrViewMismatch)

	_, _, err = features.Compute(ctx, g, nil, features.WithEigenMaxIterations(0))
	assert.ErrorIs(t, err, features.ErrOptionViolation)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = features.Compute(canceled, g, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_TwoSymbolLoop(t *testing.T) {
	// a→b (2), b→a (1)
	g := mustSequence(t, "a", "b", "a", "b")

	tbl, warnings, err := features.Compute(context.Background(), g, g.Unweighted())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"a", "b"}, tbl.Rows())

	assert.Equal(t, []float64{2, 2}, mustColumn(t, tbl, features.ColNodeWeight))
	assert.Equal(t, []float64{1, 1}, mustColumn(t, tbl, features.ColInDegree))
	assert.Equal(t, []float64{1, 1}, mustColumn(t, tbl, features.ColOutDegree))
	assert.Equal(t, []float64{2, 2}, mustColumn(t, tbl, features.ColDegree))

	assert.InDeltaSlice(t, []float64{1, 1}, mustColumn(t, tbl, features.ColClosenessWtd), eps)
	assert.InDeltaSlice(t, []float64{1, 0.5}, mustColumn(t, tbl, features.ColInClosenessWtd), eps)
	assert.InDeltaSlice(t, []float64{0.5, 1}, mustColumn(t, tbl, features.ColOutClosenessWtd), eps)
	assert.InDeltaSlice(t, []float64{1, 1}, mustColumn(t, tbl, features.ColInClosenessUnwtd), eps)

	assert.Equal(t, []float64{0, 0}, mustColumn(t, tbl, features.ColBetweennessWtd))
	assert.Equal(t, []float64{0, 0}, mustColumn(t, tbl, features.ColBetweennessUnwtd))

	// Principal eigenvector of [[1,1],[2,1]] is (1, √2).
	assert.InDeltaSlice(t, []float64{1 / math.Sqrt(3), math.Sqrt(2) / math.Sqrt(3)},
		mustColumn(t, tbl, features.ColInfluenceWtd), 1e-4)
	assert.InDeltaSlice(t, []float64{1 / math.Sqrt2, 1 / math.Sqrt2},
		mustColumn(t, tbl, features.ColInfluenceUnwtd), 1e-4)

	// One successor each: no triads.
	assert.Equal(t, []float64{0, 0}, mustColumn(t, tbl, features.ColClustering))
	assert.Zero(t, tbl.NullCount())
}

func TestCompute_Normalized(t *testing.T) {
	g := mustSequence(t, "a", "b", "a", "b")
	tbl, _, err := features.Compute(context.Background(), g, nil, features.WithNormalized(true))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1 / math.Sqrt2, 1},
		mustColumn(t, tbl, features.ColInfluenceWtd), 1e-4)
}

func TestCompute_WarningsBecomeNaN(t *testing.T) {
	// a→b (2), b→a, b→c, c→a: no uniform eigenvector, one iteration is not enough.
	g := mustSequence(t, "a", "b", "a", "b", "c", "a")
	tbl, warnings, err := features.Compute(context.Background(), g, nil, features.WithEigenMaxIterations(1))
	require.NoError(t, err)

	require.Len(t, warnings, 2)
	assert.Equal(t, features.ColInfluenceWtd, warnings[0].Column)
	assert.Equal(t, features.ColInfluenceUnwtd, warnings[1].Column)
	for _, w := range warnings {
		assert.ErrorIs(t, w, centrality.ErrNotConverged)
	}
	for _, v := range mustColumn(t, tbl, features.ColInfluenceWtd) {
		assert.True(t, math.IsNaN(v))
	}
	assert.Equal(t, 6, tbl.NullCount())
}

func TestCompute_AcyclicInfluenceIsZero(t *testing.T) {
	g := mustSequence(t, "push", "mov", "call", "ret")
	tbl, warnings, err := features.Compute(context.Background(), g, nil)
	require.NoError(t, err)

	require.Len(t, warnings, 2)
	assert.Equal(t, features.ColInfluenceWtd, warnings[0].Column)
	assert.Equal(t, features.ColInfluenceUnwtd, warnings[1].Column)
	for _, w := range warnings {
		assert.ErrorIs(t, w, centrality.ErrAcyclic)
	}
	assert.Equal(t, []float64{0, 0, 0, 0}, mustColumn(t, tbl, features.ColInfluenceWtd))
	assert.Equal(t, []float64{0, 0, 0, 0}, mustColumn(t, tbl, features.ColInfluenceUnwtd))
}

func TestCompute_ChainedCyclesInfluence(t *testing.T) {
	g := mustSequence(t, "a", "b", "a", "b", "c", "d", "c", "d")
	tbl, warnings, err := features.Compute(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.InDeltaSlice(t, []float64{0, 0, 1 / math.Sqrt(3), math.Sqrt(2) / math.Sqrt(3)},
		mustColumn(t, tbl, features.ColInfluenceWtd), 1e-5)
	assert.InDeltaSlice(t, []float64{0, 0, 1 / math.Sqrt2, 1 / math.Sqrt2},
		mustColumn(t, tbl, features.ColInfluenceUnwtd), 1e-9)

	// (a b c a b c d e d e f): {d,e} dominates unweighted and feeds f.
	g = mustSequence(t, "a", "b", "c", "a", "b", "c", "d", "e", "d", "e", "f")
	tbl, warnings, err = features.Compute(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	s := 1 / math.Sqrt(3)
	assert.InDeltaSlice(t, []float64{0, 0, 0, s, s, s},
		mustColumn(t, tbl, features.ColInfluenceUnwtd), 1e-9)
}

func TestCompute_SingleVertex(t *testing.T) {
	g := mustSequence(t, "nop")
	tbl, warnings, err := features.Compute(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	v, _ := tbl.Value("nop", features.ColNodeWeight)
	assert.Equal(t, 1.0, v)
	v, _ = tbl.Value("nop", features.ColClosenessWtd)
	assert.True(t, math.IsNaN(v))
	v, _ = tbl.Value("nop", features.ColInfluenceUnwtd)
	assert.Equal(t, 1.0, v)
	v, _ = tbl.Value("nop", features.ColClustering)
	assert.Zero(t, v)
}

func TestDistanceMatrix(t *testing.T) {
	g := mustSequence(t, "a", "b", "c")
	inf := math.Inf(1)

	m, err := features.DistanceMatrix(g, core.Out)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {inf, 0, 1}, {inf, inf, 0}}, m)

	m, err = features.DistanceMatrix(g, core.All)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}, m)

	_, err = features.DistanceMatrix(nil, core.Out)
	assert.ErrorIs(t, err, features.ErrNilGraph)
}
