package builder_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgraph/builder"
	"github.com/katalvlaran/opgraph/core"
)

// randomSequence returns a deterministic pseudo-random opcode trace.
func randomSequence(r *rand.Rand, n, alphabet int) []string {
	seq := make([]string, n)
	for i := range seq {
		seq[i] = fmt.Sprintf("op%d", r.Intn(alphabet))
	}

	return seq
}

func TestTransitions_WrapThenDrop(t *testing.T) {
	got := builder.Transitions([]string{"a", "b", "a", "b"})
	assert.Equal(t, []core.EdgeKey{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
		{From: "a", To: "b"},
	}, got)

	assert.Empty(t, builder.Transitions([]string{"a"}))
	assert.Nil(t, builder.Transitions(nil))
}

func TestSequence_ABAB(t *testing.T) {
	g, err := builder.Sequence([]string{"a", "b", "a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, []int64{2, 2}, g.VertexWeights())
	assert.Equal(t, []core.Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "b", To: "a", Weight: 1},
	}, g.Edges())
}

func TestSequence_SingleSymbol(t *testing.T) {
	g, err := builder.Sequence([]string{"nop"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nop"}, g.Vertices())
	assert.Equal(t, []int64{1}, g.VertexWeights())
	assert.Zero(t, g.EdgeCount())
}

func TestSequence_SelfLoop(t *testing.T) {
	g, err := builder.Sequence([]string{"push", "push", "push", "ret"})
	require.NoError(t, err)
	w, err := g.EdgeWeight("push", "push")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	assert.False(t, g.HasEdge("ret", "push"), "wrapped pair must be dropped")
}

func TestSequence_Errors(t *testing.T) {
	_, err := builder.Sequence(nil)
	assert.ErrorIs(t, err, builder.ErrEmptySequence)

	_, err = builder.Sequence([]string{"mov", "", "ret"})
	assert.ErrorIs(t, err, builder.ErrEmptySymbol)
}

// TestSequence_WeightConservation checks Σ vertex weights = n and
// Σ edge weights = n-1 over many random traces.
func TestSequence_WeightConservation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(300)
		seq := randomSequence(r, n, 1+r.Intn(20))
		g, err := builder.Sequence(seq)
		require.NoError(t, err)

		st := g.Stats()
		require.Equal(t, int64(n), st.TotalVertexWeight, "trial %d", trial)
		require.Equal(t, int64(n-1), st.TotalEdgeWeight, "trial %d", trial)
	}
}

func TestFamily_OrderAndErrors(t *testing.T) {
	seqs := [][]string{
		{"a", "b"},
		{"c"},
		{"d", "d", "e"},
	}
	graphs, err := builder.Family(context.Background(), seqs, builder.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, graphs, 3)
	assert.Equal(t, []string{"a", "b"}, graphs[0].Vertices())
	assert.Equal(t, []string{"c"}, graphs[1].Vertices())
	assert.Equal(t, []string{"d", "e"}, graphs[2].Vertices())

	_, err = builder.Family(context.Background(), [][]string{{"a"}, {}}, builder.WithWorkers(2))
	assert.ErrorIs(t, err, builder.ErrEmptySequence)

	_, err = builder.Family(context.Background(), seqs, builder.WithWorkers(-1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestFamily_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := builder.Family(ctx, [][]string{{"a"}, {"b"}})
	assert.ErrorIs(t, err, context.Canceled)
}
