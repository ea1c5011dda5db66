package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgraph/bfs"
	"github.com/katalvlaran/opgraph/core"
)

// buildGraph creates a graph from edge pairs with unit weights.
func buildGraph(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e[0], 1))
		require.NoError(t, g.AddVertex(e[1], 1))
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// diamond: A→B, A→C, B→D, C→D, D→E.
func diamond(t *testing.T) *core.Graph {
	return buildGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}})
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := diamond(t)
	_, err = bfs.BFS(g, "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithDirection(core.Direction(9)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthOrderAndSigma(t *testing.T) {
	res, err := bfs.BFS(diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}, res.Depth)
	assert.Equal(t, map[string]float64{"A": 1, "B": 1, "C": 1, "D": 2, "E": 2}, res.Sigma)
	assert.Equal(t, []string{"B", "C"}, res.Parents["D"])
	assert.Equal(t, "B", res.Parent["D"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)
}

func TestBFS_Directions(t *testing.T) {
	g := diamond(t)

	in, err := bfs.BFS(g, "D", bfs.WithDirection(core.In))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"D": 0, "B": 1, "C": 1, "A": 2}, in.Depth)

	all, err := bfs.BFS(g, "E", bfs.WithDirection(core.All))
	require.NoError(t, err)
	assert.Len(t, all.Depth, 5)
	assert.Equal(t, 3, all.Depth["A"])

	out, err := bfs.BFS(g, "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, out.Order)

	_, err = out.PathTo("A")
	assert.Error(t, err)
}

func TestBFS_SelfLoopIgnored(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "A"}, {"A", "B"}})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(1), res.Sigma["A"])
	assert.Empty(t, res.Parents["A"])
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := diamond(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)
	assert.Equal(t, float64(1), res.Sigma["D"])
}

func TestBFS_HooksAndCancel(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
