package features

import (
	"fmt"
	"math"

	"github.com/katalvlaran/opgraph/bfs"
	"github.com/katalvlaran/opgraph/core"
)

// DistanceMatrix returns the hop-count distance between every ordered pair of
// vertices along dir, rows and columns in g.Vertices() order. Unreachable
// pairs are +Inf; the diagonal is 0.
//
// Complexity: V breadth-first searches, O(V·(V+E)) time, O(V²) memory.
func DistanceMatrix(g *core.Graph, dir core.Direction) ([][]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	names := g.Vertices()
	m := make([][]float64, len(names))
	for i, src := range names {
		res, err := bfs.BFS(g, src, bfs.WithDirection(dir))
		if err != nil {
			return nil, fmt.Errorf("features: distances from %q: %w", src, err)
		}
		row := make([]float64, len(names))
		for j, dst := range names {
			d, ok := res.Depth[dst]
			if !ok {
				row[j] = math.Inf(1)
				continue
			}
			row[j] = float64(d)
		}
		m[i] = row
	}

	return m, nil
}
