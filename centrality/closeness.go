package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/opgraph/core"
)

// Closeness returns, for every vertex v in g.Vertices() order, the inverse of
// the summed shortest-path distance between v and the vertices it reaches
// along Direction. Unreachable vertices are left out of the sum.
//
// Behavior highlights:
//   - No reachable vertex: NaN.
//   - WithNormalized: the score is multiplied by the number of reached vertices
//     (inverse mean distance).
//   - All distances zero (zero-weight edges only): +Inf.
//
// Complexity: V single-source searches.
func Closeness(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	names := g.Vertices()
	out := make([]float64, len(names))
	for i, v := range names {
		sp, err := shortestPaths(g, v, o.Direction, o)
		if err != nil {
			return nil, fmt.Errorf("centrality: closeness from %q: %w", v, err)
		}

		var sum float64
		reached := 0
		for u, d := range sp.dist {
			if u == v {
				continue
			}
			sum += d
			reached++
		}

		switch {
		case reached == 0:
			out[i] = math.NaN()
		default:
			out[i] = 1 / sum
			if o.Normalized {
				out[i] *= float64(reached)
			}
		}
	}

	return out, nil
}
