package centrality

import (
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// Betweenness returns the directed betweenness of every vertex: the sum over
// ordered pairs (s,t), s≠v≠t, of the fraction of shortest s→t paths passing
// through v.
//
// Implementation (Brandes):
//   - Stage 1: For each source s, run a single-source search (bfs or dijkstra)
//     yielding the settle order, path counts σ and predecessor lists.
//   - Stage 2: Walk the order backwards, pushing dependency
//     δ(u) += σ(u)/σ(w)·(1+δ(w)) to every predecessor u of w.
//   - Stage 3: Add δ(w) to the score of every w ≠ s.
//   - WithNormalized divides by (n-1)(n-2) when n > 2.
//
// Complexity: O(V·E) unweighted, O(V·E·log V) weighted; memory O(V+E).
func Betweenness(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	names := g.Vertices()
	score := make(map[string]float64, len(names))
	for _, s := range names {
		sp, err := shortestPaths(g, s, core.Out, o)
		if err != nil {
			return nil, fmt.Errorf("centrality: betweenness from %q: %w", s, err)
		}

		delta := make(map[string]float64, len(sp.order))
		for i := len(sp.order) - 1; i >= 0; i-- {
			w := sp.order[i]
			coeff := (1 + delta[w]) / sp.sigma[w]
			for _, u := range sp.parents[w] {
				delta[u] += sp.sigma[u] * coeff
			}
			if w != s {
				score[w] += delta[w]
			}
		}
	}

	out := make([]float64, len(names))
	n := float64(len(names))
	for i, v := range names {
		out[i] = score[v]
		if o.Normalized && len(names) > 2 {
			out[i] /= (n - 1) * (n - 2)
		}
	}

	return out, nil
}
