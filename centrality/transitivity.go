package centrality

import (
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// Transitivity returns the fraction of closed successor-triads in g.
//
// For every vertex u let S(u) be its successors without u itself. Each ordered
// pair (w, x) with w, x ∈ S(u), w ≠ x, is a triad; it is closed when x ∈ S(w).
//
//	T = Σ_u Σ_{w∈S(u)} |S(u) ∩ S(w)|  /  Σ_u |S(u)|·(|S(u)|-1)
//
// A graph without triads scores 0.
//
// Complexity: O(Σ_u |S(u)|·Δ).
func Transitivity(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	succ := make(map[string]map[string]struct{}, g.VertexCount())
	for _, v := range g.Vertices() {
		s, err := g.Successors(v)
		if err != nil {
			return 0, fmt.Errorf("centrality: transitivity: %w", err)
		}
		set := make(map[string]struct{}, len(s))
		for _, w := range s {
			if w != v {
				set[w] = struct{}{}
			}
		}
		succ[v] = set
	}

	var closed, triads float64
	for _, su := range succ {
		d := float64(len(su))
		triads += d * (d - 1)
		for w := range su {
			for x := range succ[w] {
				if _, ok := su[x]; ok {
					closed++
				}
			}
		}
	}
	if triads == 0 {
		return 0, nil
	}

	return closed / triads, nil
}

// LocalTransitivity returns, for every vertex v, the Transitivity of the
// subgraph induced by the successors of v (v excluded).
func LocalTransitivity(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	names := g.Vertices()
	out := make([]float64, len(names))
	for i, v := range names {
		s, err := g.Successors(v)
		if err != nil {
			return nil, fmt.Errorf("centrality: local transitivity of %q: %w", v, err)
		}
		ids := s[:0:0]
		for _, w := range s {
			if w != v {
				ids = append(ids, w)
			}
		}

		sub, err := g.Subgraph(ids)
		if err != nil {
			return nil, fmt.Errorf("centrality: local transitivity of %q: %w", v, err)
		}
		if out[i], err = Transitivity(sub); err != nil {
			return nil, err
		}
	}

	return out, nil
}
