package centrality

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/opgraph/core"
	"github.com/katalvlaran/opgraph/dfs"
)

// inArc is one weighted in-edge u→v, stored at v.
type inArc struct {
	from int
	w    float64
}

// spectral is the indexed (A+I)ᵀ of one graph.
type spectral struct {
	o    Options
	in   [][]inArc
	comp []int // vertex → component
}

// Eigenvector returns the eigenvector (first-order influence) centrality of
// every vertex: a non-negative principal eigenvector x of (A+I)ᵀ, where
// A[u][v] is the weight of u→v (1 when unweighted), so that
//
//	λ·x[v] = x[v] + Σ_{u→v} A[u][v]·x[u],  λ = 1 + ρ(A).
//
// Implementation:
//   - Stage 1: dfs.TopologicalSort; an acyclic graph has ρ(A) = 0 and every
//     score is 0 (returned together with ErrAcyclic).
//   - Stage 2: dfs.StronglyConnected; per component, power iteration on its
//     block gives the spectral radius ρ_C and the block's Perron vector.
//     Iteration stops once ‖Mx − λx‖₂ ≤ Tolerance·λ.
//   - Stage 3: Components with ρ_C = ρ(A) (within √Tolerance) are dominant.
//     Among them keep those ending the longest chain of dominant components,
//     so no dominant component lies downstream of a kept one.
//   - Stage 4: Seed the kept components with their Perron vectors and solve
//     (ρ(A)·I − A_Cᵀ)x_C = inflow for every component they reach, in
//     topological order. Everything else scores 0.
//   - Stage 5: Normalize to unit Euclidean length, or with Scale to max 1.
//
// Behavior highlights:
//   - Empty graph: empty slice.
//   - No edges: every vertex scores 1.
//   - Acyclic: all-zero slice and ErrAcyclic.
//   - No convergence within MaxIterations: all-NaN slice and ErrNotConverged.
//
// Complexity: O(V+E) for the decomposition plus O(iterations·E) per stage 2/4 solve.
func Eigenvector(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	if n == 0 {
		return []float64{}, nil
	}
	if g.EdgeCount() == 0 {
		return filled(n, 1), nil
	}

	_, err = dfs.TopologicalSort(g, dfs.WithContext(o.Ctx))
	switch {
	case err == nil:
		return filled(n, 0), ErrAcyclic
	case !errors.Is(err, dfs.ErrCycleDetected):
		return nil, err
	}
	comps, err := dfs.StronglyConnected(g, dfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	s := newSpectral(g, comps, o)
	members := make([][]int, len(comps))
	for c, names := range comps {
		for _, name := range names {
			i, _ := g.Index(name)
			members[c] = append(members[c], i)
		}
	}

	// Stage 2.
	radius := make([]float64, len(comps))
	perron := make([][]float64, len(comps))
	top := 0.0
	for c, vs := range members {
		if radius[c], perron[c], err = s.perron(c, vs); err != nil {
			return filled(n, math.NaN()), err
		}
		top = math.Max(top, radius[c])
	}
	if top == 0 {
		return filled(n, 0), ErrAcyclic
	}

	// Stage 3.
	slack := math.Sqrt(o.Tolerance) * (1 + top)
	dominant := func(c int) bool { return radius[c] >= top-slack }
	depth := make([]int, len(comps))
	deepest := 0
	for c, vs := range members {
		for _, v := range vs {
			for _, a := range s.in[v] {
				if p := s.comp[a.from]; p != c {
					depth[c] = max(depth[c], depth[p])
				}
			}
		}
		if dominant(c) {
			depth[c]++
			deepest = max(deepest, depth[c])
		}
	}

	// Stage 4.
	x := make([]float64, n)
	for c, vs := range members {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if dominant(c) && depth[c] == deepest {
			for k, v := range vs {
				x[v] = perron[c][k]
			}
			continue
		}
		if err = s.propagate(x, c, vs, top); err != nil {
			return filled(n, math.NaN()), err
		}
	}

	// Stage 5.
	norm := 0.0
	for _, v := range x {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	for i := range x {
		x[i] /= norm
	}

	return finish(x, o.Scale), nil
}

func newSpectral(g *core.Graph, comps [][]string, o Options) *spectral {
	n := g.VertexCount()
	s := &spectral{o: o, in: make([][]inArc, n), comp: make([]int, n)}
	for c, names := range comps {
		for _, name := range names {
			i, _ := g.Index(name)
			s.comp[i] = c
		}
	}
	for _, e := range g.Edges() {
		fi, _ := g.Index(e.From)
		ti, _ := g.Index(e.To)
		w := 1.0
		if o.Weighted {
			w = float64(e.Weight)
		}
		s.in[ti] = append(s.in[ti], inArc{from: fi, w: w})
	}

	return s
}

// perron returns ρ of component c's block of A and its unit Perron vector,
// listed in vs order.
func (s *spectral) perron(c int, vs []int) (float64, []float64, error) {
	if len(vs) == 1 {
		loop := 0.0
		for _, a := range s.in[vs[0]] {
			if a.from == vs[0] {
				loop += a.w
			}
		}
		return loop, []float64{1}, nil
	}

	pos := make(map[int]int, len(vs))
	for k, v := range vs {
		pos[v] = k
	}
	x := filled(len(vs), 1/math.Sqrt(float64(len(vs))))
	y := make([]float64, len(vs))

	for iter := 0; iter < s.o.MaxIterations; iter++ {
		if iter%64 == 0 {
			if err := s.o.Ctx.Err(); err != nil {
				return 0, nil, err
			}
		}

		// y = (A_C+I)ᵀx
		for k, v := range vs {
			y[k] = x[k]
			for _, a := range s.in[v] {
				if s.comp[a.from] == c {
					y[k] += a.w * x[pos[a.from]]
				}
			}
		}

		lambda, residual, norm := 0.0, 0.0, 0.0
		for k := range y {
			lambda += x[k] * y[k]
		}
		for k := range y {
			d := y[k] - lambda*x[k]
			residual += d * d
			norm += y[k] * y[k]
		}
		if math.Sqrt(residual) <= s.o.Tolerance*lambda {
			return lambda - 1, x, nil
		}

		norm = math.Sqrt(norm)
		for k := range y {
			x[k] = y[k] / norm
		}
	}

	return 0, nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, s.o.MaxIterations)
}

// propagate solves (ρ·I − A_Cᵀ)x_C = b for component c, where b is the
// weight flowing in from already solved components. Without inflow x_C stays 0.
func (s *spectral) propagate(x []float64, c int, vs []int, rho float64) error {
	b := make([]float64, len(vs))
	inflow := false
	for k, v := range vs {
		for _, a := range s.in[v] {
			if s.comp[a.from] != c {
				b[k] += a.w * x[a.from]
			}
		}
		inflow = inflow || b[k] > 0
	}
	if !inflow {
		return nil
	}

	// Jacobi sweeps x ← (b + A_Cᵀx)/ρ, contracting since ρ(A_C) < ρ.
	for k, v := range vs {
		x[v] = b[k] / rho
	}
	next := make([]float64, len(vs))
	for iter := 0; iter < s.o.MaxIterations; iter++ {
		delta, norm := 0.0, 0.0
		for k, v := range vs {
			sum := b[k]
			for _, a := range s.in[v] {
				if s.comp[a.from] == c {
					sum += a.w * x[a.from]
				}
			}
			next[k] = sum / rho
			d := next[k] - x[v]
			delta += d * d
			norm += next[k] * next[k]
		}
		for k, v := range vs {
			x[v] = next[k]
		}
		if math.Sqrt(delta) <= s.o.Tolerance*math.Sqrt(norm) {
			return nil
		}
	}

	return fmt.Errorf("%w: component solve after %d iterations", ErrNotConverged, s.o.MaxIterations)
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// finish optionally rescales x to a maximum of 1.
func finish(x []float64, scale bool) []float64 {
	if !scale {
		return x
	}
	top := 0.0
	for _, v := range x {
		if v > top {
			top = v
		}
	}
	if top > 0 {
		for i := range x {
			x[i] /= top
		}
	}

	return x
}
