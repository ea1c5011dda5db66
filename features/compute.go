package features

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/opgraph/centrality"
	"github.com/katalvlaran/opgraph/core"
)

// Warning records a column whose algorithm reported a problem. The column is
// left NaN unless the algorithm returned scores with its error, as the
// all-zero influence of an acyclic graph.
type Warning struct {
	Column string
	Err    error
}

// Error implements error.
func (w Warning) Error() string {
	return fmt.Sprintf("features: column %q: %v", w.Column, w.Err)
}

// Unwrap returns the underlying algorithm error.
func (w Warning) Unwrap() error { return w.Err }

// step computes one column.
type step struct {
	col string
	fn  func() ([]float64, error)
}

// Compute builds the FeatureTable of g.
//
// g supplies accumulated weights for the weighted columns; simple is the
// unit-weight view used for the unweighted columns and for the clustering
// coefficient. A nil simple is derived with g.Unweighted().
//
// Implementation:
//   - Stage 1: Validate inputs, allocate an all-NaN table.
//   - Stage 2: node-weight and degree columns straight from the graph.
//   - Stage 3: closeness (all/in/out), betweenness and first-order influence,
//     each weighted on g and unweighted on simple.
//   - Stage 4: clustering coefficient from simple's successor sets.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph, ErrViewMismatch, ErrOptionViolation.
//   - ctx.Err() if the context ends between columns.
//
// Algorithm failures are returned as Warnings, never as the error.
func Compute(ctx context.Context, g, simple *core.Graph, opts ...Option) (*Table, []Warning, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, nil, ErrEmptyGraph
	}
	if simple == nil {
		simple = g.Unweighted()
	}
	if err := sameShape(g, simple); err != nil {
		return nil, nil, err
	}

	t, err := NewTable(g)
	if err != nil {
		return nil, nil, err
	}

	names := g.Vertices()
	weights := g.VertexWeights()
	nodeWeight := make([]float64, len(names))
	in := make([]float64, len(names))
	out := make([]float64, len(names))
	deg := make([]float64, len(names))
	for i, v := range names {
		nodeWeight[i] = float64(weights[i])
		di, _ := g.InDegree(v)
		do, _ := g.OutDegree(v)
		in[i], out[i], deg[i] = float64(di), float64(do), float64(di+do)
	}
	for col, vals := range map[string][]float64{
		ColNodeWeight: nodeWeight,
		ColInDegree:   in,
		ColOutDegree:  out,
		ColDegree:     deg,
	} {
		if err = t.Set(col, vals); err != nil {
			return nil, nil, err
		}
	}

	base := []centrality.Option{
		centrality.WithContext(ctx),
		centrality.WithNormalized(o.Normalized),
	}
	wtd := append(slices.Clone(base), centrality.WithWeighted(true))
	unwtd := append(slices.Clone(base), centrality.WithWeighted(false))
	closeness := func(h *core.Graph, variant []centrality.Option, dir core.Direction) func() ([]float64, error) {
		return func() ([]float64, error) {
			return centrality.Closeness(h, append(slices.Clone(variant), centrality.WithDirection(dir))...)
		}
	}
	influence := func(h *core.Graph, variant []centrality.Option) func() ([]float64, error) {
		return func() ([]float64, error) {
			return centrality.Eigenvector(h, append(slices.Clone(variant),
				centrality.WithScale(o.Normalized),
				centrality.WithMaxIterations(o.EigenMaxIterations),
				centrality.WithTolerance(o.EigenTolerance),
			)...)
		}
	}

	steps := []step{
		{ColClosenessWtd, closeness(g, wtd, core.All)},
		{ColInClosenessWtd, closeness(g, wtd, core.In)},
		{ColOutClosenessWtd, closeness(g, wtd, core.Out)},
		{ColClosenessUnwtd, closeness(simple, unwtd, core.All)},
		{ColInClosenessUnwtd, closeness(simple, unwtd, core.In)},
		{ColOutClosenessUnwtd, closeness(simple, unwtd, core.Out)},
		{ColBetweennessWtd, func() ([]float64, error) { return centrality.Betweenness(g, wtd...) }},
		{ColBetweennessUnwtd, func() ([]float64, error) { return centrality.Betweenness(simple, unwtd...) }},
		{ColInfluenceWtd, influence(g, wtd)},
		{ColInfluenceUnwtd, influence(simple, unwtd)},
		{ColClustering, func() ([]float64, error) { return centrality.LocalTransitivity(simple) }},
	}

	var warnings []Warning
	for _, s := range steps {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}

		vals, err := s.fn()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			warnings = append(warnings, Warning{Column: s.col, Err: err})
			if vals == nil {
				continue
			}
		}
		if err = t.Set(s.col, vals); err != nil {
			warnings = append(warnings, Warning{Column: s.col, Err: err})
		}
	}

	return t, warnings, nil
}

// sameShape reports ErrViewMismatch unless simple has g's vertices, in the
// same order, and exactly g's edge set.
func sameShape(g, simple *core.Graph) error {
	if !slices.Equal(g.Vertices(), simple.Vertices()) {
		return fmt.Errorf("%w: vertices differ", ErrViewMismatch)
	}
	if g.EdgeCount() != simple.EdgeCount() {
		return fmt.Errorf("%w: %d edges, simple view has %d", ErrViewMismatch, g.EdgeCount(), simple.EdgeCount())
	}
	for _, e := range g.Edges() {
		if !simple.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: simple view lacks %s→%s", ErrViewMismatch, e.From, e.To)
		}
	}

	return nil
}
