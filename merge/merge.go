package merge

import (
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// Accumulator holds running vertex and edge weight sums keyed by identity.
//
// The zero value is not usable; call NewAccumulator.
type Accumulator struct {
	vertexOrder []string
	vertices    map[string]int64

	edgeOrder []core.EdgeKey
	edges     map[core.EdgeKey]int64

	members     int
	vertexTotal int64
	edgeTotal   int64
	vertexSlots int
	edgeSlots   int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		vertices: make(map[string]int64),
		edges:    make(map[core.EdgeKey]int64),
	}
}

// Add folds one member graph into the running sums.
//
// Implementation:
//   - Stage 1: For every vertex of g (in g's order), add its weight to the
//     running sum of that name; an unseen name starts at 0.
//   - Stage 2: Same for every edge, keyed by (From,To).
//   - Stage 3: Record g's own totals for the conservation check.
//
// Complexity: O(V_g + E_g).
func (a *Accumulator) Add(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	names := g.Vertices()
	weights := g.VertexWeights()
	if len(names) != len(weights) {
		return fmt.Errorf("%w: %d vertices but %d weights", ErrAlignment, len(names), len(weights))
	}
	for i, name := range names {
		if _, seen := a.vertices[name]; !seen {
			a.vertexOrder = append(a.vertexOrder, name)
		}
		a.vertices[name] += weights[i]
		a.vertexTotal += weights[i]
	}

	edges := g.Edges()
	for _, e := range edges {
		k := e.Key()
		if _, seen := a.edges[k]; !seen {
			a.edgeOrder = append(a.edgeOrder, k)
		}
		a.edges[k] += e.Weight
		a.edgeTotal += e.Weight
	}

	a.members++
	a.vertexSlots += len(names)
	a.edgeSlots += len(edges)

	return nil
}

// Graph materializes the union graph and verifies conservation.
//
// Errors:
//   - ErrNoGraphs: nothing was added.
//   - ErrAlignment: totals or catalog sizes disagree with the members.
func (a *Accumulator) Graph() (*core.Graph, error) {
	if a.members == 0 {
		return nil, ErrNoGraphs
	}

	u := core.NewGraph()
	for _, name := range a.vertexOrder {
		if err := u.AddVertex(name, a.vertices[name]); err != nil {
			return nil, fmt.Errorf("merge: AddVertex(%q): %w", name, err)
		}
	}
	for _, k := range a.edgeOrder {
		if err := u.AddEdge(k.From, k.To, a.edges[k]); err != nil {
			return nil, fmt.Errorf("merge: AddEdge(%q,%q): %w", k.From, k.To, err)
		}
	}

	if err := a.verify(u); err != nil {
		return nil, err
	}

	return u, nil
}

// verify checks the union against the recorded member totals.
func (a *Accumulator) verify(u *core.Graph) error {
	st := u.Stats()
	switch {
	case st.TotalVertexWeight != a.vertexTotal:
		return fmt.Errorf("%w: vertex weight %d, members sum to %d", ErrAlignment, st.TotalVertexWeight, a.vertexTotal)
	case st.TotalEdgeWeight != a.edgeTotal:
		return fmt.Errorf("%w: edge weight %d, members sum to %d", ErrAlignment, st.TotalEdgeWeight, a.edgeTotal)
	case st.VertexCount > a.vertexSlots:
		return fmt.Errorf("%w: %d union vertices from %d member vertices", ErrAlignment, st.VertexCount, a.vertexSlots)
	case st.EdgeCount > a.edgeSlots:
		return fmt.Errorf("%w: %d union edges from %d member edges", ErrAlignment, st.EdgeCount, a.edgeSlots)
	}

	return nil
}

// Merge returns the union graph of graphs with summed vertex and edge weights.
//
// Preconditions:
//  1. At least one graph (ErrNoGraphs).
//  2. No nil graph (ErrNilGraph, with the member index as context).
//
// Complexity:
//   - Time O(Σ (V_i + E_i)), Space O(V_union + E_union).
func Merge(graphs ...*core.Graph) (*core.Graph, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	acc := NewAccumulator()
	for i, g := range graphs {
		if err := acc.Add(g); err != nil {
			return nil, fmt.Errorf("merge: member %d: %w", i, err)
		}
	}

	return acc.Graph()
}
