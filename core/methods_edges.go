// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in first-insertion order of their (From,To) key.
//
// Concurrency:
//   - Edge catalog and adjacency protected by mu.
package core

import "fmt"

// AddEdge inserts the directed edge from→to or, when it already exists, adds
// weight to the stored edge.
//
// Implementation:
//   - Stage 1: Validate IDs and weight >= 0.
//   - Stage 2: Under write lock, resolve both endpoints (ErrVertexNotFound).
//   - Stage 3: New key: record order, successor and predecessor links.
//     Existing key: accumulate weight only.
//
// Behavior highlights:
//   - Parallel edges never exist in storage: a second AddEdge(from,to,w)
//     is the "simplify, combine by sum" step.
//   - Self-loops are accepted.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeWeight.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fi, err := g.lookup(from)
	if err != nil {
		return err
	}
	ti, err := g.lookup(to)
	if err != nil {
		return err
	}

	key := EdgeKey{From: from, To: to}
	if _, exists := g.edges[key]; !exists {
		g.edgeOrder = append(g.edgeOrder, key)
		g.succ[fi] = append(g.succ[fi], ti)
		g.pred[ti] = append(g.pred[ti], fi)
	}
	g.edges[key] += weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[EdgeKey{From: from, To: to}]

	return ok
}

// EdgeWeight returns the accumulated weight of from→to.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) EdgeWeight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.edges[EdgeKey{From: from, To: to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Edges returns a snapshot of all edges in first-insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, Edge{From: k.From, To: k.To, Weight: g.edges[k]})
	}

	return out
}

// EdgeCount returns the number of distinct (From,To) edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// TotalEdgeWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalEdgeWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for _, w := range g.edges {
		sum += w
	}

	return sum
}
