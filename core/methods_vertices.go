// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-insertion order.
//
// Concurrency:
//   - Vertex catalog protected by mu.
package core

import "fmt"

// AddVertex inserts a vertex if missing and adds weight to its stored weight.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID) and weight >= 0 (ErrNegativeWeight).
//   - Stage 2: Under write lock, register the vertex at the end of the order if missing.
//   - Stage 3: Accumulate weight.
//
// Behavior highlights:
//   - AddVertex(id, 0) on an existing vertex is a no-op.
//   - Repeated calls accumulate: this is the vertex half of "combine by sum".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, weight int64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: vertex %q weight=%d", ErrNegativeWeight, id, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.ensureVertex(id)
	g.weights[i] += weight

	return nil
}

// ensureVertex returns the index of id, registering it when missing.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.names)
	g.index[id] = i
	g.names = append(g.names, id)
	g.weights = append(g.weights, 0)
	g.succ = append(g.succ, nil)
	g.pred = append(g.pred, nil)

	return i
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Index returns the position of id in Vertices().
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// VertexWeight returns the accumulated weight of a vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) VertexWeight(id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return g.weights[i], nil
}

// Vertices returns all vertex IDs in first-insertion order.
//
// Every per-vertex vector produced downstream (feature columns, centrality
// scores) is aligned to this order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// VertexWeights returns vertex weights aligned to Vertices().
func (g *Graph) VertexWeights() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int64, len(g.weights))
	copy(out, g.weights)

	return out
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// TotalVertexWeight returns the sum of all vertex weights.
// Complexity: O(V).
func (g *Graph) TotalVertexWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for _, w := range g.weights {
		sum += w
	}

	return sum
}

// InDegree returns the number of distinct edges entering id.
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return len(g.pred[i]), nil
}

// OutDegree returns the number of distinct edges leaving id.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return len(g.succ[i]), nil
}

// Degree returns InDegree + OutDegree.
//
// Academic policy:
//   - A self-loop (id → id) contributes +1 to in, +1 to out, hence +2 here.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return len(g.pred[i]) + len(g.succ[i]), nil
}

// lookup resolves id to its index. Caller must hold a lock.
func (g *Graph) lookup(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return i, nil
}
