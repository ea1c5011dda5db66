// File: methods_clone.go
// Role: Deep copies and derived graphs (unit-weight view).
package core

// Clone returns a deep copy: same vertex order, vertex weights, edge order and
// edge weights. Mutating the clone never affects g.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Clone() *Graph {
	return g.derive(func(w int64) int64 { return w })
}

// Unweighted returns the "simple-graph view" of g: identical vertices, vertex
// weights and topology, but every edge weight is 1.
//
// Unweighted centrality variants and the clustering coefficient run on this
// view so that accumulated edge weights never leak into them.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Unweighted() *Graph {
	return g.derive(func(int64) int64 { return 1 })
}

// derive copies g while mapping every edge weight through fn.
func (g *Graph) derive(fn func(int64) int64) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		names:     make([]string, len(g.names)),
		index:     make(map[string]int, len(g.index)),
		weights:   make([]int64, len(g.weights)),
		edgeOrder: make([]EdgeKey, len(g.edgeOrder)),
		edges:     make(map[EdgeKey]int64, len(g.edges)),
		succ:      make([][]int, len(g.succ)),
		pred:      make([][]int, len(g.pred)),
	}
	copy(out.names, g.names)
	copy(out.weights, g.weights)
	copy(out.edgeOrder, g.edgeOrder)
	for id, i := range g.index {
		out.index[id] = i
	}
	for k, w := range g.edges {
		out.edges[k] = fn(w)
	}
	for i := range g.succ {
		out.succ[i] = append([]int(nil), g.succ[i]...)
		out.pred[i] = append([]int(nil), g.pred[i]...)
	}

	return out
}
