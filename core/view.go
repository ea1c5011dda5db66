// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Induced subgraphs.
// Policy:
//   - Views are materialized copies; the source graph is never mutated.
//   - Vertex order follows the ids argument, edge order follows the source graph.

package core

// Subgraph returns the subgraph of g induced by ids: those vertices (with
// their weights) and every edge of g whose endpoints are both in ids.
//
// Implementation:
//   - Stage 1: Resolve every id (ErrVertexNotFound); duplicates are ignored.
//   - Stage 2: Copy vertices in ids order.
//   - Stage 3: Scan the edge catalog once in insertion order and keep edges
//     with both endpoints selected.
//
// Complexity:
//   - Time O(|ids| + E), Space O(|ids| + E_induced).
//
// Notes:
//   - Self-loops of selected vertices are kept; the clustering coefficient
//     drops them itself when it scopes a neighborhood.
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for _, id := range ids {
		i, err := g.lookup(id)
		if err != nil {
			return nil, err
		}
		j := out.ensureVertex(id)
		out.weights[j] = g.weights[i]
	}

	for _, k := range g.edgeOrder {
		fi, okF := out.index[k.From]
		ti, okT := out.index[k.To]
		if !okF || !okT {
			continue
		}
		out.edgeOrder = append(out.edgeOrder, k)
		out.edges[k] = g.edges[k]
		out.succ[fi] = append(out.succ[fi], ti)
		out.pred[ti] = append(out.pred[ti], fi)
	}

	return out, nil
}
