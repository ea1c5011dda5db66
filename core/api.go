// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Stats produces a deterministic, read-only snapshot of catalog sizes and
// weight totals.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Sum vertex weights (O(V)) and scan edges (O(E)), counting self-loops.
//
// Behavior highlights:
//   - TotalVertexWeight and TotalEdgeWeight are the conservation quantities
//     checked by the builder (len(seq), len(seq)-1) and the merger (sum of members).
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.names),
		EdgeCount:   len(g.edgeOrder),
	}
	for _, w := range g.weights {
		stats.TotalVertexWeight += w
	}
	for k, w := range g.edges {
		stats.TotalEdgeWeight += w
		if k.From == k.To {
			stats.SelfLoopCount++
		}
	}

	return &stats
}
