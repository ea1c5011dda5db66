// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph whose edge weights are treated as non-negative distances.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to
//     all reachable vertices in O((V + E) log V) time, where V = |vertices| and
//     E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - ShortestPaths additionally counts shortest paths (Sigma), keeps every
//     predecessor lying on some shortest path (Parents) and records the order in
//     which vertices were settled (Order). That is the per-source state Brandes'
//     betweenness accumulation consumes.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithDirection: follow out-edges (default), in-edges, or ignore orientation.
//   - WithReturnPath: if enabled, Dijkstra returns a predecessor map.
//   - WithMaxDistance: vertices farther than the cap are not settled.
//   - WithInfEdgeThreshold: any edge with weight ≥ threshold is impassable.
//
// Determinism:
//
//   - Heap ties are broken by push order, and neighbors are relaxed in edge
//     insertion order, so Order and Parents are reproducible across runs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(E) worst-case entries in the heap under “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source was not set.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  Source is not a vertex of the graph.
//   - ErrOptionViolation: an option received an out-of-range value
//     (negative MaxDistance, non-positive InfEdgeThreshold, unknown Direction).
//
// Thread safety:
//
//   - core.Graph guards its own state, so concurrent runs over the same graph are safe.
//     Each call owns its runner.
package dijkstra
