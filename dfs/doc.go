// Package dfs implements depth-first algorithms on the directed core.Graph:
// topological sort and strongly connected components.
//
// What:
//
//   - TopologicalSort: linear order of the vertices such that every edge
//     u→v has u before v, or ErrCycleDetected. A self-loop is a cycle.
//   - StronglyConnected: Tarjan's components, listed in topological order of
//     the condensation (a component comes before every component it reaches).
//
// Why:
//
//   - Eigenvector influence is exact only once the graph is split into its
//     strongly connected parts: an acyclic graph has no dominant cycle at all,
//     and chained cycles of equal spectral radius defeat plain power iteration.
//
// Determinism:
//
//	Roots are tried in g.Vertices() order and successors in edge insertion
//	order, so both results are reproducible. Vertices inside a component are
//	listed in g.Vertices() order.
//
// Complexity:
//
//   - TopologicalSort:   Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  TopologicalSort met a back edge
//   - ErrNeighborFetch  successor lookup failed
//   - ctx.Err()         the context ended mid-walk
package dfs
