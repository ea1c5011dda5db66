// Package centrality computes per-vertex structural measures over a core.Graph:
// closeness, betweenness, eigenvector (first-order influence) and local
// transitivity (clustering coefficient), plus whole-graph transitivity.
//
// What
//
//   - Every per-vertex measure returns []float64 aligned with g.Vertices().
//   - Weighted variants treat accumulated edge weights as distances (closeness,
//     betweenness) or as adjacency strengths (eigenvector). Unweighted variants
//     treat every edge as 1.
//   - NaN marks an undefined value (e.g. closeness of a vertex that reaches nothing).
//
// Measures
//
//   - Closeness:   1 / Σ d(v,u) over the vertices u reachable along Direction.
//     WithNormalized multiplies by the number of reached vertices.
//   - Betweenness: Brandes accumulation over ordered (s,t) pairs of the
//     directed graph. WithNormalized divides by (n-1)(n-2).
//   - Eigenvector: principal eigenvector of (A+I)ᵀ, i.e. a vertex is
//     influential when influential vertices point at it. Solved per strongly
//     connected component (package dfs), so chained cycles and acyclic parts
//     get exact scores. Unit Euclidean length by default, max-scaled to 1
//     with WithScale.
//   - Transitivity: closed successor-triads over all successor-triads.
//   - LocalTransitivity: for every v, Transitivity of the subgraph induced by
//     the successors of v (v itself excluded).
//
// Errors
//
//   - ErrGraphNil:        nil graph.
//   - ErrOptionViolation: invalid option value.
//   - ErrNotConverged:    eigenvector power iteration hit the iteration cap;
//     the returned vector is all NaN.
//   - ErrAcyclic:         the graph has edges but no cycle; the returned
//     all-zero vector is the answer.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Closeness, Betweenness: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
//   - Eigenvector: O(V+E) decomposition plus O(iterations·E).
//   - LocalTransitivity: O(Σ_v d⁺(v)·Δ²) where Δ is the maximum out-degree.
package centrality
