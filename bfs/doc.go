// Package bfs provides breadth-first search over a core.Graph, returning
// unit-weight shortest-path distances, shortest-path counts, parent links and
// visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:   visit sequence (non-decreasing depth)
//   - Depth:   vertex → distance (edges) from start
//   - Parent:  vertex → first predecessor in the BFS tree
//   - Parents: vertex → every predecessor on some shortest path
//   - Sigma:   vertex → number of distinct shortest paths from start
//   - Follows edges along a Direction (WithDirection): Out (default), In, All.
//   - Edge weights are ignored: every step costs 1.
//   - Supports OnVisit hooks, neighbor filtering and a MaxDepth limit.
//
// Why
//
//   - Unweighted closeness needs hop distances in Out, In and All directions.
//   - Unweighted betweenness (Brandes) needs Order, Parents and Sigma.
//   - Hop-count distance matrices are exported per family.
//
// Determinism
//
//	core.Neighbors returns arcs in edge insertion order and BFS enqueues them in
//	that order, so Order and Parents are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (Parents may hold one entry per edge)
package bfs
