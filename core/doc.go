// Package core provides the in-memory directed, vertex- and edge-weighted
// graph used by every opgraph stage: sequence construction, family union
// and feature computation.
//
// The Graph G = (V,E) is an explicit adjacency structure:
//
//   - vertex catalog: name → index, names kept in first-insertion order,
//     one int64 weight per vertex;
//   - edge catalog: EdgeKey{From,To} → int64 weight, keys kept in
//     first-insertion order;
//   - successor and predecessor index lists per vertex.
//
// Why an explicit structure?
//
//   - Vertices are globally addressable by name, never by a positional index
//     that differs between graphs. Merging graphs whose vertex sets differ is
//     a keyed accumulation, not an index alignment.
//   - Parallel-edge simplification is built in: adding an existing (From,To)
//     pair adds its weight to the stored edge ("combine by sum").
//   - Deterministic iteration: Vertices(), Edges(), Successors() and
//     Predecessors() return insertion order, so feature vectors line up with
//     the order in which symbols were first seen.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, weight int64) error     // O(1), accumulates weight
//	HasVertex(id string) bool                    // O(1)
//	VertexWeight(id string) (int64, error)       // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) error // O(1), accumulates weight
//	HasEdge(from, to string) bool                // O(1)
//	EdgeWeight(from, to string) (int64, error)   // O(1)
//
//	// Query
//	Vertices() []string                          // O(V), insertion order
//	Edges() []Edge                               // O(E), insertion order
//	Successors(id) / Predecessors(id)            // O(d)
//	Neighbors(id, dir Direction) ([]Arc, error)  // O(d)
//	InDegree / OutDegree / Degree                // O(1)
//
//	// Derived graphs
//	Clone() *Graph                               // O(V+E)
//	Unweighted() *Graph                          // O(V+E), unit edge weights
//	Subgraph(ids []string) (*Graph, error)       // O(Σd), induced
//
// Self-loops are permitted: a symbol immediately followed by itself in a
// sequence produces the edge (s,s). A self-loop counts once towards
// in-degree, once towards out-degree and twice towards Degree.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrNegativeWeight  – negative vertex or edge weight
//
// Concurrency: every method takes the graph's RWMutex, so a Graph may be read
// from several goroutines. The pipeline never shares a Graph between
// families; the lock only guards against misuse by library callers.
package core
