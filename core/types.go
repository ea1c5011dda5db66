// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Edge and Arc types and the sentinel
// errors shared by every package that consumes a graph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - a negative weight was supplied.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative vertex or edge weight.
	// Weights are occurrence counts and therefore never negative.
	ErrNegativeWeight = errors.New("core: negative weight")
)

// Direction selects which incident edges a traversal follows.
type Direction int

const (
	// Out follows edges from→to (successors).
	Out Direction = iota

	// In follows edges against their orientation (predecessors).
	In

	// All ignores orientation: the graph is treated as undirected.
	All
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// EdgeKey identifies a directed edge by its ordered endpoint pair.
// Two edges with the same key are parallel and are stored as one.
type EdgeKey struct {
	From string
	To   string
}

// Edge is a read-only snapshot of one stored edge.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the accumulated number of adjacency occurrences.
	Weight int64
}

// Key returns the EdgeKey of e.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// Arc is one step of a traversal out of a vertex in a given Direction.
type Arc struct {
	// To is the vertex reached by this step.
	To string

	// Weight is the cost of the step (the edge weight).
	Weight int64
}

// GraphStats is a snapshot of catalog sizes and weight totals.
type GraphStats struct {
	VertexCount       int
	EdgeCount         int
	SelfLoopCount     int
	TotalVertexWeight int64
	TotalEdgeWeight   int64
}

// Graph is the core in-memory graph data structure: a directed simple graph
// with named, weighted vertices and weighted edges.
//
// mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	// Vertex catalog: names in first-insertion order and their weights.
	names   []string
	index   map[string]int
	weights []int64

	// Edge catalog: keys in first-insertion order and their weights.
	edgeOrder []EdgeKey
	edges     map[EdgeKey]int64

	// succ[i] / pred[i] hold vertex indices in first-insertion order.
	succ [][]int
	pred [][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		edges: make(map[EdgeKey]int64),
	}
}
