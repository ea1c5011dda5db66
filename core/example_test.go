package core_test

import (
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// ExampleGraph demonstrates weight accumulation on vertices and edges.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Vertices keep first-insertion order; repeated adds accumulate.
	_ = g.AddVertex("mov", 2)
	_ = g.AddVertex("push", 1)
	_ = g.AddVertex("mov", 1)

	// 2) A repeated (from,to) pair is summed into one edge.
	_ = g.AddEdge("mov", "push", 1)
	_ = g.AddEdge("mov", "push", 1)
	_ = g.AddEdge("push", "mov", 1)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Weights:", g.VertexWeights())
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s %d\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Vertices: [mov push]
	// Weights: [3 1]
	// mov→push 2
	// push→mov 1
}
