// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/opgraph/builder"
	"github.com/katalvlaran/opgraph/dijkstra"
)

// ExampleDijkstra computes transition-count distances over an opcode graph.
// Heavier (more frequent) transitions are "longer" edges.
func ExampleDijkstra() {
	g, err := builder.Sequence([]string{"mov", "push", "mov", "push", "call", "ret"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("mov"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[call]=%d via %s\n", dist["call"], prev["call"])
	fmt.Printf("dist[ret]=%d via %s\n", dist["ret"], prev["ret"])
	// Output:
	// dist[call]=3 via push
	// dist[ret]=4 via call
}

// ExampleShortestPaths shows the per-source state used by betweenness.
func ExampleShortestPaths() {
	g, _ := builder.Sequence([]string{"a", "b", "d", "a", "c", "d"})

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("a"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Sigma["d"], res.Parents["d"])
	// Output:
	// [a b c d]
	// 2 [b c]
}
