package builder_test

import (
	"fmt"

	"github.com/katalvlaran/opgraph/builder"
)

// ExampleSequence builds the graph of a short opcode trace.
func ExampleSequence() {
	g, err := builder.Sequence([]string{"mov", "push", "mov", "push", "call"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.VertexWeights())
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s %d\n", e.From, e.To, e.Weight)
	}

	// Output:
	// [mov push call] [2 2 1]
	// mov→push 2
	// push→mov 1
	// push→call 1
}
