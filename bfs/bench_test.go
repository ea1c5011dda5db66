package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/opgraph/bfs"
	"github.com/katalvlaran/opgraph/core"
)

// BenchmarkBFS_Ring measures BFS over a directed ring with chords.
func BenchmarkBFS_Ring(b *testing.B) {
	const n = 1000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprint(i), 1)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+1)%n), 1)
		_ = g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+7)%n), 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "0", bfs.WithDirection(core.All)); err != nil {
			b.Fatal(err)
		}
	}
}
