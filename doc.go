// Package opgraph turns disassembled programs into opcode transition graphs
// and per-node graph features, one table row per (family, opcode).
//
// What is opgraph?
//
//	Each sample is a sequence of opcode mnemonics. Every distinct opcode is a
//	vertex weighted by its occurrence count, and every adjacent pair (a, b) is
//	a directed edge a→b weighted by how often b directly follows a. The samples
//	of a family are merged into one union graph with summed weights, and each
//	vertex of that graph gets a fixed set of fifteen features:
//		• weight and degrees
//		• closeness (weighted out, unweighted out, in, all)
//		• betweenness (weighted, unweighted)
//		• eigenvector influence (weighted, unweighted)
//		• local clustering
//
// Layout:
//
//	core/       — directed graph with integer vertex and edge weights
//	builder/    — sequence → graph, parallel per-family builds
//	merge/      — weighted union of a family's graphs
//	bfs/        — hop distances and shortest-path counts
//	dijkstra/   — weighted distances and shortest-path counts
//	dfs/        — topological sort and strongly connected components
//	centrality/ — closeness, betweenness, eigenvector, transitivity
//	features/   — the fifteen-column feature table and distance matrices
//	results/    — (family, node) rows across families
//	dataset/    — <root>/<family>/<family>.csv index and <id>.csv samples
//	export/     — CSV output
//	pipeline/   — dataset → features, concurrently per family
//	cmd/opgraph — command-line entry point
//
// Quick example:
//
//	mov push mov call
//
//	    ┌──────┐ 1  ┌──────┐
//	    │ mov 2├───►│push 1│
//	    └─┬──▲─┘    └──┬───┘
//	     1│  └─────────┘1
//	    ┌─▼─────┐
//	    │call 1 │
//	    └───────┘
//
//	go install github.com/katalvlaran/opgraph/cmd/opgraph@latest
package opgraph
