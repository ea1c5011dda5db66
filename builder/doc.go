// Package builder turns opcode sequences into core.Graph values.
//
// One sample trace is an ordered sequence of opaque symbols. Sequence builds
// its directed weighted graph:
//
//   - Vertices: distinct symbols in first-occurrence order; weight = number of
//     occurrences of the symbol.
//   - Edges: every adjacent (s[i], s[i+1]) transition, weight 1 each; a
//     transition that recurs is summed into the same edge.
//
// The transition list is produced by rotating the sequence left by one,
// zipping it with the original and dropping the final, wrapped pair
// (last→first). The result is exactly the len(seq)-1 linear transitions: the
// graph is never cyclic through the sequence boundary.
//
// Guarantees (checked by tests for every input):
//
//   - Σ vertex weights = len(seq)
//   - Σ edge weights   = len(seq) - 1
//   - len(seq) == 1 ⇒ one vertex of weight 1 and no edges.
//
// Family builds all sample graphs of one family, optionally in parallel.
// Graphs are returned in input order, so graph i always belongs to sample i.
//
// Errors:
//
//	ErrEmptySequence  – zero-length sequence (no graph to build)
//	ErrEmptySymbol    – a symbol is the empty string
//	ErrOptionViolation – invalid option argument surfaced at call time
package builder
