// SPDX-License-Identifier: MIT
// Package: opgraph/builder
//
// sequence.go — single-sample graph construction.

package builder

import (
	"github.com/katalvlaran/opgraph/core"
)

// Transitions returns the edge list of seq: the sequence is rotated left by
// one, zipped with itself and the final (wrapped) pair is dropped.
//
// For seq = [a b a b]: rotated = [b a b a], zip = (a,b)(b,a)(a,b)(b,a),
// drop last ⇒ (a,b)(b,a)(a,b).
//
// Complexity: O(n) time, O(n) space.
func Transitions(seq []string) []core.EdgeKey {
	n := len(seq)
	if n == 0 {
		return nil
	}

	rolled := make([]string, 0, n)
	rolled = append(rolled, seq[1:]...)
	rolled = append(rolled, seq[0])

	pairs := make([]core.EdgeKey, n)
	for i := 0; i < n; i++ {
		pairs[i] = core.EdgeKey{From: seq[i], To: rolled[i]}
	}

	// Drop the wrapped last→first pair.
	return pairs[:n-1]
}

// Sequence builds the directed weighted graph of one opcode sequence.
//
// Implementation:
//   - Stage 1: Validate (ErrEmptySequence, ErrEmptySymbol).
//   - Stage 2: Count symbols; vertices are added in first-occurrence order
//     with weight = count.
//   - Stage 3: Add every transition with weight 1; repeated (src,dst) pairs
//     accumulate inside core.Graph.AddEdge.
//
// Complexity:
//   - Time O(n), Space O(V+E) where n = len(seq).
func Sequence(seq []string) (*core.Graph, error) {
	if len(seq) == 0 {
		return nil, builderErrorf(MethodSequence, ErrEmptySequence, "len=0")
	}

	counts := make(map[string]int64, len(seq))
	order := make([]string, 0, len(seq))
	for i, s := range seq {
		if s == "" {
			return nil, builderErrorf(MethodSequence, ErrEmptySymbol, "position %d", i)
		}
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	g := core.NewGraph()
	for _, s := range order {
		if err := g.AddVertex(s, counts[s]); err != nil {
			return nil, builderErrorf(MethodSequence, err, "AddVertex(%q)", s)
		}
	}
	for _, t := range Transitions(seq) {
		if err := g.AddEdge(t.From, t.To, 1); err != nil {
			return nil, builderErrorf(MethodSequence, err, "AddEdge(%q,%q)", t.From, t.To)
		}
	}

	return g, nil
}
