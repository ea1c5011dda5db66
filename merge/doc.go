// Package merge unions the sample graphs of one family into a single union
// graph whose weights are the elementwise sums of the members' weights.
//
// Overview:
//
//   - Structural union: the union's vertex set is the union of all member
//     vertex sets by symbol name (one entry per distinct symbol), and likewise
//     for edges by (From,To) pair.
//   - Summed accumulation: every union vertex/edge weight equals the sum over
//     ALL members, a member lacking the vertex/edge contributing 0.
//
// Both hold simultaneously. Members are addressed by name, never by a
// positional index, because different members enumerate their vertices in
// different orders.
//
// The merge is an explicit keyed accumulation (Accumulator): a running sum per
// vertex name and per edge pair, absent entries defaulting to 0. The union's
// vertex and edge order is first appearance across members in member order,
// so merge([G]) reproduces G exactly and the weights of merge(...) do not
// depend on member order.
//
// After accumulation Merge verifies conservation (union totals equal the sum
// of member totals); a violation is an internal invariant failure reported as
// ErrAlignment and no union graph is returned.
//
// Errors:
//
//	ErrNoGraphs  – empty member list
//	ErrNilGraph  – a member is nil
//	ErrAlignment – conservation check failed (fatal; indicates a bug)
package merge
