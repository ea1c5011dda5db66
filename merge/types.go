package merge

import "errors"

// Sentinel errors returned by the merge package.
var (
	// ErrNoGraphs indicates an empty member list: there is no graph to merge.
	ErrNoGraphs = errors.New("merge: no graphs to merge")

	// ErrNilGraph indicates a nil member graph.
	ErrNilGraph = errors.New("merge: graph is nil")

	// ErrAlignment indicates that accumulated weights do not match the
	// members' totals. Never coerced: the family computation must abort.
	ErrAlignment = errors.New("merge: weight alignment mismatch")
)
