// SPDX-License-Identifier: MIT
// Package: opgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w (sample index, position).

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptySequence indicates a sequence of length 0.
// Classification: input error; the sample cannot produce a graph.
var ErrEmptySequence = errors.New("builder: empty sequence")

// ErrEmptySymbol indicates a zero-length symbol inside a sequence. Vertex IDs
// must be non-empty, so such a sequence is malformed.
var ErrEmptySymbol = errors.New("builder: empty symbol")

// ErrOptionViolation indicates an option received a meaningless value.
var ErrOptionViolation = errors.New("builder: invalid option value")

// Method names used as context prefixes.
const (
	MethodSequence = "Sequence"
	MethodFamily   = "Family"
)

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
