package features

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/opgraph/centrality"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("features: invalid option supplied")

// Option configures Compute.
type Option func(*Options)

// Options controls how the centrality columns are computed.
type Options struct {
	// Normalized enables normalization for closeness and betweenness and
	// max-scaling for first-order influence. Off by default: scores are raw.
	Normalized bool

	// EigenMaxIterations caps eigenvector power iteration.
	EigenMaxIterations int

	// EigenTolerance is the eigenvector convergence tolerance.
	EigenTolerance float64

	err error
}

// DefaultOptions returns raw (unnormalized) scores with the centrality
// package's iteration defaults.
func DefaultOptions() Options {
	return Options{
		EigenMaxIterations: centrality.DefaultMaxIterations,
		EigenTolerance:     centrality.DefaultTolerance,
	}
}

// WithNormalized toggles normalized centrality scores.
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// WithEigenMaxIterations sets the eigenvector iteration cap (n > 0).
func WithEigenMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: eigen max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.EigenMaxIterations = n
	}
}

// WithEigenTolerance sets the eigenvector convergence tolerance (tol > 0).
func WithEigenTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: eigen tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.EigenTolerance = tol
	}
}
