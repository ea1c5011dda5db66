package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrNotConverged is returned when eigenvector iteration exceeds MaxIterations.
	ErrNotConverged = errors.New("centrality: power iteration did not converge")

	// ErrAcyclic accompanies the all-zero eigenvector scores of a graph with
	// edges but no cycle. The scores are valid.
	ErrAcyclic = errors.New("centrality: graph is acyclic, eigenvector scores are zero")
)

// Defaults for eigenvector power iteration and component solves.
const (
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-6
)

// Option configures a centrality computation.
type Option func(*Options)

// Options holds the knobs shared by all measures. Each measure reads only the
// fields relevant to it.
type Options struct {
	Ctx           context.Context
	Direction     core.Direction // closeness only
	Weighted      bool
	Normalized    bool
	Scale         bool // eigenvector only
	MaxIterations int
	Tolerance     float64

	err error
}

// DefaultOptions returns out-direction, unweighted, unnormalized settings.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Direction:     core.Out,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// WithContext sets a context checked between single-source passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which paths closeness measures: Out (from v),
// In (into v) or All (orientation ignored).
func WithDirection(dir core.Direction) Option {
	return func(o *Options) {
		switch dir {
		case core.Out, core.In, core.All:
			o.Direction = dir
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, dir)
		}
	}
}

// WithWeighted makes edge weights count (as distances or strengths).
func WithWeighted(on bool) Option {
	return func(o *Options) { o.Weighted = on }
}

// WithNormalized enables the measure-specific normalization.
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// WithScale rescales eigenvector scores so the maximum is 1.
func WithScale(on bool) Option {
	return func(o *Options) { o.Scale = on }
}

// WithMaxIterations caps eigenvector power iteration. n must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the relative eigen-residual tolerance. tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// resolve applies opts and validates g.
func resolve(g *core.Graph, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}

	return o, nil
}
