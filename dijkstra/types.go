package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/opgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Direction        – which edges are followed (core.Out by default).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Ctx              context.Context
	Source           string
	Direction        core.Direction
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithContext sets a context checked once per settled vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Out (successors), In (predecessors) or All (undirected view).
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

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero or negative values surface as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Ctx:              context.Background()
//   - Direction:        core.Out
//   - ReturnPath:       false
//   - MaxDistance:      math.MaxInt64 (no distance limit)
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable)
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		Direction:        core.Out,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the single-source state produced by ShortestPaths.
//
// Dist holds only settled (reachable) vertices. Order lists them in the order
// they were settled, which is non-decreasing in Dist. Sigma[v] counts distinct
// shortest paths Source→v; Parents[v] lists every u with Dist[u]+w(u,v) == Dist[v].
type Result struct {
	Source  string
	Dist    map[string]int64
	Sigma   map[string]float64
	Parents map[string][]string
	Order   []string
}
