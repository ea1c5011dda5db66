package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/opgraph/core"
)

var (
	// ErrStartVertexNotFound: the start opcode is not a vertex of the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was handed a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option mutates Options. A rejected value is remembered and reported by BFS.
type Option func(*Options)

// Options tunes a single traversal.
type Options struct {
	Ctx       context.Context
	Direction core.Direction

	// OnVisit runs once per dequeued vertex; a non-nil error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop count (0 = unbounded).
	MaxDepth int

	// FilterNeighbor vetoes the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions follows out-edges without limits or hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Direction:      core.Out,
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext attaches ctx; a nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection walks successors (core.Out), predecessors (core.In) or both (core.All).
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

// WithOnVisit installs a visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding vertices at depth d. Negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a step filter.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is what one traversal from a start vertex learned.
//
//	Order   vertices in dequeue order (depth never decreases)
//	Depth   hop distance from the start
//	Parent  predecessor in the BFS tree
//	Parents every predecessor lying on some shortest path
//	Sigma   number of distinct shortest paths from the start
type Result struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Parents map[string][]string
	Sigma   map[string]float64
}

// PathTo returns the tree path start → dest, or an error if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, fmt.Errorf("bfs: %q not reached", dest)
	}
	path := []string{dest}
	for p, ok := r.Parent[dest]; ok; p, ok = r.Parent[p] {
		path = append(path, p)
	}
	slices.Reverse(path)

	return path, nil
}
