package dfs

import (
	"context"
	"errors"
)

// Visitation colors.
const (
	White = iota // not discovered
	Gray         // on the recursion stack
	Black        // finished
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when a back edge exists.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch wraps a failed successor lookup.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures a depth-first walk.
type Option func(*Options)

// Options holds the walk settings.
type Options struct {
	// Ctx is checked on every vertex entry.
	Ctx context.Context
}

// DefaultOptions returns a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
