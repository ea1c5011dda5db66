// SPDX-License-Identifier: MIT
// Package: opgraph/builder
//
// family.go — construction of all sample graphs of one family.

package builder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/opgraph/core"
)

// Family builds one graph per sequence and returns them in input order.
//
// Implementation:
//   - Stage 1: Resolve options (ErrOptionViolation).
//   - Stage 2: Fan out over an errgroup limited to WithWorkers(n) goroutines.
//     Each goroutine writes only its own slot of the result slice.
//   - Stage 3: Wait for every sample; the first failure cancels the rest and
//     is returned with the sample index as context.
//
// Behavior highlights:
//   - No partial result: on error the returned slice is nil.
//   - Output order never depends on completion order.
//
// Complexity:
//   - Time O(Σ len(seq_i)) total work, Space O(Σ (V_i + E_i)).
func Family(ctx context.Context, seqs [][]string, opts ...BuilderOption) ([]*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	graphs := make([]*core.Graph, len(seqs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)

	for i := range seqs {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g, err := Sequence(seqs[i])
			if err != nil {
				return builderErrorf(MethodFamily, err, "sample %d", i)
			}
			graphs[i] = g

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}
