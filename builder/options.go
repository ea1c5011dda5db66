// SPDX-License-Identifier: MIT
// Package: opgraph/builder
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Invalid option values are recorded and surfaced as ErrOptionViolation
//     when the builder runs; algorithms never panic.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import "fmt"

// defaultWorkers is the number of goroutines Family uses when no option is
// given: sequential construction.
const defaultWorkers = 1

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// workers bounds parallel sample construction in Family.
	workers int

	// err records the first invalid option.
	err error
}

// BuilderOption customizes a builder call.
type BuilderOption func(*builderConfig)

// WithWorkers bounds the number of samples Family builds concurrently.
//
//	n > 0: at most n goroutines
//	n == 0: reset to the default (sequential)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) BuilderOption {
	return func(c *builderConfig) {
		switch {
		case n < 0:
			c.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			c.workers = defaultWorkers
		default:
			c.workers = n
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{workers: defaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
