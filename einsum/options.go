// SPDX-License-Identifier: MIT

package einsum

import "go.uber.org/zap"

const (
	panicNilOptimizer = "einsum: WithOptimizer: optimizer must not be nil"
	panicNilLogger    = "einsum: WithLogger: logger must not be nil"
)

// DefaultOptimizer is the contraction-order strategy used when none is given.
var DefaultOptimizer Optimizer = Greedy{}

// Option configures Contract.
type Option func(*Options)

// Options holds the effective Contract configuration.
type Options struct {
	optimizer Optimizer
	logger    *zap.Logger
}

// WithOptimizer selects the contraction-order strategy. Panics on nil.
func WithOptimizer(o Optimizer) Option {
	if o == nil {
		panic(panicNilOptimizer)
	}

	return func(opts *Options) { opts.optimizer = o }
}

// WithLogger routes debug output (chosen path, estimated cost) to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(opts *Options) { opts.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		optimizer: DefaultOptimizer,
		logger:    zap.NewNop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
