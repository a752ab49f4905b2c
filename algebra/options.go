// SPDX-License-Identifier: MIT

package algebra

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/einsum"
)

// Defaults (single source of truth).
const (
	// DefaultStrictStateNames keeps the permissive state-name merge in
	// SumProduct: a later factor's labels overwrite an earlier one's.
	DefaultStrictStateNames = false

	// DefaultConcurrency of 0 means runtime.GOMAXPROCS(0) workers in SumProductAll.
	DefaultConcurrency = 0
)

const (
	panicNilLogger     = "algebra: WithLogger: logger must not be nil"
	panicNilOptimizer  = "algebra: WithOptimizer: optimizer must not be nil"
	panicBadConcurrent = "algebra: WithConcurrency: n must be >= 1"
)

// Option configures SumProduct and SumProductAll.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger      *zap.Logger
	optimizer   einsum.Optimizer
	strict      bool
	concurrency int
}

// WithLogger routes debug output of the operation and of the contraction
// backend to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithOptimizer swaps the contraction-order strategy (default einsum.Greedy).
// Panics on nil.
func WithOptimizer(opt einsum.Optimizer) Option {
	if opt == nil {
		panic(panicNilOptimizer)
	}

	return func(o *Options) { o.optimizer = opt }
}

// WithStrictStateNames makes SumProduct fail with factor.ErrStateNameConflict
// when two factors label a shared variable differently, instead of letting
// the later factor win.
func WithStrictStateNames(strict bool) Option {
	return func(o *Options) { o.strict = strict }
}

// WithConcurrency bounds the number of queries SumProductAll runs at once.
// Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicBadConcurrent)
	}

	return func(o *Options) { o.concurrency = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:      zap.NewNop(),
		optimizer:   einsum.DefaultOptimizer,
		strict:      DefaultStrictStateNames,
		concurrency: DefaultConcurrency,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.concurrency == 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
