// SPDX-License-Identifier: MIT

package match

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/matrix"
)

// Option configures Match, BuildNetwork and MatchBatch.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	rounding    matrix.Rounding
	rejectEmpty bool
	verbose     bool
	batchLimit  int
}

func newOptions(opts []Option) options {
	o := options{
		logger:     zap.NewNop(),
		rounding:   matrix.Truncate,
		batchLimit: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.batchLimit < 1 {
		o.batchLimit = 1
	}

	return o
}

// WithLogger sets the structured logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRounding selects how real-valued costs are made integral
// (default matrix.Truncate).
func WithRounding(r matrix.Rounding) Option {
	return func(o *options) { o.rounding = r }
}

// WithRejectEmpty makes an empty group an ErrInvalidInput instead of
// producing an empty Matching.
func WithRejectEmpty() Option {
	return func(o *options) { o.rejectEmpty = true }
}

// WithVerbose logs every solver augmentation at Debug level.
func WithVerbose() Option {
	return func(o *options) { o.verbose = true }
}

// WithBatchLimit bounds the number of jobs MatchBatch runs at once
// (default GOMAXPROCS).
func WithBatchLimit(n int) Option {
	return func(o *options) { o.batchLimit = n }
}
