// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"fmt"
)

// LineageOption configures a lineage walk via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the walk is invoked.
type LineageOption func(*LineageOptions)

// LineageOptions holds parameters and callbacks for a generation walk.
type LineageOptions struct {
	// Ctx allows cancellation and deadlines; checked once per generation.
	Ctx context.Context

	// MaxDepth, if > 0, caps the number of generations returned.
	// 0 disables the limit.
	MaxDepth int

	// CycleGuard rejects walks whose root reaches a cycle with ErrCycleDetected,
	// before any generation is produced. Without it a cyclic walk only ends
	// through MaxDepth or Ctx.
	CycleGuard bool

	// OnGeneration is called with each generation as soon as it is complete.
	// Returning an error aborts the walk.
	OnGeneration func(depth int, codes []string) error

	// internal error recorded during option parsing
	err error
}

// DefaultLineageOptions returns unbounded, unguarded options with a
// background context and a no-op hook.
func DefaultLineageOptions() LineageOptions {
	return LineageOptions{
		Ctx:          context.Background(),
		MaxDepth:     0,
		CycleGuard:   false,
		OnGeneration: func(int, []string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) LineageOption {
	return func(o *LineageOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the walk after d generations.
//
//	d > 0: at most d generations
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) LineageOption {
	return func(o *LineageOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithCycleGuard enables cycle detection before walking.
func WithCycleGuard() LineageOption {
	return func(o *LineageOptions) { o.CycleGuard = true }
}

// WithOnGeneration registers a per-generation callback. nil is ignored.
func WithOnGeneration(fn func(depth int, codes []string) error) LineageOption {
	return func(o *LineageOptions) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}
