// SPDX-License-Identifier: MIT
// Package core: generation-line ("lineage") walk.
//
// The walk is a breadth layering, not a visited-set BFS: generation n is the
// deduplicated union of the direct relations of every code in generation n-1.
// A code reachable by paths of different lengths therefore shows up in each
// generation it is reached at, and a cycle keeps every generation non-empty.

package core

import "fmt"

// lineageWalker encapsulates the mutable state of one walk.
type lineageWalker struct {
	registry *Registry
	kind     Kind
	opts     LineageOptions
}

// Lineage returns the successive generations of code in the kind direction.
//
// Implementation:
//   - Stage 1: Resolve options (Registry strictness first, then opts).
//   - Stage 2: Optionally run the cycle guard from the root.
//   - Stage 3: Generation 0 is the direct set of code; each next generation is
//     the ordered union of the direct sets of the previous one.
//   - Stage 4: Stop before the first empty generation, at MaxDepth, or on
//     context cancellation / hook error.
//
// Returns:
//   - nil, nil when code is empty, unknown, or has no relations of kind.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrCycleDetected (wrapped with the cycle path) under the cycle guard.
//   - Ctx.Err() on cancellation; hook errors wrapped with the depth.
//
// Notes:
//   - Unguarded and unbounded, a root that reaches a cycle never terminates.
//   - The read lock is taken per generation, so writers may interleave.
//
// Complexity:
//   - Time O(Σ generation sizes · d), Space O(largest generation) plus output.
func (r *Registry) Lineage(kind Kind, code string, opts ...LineageOption) ([][]string, error) {
	o := DefaultLineageOptions()
	o.CycleGuard = r.strict
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := NormalizeCode(code)
	if c == "" {
		return nil, nil
	}

	w := &lineageWalker{registry: r, kind: kind.normalize(), opts: o}

	return w.walk(c)
}

// walk runs the layering from root.
func (w *lineageWalker) walk(root string) ([][]string, error) {
	if w.opts.CycleGuard {
		if err := w.registry.guardLineage(w.kind, root); err != nil {
			return nil, err
		}
	}

	current := w.registry.Inheritance(w.kind, root)
	var lines [][]string
	for depth := 0; len(current) > 0; depth++ {
		// cancellation check (once per generation)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		lines = append(lines, current)
		if err := w.opts.OnGeneration(depth, current); err != nil {
			return nil, fmt.Errorf("core: OnGeneration error at depth %d: %w", depth, err)
		}
		if w.opts.MaxDepth > 0 && len(lines) >= w.opts.MaxDepth {
			break
		}
		current = w.expand(current)
	}

	return lines, nil
}

// expand computes the next generation from gen.
func (w *lineageWalker) expand(gen []string) []string {
	next := newCodeSet()

	w.registry.mu.RLock()
	defer w.registry.mu.RUnlock()
	for _, code := range gen {
		rel, ok := w.registry.index[code]
		if !ok {
			continue
		}
		for _, nbr := range rel.of(w.kind).order {
			next.add(nbr)
		}
	}

	return next.codes()
}
