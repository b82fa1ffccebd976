// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"sort"
)

// elderSorter holds the state of one ElderOrder traversal.
type elderSorter struct {
	registry *Registry
	ctx      context.Context
	state    map[string]int
	order    []string // post-order over the Child direction
}

// ElderOrder returns every member code ordered so that each member precedes
// all of its children (a topological order of the parent relation).
//
// Members are visited in ascending code order and children in insertion
// order, so the result is deterministic. A cycle makes the ordering
// impossible and yields ErrCycleDetected. ctx is checked on every member;
// nil means context.Background().
//
// Complexity: Time O(M·log M + E), Space O(M).
func (r *Registry) ElderOrder(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.members))
	for c := range r.members {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	s := &elderSorter{
		registry: r,
		ctx:      ctx,
		state:    make(map[string]int, len(codes)),
		order:    make([]string, 0, len(codes)),
	}
	for _, c := range codes {
		if s.state[c] == white {
			if err := s.visit(c); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *elderSorter) visit(code string) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	switch s.state[code] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	s.state[code] = gray

	if rel, ok := s.registry.index[code]; ok {
		for _, child := range rel.children.order {
			if err := s.visit(child); err != nil {
				return err
			}
		}
	}

	s.state[code] = black
	s.order = append(s.order, code)

	return nil
}
