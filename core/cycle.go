// SPDX-License-Identifier: MIT
// Package core: cycle detection over the relationship index.
//
// Both the lineage guard and Cycles use depth-first search with three-color
// marking; a back edge Gray→Gray closes a cycle. Relations are directed, so
// cycles are canonicalized by minimal rotation only (never reversed).
//
// Complexity:
//
//   - Time:   O(M + E + C·L)   (M=#members, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(M + L_max)     (recursion stack + state map + cycle storage)

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Visitation states.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// guardLineage fails with ErrCycleDetected if root reaches a cycle in the
// kind direction.
func (r *Registry) guardLineage(kind Kind, root string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := make(map[string]int)
	path := make([]string, 0, 8)
	cycle := r.firstCycleLocked(kind, root, state, &path)
	if cycle == nil {
		return nil
	}
	r.logger.Debug("lineage cycle detected", "kind", kind.String(), "root", root, "cycle", cycle)

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cycle, " -> "))
}

// firstCycleLocked returns the first closed cycle [v ... v] reachable from id,
// or nil. Caller holds mu.
func (r *Registry) firstCycleLocked(kind Kind, id string, state map[string]int, path *[]string) []string {
	state[id] = gray
	*path = append(*path, id)

	if rel, ok := r.index[id]; ok {
		for _, nbr := range rel.of(kind).order {
			switch state[nbr] {
			case white:
				if cycle := r.firstCycleLocked(kind, nbr, state, path); cycle != nil {
					return cycle
				}
			case gray:
				return closeCycle(*path, nbr)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black

	return nil
}

// Cycles enumerates the distinct cycles closed by back edges in the kind
// direction, each as a closed sequence [v0, v1, ..., v0] starting at its
// lexicographically minimal rotation. The result is sorted; nil means acyclic.
func (r *Registry) Cycles(kind Kind) [][]string {
	kind = kind.normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.index))
	for c := range r.index {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	state := make(map[string]int, len(codes))
	path := make([]string, 0, len(codes))
	seen := make(map[string]struct{})
	var cycles [][]string
	for _, c := range codes {
		if state[c] == white {
			r.collectCyclesLocked(kind, c, state, &path, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return joinSig(cycles[i]) < joinSig(cycles[j])
	})

	return cycles
}

// collectCyclesLocked is the enumerating variant of firstCycleLocked.
func (r *Registry) collectCyclesLocked(
	kind Kind,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	state[id] = gray
	*path = append(*path, id)

	if rel, ok := r.index[id]; ok {
		for _, nbr := range rel.of(kind).order {
			switch state[nbr] {
			case white:
				r.collectCyclesLocked(kind, nbr, state, path, seen, cycles)
			case gray:
				canon := canonicalCycle(closeCycle(*path, nbr))
				sig := joinSig(canon)
				if _, ok := seen[sig]; !ok {
					seen[sig] = struct{}{}
					*cycles = append(*cycles, canon)
				}
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black
}

// closeCycle extracts path[idx(start):] and appends start.
func closeCycle(path []string, start string) []string {
	idx := indexOf(path, start)
	seq := append([]string(nil), path[idx:]...)

	return append(seq, start)
}

// canonicalCycle rotates a closed cycle so it starts at its minimal rotation.
func canonicalCycle(cycle []string) []string {
	base := cycle[:len(cycle)-1] // drop trailing repeat
	rot := minimalRotation(base)

	return append(rot, rot[0])
}
