// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and a
// catalog snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Locking model is defined in types.go.

package core

import "sort"

// RegistryStats is a read-only snapshot of a Registry.
type RegistryStats struct {
	// StrictLineage reports the WithStrictLineage policy.
	StrictLineage bool

	MemberCount int
	EdgeCount   int

	// Roots are codes with no recorded parents; Leaves have no recorded
	// children. Both sorted ascending.
	Roots  []string
	Leaves []string
}

// StrictLineage reports whether every lineage walk runs with the cycle guard.
// The flag is immutable after construction.
func (r *Registry) StrictLineage() bool {
	return r.strict
}

// Stats produces a deterministic snapshot of counts, roots and leaves.
//
// Complexity:
//   - Time O(M·log M), Space O(M).
func (r *Registry) Stats() *RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{
		StrictLineage: r.strict,
		MemberCount:   len(r.members),
	}
	for code := range r.members {
		rel, ok := r.index[code]
		if !ok {
			stats.Roots = append(stats.Roots, code)
			stats.Leaves = append(stats.Leaves, code)
			continue
		}
		stats.EdgeCount += rel.parents.len()
		if rel.parents.len() == 0 {
			stats.Roots = append(stats.Roots, code)
		}
		if rel.children.len() == 0 {
			stats.Leaves = append(stats.Leaves, code)
		}
	}
	sort.Strings(stats.Roots)
	sort.Strings(stats.Leaves)

	return &stats
}
