// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning registry instances.
// Concurrency:
//   - Read lock on the source; no mutation of the source registry.

package core

// Clone returns a deep copy of the Registry: configuration, members (bound to
// the clone) and relationship index, preserving set order.
// Complexity: O(M + E).
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clone := &Registry{
		logger:      r.logger,
		strict:      r.strict,
		defaultName: r.defaultName,
		members:     make(map[string]*Member, len(r.members)),
		index:       make(map[string]*relations, len(r.index)),
	}
	for code, m := range r.members {
		clone.members[code] = &Member{registry: clone, code: m.code, name: m.name}
	}
	for code, rel := range r.index {
		cp := &relations{parents: newCodeSet(), children: newCodeSet()}
		for _, c := range rel.parents.order {
			cp.parents.add(c)
		}
		for _, c := range rel.children.order {
			cp.children.add(c)
		}
		clone.index[code] = cp
	}

	return clone
}
