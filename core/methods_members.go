// SPDX-License-Identifier: MIT
// File: methods_members.go
// Role: Member lifecycle & catalog queries on the Registry.
//
// Determinism:
//   - Members() returns members sorted by code ascending.
//
// Concurrency:
//   - Catalog and index are protected by Registry.mu.
//   - Exported methods lock; *Locked helpers expect the caller to hold mu.
package core

import "sort"

// Get returns the member addressed by name, creating it when absent.
//
// Implementation:
//   - Stage 1: Normalize name to a code; empty code yields nil.
//   - Stage 2: Under the write lock, return the existing member or create one
//     whose display name is the trimmed original spelling.
//
// Behavior highlights:
//   - Lookup of an unknown name is never an error: the member is materialized.
//   - An existing member keeps its display name (Get does not rename).
//
// Complexity:
//   - Time O(len(name)), Space O(1) amortized.
func (r *Registry) Get(name string) *Member {
	code := NormalizeCode(name)
	if code == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.members[code]; ok {
		return m
	}

	return r.addLocked(name, "")
}

// Find returns the member with the given code without creating it.
// Returns ErrEmptyCode for empty input and ErrMemberNotFound for unknown codes.
// Complexity: O(len(code)).
func (r *Registry) Find(code string) (*Member, error) {
	c := NormalizeCode(code)
	if c == "" {
		return nil, ErrEmptyCode
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[c]
	if !ok {
		return nil, ErrMemberNotFound
	}

	return m, nil
}

// Has reports whether a member with the given code exists (empty ⇒ false).
// Complexity: O(len(code)).
func (r *Registry) Has(code string) bool {
	c := NormalizeCode(code)
	if c == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[c]

	return ok
}

// Add registers the member named name, deriving its code from the name.
// See AddWithCode.
func (r *Registry) Add(name string) *Registry {
	return r.AddWithCode(name, "")
}

// AddWithCode registers a member under an explicit code.
//
// The name is trimmed; an empty name makes the call a no-op. An empty code is
// derived by lowercasing the trimmed name. When the code already exists only
// the display name is updated: code and relationships are untouched.
// Returns the Registry for chaining.
// Complexity: O(len(name)+len(code)).
func (r *Registry) AddWithCode(name, code string) *Registry {
	if NormalizeName(name) == "" {
		return r
	}

	r.mu.Lock()
	r.addLocked(name, code)
	r.mu.Unlock()

	return r
}

// addLocked implements AddWithCode; caller holds mu for writing.
// Returns nil when name normalizes empty.
func (r *Registry) addLocked(name, code string) *Member {
	n := NormalizeName(name)
	if n == "" {
		return nil
	}
	c := NormalizeCode(code)
	if c == "" {
		c = NormalizeCode(n)
	}

	if m, ok := r.members[c]; ok {
		if m.name != n {
			r.logger.Debug("member renamed", "code", c, "from", m.name, "to", n)
		}
		m.setNameLocked(n)

		return m
	}

	m := &Member{registry: r, code: c}
	m.setNameLocked(n)
	r.members[c] = m
	r.logger.Debug("member created", "code", c, "name", m.name)

	return m
}

// Members returns all members sorted by code.
// Complexity: O(M·log M).
func (r *Registry) Members() []*Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })

	return out
}

// MemberCount returns the number of members. O(1).
func (r *Registry) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.members)
}

// EdgeCount returns the number of distinct parent→child pairs. O(M).
func (r *Registry) EdgeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rel := range r.index {
		n += rel.parents.len()
	}

	return n
}

// resolveLocked maps codes to members, creating any that are missing.
// Caller holds mu for writing.
func (r *Registry) resolveLocked(codes []string) []*Member {
	out := make([]*Member, 0, len(codes))
	for _, c := range codes {
		m, ok := r.members[c]
		if !ok {
			m = r.addLocked(c, c)
		}
		out = append(out, m)
	}

	return out
}

// resolve maps codes to members, taking the write lock only when a code has
// no member yet.
func (r *Registry) resolve(codes []string) []*Member {
	r.mu.RLock()
	out := make([]*Member, 0, len(codes))
	for _, c := range codes {
		m, ok := r.members[c]
		if !ok {
			break
		}
		out = append(out, m)
	}
	r.mu.RUnlock()
	if len(out) == len(codes) {
		return out
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked(codes)
}
