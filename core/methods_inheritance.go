// SPDX-License-Identifier: MIT
// File: methods_inheritance.go
// Role: Relationship (edge) insertion and direct queries.
//
// Invariants:
//   - Symmetry: B ∈ parents[A] ⇔ A ∈ children[B]; both sides are written
//     under the same write lock.
//   - Closure: every code stored in a set has a member entry.
package core

// SetInheritance records to as from's kind, and from as to's opposite kind.
//
// Implementation:
//   - Stage 1: Normalize both codes; if either is empty the call is a no-op.
//   - Stage 2: Under the write lock, ensure both members via Add semantics
//     (the given spellings become their display names).
//   - Stage 3: Ensure index entries and insert into both ordered sets.
//
// Behavior highlights:
//   - SetInheritance(Parent, "Isidro", "Yolanda") makes Yolanda a parent of Isidro.
//   - Any kind other than Parent is treated as Child.
//   - Idempotent: repeated edges collapse.
//   - No cycle prevention: a ⇄ b is accepted when declared both ways.
//
// Complexity:
//   - Time O(len(from)+len(to)) amortized, Space O(1) amortized.
func (r *Registry) SetInheritance(kind Kind, from, to string) *Registry {
	return r.setInheritance(kind, from, NormalizeCode(from), to, false)
}

// setInheritance implements SetInheritance. An empty from with a non-empty
// fromCode addresses an existing member without renaming it. keepTo does the
// same for to when its code already names a member.
func (r *Registry) setInheritance(kind Kind, from, fromCode, to string, keepTo bool) *Registry {
	toCode := NormalizeCode(to)
	if fromCode == "" || toCode == "" {
		return r
	}
	kind = kind.normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	if from != "" {
		r.addLocked(from, "")
	} else if _, ok := r.members[fromCode]; !ok {
		r.addLocked(fromCode, fromCode)
	}
	if _, ok := r.members[toCode]; !ok || !keepTo {
		r.addLocked(to, "")
	}

	fromRel := r.ensureIndexLocked(fromCode)
	toRel := r.ensureIndexLocked(toCode)

	added := fromRel.of(kind).add(toCode)
	toRel.of(kind.Opposite()).add(fromCode)
	if added {
		r.logger.Debug("relationship added", "kind", kind.String(), "from", fromCode, "to", toCode)
	}

	return r
}

// AddParent records parent as a parent of code.
func (r *Registry) AddParent(code, parent string) *Registry {
	return r.SetInheritance(Parent, code, parent)
}

// AddChild records child as a child of code.
func (r *Registry) AddChild(code, child string) *Registry {
	return r.SetInheritance(Child, code, child)
}

// Inheritance returns the direct relations of code in the kind direction,
// in first-insertion order.
// Returns nil when code is empty, unknown, or has no relations of kind.
// Complexity: O(d) where d is the number of direct relations.
func (r *Registry) Inheritance(kind Kind, code string) []string {
	c := NormalizeCode(code)
	if c == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.directLocked(kind, c)
}

// directLocked returns a copy of index[code][kind]; caller holds mu.
func (r *Registry) directLocked(kind Kind, code string) []string {
	rel, ok := r.index[code]
	if !ok {
		return nil
	}

	return rel.of(kind).codes()
}

// ensureIndexLocked makes index[code] non-nil; caller holds mu for writing.
func (r *Registry) ensureIndexLocked(code string) *relations {
	rel, ok := r.index[code]
	if !ok {
		rel = &relations{parents: newCodeSet(), children: newCodeSet()}
		r.index[code] = rel
	}

	return rel
}
