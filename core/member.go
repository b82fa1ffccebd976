// SPDX-License-Identifier: MIT
// File: member.go
// Role: Member view: identity accessors and instance-level wrappers over the
// owning Registry's relationship operations.
//
// Concurrency:
//   - Member holds no lock of its own; name reads/writes use Registry.mu.
package core

// Generation is one layer of relatives in discovery order.
type Generation []*Member

// Len returns the number of members in the generation.
func (g Generation) Len() int { return len(g) }

// Codes returns the member codes in order.
func (g Generation) Codes() []string {
	out := make([]string, len(g))
	for i, m := range g {
		out[i] = m.Code()
	}

	return out
}

// Names returns the display names in order.
func (g Generation) Names() []string {
	out := make([]string, len(g))
	for i, m := range g {
		out[i] = m.Name()
	}

	return out
}

// Get returns the member with the given code, or nil.
func (g Generation) Get(code string) *Member {
	c := NormalizeCode(code)
	for _, m := range g {
		if m.code == c {
			return m
		}
	}

	return nil
}

// Code returns the normalized identity of the member.
func (m *Member) Code() string { return m.code }

// Registry returns the owning Registry.
func (m *Member) Registry() *Registry { return m.registry }

// Name returns the display name.
func (m *Member) Name() string {
	m.registry.mu.RLock()
	defer m.registry.mu.RUnlock()

	return m.name
}

// SetName trims name and stores it; an empty result is replaced by the
// Registry's placeholder (DefaultName unless overridden). Returns m.
func (m *Member) SetName(name string) *Member {
	m.registry.mu.Lock()
	m.setNameLocked(name)
	m.registry.mu.Unlock()

	return m
}

// setNameLocked implements SetName; caller holds registry.mu for writing.
func (m *Member) setNameLocked(name string) {
	n := NormalizeName(name)
	if n == "" {
		n = m.registry.defaultName
	}
	m.name = n
}

// String returns the display name.
func (m *Member) String() string { return m.Name() }

// Inheritance returns the direct relatives of m in the kind direction.
// Returns nil when there are none.
func (m *Member) Inheritance(kind Kind) Generation {
	codes := m.registry.Inheritance(kind, m.code)
	if len(codes) == 0 {
		return nil
	}

	return m.registry.resolve(codes)
}

// Lineage returns the successive generations of m in the kind direction,
// resolved to members. See Registry.Lineage for options and errors.
func (m *Member) Lineage(kind Kind, opts ...LineageOption) ([]Generation, error) {
	lines, err := m.registry.Lineage(kind, m.code, opts...)
	if err != nil || len(lines) == 0 {
		return nil, err
	}

	out := make([]Generation, len(lines))
	for i, codes := range lines {
		out[i] = m.registry.resolve(codes)
	}

	return out, nil
}

// Parents returns the direct parents of m.
func (m *Member) Parents() Generation { return m.Inheritance(Parent) }

// Children returns the direct children of m.
func (m *Member) Children() Generation { return m.Inheritance(Child) }

// Ancestors returns parents, grandparents, ... of m.
func (m *Member) Ancestors(opts ...LineageOption) ([]Generation, error) {
	return m.Lineage(Parent, opts...)
}

// Descendants returns children, grandchildren, ... of m.
func (m *Member) Descendants(opts ...LineageOption) ([]Generation, error) {
	return m.Lineage(Child, opts...)
}

// AddInheritance links code to m in the kind direction
// (AddInheritance(Parent, "x") makes x a parent of m). Returns m.
//
// The member is addressed by its code and keeps its display name; code is
// ensured with Add semantics like any SetInheritance endpoint.
func (m *Member) AddInheritance(kind Kind, code string) *Member {
	m.registry.setInheritance(kind, "", m.code, code, false)
	return m
}

// LinkInheritance is AddInheritance for references: a ref that matches an
// existing member's code links that member and leaves its display name
// untouched; any other ref is added with Add semantics. Returns m.
func (m *Member) LinkInheritance(kind Kind, ref string) *Member {
	m.registry.setInheritance(kind, "", m.code, ref, true)
	return m
}

// LinkInheritances links every ref in order.
func (m *Member) LinkInheritances(kind Kind, refs ...string) *Member {
	for _, ref := range refs {
		m.LinkInheritance(kind, ref)
	}

	return m
}

// AddInheritances links every code in order. No codes is a no-op.
func (m *Member) AddInheritances(kind Kind, codes ...string) *Member {
	for _, c := range codes {
		m.AddInheritance(kind, c)
	}

	return m
}

// AddParent records code as a parent of m.
func (m *Member) AddParent(code string) *Member { return m.AddInheritance(Parent, code) }

// AddChild records code as a child of m.
func (m *Member) AddChild(code string) *Member { return m.AddInheritance(Child, code) }

// AddParents records each code as a parent of m, in order.
func (m *Member) AddParents(codes ...string) *Member { return m.AddInheritances(Parent, codes...) }

// AddChildren records each code as a child of m, in order.
func (m *Member) AddChildren(codes ...string) *Member { return m.AddInheritances(Child, codes...) }
