// SPDX-License-Identifier: MIT
// Package core provides a thread-safe, in-memory family-relationship graph:
// members connected by parent/child edges, with lazy member creation and
// generation-by-generation ("lineage") queries.
//
// The Registry R = (M, I) holds:
//
//   - M: members keyed by normalized code (trimmed, lowercased name)
//   - I: the bidirectional index I[code] = {parents, children}, each an
//     insertion-ordered set of codes
//
// Invariants:
//
//   - Closure: every code stored in I has a member in M (auto-created).
//   - Symmetry: B ∈ I[A].parents ⇔ A ∈ I[B].children, written atomically.
//   - Codes are case-insensitive; display names keep their casing.
//
// Configuration Options (RegistryOption):
//
//	– WithLogger(*slog.Logger)
//	    Debug diagnostics for member creation, renames, edges and cycles.
//
//	– WithStrictLineage()
//	    Every lineage walk runs with WithCycleGuard.
//
//	– WithDefaultName(name)
//	    Placeholder for empty display names (default DefaultName, "John Doe").
//
// Core Methods:
//
//	// Members
//	Get(name) *Member                         // get-or-create; nil for empty name
//	Find(code) (*Member, error)               // strict; ErrEmptyCode / ErrMemberNotFound
//	Add(name) / AddWithCode(name, code)       // create or rename
//	Has(code) bool, Members(), MemberCount()
//
//	// Relationships
//	SetInheritance(kind, from, to)            // to becomes from's kind; mirrored on to
//	AddParent(code, parent), AddChild(code, child)
//	Inheritance(kind, code) []string          // direct relations
//	Lineage(kind, code, opts...) ([][]string, error)
//	Cycles(kind) [][]string
//	ElderOrder(ctx) ([]string, error)          // parents before children
//	Stats(), Clone()
//
//	// Member view
//	m.Parents(), m.Children(), m.Ancestors(...), m.Descendants(...)
//	m.AddParent(s)(...), m.AddChild(ren)(...), m.LinkInheritance(s)(kind, refs...)
//	m.Tree(...), m.PrintTree(w)
//
// Lineage semantics:
//
//	Generation 0 is the direct relation set of the root; generation n is the
//	ordered, deduplicated union of the direct relations of generation n-1.
//	The walk stops before the first empty generation. It keeps no visited set
//	across generations, so diamonds repeat a member at each depth it is reached
//	and a cycle never empties a generation: use WithCycleGuard (fails fast with
//	ErrCycleDetected), WithMaxDepth or WithContext when input may be cyclic.
//
// Errors:
//
//	ErrEmptyCode       – code/name normalizes to ""
//	ErrMemberNotFound  – unknown code in Find
//	ErrCycleDetected   – guarded walk reached a cycle
//	ErrOptionViolation – invalid LineageOption
package core
