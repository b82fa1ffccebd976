// SPDX-License-Identifier: MIT
// File: tree.go
// Role: Family-tree snapshot of one member (ancestor and descendant sections)
// and its markup rendering.

package core

import (
	"fmt"
	"io"
	"strings"
)

// Fixed labels for the first generations of each direction.
var (
	ancestorLabels = [...]string{
		"Parents",
		"Grandparents",
		"Great-grandparents",
		"Great-great-grandparents",
	}
	descendantLabels = [...]string{
		"Children",
		"Grandchildren",
		"Great-grandchildren",
		"Great-great-grandchildren",
	}
)

// GenerationLabel returns the human-readable label of generation depth in the
// kind direction. Depths 0..3 use the fixed vocabulary; deeper generations are
// labeled "Ancestors (generation N)" / "Descendants (generation N)",
// N = depth+1.
func GenerationLabel(kind Kind, depth int) string {
	if kind.normalize() == Parent {
		if depth >= 0 && depth < len(ancestorLabels) {
			return ancestorLabels[depth]
		}

		return fmt.Sprintf("Ancestors (generation %d)", depth+1)
	}
	if depth >= 0 && depth < len(descendantLabels) {
		return descendantLabels[depth]
	}

	return fmt.Sprintf("Descendants (generation %d)", depth+1)
}

// Section is one labeled, non-empty generation of a Tree.
type Section struct {
	Kind    Kind
	Depth   int
	Label   string
	Members Generation
}

// Tree is a snapshot of a member's ancestor and descendant generations.
type Tree struct {
	Root        *Member
	Ancestors   []Section
	Descendants []Section
}

// Blocks returns the ancestor block followed by the descendant block.
func (t *Tree) Blocks() [2][]Section {
	return [2][]Section{t.Ancestors, t.Descendants}
}

// Tree walks both directions from m and assembles the labeled sections.
// opts apply to both walks.
func (m *Member) Tree(opts ...LineageOption) (*Tree, error) {
	t := &Tree{Root: m}

	var err error
	if t.Ancestors, err = m.Sections(Parent, opts...); err != nil {
		return nil, fmt.Errorf("core: ancestors of %q: %w", m.code, err)
	}
	if t.Descendants, err = m.Sections(Child, opts...); err != nil {
		return nil, fmt.Errorf("core: descendants of %q: %w", m.code, err)
	}

	return t, nil
}

// Sections returns the labeled, non-empty generations of m in the kind direction.
func (m *Member) Sections(kind Kind, opts ...LineageOption) ([]Section, error) {
	lines, err := m.Lineage(kind, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Section, 0, len(lines))
	for depth, gen := range lines {
		if gen.Len() == 0 {
			continue
		}
		out = append(out, Section{
			Kind:    kind,
			Depth:   depth,
			Label:   GenerationLabel(kind, depth),
			Members: gen,
		})
	}

	return out, nil
}

// WriteMarkup renders t in the markup layout:
//
//	<h3>Label:  </h3><k>[Name] [Name] </k>   one per section
//	<br/><br/>                               after each direction block
func (t *Tree) WriteMarkup(w io.Writer) error {
	var b strings.Builder
	for _, block := range t.Blocks() {
		for _, s := range block {
			b.WriteString("<h3>" + s.Label + ":  </h3><k>")
			for _, name := range s.Members.Names() {
				b.WriteString("[" + name + "] ")
			}
			b.WriteString("</k>")
		}
		b.WriteString("<br/><br/>")
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// PrintTree writes the markup family tree of m to w.
func (m *Member) PrintTree(w io.Writer) error {
	t, err := m.Tree()
	if err != nil {
		return err
	}

	return t.WriteMarkup(w)
}
