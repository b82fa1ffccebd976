// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/core"
)

// MemberDoc is the serialized form of a member.
type MemberDoc struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// SectionDoc is the serialized form of a generation.
type SectionDoc struct {
	Label   string      `yaml:"label"`
	Depth   int         `yaml:"depth"`
	Members []MemberDoc `yaml:"members"`
}

// TreeDoc is the serialized form of a core.Tree.
type TreeDoc struct {
	Root        MemberDoc    `yaml:"root"`
	Ancestors   []SectionDoc `yaml:"ancestors"`
	Descendants []SectionDoc `yaml:"descendants"`
}

// NewTreeDoc converts t into its document form.
func NewTreeDoc(t *core.Tree) TreeDoc {
	return TreeDoc{
		Root:        memberDoc(t.Root),
		Ancestors:   SectionDocs(t.Ancestors),
		Descendants: SectionDocs(t.Descendants),
	}
}

// WriteYAML renders t as a YAML document.
func WriteYAML(w io.Writer, t *core.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewTreeDoc(t)); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}

	return enc.Close()
}

func memberDoc(m *core.Member) MemberDoc {
	return MemberDoc{Code: m.Code(), Name: m.Name()}
}

// SectionDocs converts sections into their document form.
func SectionDocs(sections []core.Section) []SectionDoc {
	out := make([]SectionDoc, 0, len(sections))
	for _, s := range sections {
		doc := SectionDoc{Label: s.Label, Depth: s.Depth, Members: make([]MemberDoc, 0, s.Members.Len())}
		for _, m := range s.Members {
			doc.Members = append(doc.Members, memberDoc(m))
		}
		out = append(out, doc)
	}

	return out
}
