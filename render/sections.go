// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/core"
)

// WriteSections renders a single direction of generations. YAML yields a
// list of section documents; the other formats print one text line per
// section.
func WriteSections(w io.Writer, sections []core.Section, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(SectionDocs(sections)); err != nil {
			return fmt.Errorf("render: encode yaml: %w", err)
		}
		return enc.Close()
	case Markup, Text, Styled:
		var b strings.Builder
		for _, s := range sections {
			b.WriteString(s.Label + ": " + bracketed(s.Members.Names()) + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
