// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/kinship/core"
)

// WriteText renders t as plain text:
//
//	Parents: [Yolanda Zambrano] [Jesus Garcia]
//	Grandparents: [Maria Herrera]
//	<blank>
//	Children: [Norelis Santander] [Antonio Garcia]
//	<blank>
func WriteText(w io.Writer, t *core.Tree) error {
	var b strings.Builder
	for _, block := range t.Blocks() {
		for _, s := range block {
			b.WriteString(s.Label + ": " + bracketed(s.Members.Names()) + "\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
