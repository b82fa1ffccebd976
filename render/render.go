// SPDX-License-Identifier: MIT
// Package render writes a core.Tree in one of several presentations:
//
//	markup – the <h3>/<k> layout of core.Tree.WriteMarkup
//	text   – one "Label: [Name] [Name]" line per generation, blank line per block
//	styled – text layout styled with lipgloss (colors only on capable terminals)
//	yaml   – a structured document for downstream tooling
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/kinship/core"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects a presentation.
type Format string

// Supported formats.
const (
	Markup Format = "markup"
	Text   Format = "text"
	Styled Format = "styled"
	YAML   Format = "yaml"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{Markup, Text, Styled, YAML}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes t to w in format f.
func Render(w io.Writer, t *core.Tree, f Format) error {
	switch f {
	case Markup:
		return t.WriteMarkup(w)
	case Text:
		return WriteText(w, t)
	case Styled:
		return WriteStyled(w, t, DefaultTheme())
	case YAML:
		return WriteYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// bracketed joins names as "[a] [b]".
func bracketed(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "[" + n + "]"
	}

	return strings.Join(parts, " ")
}
