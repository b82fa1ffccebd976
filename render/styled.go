// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/kinship/core"
)

// Color palette.
var (
	ColorAncestor   = lipgloss.Color("#8B5CF6") // Violet
	ColorDescendant = lipgloss.Color("#10B981") // Emerald
	ColorName       = lipgloss.Color("#F9FAFB") // Near white
	ColorMuted      = lipgloss.Color("#6B7280") // Gray
)

// Theme holds the styles used by WriteStyled.
type Theme struct {
	Title      lipgloss.Style
	Ancestor   lipgloss.Style
	Descendant lipgloss.Style
	Name       lipgloss.Style
	Empty      lipgloss.Style
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Underline(true),
		Ancestor:   lipgloss.NewStyle().Bold(true).Foreground(ColorAncestor),
		Descendant: lipgloss.NewStyle().Bold(true).Foreground(ColorDescendant),
		Name:       lipgloss.NewStyle().Foreground(ColorName),
		Empty:      lipgloss.NewStyle().Italic(true).Foreground(ColorMuted),
	}
}

// WriteStyled renders t with a title line and one styled line per generation.
// Styles are bound to a renderer for w, so non-terminal writers receive
// plain text.
func WriteStyled(w io.Writer, t *core.Tree, theme Theme) error {
	r := lipgloss.NewRenderer(w)
	title := theme.Title.Renderer(r)
	name := theme.Name.Renderer(r)
	empty := theme.Empty.Renderer(r)

	var b strings.Builder
	b.WriteString(title.Render(t.Root.Name()) + "\n")
	for i, block := range t.Blocks() {
		label := theme.Ancestor.Renderer(r)
		none := "no recorded ancestors"
		if i == 1 {
			label = theme.Descendant.Renderer(r)
			none = "no recorded descendants"
		}
		if len(block) == 0 {
			b.WriteString("  " + empty.Render(none) + "\n")
		}
		for _, s := range block {
			names := make([]string, 0, s.Members.Len())
			for _, n := range s.Members.Names() {
				names = append(names, name.Render("["+n+"]"))
			}
			b.WriteString("  " + label.Render(s.Label+":") + " " + strings.Join(names, " ") + "\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
