// SPDX-License-Identifier: MIT

package core_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/core"
)

// TestGenerationLabel verifies the fixed vocabulary and the generated labels beyond it.
func TestGenerationLabel(t *testing.T) {
	cases := []struct {
		kind  core.Kind
		depth int
		want  string
	}{
		{core.Parent, 0, "Parents"},
		{core.Parent, 1, "Grandparents"},
		{core.Parent, 2, "Great-grandparents"},
		{core.Parent, 3, "Great-great-grandparents"},
		{core.Parent, 4, "Ancestors (generation 5)"},
		{core.Child, 0, "Children"},
		{core.Child, 1, "Grandchildren"},
		{core.Child, 2, "Great-grandchildren"},
		{core.Child, 3, "Great-great-grandchildren"},
		{core.Child, 9, "Descendants (generation 10)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, core.GenerationLabel(c.kind, c.depth), "%s depth %d", c.kind, c.depth)
	}
}

// TestPrintTree_Markup verifies the exact markup for the sample family.
func TestPrintTree_Markup(t *testing.T) {
	r := BuildSampleFamily()

	var buf bytes.Buffer
	require.NoError(t, r.Get(NameMaria).PrintTree(&buf))
	require.Equal(t,
		"<br/><br/>"+
			"<h3>Children:  </h3><k>[Jesus Garcia] </k>"+
			"<h3>Grandchildren:  </h3><k>[Isidro Garcia] </k>"+
			"<h3>Great-grandchildren:  </h3><k>[Norelis Santander] [Antonio Garcia] </k>"+
			"<br/><br/>",
		buf.String())

	buf.Reset()
	require.NoError(t, r.Get(NameIsidro).PrintTree(&buf))
	require.Equal(t,
		"<h3>Parents:  </h3><k>[Yolanda Zambrano] [Jesus Garcia] </k>"+
			"<h3>Grandparents:  </h3><k>[Maria Herrera] </k>"+
			"<br/><br/>"+
			"<h3>Children:  </h3><k>[Norelis Santander] [Antonio Garcia] </k>"+
			"<br/><br/>",
		buf.String())
}

// TestTree_Sections verifies the structured snapshot behind the markup.
func TestTree_Sections(t *testing.T) {
	r := BuildSampleFamily()

	tree, err := r.Get(NameNorelis).Tree()
	require.NoError(t, err)
	require.Equal(t, CodeNorelis, tree.Root.Code())
	require.Len(t, tree.Ancestors, 3)
	require.Empty(t, tree.Descendants)
	require.Equal(t, "Great-grandparents", tree.Ancestors[2].Label)
	require.Equal(t, 2, tree.Ancestors[2].Depth)
	require.Equal(t, core.Parent, tree.Ancestors[2].Kind)
	require.Equal(t, []string{NameMaria}, tree.Ancestors[2].Members.Names())

	blocks := tree.Blocks()
	require.Len(t, blocks[0], 3)
	require.Len(t, blocks[1], 0)
}

// TestTree_DeepLabels verifies generated labels reach the output.
func TestTree_DeepLabels(t *testing.T) {
	r := core.NewRegistry()
	names := []string{"G0", "G1", "G2", "G3", "G4", "G5"}
	for i := 0; i+1 < len(names); i++ {
		r.Get(names[i]).AddParent(names[i+1])
	}

	var buf bytes.Buffer
	require.NoError(t, r.Get("G0").PrintTree(&buf))
	require.True(t, strings.Contains(buf.String(), "<h3>Ancestors (generation 5):  </h3><k>[G5] </k>"), buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestPrintTree_WriterError verifies write errors propagate.
func TestPrintTree_WriterError(t *testing.T) {
	r := BuildSampleFamily()
	require.Error(t, r.Get(NameMaria).PrintTree(failingWriter{}))
}
