// SPDX-License-Identifier: MIT

package loader_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/core"
	"github.com/katalvlaran/kinship/loader"
)

func TestSample(t *testing.T) {
	reg, err := loader.Sample().Registry()
	require.NoError(t, err)
	require.Equal(t, 9, reg.MemberCount())
	require.Equal(t, 9, reg.EdgeCount())

	gens, err := reg.Lineage(core.Parent, "norelis santander")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"florelia santander", "isidro garcia"},
		{"carmen perez", "yolanda zambrano", "jesus garcia"},
		{"maria herrera"},
	}, gens)
}

func TestParse_MembersAndRelations(t *testing.T) {
	f, err := loader.Parse([]byte(`
members:
  - name: Carmen Perez
  - name: Ana Lucia Perez
    code: analu
relations:
  - member: Florelia Santander
    parents: [Carmen Perez]
    children: [Norelis Santander]
`))
	require.NoError(t, err)
	require.Len(t, f.Members, 2)
	require.Equal(t, "analu", f.Members[1].Code)

	reg, err := f.Registry()
	require.NoError(t, err)
	require.Equal(t, 4, reg.MemberCount())

	analu, err := reg.Find("analu")
	require.NoError(t, err)
	require.Equal(t, "Ana Lucia Perez", analu.Name())
	require.Empty(t, analu.Parents())

	carmen, err := reg.Find("carmen perez")
	require.NoError(t, err)
	require.Equal(t, []string{"florelia santander"}, carmen.Children().Codes())
	require.Equal(t, []string{"carmen perez"}, reg.Inheritance(core.Parent, "florelia santander"))
	require.Equal(t, []string{"florelia santander"}, reg.Inheritance(core.Parent, "norelis santander"))
}

func TestApply_ExplicitCodeKeepsName(t *testing.T) {
	f, err := loader.Parse([]byte(`
members:
  - name: Carmen Perez
    code: carmen
relations:
  - member: Florelia Santander
    parents: [carmen]
  - member: carmen
    children: [Jesus Marques]
`))
	require.NoError(t, err)

	reg, err := f.Registry()
	require.NoError(t, err)
	require.Equal(t, 3, reg.MemberCount())
	require.False(t, reg.Has("carmen perez"))

	carmen, err := reg.Find("carmen")
	require.NoError(t, err)
	require.Equal(t, "Carmen Perez", carmen.Name())
	require.Equal(t, []string{"florelia santander", "jesus marques"}, carmen.Children().Codes())

	tree, err := carmen.Children()[0].Tree()
	require.NoError(t, err)
	require.Equal(t, []string{"Carmen Perez"}, tree.Ancestors[0].Members.Names())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", loader.ErrEmptyFile},
		{"no entries", "members: []\n", loader.ErrEmptyFile},
		{"blank member", "members:\n  - name: '  '\n", loader.ErrEmptyMember},
		{"blank relation", "relations:\n  - parents: [a]\n", loader.ErrEmptyMember},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := loader.Parse([]byte("relations:\n  - member: a\n    spouse: b\n"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "loader: decode:"), err.Error())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, os.WriteFile(path, []byte("relations:\n  - member: Jesus Garcia\n    parents: [Maria Herrera]\n"), 0o600))

	f, err := loader.LoadFile(path)
	require.NoError(t, err)
	reg, err := f.Registry(core.WithStrictLineage())
	require.NoError(t, err)
	require.True(t, reg.StrictLineage())
	require.Equal(t, []string{"maria herrera"}, reg.Inheritance(core.Parent, "jesus garcia"))

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg := core.NewRegistry()
	require.NoError(t, loader.Sample().Apply(reg, loader.WithLogger(logger)))
	require.Contains(t, buf.String(), "relations applied")
	require.Contains(t, buf.String(), "member=\"norelis santander\"")
}

func TestApply_Invalid(t *testing.T) {
	f := &loader.File{Relations: []loader.RelationSpec{{Member: ""}}}
	require.ErrorIs(t, f.Apply(core.NewRegistry()), loader.ErrEmptyMember)
}

func TestLoadFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[members]]
name = "Ana Lucia Perez"
code = "analu"

[[relations]]
member = "Jesus Garcia"
parents = ["Maria Herrera"]
children = ["Isidro Garcia"]
`), 0o600))

	f, err := loader.LoadFile(path)
	require.NoError(t, err)

	reg, err := f.Registry()
	require.NoError(t, err)
	require.Equal(t, 4, reg.MemberCount())
	require.True(t, reg.Has("analu"))
	require.Equal(t, []string{"isidro garcia"}, reg.Inheritance(core.Child, "jesus garcia"))
	require.Equal(t, []string{"maria herrera"}, reg.Inheritance(core.Parent, "jesus garcia"))
}

func TestLoadTOML_Errors(t *testing.T) {
	_, err := loader.LoadTOML(strings.NewReader(""))
	require.ErrorIs(t, err, loader.ErrEmptyFile)

	_, err = loader.LoadTOML(strings.NewReader("[[relations]]\nmember = \"a\"\nspouse = \"b\"\n"))
	require.ErrorContains(t, err, "unknown keys relations.spouse")

	_, err = loader.LoadTOML(strings.NewReader("[[relations]]\nparents = [\"a\"]\n"))
	require.ErrorIs(t, err, loader.ErrEmptyMember)
}
