// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/render"
)

var treeCmd = &cobra.Command{
	Use:   "tree <member>",
	Short: "Print the ancestors and descendants of a member",
	Long: `Print every generation above and below a member.

Sections are labelled Parents, Grandparents, Great-grandparents and
Children, Grandchildren, Great-grandchildren; deeper generations are
numbered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		m, err := findMember(reg, args[0])
		if err != nil {
			return err
		}

		tree, err := m.Tree(lineageOptions(cmd.Context())...)
		if err != nil {
			return err
		}

		return render.Render(cmd.OutOrStdout(), tree, format)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
