// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/render"
)

var lineCmd = &cobra.Command{
	Use:       "line <parents|children> <member>",
	Short:     "Print one direction of generations",
	Long:      `Print the generations of a member in one direction, nearest first.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"parents", "children"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		format, err := render.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		m, err := findMember(reg, args[1])
		if err != nil {
			return err
		}

		sections, err := m.Sections(kind, lineageOptions(cmd.Context())...)
		if err != nil {
			return err
		}

		return render.WriteSections(cmd.OutOrStdout(), sections, format)
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)
}
