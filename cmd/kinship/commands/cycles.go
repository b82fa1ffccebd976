// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [parents|children]",
	Short: "List relationship cycles (one per back edge)",
	Long: `List the cycles closed by depth-first back edges in the parent (default)
or child direction. Overlapping cycles that share a back edge are reported once.

A consistent family has none; a cycle means some member was declared as
its own ancestor.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"parents", "children"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "parents"
		if len(args) == 1 {
			dir = args[0]
		}
		kind, err := parseKind(dir)
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		cycles := reg.Cycles(kind)
		out := cmd.OutOrStdout()
		if len(cycles) == 0 {
			fmt.Fprintln(out, "no cycles")
			return nil
		}
		for _, c := range cycles {
			fmt.Fprintln(out, strings.Join(c, " -> "))
		}
		logger.Warn("cycles found", "kind", kind.String(), "count", len(cycles))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
}
