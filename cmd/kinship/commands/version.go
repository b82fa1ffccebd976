// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/cmd/kinship/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), build.String())
		if logger.Enabled(cmd.Context(), slog.LevelDebug) {
			fmt.Fprintf(cmd.OutOrStdout(), "  go: %s\n", runtime.Version())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
