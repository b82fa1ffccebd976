// SPDX-License-Identifier: MIT
// Package main is the entry point for the kinship CLI.
//
// Usage:
//
//	kinship [flags] <command> [args]
//
// Commands:
//
//	tree     - Ancestors and descendants of a member
//	line     - One direction of generations (parents | children)
//	members  - Registered members and registry statistics
//	cycles   - Relationship cycles in the family graph
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kinship/cmd/kinship/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
