// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/core"
	"github.com/katalvlaran/kinship/loader"
	"github.com/katalvlaran/kinship/render"
)

// unguardedDepth caps walks run with --strict=false and no --max-depth,
// so a cyclic family cannot hang the CLI.
const unguardedDepth = 64

var (
	// Global flags
	familyFile   string
	outputFormat string
	strict       bool
	maxDepth     int
	logLevel     string

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "kinship",
	Short: "Explore family trees",
	Long: `kinship - print generation lines and family trees from a family file.

Without --file the built-in sample family is used.

Family files are YAML (or TOML with a .toml extension):
  members:
    - name: Carmen Perez
      code: carmen        # optional
  relations:
    - member: Norelis Santander
      parents: [Florelia Santander, Isidro Garcia]
      children: []

Examples:
  kinship tree "Maria Herrera"
  kinship tree "Isidro Garcia" --format styled
  kinship -f family.yaml line parents "Norelis Santander"
  kinship members --stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&familyFile, "file", "f", "", "family file (YAML); defaults to the built-in sample family")
	pf.StringVarP(&outputFormat, "format", "o", string(render.Markup), "output format: markup, text, styled, yaml")
	pf.BoolVar(&strict, "strict", true, "fail lineage walks that reach a cycle")
	pf.IntVar(&maxDepth, "max-depth", 0, "maximum generations per walk (0 = unlimited)")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func setupLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return nil
}

// loadRegistry builds the registry selected by the global flags.
func loadRegistry() (*core.Registry, error) {
	f := loader.Sample()
	if familyFile != "" {
		var err error
		if f, err = loader.LoadFile(familyFile); err != nil {
			return nil, err
		}
	}

	opts := []core.RegistryOption{core.WithLogger(logger)}
	if strict {
		opts = append(opts, core.WithStrictLineage())
	}
	reg := core.NewRegistry(opts...)
	if err := f.Apply(reg, loader.WithLogger(logger)); err != nil {
		return nil, err
	}
	logger.Info("family loaded", "file", familyFile, "members", reg.MemberCount(), "edges", reg.EdgeCount())

	return reg, nil
}

// findMember resolves a CLI argument (display name or code) to a member.
func findMember(reg *core.Registry, arg string) (*core.Member, error) {
	m, err := reg.Find(arg)
	if err != nil {
		return nil, fmt.Errorf("member %q: %w", arg, err)
	}

	return m, nil
}

func lineageOptions(ctx context.Context) []core.LineageOption {
	depth := maxDepth
	if !strict && depth == 0 {
		depth = unguardedDepth
	}

	return []core.LineageOption{core.WithContext(ctx), core.WithMaxDepth(depth)}
}

// parseKind accepts the direction names used on the command line.
func parseKind(s string) (core.Kind, error) {
	switch s {
	case "parent", "parents", "ancestors":
		return core.Parent, nil
	case "child", "children", "descendants":
		return core.Child, nil
	default:
		return core.Parent, fmt.Errorf("unknown direction %q (want parents or children)", s)
	}
}
