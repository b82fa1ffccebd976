// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/render"
)

var (
	showStats   bool
	eldersFirst bool
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List registered members",
	Long:  `List registered members sorted by code, or parents first with --elders-first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		members := reg.Members()
		if eldersFirst {
			codes, err := reg.ElderOrder(cmd.Context())
			if err != nil {
				return err
			}
			members = members[:0]
			for _, c := range codes {
				m, err := reg.Find(c)
				if err != nil {
					return err
				}
				members = append(members, m)
			}
		}

		out := cmd.OutOrStdout()
		if format == render.YAML {
			docs := make([]render.MemberDoc, 0, len(members))
			for _, m := range members {
				docs = append(docs, render.MemberDoc{Code: m.Code(), Name: m.Name()})
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(docs); err != nil {
				return err
			}
			return enc.Close()
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tPARENTS\tCHILDREN")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", m.Code(), m.Name(), m.Parents().Len(), m.Children().Len())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if showStats {
			s := reg.Stats()
			fmt.Fprintf(out, "\nmembers: %d\nedges:   %d\nroots:   %s\nleaves:  %s\n",
				s.MemberCount, s.EdgeCount, strings.Join(s.Roots, ", "), strings.Join(s.Leaves, ", "))
		}

		return nil
	},
}

func init() {
	membersCmd.Flags().BoolVar(&eldersFirst, "elders-first", false, "order members so parents precede their children")
	membersCmd.Flags().BoolVar(&showStats, "stats", false, "append registry statistics")
	rootCmd.AddCommand(membersCmd)
}
