package main

import (
	"fmt"

	"github.com/aretw0/grievanceflow/internal/presentation/graph"
	"github.com/aretw0/grievanceflow/internal/validator"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	byLanguage   bool
	flagWarnings bool
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the flow graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of a flow document.
Without a file, the flow is generated in memory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadOrGenerate(args)
		if err != nil {
			return err
		}

		opts := graph.Options{ByLanguage: byLanguage}
		if flagWarnings {
			report := validator.Validate(doc)
			opts.Flagged = lo.FilterMap(report.Warnings, func(i validator.Issue, _ int) (string, bool) {
				return i.NodeID, i.NodeID != ""
			})
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(doc, opts))
		return nil
	},
}

func init() {
	graphCmd.Flags().BoolVar(&byLanguage, "by-language", false, "Group each language into a subgraph")
	graphCmd.Flags().BoolVar(&flagWarnings, "flag-warnings", false, "Highlight nodes with validation warnings")
	rootCmd.AddCommand(graphCmd)
}
