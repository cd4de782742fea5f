package main

import (
	"github.com/aretw0/grievanceflow"
	"github.com/aretw0/grievanceflow/internal/presentation/tui"
	"github.com/aretw0/grievanceflow/internal/validator"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	validateFlow bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the flow document",
	Long: `Assembles the flow from the translation table and writes it as indented UTF-8 JSON.
A missing translation or an unwritable destination exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// addGenerateFlags binds the generate flags; the root command accepts them too.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "out", "o", grievanceflow.DefaultOutput, "Output file")
	cmd.Flags().BoolVar(&validateFlow, "validate", false, "Lint the generated flow; errors abort before writing")
}

func runGenerate(cmd *cobra.Command) error {
	gen, err := newGenerator(grievanceflow.WithValidation(validateFlow))
	if err != nil {
		return err
	}

	doc, err := gen.Generate()
	if err != nil {
		return err
	}

	if err := gen.Write(outputPath, doc); err != nil {
		return err
	}

	summary := tui.Summary{
		Path:      outputPath,
		Nodes:     len(doc.Nodes),
		Edges:     len(doc.Edges),
		Languages: gen.LanguageNames(),
	}
	if validateFlow {
		summary.Warnings = len(validator.Validate(doc).Warnings)
	}
	return tui.PrintSummary(cmd.OutOrStdout(), summary)
}
