package main

import (
	"fmt"

	"github.com/aretw0/grievanceflow/internal/presentation/tui"
	"github.com/aretw0/grievanceflow/internal/validator"
	"github.com/aretw0/grievanceflow/pkg/adapters/file"
	"github.com/aretw0/grievanceflow/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a flow document for consistency",
	Long: `Reports dangling edges, duplicate ids, unreachable nodes, dead-end choices,
WhatsApp limit violations and languages that differ in structure.
Without a file, the flow is generated in memory and checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := loadOrGenerate(args)
	if err != nil {
		return err
	}

	report := validator.Validate(doc)
	out := cmd.OutOrStdout()
	tui.PrintIssues(out, "Errors", "#ef4444", issueLines(report.Errors))
	tui.PrintIssues(out, "Warnings", "#f59e0b", issueLines(report.Warnings))

	if !report.Valid() {
		return fmt.Errorf("validation failed: %w", report.Err())
	}
	fmt.Fprintln(out, "Flow is valid! ✅")
	return nil
}

func issueLines(issues []validator.Issue) []string {
	lines := make([]string, 0, len(issues))
	for _, i := range issues {
		lines = append(lines, i.Error())
	}
	return lines
}

// loadOrGenerate reads the document named in args, or generates one from the flags.
func loadOrGenerate(args []string) (*domain.Document, error) {
	if len(args) > 0 {
		return file.ReadDocument(args[0])
	}
	gen, err := newGenerator()
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}
