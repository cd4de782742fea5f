package main

import (
	"fmt"

	"github.com/aretw0/grievanceflow"
	"github.com/aretw0/grievanceflow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of grievanceflow",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "grievanceflow version %s\n", grievanceflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
