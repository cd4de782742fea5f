package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/grievanceflow"
	"github.com/aretw0/grievanceflow/internal/logging"
	"github.com/aretw0/grievanceflow/pkg/flow"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grievanceflow",
	Short: "grievanceflow generates the tri-lingual citizen-services chatbot flow",
	Long: `grievanceflow assembles the Collectorate Jharsugda Odisha chatbot flow (English, Hindi, Odia)
from a translation table and writes it as a JSON document for the flow builder.

Running without a subcommand is the same as "grievanceflow generate".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

// Persistent flags (available to all commands)
var (
	logLevel     string
	translations string
	edgeIDs      string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&translations, "translations", "", "YAML or JSON configuration replacing the embedded translations")
	rootCmd.PersistentFlags().StringVar(&edgeIDs, "edge-ids", string(flow.EdgeIDDerived), "Edge id strategy (derived, sequential)")
	addGenerateFlags(rootCmd)
}

func newLogger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// newGenerator builds the library entry point from the persistent flags.
func newGenerator(extra ...grievanceflow.Option) (*grievanceflow.Generator, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	strategy, err := flow.ParseEdgeIDStrategy(edgeIDs)
	if err != nil {
		return nil, err
	}

	opts := []grievanceflow.Option{
		grievanceflow.WithLogger(logger),
		grievanceflow.WithEdgeIDs(strategy),
	}
	if translations != "" {
		opts = append(opts, grievanceflow.WithConfigFile(translations))
	}
	return grievanceflow.New(append(opts, extra...)...)
}
