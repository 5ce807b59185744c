// Package cli implements the drillchart command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/drillchart/internal/config"
	"github.com/rshade/drillchart/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the drillchart CLI.
// It resolves the project directory, loads configuration, wires up logging
// and tracing, and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:     "drillchart",
		Short:   "Explore hierarchical charts from the terminal",
		Long:    "drillchart: drill into and back out of hierarchical chart data, and batch dense scatter plots",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadConfig(cmd, projectDir)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .drillchart/config.yaml (default: nearest ancestor with .drillchart)")
	cmd.AddCommand(NewViewCmd(), NewDrillCmd(), NewScatterCmd(), NewCacheCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse a chart interactively
  drillchart view sales.yaml

  # Drill along a path and print the resulting level
  drillchart drill sales.yaml --path "Europe/Germany"

  # Drill a whole category and print JSON
  drillchart drill sales.yaml --path Q1 --category --output json

  # Render 50,000 generated points as batched SVG paths
  drillchart scatter --points 50000 --radius 2 --out scatter.svg

  # Drop cached drill targets
  drillchart cache clear

  # Initialize configuration
  drillchart config init`

// loadConfig resolves the project directory and installs the merged
// configuration as the global one.
func loadConfig(cmd *cobra.Command, projectDirFlag string) {
	ctx := cmd.Context()
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	dir := config.ResolveProjectDir(ctx, projectDirFlag, cwd)
	config.SetResolvedProjectDir(dir)
	config.SetGlobalConfig(config.NewWithProjectDir(ctx, dir))
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
