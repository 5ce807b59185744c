package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/drillchart/internal/config"
)

// NewConfigValidateCmd creates the config validate command. Given a chart
// file it validates that too.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate [CHART]",
		Short: "Validate configuration and, optionally, a chart definition",
		Long: `Validates the effective configuration (global file, project overlay and
environment) and, when a chart file is given, the chart definition:
- supported definition version
- at least one top-level series
- unique drill target ids
- navigator settings such as animation and latency durations`,
		Example: `  # Validate current configuration
  drillchart config validate

  # Validate a chart definition and show details
  drillchart config validate sales.yaml --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chartPath := ""
			if len(args) == 1 {
				chartPath = args[0]
			}
			return runConfigValidate(cmd, chartPath, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, chartPath string, verbose bool) error {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	var def *config.ChartDefinition
	if chartPath != "" {
		var err error
		if def, err = config.LoadChartDefinition(chartPath); err != nil {
			return fmt.Errorf("chart validation failed: %w", err)
		}
		if _, err = def.Settings(cfg).NavigatorOptions(); err != nil {
			return fmt.Errorf("chart validation failed: %w", err)
		}
	}

	cmd.Printf("Configuration is valid\n")
	if def != nil {
		cmd.Printf("Chart %s is valid\n", chartPath)
	}

	if verbose {
		printVerboseDetails(cmd, cfg, def)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, def *config.ChartDefinition) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if path := cfg.Path(); path != "" {
		cmd.Printf("  Config file: %s\n", path)
	}
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project dir: %s\n", dir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Animation: %s\n", cfg.Drilldown.Animation)
	cmd.Printf("  Cache enabled: %t (ttl %ds)\n", cfg.Cache.Enabled, cfg.Cache.TTLSeconds)

	if def == nil {
		return
	}
	settings := def.Settings(cfg)
	cmd.Println()
	cmd.Println("Chart details:")
	cmd.Printf("  Title: %s\n", def.Title)
	cmd.Printf("  Top-level series: %d\n", len(def.Series))
	cmd.Printf("  Inline targets: %d\n", len(def.Drilldown.Series))
	if missing := def.MissingTargets(); len(missing) > 0 {
		cmd.Printf("  Targets loaded on demand: %d\n", len(missing))
		for _, id := range missing {
			cmd.Printf("    - %s\n", id)
		}
	}
	if settings.TargetsDir != "" {
		cmd.Printf("  Targets dir: %s\n", settings.TargetsDir)
	}
}
