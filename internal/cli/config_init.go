package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/drillchart/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (a directory tree holding .drillchart/) it writes the
// project-local .drillchart/config.yaml unless --global is set; otherwise it
// writes the global ~/.drillchart/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project, creates project-local configuration at
$PROJECT/.drillchart/config.yaml. Use --global to initialize the global
configuration even inside a project.`,
		Example: `  # Create configuration
  drillchart config init

  # Create global configuration
  drillchart config init --global

  # Create configuration, overwriting existing
  drillchart config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()
			if projectDir != "" && !global {
				return initConfigAt(cmd, filepath.Join(projectDir, "config.yaml"), force)
			}

			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			return initConfigAt(cmd, filepath.Join(dir, "config.yaml"), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// initConfigAt writes the default configuration to configPath.
func initConfigAt(cmd *cobra.Command, configPath string, force bool) error {
	if !force {
		_, err := os.Stat(configPath)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, err)
		}
	}

	cfg := config.Default()
	cfg.SetPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	return nil
}
