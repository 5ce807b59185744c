package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/drillchart/internal/config"
	"github.com/rshade/drillchart/internal/loader"
)

// NewCacheCmd creates the cache command group for the drill target cache.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Drill target cache commands"}
	cmd.AddCommand(newCacheStatusCmd(), newCacheClearCmd())
	return cmd
}

func newCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where targets are cached and how many entries exist",
		Example: `  # Show the cache directory and entry count
  drillchart cache status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheStatus(cmd)
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [TARGET...]",
		Short: "Remove cached drill targets",
		Long: `Removes every cached drill target, or only the named ones. Targets are
fetched again from the targets directory the next time they are drilled.`,
		Example: `  # Drop the whole cache
  drillchart cache clear

  # Drop two targets
  drillchart cache clear fruits cats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheClear(cmd, args)
		},
	}
}

// openCacheStore opens the configured cache directory for maintenance. The
// store is opened even when caching is switched off so stale entries can
// still be inspected and removed.
func openCacheStore() (*loader.FileStore, config.CacheConfig, error) {
	cfg := config.GetGlobalConfig().Cache
	dir, err := config.GetCacheDir()
	if err != nil {
		return nil, cfg, err
	}
	store, err := loader.NewFileStore(dir, true, cfg.TTLSeconds)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening target cache: %w", err)
	}
	return store, cfg, nil
}

func runCacheStatus(cmd *cobra.Command) error {
	store, cfg, err := openCacheStore()
	if err != nil {
		return err
	}
	count, err := store.Count()
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	cmd.Printf("Cache directory: %s\n", store.Directory())
	cmd.Printf("Enabled: %t\n", cfg.Enabled)
	cmd.Printf("TTL: %s\n", p.Sprintf("%d seconds", cfg.TTLSeconds))
	cmd.Printf("Entries: %s\n", p.Sprintf("%d", count))
	return nil
}

func runCacheClear(cmd *cobra.Command, targets []string) error {
	store, _, err := openCacheStore()
	if err != nil {
		return err
	}
	before, err := store.Count()
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		err = store.Clear()
	}
	for _, id := range targets {
		if err = store.Delete(id); err != nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("clearing target cache: %w", err)
	}

	after, err := store.Count()
	if err != nil {
		return err
	}
	logger.Debug().
		Str("operation", "cache_clear").
		Str("directory", store.Directory()).
		Strs("targets", targets).
		Int("removed", before-after).
		Msg("target cache cleared")

	p := message.NewPrinter(language.English)
	cmd.Printf("Removed %s from %s\n", p.Sprintf("%d cached targets", before-after), store.Directory())
	return nil
}
