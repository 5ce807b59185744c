package cli

import (
	"context"
	"fmt"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/config"
	"github.com/rshade/drillchart/internal/drilldown"
	"github.com/rshade/drillchart/internal/loader"
	"github.com/rshade/drillchart/internal/logging"
)

// session is a chart loaded from a definition file, ready to navigate.
type session struct {
	def    *config.ChartDefinition
	chart  *chart.Chart
	nav    *drilldown.Navigator
	loader *loader.Loader
}

// openChart loads the definition at path, builds its chart and navigator,
// and sets up the on-demand target loader when a targets directory is
// configured.
func openChart(ctx context.Context, path string) (*session, error) {
	log := logging.FromContext(ctx)

	def, err := config.LoadChartDefinition(path)
	if err != nil {
		return nil, err
	}

	cfg := config.GetGlobalConfig()
	c, nav, err := def.Build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building chart %s: %w", path, err)
	}

	ld, err := newLoader(def.Settings(cfg), cfg.Cache)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "cli").
		Str("operation", "open_chart").
		Str("chart", path).
		Int("series", len(def.Series)).
		Int("inline_targets", len(def.Drilldown.Series)).
		Strs("missing_targets", def.MissingTargets()).
		Bool("loader", ld != nil).
		Msg("chart loaded")

	return &session{def: def, chart: c, nav: nav, loader: ld}, nil
}

// newLoader returns nil when no targets directory is configured.
func newLoader(settings config.DrilldownConfig, cacheCfg config.CacheConfig) (*loader.Loader, error) {
	if settings.TargetsDir == "" {
		return nil, nil //nolint:nilnil // No loader is a valid configuration.
	}
	latency, err := settings.LatencyDuration()
	if err != nil {
		return nil, err
	}

	opts := []loader.Option{loader.WithLatency(latency)}
	if cacheCfg.Enabled {
		dir, dirErr := config.GetCacheDir()
		if dirErr != nil {
			return nil, dirErr
		}
		store, storeErr := loader.NewFileStore(dir, true, cacheCfg.TTLSeconds)
		if storeErr != nil {
			return nil, fmt.Errorf("opening target cache: %w", storeErr)
		}
		opts = append(opts, loader.WithCache(store))
	}
	return loader.New(loader.DirSource{Dir: settings.TargetsDir}, opts...), nil
}

// registerTargets adds loaded targets to the navigator's options.
func registerTargets(nav *drilldown.Navigator, targets map[string]chart.SeriesOptions) {
	if len(targets) == 0 {
		return
	}
	opts := nav.Options()
	series := make([]chart.SeriesOptions, 0, len(opts.Series)+len(targets))
	series = append(series, opts.Series...)
	for id, s := range targets {
		if s.ID == "" {
			s.ID = id
		}
		series = append(series, s)
	}
	opts.Series = series
	nav.Update(opts, false)
}
