package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/config"
	"github.com/rshade/drillchart/internal/logging"
)

// drillFlags holds the options of the drill command.
type drillFlags struct {
	path     string
	sep      string
	category bool
	up       int
	output   string
}

// NewDrillCmd creates the drill command, which navigates a chart along a
// path of point names and prints the level it ends on.
func NewDrillCmd() *cobra.Command {
	var flags drillFlags

	cmd := &cobra.Command{
		Use:   "drill CHART",
		Short: "Drill along a path and print the resulting level",
		Long: `Loads a chart definition, drills into each named point in turn and prints
the series shown at the end.

Each path step names a point (or, with --category, a category label) on the
level reached by the previous step. Targets not defined in the chart are read
from the configured targets directory; every level's missing targets are
fetched concurrently before the step is taken.`,
		Example: `  # Drill two levels deep
  drillchart drill sales.yaml --path "Europe/Germany"

  # Drill a category across every series, then go back up one level
  drillchart drill sales.yaml --path "Q1/Jan" --category --up 1

  # Print JSON
  drillchart drill sales.yaml --path Europe --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", "", "point names to drill into, separated by --sep")
	cmd.Flags().StringVar(&flags.sep, "sep", "/", "separator between path steps")
	cmd.Flags().BoolVar(&flags.category, "category", false, "drill whole categories instead of single points")
	cmd.Flags().IntVar(&flags.up, "up", 0, "levels to drill back up after the path")
	cmd.Flags().StringVar(&flags.output, "output", "", "output format: table or json (default from config)")

	return cmd
}

func runDrill(cmd *cobra.Command, chartPath string, flags drillFlags) error {
	ctx := cmd.Context()
	format, err := outputFormat(flags.output)
	if err != nil {
		return err
	}
	if flags.up < 0 {
		return fmt.Errorf("--up must be >= 0, got %d", flags.up)
	}

	s, err := openChart(ctx, chartPath)
	if err != nil {
		return err
	}
	defer s.chart.Destroy()

	for _, step := range splitPath(flags.path, flags.sep) {
		if err = s.drillStep(ctx, step, flags.category); err != nil {
			return err
		}
	}

	if flags.up > 0 {
		s.nav.DrillUpTo(max(s.nav.CurrentLevel()-flags.up, 0))
		s.chart.Animator().Flush()
	}

	return renderLevel(cmd.OutOrStdout(), format, snapshot(s.chart, s.nav), s.nav.Options().Breadcrumbs.Separator)
}

// drillStep drills the point named step on the current level.
func (s *session) drillStep(ctx context.Context, step string, category bool) error {
	log := logging.FromContext(ctx)
	level := s.nav.CurrentLevel()

	series, point := s.findPoint(step)
	if point == nil {
		return &ExitError{
			ExitCode: ExitCodeNotFound,
			Reason:   fmt.Sprintf("no point named %q on level %d", step, level),
		}
	}
	if point.Drilldown == "" && !category {
		return &ExitError{
			ExitCode: ExitCodeNotFound,
			Reason:   fmt.Sprintf("point %q on level %d has no drilldown", step, level),
		}
	}

	s.prefetchLevel(ctx)

	if category && series.XAxis != nil {
		s.nav.DrilldownCategory(series.XAxis, point.X)
	} else {
		s.nav.Trigger(point)
	}
	// Targets were prefetched; a gesture still waiting has nothing to wait for.
	s.nav.SettleDrilldown()
	s.chart.Animator().Flush()

	if s.nav.CurrentLevel() <= level {
		return &ExitError{
			ExitCode: ExitCodeNotFound,
			Reason:   fmt.Sprintf("drilling %q did not reach a new level", step),
		}
	}
	log.Debug().
		Str("component", "cli").
		Str("operation", "drill_step").
		Str("step", step).
		Int("level", s.nav.CurrentLevel()).
		Msg("drilled")
	return nil
}

// findPoint returns the first visible point labelled name.
func (s *session) findPoint(name string) (*chart.Series, *chart.Point) {
	for _, series := range s.chart.AllSeries() {
		if !series.Visible {
			continue
		}
		for _, p := range series.Points {
			if pointLabel(series, p) == name {
				return series, p
			}
		}
	}
	return nil, nil
}

// prefetchLevel loads every drill target referenced on the current level
// that the navigator does not know yet, and registers them. Failures are
// logged; drilling into a missing target is a no-op.
func (s *session) prefetchLevel(ctx context.Context) {
	if s.loader == nil {
		return
	}
	known := s.nav.Options().Series
	var ids []string
	for _, series := range s.chart.AllSeries() {
		for _, p := range series.Points {
			if p.Drilldown == "" || slices.Contains(ids, p.Drilldown) {
				continue
			}
			if !slices.ContainsFunc(known, func(o chart.SeriesOptions) bool { return o.ID == p.Drilldown }) {
				ids = append(ids, p.Drilldown)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	loaded, err := s.loader.Prefetch(ctx, ids)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "cli").
			Str("operation", "prefetch").
			Err(err).
			Msg("some drill targets could not be loaded")
	}
	registerTargets(s.nav, loaded)
}

func splitPath(path, sep string) []string {
	if path == "" {
		return nil
	}
	if sep == "" {
		sep = "/"
	}
	var steps []string
	for _, step := range strings.Split(path, sep) {
		if step = strings.TrimSpace(step); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// outputFormat validates flag, falling back to the configured default.
func outputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, config.FormatTable, config.FormatJSON)
	}
}
