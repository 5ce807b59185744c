package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/drillchart/internal/tui"
)

// NewViewCmd creates the view command, which opens a chart in the
// interactive viewer.
func NewViewCmd() *cobra.Command {
	var (
		plain  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "view CHART",
		Short: "Browse a chart interactively",
		Long: `Opens a chart definition in the terminal viewer. Select a bar and press enter
to drill into it, c to drill its whole category, backspace to go back up and
a digit to jump to that level.

When stdout is not a terminal, or with --plain, the top level is printed
instead.`,
		Example: `  # Browse interactively
  drillchart view sales.yaml

  # Print the top level as JSON
  drillchart view sales.yaml --plain --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], plain, output)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the top level instead of starting the viewer")
	cmd.Flags().StringVar(&output, "output", "", "output format for --plain: table or json (default from config)")

	return cmd
}

func runView(cmd *cobra.Command, chartPath string, plain bool, output string) error {
	ctx := cmd.Context()

	s, err := openChart(ctx, chartPath)
	if err != nil {
		return err
	}
	defer s.chart.Destroy()

	if tui.DetectOutputMode(plain) == tui.OutputModePlain {
		format, formatErr := outputFormat(output)
		if formatErr != nil {
			return formatErr
		}
		s.chart.Animator().Flush()
		return renderLevel(cmd.OutOrStdout(), format, snapshot(s.chart, s.nav), s.nav.Options().Breadcrumbs.Separator)
	}

	title := s.def.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(chartPath), filepath.Ext(chartPath))
	}

	var ld tui.TargetLoader
	if s.loader != nil {
		ld = s.loader
	}
	model := tui.NewChartModel(ctx, title, s.chart, s.nav, ld)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	if m, ok := final.(tui.ChartModel); ok && m.Err() != nil {
		logger.Warn().Err(m.Err()).Msg("viewer exited with a load error")
	}
	return nil
}
