package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/drillchart/internal/scatter"
)

const (
	defaultScatterPoints = 10000
	defaultScatterWidth  = 800
	defaultScatterHeight = 400
	defaultMarkerRadius  = 2.0
)

// scatterFlags holds the options of the scatter command.
type scatterFlags struct {
	points  int
	radius  float64
	width   int
	height  int
	seed    uint64
	input   string
	out     string
	stats   bool
	fill    string
	opacity float64
}

// inputPoint is one entry of a --input file.
type inputPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewScatterCmd creates the scatter command, which batches scatter markers
// into non-overlapping layers and renders them as SVG.
func NewScatterCmd() *cobra.Command {
	var flags scatterFlags

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Batch scatter markers into layers and render SVG",
		Long: `Groups square scatter markers into layers in which no two markers overlap,
then writes one merged SVG path per layer.

Points are generated (--points, --seed) unless --input names a YAML list of
{x, y} entries. SVG is written to --out, or to stdout when it is not a
terminal. --stats prints only the layer counts.`,
		Example: `  # Render 50,000 generated points
  drillchart scatter --points 50000 --radius 2 --out scatter.svg

  # Show how a data file batches
  drillchart scatter --input points.yaml --radius 3 --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScatter(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.points, "points", defaultScatterPoints, "number of points to generate")
	cmd.Flags().Float64Var(&flags.radius, "radius", defaultMarkerRadius, "marker radius in pixels")
	cmd.Flags().IntVar(&flags.width, "width", defaultScatterWidth, "plot width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", defaultScatterHeight, "plot height in pixels")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1, "random seed for generated points")
	cmd.Flags().StringVar(&flags.input, "input", "", "YAML file of points to batch instead of generating")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "write SVG to this file")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print layer statistics only")
	cmd.Flags().StringVar(&flags.fill, "fill", "", "marker color (default #980043)")
	cmd.Flags().Float64Var(&flags.opacity, "opacity", 0, "marker opacity (default 0.2)")

	return cmd
}

func runScatter(cmd *cobra.Command, flags scatterFlags) error {
	if flags.radius <= 0 {
		return scatter.ErrInvalidRadius
	}
	if flags.width <= 0 || flags.height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", flags.width, flags.height)
	}

	points, err := scatterPoints(flags)
	if err != nil {
		return err
	}
	layers := scatter.Batch(points, flags.radius)

	logger.Debug().
		Str("operation", "scatter_batch").
		Int("points", len(points)).
		Int("layers", len(layers)).
		Float64("radius", flags.radius).
		Msg("points batched")

	if flags.stats {
		return printScatterStats(cmd.OutOrStdout(), len(points), layers)
	}

	opts := scatter.SVGOptions{
		Width:   flags.width,
		Height:  flags.height,
		Radius:  flags.radius,
		Title:   "drillchart scatter",
		Fill:    flags.fill,
		Opacity: flags.opacity,
	}

	if flags.out == "" {
		if f, ok := cmd.OutOrStdout().(*os.File); ok && isTerminal(f) {
			return errors.New("refusing to write SVG to a terminal, use --out or --stats")
		}
		return scatter.RenderSVG(cmd.OutOrStdout(), layers, opts)
	}

	f, err := os.Create(flags.out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flags.out, err)
	}
	if err = scatter.RenderSVG(f, layers, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", flags.out, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", flags.out, err)
	}
	return printScatterStats(cmd.OutOrStdout(), len(points), layers)
}

func scatterPoints(flags scatterFlags) ([]scatter.Point, error) {
	if flags.input == "" {
		if flags.points < 0 {
			return nil, fmt.Errorf("--points must be >= 0, got %d", flags.points)
		}
		return scatter.Generate(flags.points, float64(flags.width), float64(flags.height), flags.seed), nil
	}

	data, err := os.ReadFile(flags.input)
	if err != nil {
		return nil, fmt.Errorf("reading points %s: %w", flags.input, err)
	}
	var raw []inputPoint
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing points %s: %w", flags.input, err)
	}
	points := make([]scatter.Point, len(raw))
	for i, p := range raw {
		points[i] = scatter.Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

func printScatterStats(w io.Writer, total int, layers [][]scatter.Point) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Batched %d points into %d layers\n", total, len(layers)); err != nil {
		return err
	}
	for i, layer := range layers {
		if _, err := p.Fprintf(w, "  layer %d: %d points\n", i, len(layer)); err != nil {
			return err
		}
	}
	return nil
}
