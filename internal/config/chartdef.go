package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/drilldown"
)

// SupportedChartVersions is the semver range of chart definition files this
// build understands.
const SupportedChartVersions = ">=1.0.0, <2.0.0"

// defaultChartVersion is assumed when a definition omits its version.
const defaultChartVersion = "1.0.0"

// Chart definition errors.
var (
	ErrUnsupportedChartVersion = errors.New("unsupported chart definition version")
	ErrEmptyChart              = errors.New("chart definition has no series")
	ErrDuplicateTarget         = errors.New("duplicate drilldown target id")
)

// ChartDefinition is a chart file: the top-level series, the drill targets
// known up front, and navigator settings.
type ChartDefinition struct {
	Version    string                `yaml:"version"`
	Title      string                `yaml:"title"`
	Type       string                `yaml:"type,omitempty"`
	Width      float64               `yaml:"width,omitempty"`
	Height     float64               `yaml:"height,omitempty"`
	Map        bool                  `yaml:"map,omitempty"`
	Categories [][]string            `yaml:"categories,omitempty"`
	Series     []chart.SeriesOptions `yaml:"series"`
	Drilldown  DrilldownDefinition   `yaml:"drilldown"`

	dir string
}

// DrilldownDefinition lists the drill targets of a chart and overrides the
// configured navigator settings.
type DrilldownDefinition struct {
	Series          []chart.SeriesOptions `yaml:"series,omitempty"`
	DrilldownConfig `yaml:",inline"`
}

// LoadChartDefinition reads and validates the chart file at path.
func LoadChartDefinition(path string) (*ChartDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	def, err := ParseChartDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}
	def.dir = filepath.Dir(path)
	return def, nil
}

// ParseChartDefinition decodes and validates a chart definition.
func ParseChartDefinition(data []byte) (*ChartDefinition, error) {
	var def ChartDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing chart definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the version range, that there is something to draw, and
// that target ids are unique.
func (d *ChartDefinition) Validate() error {
	version := d.Version
	if version == "" {
		version = defaultChartVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedChartVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedChartVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s not in %s", ErrUnsupportedChartVersion, v, SupportedChartVersions)
	}

	if len(d.Series) == 0 {
		return ErrEmptyChart
	}

	seen := make(map[string]bool, len(d.Drilldown.Series))
	for _, s := range d.Drilldown.Series {
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateTarget, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Dir returns the directory the definition was loaded from.
func (d *ChartDefinition) Dir() string { return d.dir }

// MissingTargets returns the drill references, sorted, that no inline target
// satisfies. They are resolved on demand.
func (d *ChartDefinition) MissingTargets() []string {
	known := make(map[string]bool, len(d.Drilldown.Series))
	for _, s := range d.Drilldown.Series {
		known[s.ID] = true
	}
	var missing []string
	collect := func(series []chart.SeriesOptions) {
		for _, s := range series {
			for _, p := range s.Data {
				if p.Drilldown != "" && !known[p.Drilldown] && !slices.Contains(missing, p.Drilldown) {
					missing = append(missing, p.Drilldown)
				}
			}
		}
	}
	collect(d.Series)
	collect(d.Drilldown.Series)
	slices.Sort(missing)
	return missing
}

// Settings returns the drilldown settings of cfg overlaid with the chart's.
// A relative targets directory is resolved against the chart file.
func (d *ChartDefinition) Settings(cfg *Config) DrilldownConfig {
	base := DrilldownConfig{}
	if cfg != nil {
		base = cfg.Drilldown
	}
	settings := base.Overlay(d.Drilldown.DrilldownConfig)
	if settings.TargetsDir != "" && !filepath.IsAbs(settings.TargetsDir) && d.dir != "" {
		settings.TargetsDir = filepath.Join(d.dir, settings.TargetsDir)
	}
	return settings
}

// Build creates the chart, adds the top-level series and attaches a
// navigator holding the inline targets.
func (d *ChartDefinition) Build(ctx context.Context, cfg *Config) (*chart.Chart, *drilldown.Navigator, error) {
	opts, err := d.Settings(cfg).NavigatorOptions()
	if err != nil {
		return nil, nil, err
	}
	opts.Series = d.Drilldown.Series

	c := chart.New(chart.Options{
		Width:       d.Width,
		Height:      d.Height,
		DefaultType: d.Type,
		XAxes:       d.Categories,
		Map:         d.Map,
	})
	nav := drilldown.New(ctx, c, opts)
	for _, s := range d.Series {
		c.AddSeries(s, false)
	}
	c.Redraw()
	return c, nav, nil
}
