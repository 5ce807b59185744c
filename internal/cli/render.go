package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/drilldown"
)

const tabPadding = 2

// LevelView is the printable state of a navigated chart.
type LevelView struct {
	Level  int          `json:"level"`
	Trail  []string     `json:"trail"`
	Series []SeriesView `json:"series"`
}

// SeriesView is one visible series.
type SeriesView struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	Points []PointView `json:"points"`
}

// PointView is one point. Value is nil for null points.
type PointView struct {
	Name      string   `json:"name"`
	Value     *float64 `json:"value"`
	Drilldown string   `json:"drilldown,omitempty"`
}

// snapshot captures the visible series and the breadcrumb trail.
func snapshot(c *chart.Chart, nav *drilldown.Navigator) LevelView {
	view := LevelView{Level: nav.CurrentLevel(), Trail: []string{}, Series: []SeriesView{}}
	for _, b := range nav.Breadcrumbs() {
		view.Trail = append(view.Trail, b.Name)
	}
	for _, s := range c.AllSeries() {
		if !s.Visible {
			continue
		}
		sv := SeriesView{Name: s.Name, Type: s.Type, Points: []PointView{}}
		for _, p := range s.Points {
			pv := PointView{Name: pointLabel(s, p), Drilldown: p.Drilldown}
			if !p.Null {
				y := p.Y
				pv.Value = &y
			}
			sv.Points = append(sv.Points, pv)
		}
		view.Series = append(view.Series, sv)
	}
	if len(view.Trail) == 0 && len(view.Series) > 0 {
		view.Trail = append(view.Trail, view.Series[0].Name)
	}
	return view
}

// pointLabel is the point name, or its category label on cartesian series.
func pointLabel(s *chart.Series, p *chart.Point) string {
	if p.Name != "" {
		return p.Name
	}
	if s.XAxis != nil {
		return s.XAxis.CategoryLabel(p.X)
	}
	return fmt.Sprint(p.X)
}

// renderLevel writes view as JSON or as a table.
func renderLevel(w io.Writer, format string, view LevelView, sep string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	p := message.NewPrinter(language.English)
	if sep == "" {
		sep = "/"
	}
	fmt.Fprintf(w, "Level %d: %s\n\n", view.Level, strings.Join(view.Trail, " "+sep+" "))

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Series\tPoint\tValue\tDrilldown")
	fmt.Fprintln(tw, "------\t-----\t-----\t---------")
	points := 0
	for _, s := range view.Series {
		for _, pt := range s.Points {
			value := "-"
			if pt.Value != nil {
				value = p.Sprintf("%.2f", *pt.Value)
			}
			drill := pt.Drilldown
			if drill == "" {
				drill = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, pt.Name, value, drill)
			points++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "\n%d points across %d series\n", points, len(view.Series))
	return err
}
