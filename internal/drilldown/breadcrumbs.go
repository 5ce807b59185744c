package drilldown

import (
	"strings"

	"github.com/rshade/drillchart/internal/chart"
)

// Breadcrumb is one entry of the navigation trail.
type Breadcrumb struct {
	Level  int
	Name   string
	Series chart.SeriesOptions
	Point  *chart.PointOptions
}

// Breadcrumbs projects levels into a trail: the root entry, then one entry
// per distinct depth, named after the drilled point or the lower series.
func Breadcrumbs(levels []*Level) []Breadcrumb {
	if len(levels) == 0 {
		return nil
	}
	root := levels[0].SeriesOptions
	trail := []Breadcrumb{{Level: 0, Name: root.Name, Series: root}}
	for _, l := range levels {
		if l.LevelNumber+1 <= trail[len(trail)-1].Level {
			continue
		}
		name := l.LowerSeriesOptions.Name
		if l.PointOptions.Name != "" {
			name = l.PointOptions.Name
		}
		point := l.PointOptions
		trail = append(trail, Breadcrumb{
			Level:  l.LevelNumber + 1,
			Name:   name,
			Series: l.LowerSeriesOptions,
			Point:  &point,
		})
	}
	return trail
}

// Breadcrumbs returns the current trail; empty at root.
func (n *Navigator) Breadcrumbs() []Breadcrumb {
	return Breadcrumbs(n.stack.Levels())
}

// OnBreadcrumbs calls fn with the trail after every completed drill step.
func (n *Navigator) OnBreadcrumbs(fn func([]Breadcrumb)) func() {
	offDown := n.host.On(EventAfterDrilldown, func(*chart.Event) { fn(n.Breadcrumbs()) })
	offUp := n.host.On(EventDrillupAll, func(*chart.Event) { fn(n.Breadcrumbs()) })
	return func() {
		offDown()
		offUp()
	}
}

// FormatTrail renders the trail as text. Without the full path only a back
// entry naming the parent level is shown.
func FormatTrail(trail []Breadcrumb, opts BreadcrumbOptions) string {
	if len(trail) == 0 {
		return ""
	}
	if !opts.ShowFullPath {
		if len(trail) < 2 {
			return ""
		}
		return "< Back to " + trail[len(trail)-2].Name
	}
	sep := opts.Separator
	if sep == "" {
		sep = "/"
	}
	names := make([]string, 0, len(trail))
	for _, b := range trail {
		names = append(names, b.Name)
	}
	return strings.Join(names, " "+sep+" ")
}
