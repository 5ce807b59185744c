package drilldown

import (
	"slices"

	"github.com/rshade/drillchart/internal/chart"
)

// rebuildIndex maps each category of each x axis to its drillable points.
// It runs on every render so it always reflects the visible series. A point
// cropped out of the axis range keeps its place as a nil entry, so the
// category stays drillable while zoomed.
func (n *Navigator) rebuildIndex() {
	n.index = make(map[*chart.Axis]map[int][]*chart.Point)
	for _, s := range n.host.AllSeries() {
		if s.XAxis == nil {
			continue
		}
		byCategory := n.index[s.XAxis]
		if byCategory == nil {
			byCategory = make(map[int][]*chart.Point)
			n.index[s.XAxis] = byCategory
		}
		ext := s.XAxis.UserExtremes()
		for _, p := range s.Points {
			if p.Drilldown == "" {
				continue
			}
			if cropped(ext, p.X) {
				byCategory[p.X] = append(byCategory[p.X], nil)
				continue
			}
			byCategory[p.X] = append(byCategory[p.X], p)
		}
	}
}

func cropped(ext chart.Extremes, x int) bool {
	v := float64(x)
	return (ext.Min != nil && v < *ext.Min) || (ext.Max != nil && v > *ext.Max)
}

// CategoryPoints returns the drillable points of category x on axis in
// series order. Points cropped out of view are nil.
func (n *Navigator) CategoryPoints(axis *chart.Axis, x int) []*chart.Point {
	return slices.Clone(n.index[axis][x])
}

// DrillableCategories lists the categories of axis that have at least one
// drillable point, in ascending order.
func (n *Navigator) DrillableCategories(axis *chart.Axis) []int {
	var out []int
	for x, points := range n.index[axis] {
		if len(points) > 0 {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return out
}

// DrilldownCategory drills every visible drillable point in category x of
// axis as one gesture and applies the result once. Drills left to
// asynchronous slots hold the gesture open until each slot is resolved or
// abandoned; the returned Batch tracks it.
func (n *Navigator) DrilldownCategory(axis *chart.Axis, x int) *Batch {
	if n.destroyed {
		return nil
	}
	n.SettleDrilldown()

	b := &Batch{nav: n}
	n.batch = b
	for _, p := range n.CategoryPoints(axis, x) {
		if p == nil {
			continue
		}
		s, ok := n.host.Series(p.Series)
		if !ok || !s.Visible {
			continue
		}
		n.runDrilldown(p, true, &x, b)
	}
	b.arm()
	if !b.applied {
		n.logger.Debug().
			Str("operation", "drilldown_category").
			Int("category", x).
			Int("pending", b.pending).
			Msg("category drill waiting for data")
	}
	return b
}

// Trigger handles a user activating p: a point drill, or a whole category
// when point drilldown is disabled on a cartesian chart.
func (n *Navigator) Trigger(p *chart.Point) {
	if n.destroyed || p == nil {
		return
	}
	s, ok := n.host.Series(p.Series)
	if !ok {
		return
	}
	if s.XAxis != nil && !n.opts.AllowPointDrilldown {
		n.DrilldownCategory(s.XAxis, p.X)
		return
	}
	n.SettleDrilldown()
	n.RunDrilldown(p, false, nil)
}
