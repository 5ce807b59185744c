package chart

import "math"

// columnPadding is the fraction of a category slot left empty.
const columnPadding = 0.2

// layout recomputes point shapes for every attached series. Graphics are
// created on first layout and kept in sync unless a transition owns them.
func (c *Chart) layout() {
	for _, axis := range c.xAxes {
		c.layoutAxis(axis)
	}

	for _, s := range c.series {
		switch s.Family() {
		case FamilyPie:
			layoutPie(s, c.opts.Width, c.opts.Height)
		case FamilyMap:
			layoutMap(s, c.opts.Height)
		case FamilyCategory:
			// Laid out per axis above.
		}
		for _, p := range s.Points {
			if p.Graphic == nil {
				p.Graphic = &Graphic{Shape: p.Shape, Fill: p.Color, Opacity: 1, Visible: p.Visible && !p.Null}
			}
		}
	}
}

func (c *Chart) layoutAxis(axis *Axis) {
	var onAxis []*Series
	categories := len(axis.Categories)
	if len(axis.Names) > categories {
		categories = len(axis.Names)
	}
	maxV := 0.0
	for _, s := range c.series {
		if s.XAxis != axis || !s.Visible {
			continue
		}
		onAxis = append(onAxis, s)
		for _, p := range s.Points {
			if p.X+1 > categories {
				categories = p.X + 1
			}
		}
		if m := s.MaxValue(); m > maxV {
			maxV = m
		}
	}
	if len(onAxis) == 0 || categories == 0 {
		return
	}
	if y := c.yAxes[0]; y.UserMax != nil && *y.UserMax > 0 {
		maxV = *y.UserMax
	}
	if maxV == 0 {
		maxV = 1
	}

	slot := c.opts.Width / float64(categories)
	inner := slot * (1 - columnPadding)
	barW := inner / float64(len(onAxis))
	for si, s := range onAxis {
		for _, p := range s.Points {
			h := 0.0
			if !p.Null {
				h = p.Y / maxV * c.opts.Height
			}
			p.Shape = Shape{
				X:      axis.Pos + float64(p.X)*slot + slot*columnPadding/2 + float64(si)*barW,
				Y:      c.opts.Height - h,
				Width:  barW,
				Height: h,
			}
		}
	}
}

func layoutPie(s *Series, width, height float64) {
	total := 0.0
	for _, p := range s.Points {
		if !p.Null && p.Y > 0 {
			total += p.Y
		}
	}
	r := math.Min(width, height) / 2
	angle := -math.Pi / 2
	for _, p := range s.Points {
		share := 0.0
		if total > 0 && !p.Null && p.Y > 0 {
			share = p.Y / total * 2 * math.Pi
		}
		p.Shape = Shape{X: width / 2, Y: height / 2, Width: r, Height: r, Start: angle, End: angle + share}
		angle += share
	}
}

func layoutMap(s *Series, height float64) {
	for _, p := range s.Points {
		p.Shape = Shape{X: float64(p.X), Y: 0, Width: 1, Height: height}
	}
}
