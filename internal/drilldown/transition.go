package drilldown

import (
	"time"

	"github.com/rshade/drillchart/internal/chart"
)

// Timing of the restore transition: the origin point reappears shortly before
// the duration ends and its siblings fade in.
const (
	restoreLead  = 50 * time.Millisecond
	fadeDuration = 250 * time.Millisecond
	fadeStart    = 0.1
	mapFadeStart = 0.01
)

// Transition animates a series entering or leaving a drill level.
type Transition interface {
	// Enter grows the drilled series out of the origin point.
	Enter(h Host, s *chart.Series, level *Level, d time.Duration)
	// Exit collapses the lower series back into the origin point.
	Exit(h Host, s *chart.Series, level *Level, d time.Duration)
	// Restore brings the origin series back after a drill-up.
	Restore(h Host, s *chart.Series, level *Level, d time.Duration)
}

// TransitionFor returns the transition used by a series family.
func TransitionFor(f chart.Family) Transition {
	switch f {
	case chart.FamilyPie:
		return pieTransition{}
	case chart.FamilyMap:
		return mapTransition{}
	default:
		return categoryTransition{}
	}
}

type categoryTransition struct{}

func (categoryTransition) Enter(h Host, s *chart.Series, level *Level, d time.Duration) {
	from := level.ShapeArgs
	if s.XAxis != nil && s.XAxis.OldPos != nil {
		from.X += *s.XAxis.OldPos - s.XAxis.Pos
	}
	for _, p := range s.Points {
		growFrom(h, p, from, level.Color, d)
	}
}

func (categoryTransition) Exit(h Host, s *chart.Series, level *Level, d time.Duration) {
	collapse(h, s, level, d)
}

func (categoryTransition) Restore(h Host, s *chart.Series, level *Level, d time.Duration) {
	restorePoints(h, s, level, d)
}

type pieTransition struct{}

func (pieTransition) Enter(h Host, s *chart.Series, level *Level, d time.Duration) {
	if s.Type == "item" {
		d = 0
	}
	from := level.ShapeArgs
	if len(s.Points) == 0 {
		return
	}
	step := (from.End - from.Start) / float64(len(s.Points))
	for i, p := range s.Points {
		start := from
		start.Start = from.Start + float64(i)*step
		start.End = start.Start + step
		growFrom(h, p, start, level.Color, d)
	}
}

func (pieTransition) Exit(h Host, s *chart.Series, level *Level, d time.Duration) {
	collapse(h, s, level, d)
}

func (pieTransition) Restore(h Host, s *chart.Series, level *Level, d time.Duration) {
	restorePoints(h, s, level, d)
}

type mapTransition struct{}

func (mapTransition) Enter(h Host, s *chart.Series, _ *Level, d time.Duration) {
	if mv := h.MapView(); mv != nil {
		mv.AllowTransformAnimation = false
	}
	s.InactiveOtherPoints = true
	s.MouseTracking = false
	s.Group.Opacity = mapFadeStart
	s.Group.Visible = true

	id := s.ID
	h.Animator().Animate(s.Group, chart.Graphic{Opacity: 1, Visible: true}, d, func() {
		live, ok := h.Series(id)
		if !ok || h.Destroyed() {
			return
		}
		live.InactiveOtherPoints = false
		live.MouseTracking = true
		live.DirtyData = true
		h.Redraw()
	})
}

func (mapTransition) Exit(h Host, s *chart.Series, _ *Level, _ time.Duration) {
	if mv := h.MapView(); mv != nil {
		mv.AllowTransformAnimation = false
	}
	s.InactiveOtherPoints = true
}

func (mapTransition) Restore(h Host, s *chart.Series, _ *Level, d time.Duration) {
	s.InactiveOtherPoints = true
	s.Group.Opacity = mapFadeStart
	s.Group.Visible = true
	h.Animator().Animate(s.Group, chart.Graphic{Opacity: 1, Visible: true}, d, nil)
}

func growFrom(h Host, p *chart.Point, from chart.Shape, fill string, d time.Duration) {
	if p.Graphic == nil {
		p.Graphic = &chart.Graphic{}
	}
	target := chart.Graphic{Shape: p.Shape, Fill: p.Color, Opacity: 1, Visible: p.Visible && !p.Null}
	*p.Graphic = chart.Graphic{Shape: from, Fill: fill, Opacity: 1, Visible: target.Visible}
	h.Animator().Animate(p.Graphic, target, d, nil)
}

func collapse(h Host, s *chart.Series, level *Level, d time.Duration) {
	for _, p := range s.Points {
		if p.Graphic == nil {
			continue
		}
		pt := p
		to := chart.Graphic{Shape: level.ShapeArgs, Fill: level.Color, Opacity: 1, Visible: true}
		h.Animator().Animate(pt.Graphic, to, d, func() { pt.Graphic = nil })
	}
}

func restorePoints(h Host, s *chart.Series, level *Level, d time.Duration) {
	for _, p := range s.Points {
		if p.Graphic != nil {
			p.Graphic.Visible = false
		}
	}

	wait := max(d-restoreLead, 0)
	id := s.ID
	h.Animator().After(wait, func() {
		live, ok := h.Series(id)
		if !ok || h.Destroyed() {
			return
		}
		for i, p := range live.Points {
			if p.Graphic == nil || !p.Visible || p.Null {
				continue
			}
			if i == level.PointIndex {
				p.Graphic.Visible = true
				p.Graphic.Opacity = 1
				continue
			}
			p.Graphic.Visible = true
			p.Graphic.Opacity = fadeStart
			to := *p.Graphic
			to.Opacity = 1
			h.Animator().Animate(p.Graphic, to, fadeDuration, nil)
		}
	})
}

type transitionKind int

const (
	transitionEnter transitionKind = iota
	transitionRestore
)

// pendingTransition waits for the next redraw, when the series has shapes.
type pendingTransition struct {
	kind   transitionKind
	series chart.SeriesID
	level  *Level
}

func (n *Navigator) queueTransition(kind transitionKind, id chart.SeriesID, level *Level) {
	for _, p := range n.pending {
		if p.series == id && p.kind == kind {
			return
		}
	}
	n.pending = append(n.pending, pendingTransition{kind: kind, series: id, level: level})
}

func (n *Navigator) runTransitions() {
	pending := n.pending
	n.pending = nil
	for _, p := range pending {
		s, ok := n.host.Series(p.series)
		if !ok {
			continue
		}
		t := TransitionFor(s.Family())
		switch p.kind {
		case transitionEnter:
			t.Enter(n.host, s, p.level, n.opts.Animation)
			s.Drilling = false
		case transitionRestore:
			t.Restore(n.host, s, p.level, n.opts.Animation)
		}
	}
}
