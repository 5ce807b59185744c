package drilldown

import (
	"github.com/rshade/drillchart/internal/chart"
)

// RunDrilldown looks up the drill target of p and fires the preventable
// drilldown event. Unless a listener prevents it, the target (or options a
// listener supplied synchronously) is drilled into. With holdRender the
// level is recorded but the chart is left for a later ApplyDrilldown.
//
// It returns the fired payload, or nil when the navigator is unusable.
func (n *Navigator) RunDrilldown(p *chart.Point, holdRender bool, category *int) *DrilldownEvent {
	return n.runDrilldown(p, holdRender, category, nil)
}

// runDrilldown is RunDrilldown with the slot joined to batch, when set.
func (n *Navigator) runDrilldown(p *chart.Point, holdRender bool, category *int, batch *Batch) *DrilldownEvent {
	if n.destroyed || p == nil {
		return nil
	}
	series, ok := n.host.Series(p.Series)
	if !ok {
		n.logger.Warn().
			Str("operation", "run_drilldown").
			Int("series", int(p.Series)).
			Msg("drilldown origin point is detached")
		return nil
	}

	n.host.Styles().Reset()

	var target *chart.SeriesOptions
	claimed := ""
	duplicate := false
	if p.Drilldown != "" {
		for i := len(n.opts.Series) - 1; i >= 0; i-- {
			if n.opts.Series[i].ID != p.Drilldown {
				continue
			}
			if n.dupes.Claim(p.Drilldown) {
				opts := n.opts.Series[i].Clone()
				target = &opts
				claimed = p.Drilldown
			} else {
				duplicate = true
			}
			break
		}
	}

	slot := &Slot{nav: n, point: p, hold: holdRender, abandoned: duplicate}
	if batch != nil && !duplicate {
		batch.add(slot)
	}
	ev := &DrilldownEvent{
		Point:         p,
		SeriesOptions: target,
		Category:      category,
		Slot:          slot,
	}
	if category != nil && series.XAxis != nil {
		ev.Points = n.CategoryPoints(series.XAxis, *category)
	}

	e := n.host.Fire(EventDrilldown, ev, func(*chart.Event) {
		if ev.SeriesOptions == nil || slot.resolved || slot.abandoned {
			return
		}
		slot.resolved = true
		slot.complete(*ev.SeriesOptions)
	})
	if e.DefaultPrevented() {
		slot.canceled = true
		if slot.batch != nil && !slot.resolved {
			slot.batch.release()
		}
		if claimed != "" {
			n.dupes.Release(claimed)
		}
		n.logger.Debug().
			Str("operation", "run_drilldown").
			Str("target", p.Drilldown).
			Msg("drilldown prevented by listener")
	}
	return ev
}

// DrillDown drills p into opts without consulting the configured targets.
// With holdRender only the level is recorded; several held drills are then
// shown together by one ApplyDrilldown.
func (n *Navigator) DrillDown(p *chart.Point, opts chart.SeriesOptions, holdRender bool) {
	if holdRender {
		n.AddSingleSeriesAsDrilldown(p, opts)
		return
	}
	n.AddSeriesAsDrilldown(p, opts)
}

// AddSeriesAsDrilldown records the drill from p into opts and applies it.
// On a zooming map chart the view first zooms into the point and the drill
// is recorded once the zoom settles.
func (n *Navigator) AddSeriesAsDrilldown(p *chart.Point, opts chart.SeriesOptions) {
	if n.destroyed || p == nil {
		return
	}
	mv := n.host.MapView()
	if mv == nil {
		n.AddSingleSeriesAsDrilldown(p, opts)
		n.ApplyDrilldown()
		return
	}

	if s, ok := n.host.Series(p.Series); ok {
		s.Drilling = true
	}
	for _, s := range n.host.AllSeries() {
		s.InactiveOtherPoints = true
	}

	if n.opts.Animation > 0 && n.mapZooming() {
		mv.AllowTransformAnimation = true
		bounds := chart.Bounds{
			X1: p.Shape.X,
			Y1: p.Shape.Y,
			X2: p.Shape.X + p.Shape.Width,
			Y2: p.Shape.Y + p.Shape.Height,
		}
		mv.ZoomTo(bounds, n.opts.Animation, func() {
			if n.destroyed {
				return
			}
			n.AddSingleSeriesAsDrilldown(p, opts)
			n.ApplyDrilldown()
			mv.AllowTransformAnimation = false
		})
		return
	}

	n.AddSingleSeriesAsDrilldown(p, opts)
	n.ApplyDrilldown()
}

// AddSingleSeriesAsDrilldown records one drill level from p into opts and
// adds the lower series without redrawing. It returns the pushed level, or
// nil when p no longer belongs to the chart.
func (n *Navigator) AddSingleSeriesAsDrilldown(p *chart.Point, opts chart.SeriesOptions) *Level {
	if n.destroyed || p == nil {
		return nil
	}
	oldSeries, ok := n.host.Series(p.Series)
	if !ok {
		n.logger.Warn().
			Str("operation", "add_single_series").
			Int("series", int(p.Series)).
			Msg("drilldown origin point is detached")
		return nil
	}

	levelNumber := oldSeries.Options.DrillLevel
	if levelNumber < n.stack.Depth() {
		n.logger.Warn().
			Str("operation", "add_single_series").
			Int("level", levelNumber).
			Int("depth", n.stack.Depth()).
			Msg("origin series is shallower than the current level")
		return nil
	}

	xAxis, yAxis := oldSeries.XAxis, oldSeries.YAxis
	color := p.Color
	if color == "" {
		color = oldSeries.Color
	}

	last := n.stack.Top()
	if last != nil && last.LevelNumber != levelNumber {
		last = nil
	}

	lower := opts.Clone()
	lower.DrillID = n.host.NextDrillID()
	lower.DrillLevel = 0
	if lower.Color == "" {
		lower.Color = color
	}

	var levelSeries []chart.SeriesID
	var levelSeriesOptions []chart.SeriesOptions
	if last != nil {
		levelSeries, levelSeriesOptions = last.LevelSeries, last.LevelSeriesOptions
	}
	for _, s := range n.host.AllSeries() {
		if s.XAxis != xAxis {
			continue
		}
		n.tag(s, levelNumber)
		if last != nil {
			continue
		}
		purged := s.UserOptions.Clone()
		purged.DrillID = s.Options.DrillID
		purged.DrillLevel = s.Options.DrillLevel
		purged.Selected = s.Options.Selected
		s.PurgedOptions = &purged
		levelSeries = append(levelSeries, s.ID)
		levelSeriesOptions = append(levelSeriesOptions, purged)
	}

	pointIndex := oldSeries.PointIndex(p)
	var pointOptions chart.PointOptions
	if pointIndex >= 0 && pointIndex < len(oldSeries.Options.Data) {
		pointOptions = oldSeries.Options.Data[pointIndex]
	}
	if p.Null {
		color = "none"
	}

	level := &Level{
		LevelNumber:         levelNumber,
		SeriesOptions:       oldSeries.Options.Clone(),
		SeriesPurgedOptions: oldSeries.PurgedOptions,
		LowerSeriesOptions:  lower,
		LevelSeries:         levelSeries,
		LevelSeriesOptions:  levelSeriesOptions,
		PointIndex:          pointIndex,
		PointOptions:        pointOptions,
		OldExtremes:         n.captureExtremes(xAxis, yAxis),
		Color:               color,
		BBox:                chart.BBox{X: p.Shape.X, Y: p.Shape.Y, Width: p.Shape.Width, Height: p.Shape.Height},
		ShapeArgs:           p.Shape,
	}
	if last == nil {
		level.ResetZoomButton = n.host.ResetZoomButton()
	}
	n.stack.Push(level)

	// Lower series pushed at the same depth share the freshly reset names.
	if xAxis != nil && last == nil {
		xAxis.ResetNames()
	}

	newSeries := n.host.AddSeries(lower, false)
	level.LowerSeries = newSeries.ID
	newSeries.Options.DrillLevel = levelNumber + 1
	if newSeries.XAxis != nil {
		pos := newSeries.XAxis.Pos
		newSeries.XAxis.OldPos = &pos
		n.host.SetAxisExtremes(newSeries.XAxis, nil, nil, false)
		n.host.SetAxisExtremes(newSeries.YAxis, nil, nil, false)
	}
	newSeries.Drilling = true
	if oldSeries.Type == newSeries.Type {
		n.queueTransition(transitionEnter, newSeries.ID, level)
	}

	n.logger.Debug().
		Str("operation", "add_single_series").
		Int("level", levelNumber).
		Str("target", opts.ID).
		Int("siblings", len(levelSeries)).
		Msg("drill level recorded")
	return level
}

// ApplyDrilldown removes the series replaced by the newest level and redraws.
// On map charts the replaced series fade out first and the after events fire
// once the last of them is gone.
func (n *Navigator) ApplyDrilldown() {
	if n.destroyed {
		return
	}
	mv := n.host.MapView()
	levels := n.stack.Levels()

	var finish *completion
	if mv != nil {
		finish = &completion{fn: func() {
			if n.destroyed {
				return
			}
			n.finishMapApply(mv)
		}}
	}

	if len(levels) > 0 {
		levelToRemove := levels[len(levels)-1].LevelNumber
		hasCartesian := false
		scheduled := make(map[chart.SeriesID]bool)

		for _, level := range levels {
			lower, lowerOK := n.host.Series(level.LowerSeries)
			if lowerOK && lower.IsCartesian() {
				hasCartesian = true
			}
			if mv != nil && n.mapZooming() {
				n.host.Redraw()
				if lowerOK {
					lower.Drilling = false
					mv.FitToBounds(lower.Bounds)
					lower.Drilling = true
				}
			}
			if level.LevelNumber != levelToRemove {
				continue
			}
			for _, id := range level.LevelSeries {
				s, ok := n.host.Series(id)
				if !ok || scheduled[id] || s.Options.DrillLevel != levelToRemove {
					continue
				}
				scheduled[id] = true
				if mv == nil {
					n.host.RemoveSeries(id, false)
					continue
				}
				finish.add()
				removeID := id
				n.host.Animator().Animate(s.Group, chart.Graphic{Opacity: 0, Visible: true}, n.opts.Animation, func() {
					n.host.RemoveSeries(removeID, false)
					finish.done()
				})
			}
		}
		if mv == nil {
			n.host.SetAxesVisible(hasCartesian)
		}
	}

	if mv != nil {
		n.host.Redraw()
		n.runTransitions()
		finish.arm()
		return
	}

	n.detachResetZoom()
	n.host.Fire(EventAfterDrilldown, nil, nil)
	n.host.Redraw()
	n.runTransitions()
	n.host.Fire(EventAfterApplyDrilldown, nil, nil)
}

func (n *Navigator) finishMapApply(mv *chart.MapView) {
	n.detachResetZoom()
	n.host.Fire(EventAfterDrilldown, nil, nil)
	for _, s := range n.host.AllSeries() {
		s.DirtyData = true
		s.Drilling = false
	}
	mv.FitToBounds(nil)
	n.host.Redraw()
	n.host.Fire(EventAfterApplyDrilldown, nil, nil)
}

func (n *Navigator) captureExtremes(xAxis, yAxis *chart.Axis) Extremes {
	var ext Extremes
	if xAxis != nil {
		x := n.host.AxisUserExtremes(xAxis)
		ext.XMin, ext.XMax = x.Min, x.Max
	}
	if yAxis != nil {
		y := n.host.AxisUserExtremes(yAxis)
		ext.YMin, ext.YMax = y.Min, y.Max
	}
	return ext
}
