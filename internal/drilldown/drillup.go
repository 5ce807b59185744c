package drilldown

import (
	"github.com/rshade/drillchart/internal/chart"
)

// DrillUp unwinds the newest level number. Every level sharing it is popped
// and its siblings restored. With multiStep the call is one hop of a longer
// walk: the settle work (reset zoom, dedupe reset, drillupall) is left to
// the final hop.
func (n *Navigator) DrillUp(multiStep bool) {
	if n.destroyed {
		return
	}
	n.SettleDrilldown()
	if n.stack.Empty() {
		return
	}
	n.host.Fire(EventBeforeDrillUp, nil, nil)
	if n.destroyed {
		return
	}

	mv := n.host.MapView()
	levelNumber := n.stack.Depth()
	n.host.Styles().Reset()

	run := n.stack.PopRun()
	namesReset := false
	for _, level := range run {
		oldSeries := n.resolveLower(level, levelNumber)
		if !namesReset && oldSeries != nil && oldSeries.XAxis != nil {
			oldSeries.XAxis.ResetNames()
			namesReset = true
		}

		var newSeries *chart.Series
		for _, opts := range level.LevelSeriesOptions {
			restored := n.restoreSeries(opts)
			if level.SeriesPurgedOptions != nil && opts.DrillID == level.SeriesPurgedOptions.DrillID {
				newSeries = restored
			}
		}

		restoredOpts := level.SeriesOptions
		if level.SeriesPurgedOptions != nil {
			restoredOpts = *level.SeriesPurgedOptions
		}
		n.host.Fire(EventDrillup, &DrillupEvent{SeriesOptions: restoredOpts.Clone(), Level: levelNumber}, nil)

		if newSeries != nil {
			if oldSeries != nil && newSeries.Type == oldSeries.Type {
				n.queueTransition(transitionRestore, newSeries.ID, level)
				TransitionFor(oldSeries.Family()).Exit(n.host, oldSeries, level, n.opts.Animation)
			}
			newSeries.Options.DrillLevel = levelNumber
		}

		if mv == nil && oldSeries != nil {
			n.host.RemoveSeries(oldSeries.ID, false)
		}

		if newSeries != nil && newSeries.XAxis != nil {
			ext := level.OldExtremes
			n.host.SetAxisExtremes(newSeries.XAxis, ext.XMin, ext.XMax, false)
			n.host.SetAxisExtremes(newSeries.YAxis, ext.YMin, ext.YMax, false)
		}

		if level.ResetZoomButton != nil {
			n.host.SetResetZoomButton(level.ResetZoomButton)
		}

		if mv == nil {
			if newSeries != nil {
				n.host.Fire(EventAfterDrillUp, &DrillupEvent{SeriesOptions: newSeries.UserOptions.Clone(), Level: levelNumber}, nil)
			}
			continue
		}
		n.drillUpMap(mv, oldSeries, newSeries, multiStep, levelNumber)
	}

	n.host.SetAxesVisible(n.hasCartesian())
	n.host.Redraw()
	n.runTransitions()

	n.logger.Debug().
		Str("operation", "drill_up").
		Int("level", levelNumber).
		Int("popped", len(run)).
		Bool("multi_step", multiStep).
		Msg("drill level unwound")

	if !multiStep {
		n.dupes.Clear()
		n.host.Fire(EventDrillupAll, nil, nil)
	}
}

// DrillUpTo unwinds until the breadcrumb level equals target, one hop per
// level number. It returns the number of hops taken.
func (n *Navigator) DrillUpTo(target int) int {
	hops := n.CurrentLevel() - target
	for i := range hops {
		n.DrillUp(i < hops-1)
	}
	return max(hops, 0)
}

// DrillUpAll returns to the root level.
func (n *Navigator) DrillUpAll() int {
	return n.DrillUpTo(0)
}

// drillUpMap finishes one popped level on a map chart. Intermediate hops drop
// the lower series at once; the final hop fades or zooms out first.
func (n *Navigator) drillUpMap(mv *chart.MapView, oldSeries, newSeries *chart.Series, multiStep bool, levelNumber int) {
	if oldSeries == nil {
		return
	}
	if multiStep || newSeries == nil {
		n.host.RemoveSeries(oldSeries.ID, false)
		return
	}

	zooming := n.opts.Animation > 0 && n.mapZooming()
	if zooming {
		oldSeries.Drilling = true
		newSeries.Drilling = true
		n.host.Redraw()
		mv.FitToBounds(oldSeries.Bounds)
	}
	mv.AllowTransformAnimation = true

	n.host.Fire(EventAfterDrillUp, &DrillupEvent{SeriesOptions: newSeries.UserOptions.Clone(), Level: levelNumber}, nil)

	oldID := oldSeries.ID
	remove := func() {
		if n.destroyed {
			return
		}
		n.host.RemoveSeries(oldID, false)
		for _, s := range n.host.AllSeries() {
			s.InactiveOtherPoints = false
		}
		n.host.Redraw()
	}

	if zooming {
		mv.SetView(n.opts.Animation, remove)
	} else {
		mv.AllowTransformAnimation = false
		n.host.Animator().Animate(oldSeries.Group, chart.Graphic{Opacity: 0, Visible: true}, n.opts.Animation, func() {
			remove()
			mv.AllowTransformAnimation = true
		})
	}
	newSeries.Drilling = false
}

// resolveLower finds the live lower series of level. If the handle is stale
// it scans for a series carrying the same identity one level deeper.
func (n *Navigator) resolveLower(level *Level, levelNumber int) *chart.Series {
	if s, ok := n.host.Series(level.LowerSeries); ok {
		return s
	}
	want := level.LowerSeriesOptions
	all := n.host.AllSeries()
	for i := len(all) - 1; i >= 0; i-- {
		s := all[i]
		if s.Options.DrillLevel != levelNumber+1 {
			continue
		}
		if s.Options.DrillID == want.DrillID || (want.ID != "" && s.Options.ID == want.ID) {
			return s
		}
	}
	n.logger.Warn().
		Str("operation", "drill_up").
		Int("level", levelNumber).
		Str("target", want.ID).
		Msg("lower series not found, skipping teardown")
	return nil
}

// restoreSeries reuses a live series with the same identity or re-adds it.
func (n *Navigator) restoreSeries(opts chart.SeriesOptions) *chart.Series {
	for _, s := range n.host.AllSeries() {
		if s.Options.DrillID == opts.DrillID {
			return s
		}
	}
	return n.host.AddSeries(opts.Clone(), false)
}

func (n *Navigator) hasCartesian() bool {
	for _, s := range n.host.AllSeries() {
		if s.IsCartesian() {
			return true
		}
	}
	return false
}
