package drilldown

import "github.com/rshade/drillchart/internal/chart"

// Extremes is the zoom range of both axes captured before a drill.
type Extremes struct {
	XMin, XMax *float64
	YMin, YMax *float64
}

// Level is one recorded drill step. Several levels may share a LevelNumber
// when more than one series was drilled from the same depth.
type Level struct {
	LevelNumber int

	// SeriesOptions is the origin series before the drill, and
	// SeriesPurgedOptions its tagged snapshot used for restoration.
	SeriesOptions       chart.SeriesOptions
	SeriesPurgedOptions *chart.SeriesOptions

	// LowerSeriesOptions created LowerSeries. The handle may stop resolving
	// if the series is removed behind the navigator's back.
	LowerSeriesOptions chart.SeriesOptions
	LowerSeries        chart.SeriesID

	// LevelSeries are the siblings sharing the origin axis. Levels pushed
	// at the same depth share these slices.
	LevelSeries        []chart.SeriesID
	LevelSeriesOptions []chart.SeriesOptions

	PointIndex   int
	PointOptions chart.PointOptions

	OldExtremes     Extremes
	ResetZoomButton *chart.ResetZoomButton

	Color     string
	BBox      chart.BBox
	ShapeArgs chart.Shape
}

// Stack is the ordered drill history, oldest first. Level numbers never
// decrease from bottom to top, and an empty stack is the root state.
type Stack struct {
	levels []*Level
}

// Push appends l. A level shallower than the current top is rejected, since
// it would break the ordering every pop relies on.
func (s *Stack) Push(l *Level) bool {
	if top := s.Top(); top != nil && l.LevelNumber < top.LevelNumber {
		return false
	}
	s.levels = append(s.levels, l)
	return true
}

// Top returns the newest level, or nil at root.
func (s *Stack) Top() *Level {
	if len(s.levels) == 0 {
		return nil
	}
	return s.levels[len(s.levels)-1]
}

// Depth returns the level number of the newest entry, or -1 at root.
func (s *Stack) Depth() int {
	if top := s.Top(); top != nil {
		return top.LevelNumber
	}
	return -1
}

// Len returns the number of entries.
func (s *Stack) Len() int { return len(s.levels) }

// Empty reports whether the stack is at root.
func (s *Stack) Empty() bool { return len(s.levels) == 0 }

// Levels returns the entries oldest first. The slice is a copy; the levels
// are shared.
func (s *Stack) Levels() []*Level {
	return append([]*Level(nil), s.levels...)
}

// PopRun removes the trailing run of entries sharing the top level number
// and returns them newest first, the order they are unwound in.
func (s *Stack) PopRun() []*Level {
	if len(s.levels) == 0 {
		return nil
	}
	depth := s.Depth()
	var run []*Level
	for len(s.levels) > 0 && s.Top().LevelNumber == depth {
		run = append(run, s.Top())
		s.levels = s.levels[:len(s.levels)-1]
	}
	return run
}
