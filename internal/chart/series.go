package chart

// Point is a materialized data point.
type Point struct {
	Series SeriesID
	Index  int

	X         int
	Y         float64
	Null      bool
	Name      string
	Color     string
	Drilldown string
	Options   PointOptions

	Shape   Shape
	Graphic *Graphic
	Visible bool
}

// Series is a live series registered with a Chart.
type Series struct {
	ID SeriesID

	// Options are the live options, including navigation tags.
	Options SeriesOptions
	// UserOptions are the options the series was created with.
	UserOptions SeriesOptions
	// PurgedOptions is the snapshot recorded when the series was last
	// stored in a drill level.
	PurgedOptions *SeriesOptions

	Type       string
	Name       string
	Color      string
	ColorIndex int
	Symbol     string

	XAxis *Axis
	YAxis *Axis

	Points []*Point
	Group  *Graphic
	Bounds *Bounds

	Visible             bool
	Drilling            bool
	InactiveOtherPoints bool
	MouseTracking       bool
	DirtyData           bool
}

// Family returns the transition family of the series type.
func (s *Series) Family() Family {
	return FamilyOf(s.Type)
}

// IsCartesian reports whether the series is drawn against x/y axes.
func (s *Series) IsCartesian() bool {
	return s.XAxis != nil
}

// PointIndex returns the index of p within the series, or -1.
func (s *Series) PointIndex(p *Point) int {
	for i, sp := range s.Points {
		if sp == p {
			return i
		}
	}
	return -1
}

// PointAt returns the first point with category x, or nil.
func (s *Series) PointAt(x int) *Point {
	for _, p := range s.Points {
		if p.X == x {
			return p
		}
	}
	return nil
}

// MaxValue returns the largest non-null point value, or 0.
func (s *Series) MaxValue() float64 {
	maxV := 0.0
	for _, p := range s.Points {
		if !p.Null && p.Y > maxV {
			maxV = p.Y
		}
	}
	return maxV
}

func (c *Chart) buildSeries(opts SeriesOptions) *Series {
	c.nextSeriesID++
	s := &Series{
		ID:            c.nextSeriesID,
		Options:       opts,
		UserOptions:   opts.Clone(),
		Type:          opts.Type,
		Name:          opts.Name,
		Visible:       opts.Visible == nil || *opts.Visible,
		MouseTracking: true,
		Group:         &Graphic{Opacity: 1, Visible: true},
	}
	if s.Type == "" {
		s.Type = c.opts.DefaultType
	}

	color, idx := c.styles.NextColor()
	if opts.ColorIndex != nil {
		idx = *opts.ColorIndex
		color = c.styles.Palette[idx%len(c.styles.Palette)]
	}
	if opts.Color != "" {
		color = opts.Color
	}
	s.Color, s.ColorIndex = color, idx
	s.Symbol = c.styles.NextSymbol()

	if s.Family() == FamilyCategory {
		s.XAxis = c.xAxisFor(opts.XAxis)
		s.YAxis = c.yAxes[0]
	}

	s.Points = make([]*Point, 0, len(opts.Data))
	for i, po := range opts.Data {
		p := &Point{
			Series:    s.ID,
			Index:     i,
			X:         i,
			Name:      po.Name,
			Color:     po.Color,
			Drilldown: po.Drilldown,
			Options:   po,
			Null:      po.IsNull(),
			Visible:   true,
		}
		switch {
		case po.X != nil:
			p.X = *po.X
		case po.Name != "" && s.XAxis != nil:
			p.X = s.XAxis.nameIndex(po.Name)
		}
		if po.Y != nil {
			p.Y = *po.Y
		}
		if p.Color == "" {
			p.Color = s.Color
		}
		s.Points = append(s.Points, p)
	}

	if s.Family() == FamilyMap {
		s.Bounds = mapBounds(s)
	}
	return s
}

// mapBounds lays map points on a unit grid and returns their extent.
func mapBounds(s *Series) *Bounds {
	if len(s.Points) == 0 {
		return &Bounds{}
	}
	b := Bounds{X1: float64(s.Points[0].X), X2: float64(s.Points[0].X) + 1, Y2: 1}
	for _, p := range s.Points {
		x := float64(p.X)
		if x < b.X1 {
			b.X1 = x
		}
		if x+1 > b.X2 {
			b.X2 = x + 1
		}
	}
	return &b
}
