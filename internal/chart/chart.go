package chart

// Event names emitted by the chart itself.
const (
	EventRender  = "render"
	EventDestroy = "destroy"
)

// Default plot area dimensions.
const (
	defaultWidth  = 600
	defaultHeight = 400
)

// Options configures a Chart.
type Options struct {
	Width       float64
	Height      float64
	DefaultType string
	// XAxes lists the category labels of each x axis. At least one x axis
	// is always created.
	XAxes [][]string
	// Map enables the geographic map view.
	Map bool
}

// Chart is the headless chart. It owns series through a handle registry so
// that nothing outside it needs a pointer back to the chart.
type Chart struct {
	opts Options

	series       []*Series
	byID         map[SeriesID]*Series
	nextSeriesID SeriesID
	nextDrillID  int

	xAxes []*Axis
	yAxes []*Axis

	bus     *Bus
	anim    *Animator
	styles  *StyleCounter
	mapView *MapView

	resetZoom   *ResetZoomButton
	axesVisible bool
	redraws     int
	destroyed   bool
}

// New creates an empty chart.
func New(opts Options) *Chart {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.DefaultType == "" {
		opts.DefaultType = "column"
	}

	c := &Chart{
		opts:        opts,
		byID:        make(map[SeriesID]*Series),
		bus:         NewBus(),
		anim:        &Animator{},
		styles:      NewStyleCounter(),
		axesVisible: true,
	}

	n := len(opts.XAxes)
	if n == 0 {
		n = 1
	}
	for i := range n {
		a := &Axis{Kind: AxisX, Index: i}
		if i < len(opts.XAxes) {
			a.Categories = opts.XAxes[i]
		}
		c.xAxes = append(c.xAxes, a)
	}
	c.yAxes = []*Axis{{Kind: AxisY}}

	if opts.Map {
		nat := Bounds{X2: opts.Width, Y2: opts.Height}
		c.mapView = &MapView{Natural: nat, View: nat, Zoom: 1, anim: c.anim}
	}
	return c
}

// Options returns the chart configuration.
func (c *Chart) Options() Options { return c.opts }

// AddSeries creates a series from opts. When redraw is true the chart is
// redrawn immediately.
func (c *Chart) AddSeries(opts SeriesOptions, redraw bool) *Series {
	s := c.buildSeries(opts)
	c.series = append(c.series, s)
	c.byID[s.ID] = s
	if redraw {
		c.Redraw()
	}
	return s
}

// RemoveSeries detaches the series with the given handle. It reports
// whether the series was attached.
func (c *Chart) RemoveSeries(id SeriesID, redraw bool) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, s := range c.series {
		if s.ID == id {
			c.series = append(c.series[:i:i], c.series[i+1:]...)
			break
		}
	}
	if redraw {
		c.Redraw()
	}
	return true
}

// Series resolves a handle. The second result is false once the series has
// been removed.
func (c *Chart) Series(id SeriesID) (*Series, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// AllSeries returns the attached series in display order.
func (c *Chart) AllSeries() []*Series {
	return append([]*Series(nil), c.series...)
}

// XAxes returns the x axes.
func (c *Chart) XAxes() []*Axis { return c.xAxes }

// XAxis returns the x axis with index i, or the first axis if out of range.
func (c *Chart) XAxis(i int) *Axis { return c.xAxisFor(i) }

// YAxis returns the value axis.
func (c *Chart) YAxis() *Axis { return c.yAxes[0] }

func (c *Chart) xAxisFor(i int) *Axis {
	if i < 0 || i >= len(c.xAxes) {
		return c.xAxes[0]
	}
	return c.xAxes[i]
}

// SetAxisExtremes sets the user range of axis a.
func (c *Chart) SetAxisExtremes(a *Axis, minV, maxV *float64, redraw bool) {
	if a == nil {
		return
	}
	a.UserMin = copyFloat(minV)
	a.UserMax = copyFloat(maxV)
	if redraw {
		c.Redraw()
	}
}

// AxisUserExtremes returns the user range of axis a.
func (c *Chart) AxisUserExtremes(a *Axis) Extremes {
	if a == nil {
		return Extremes{}
	}
	return a.UserExtremes()
}

// Zoom sets the x range of axis a the way a user selection would and
// shows the reset zoom button.
func (c *Chart) Zoom(a *Axis, minV, maxV float64) {
	c.SetAxisExtremes(a, &minV, &maxV, false)
	if c.resetZoom == nil {
		c.resetZoom = &ResetZoomButton{}
	}
	c.resetZoom.Show()
	c.Redraw()
}

// On registers a listener on the chart's notification bus.
func (c *Chart) On(name string, fn Handler) func() { return c.bus.On(name, fn) }

// Fire emits an event on the chart's notification bus.
func (c *Chart) Fire(name string, payload any, def func(e *Event)) *Event {
	return c.bus.Fire(name, payload, def)
}

// Bus exposes the notification bus.
func (c *Chart) Bus() *Bus { return c.bus }

// Animator returns the chart's transition queue.
func (c *Chart) Animator() *Animator { return c.anim }

// MapView returns the map view, or nil for non-map charts.
func (c *Chart) MapView() *MapView { return c.mapView }

// Styles returns the chart-owned color and symbol counter.
func (c *Chart) Styles() *StyleCounter { return c.styles }

// NextDrillID allocates a synthetic series identifier. Identifiers start at
// one so zero can mean untagged.
func (c *Chart) NextDrillID() int {
	c.nextDrillID++
	return c.nextDrillID
}

// ResetZoomButton returns the button currently attached to the chart.
func (c *Chart) ResetZoomButton() *ResetZoomButton { return c.resetZoom }

// SetResetZoomButton attaches b, which may be nil to detach.
func (c *Chart) SetResetZoomButton(b *ResetZoomButton) { c.resetZoom = b }

// SetAxesVisible shows or hides every axis.
func (c *Chart) SetAxesVisible(v bool) { c.axesVisible = v }

// AxesVisible reports whether axes are drawn.
func (c *Chart) AxesVisible() bool { return c.axesVisible }

// Redraw lays out every series and emits the render event.
func (c *Chart) Redraw() {
	if c.destroyed {
		return
	}
	c.layout()
	c.redraws++
	c.bus.Fire(EventRender, nil, nil)
}

// Redraws returns how many times the chart has been redrawn.
func (c *Chart) Redraws() int { return c.redraws }

// Destroy stops pending transitions and marks the chart unusable.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.anim.Stop()
	c.bus.Fire(EventDestroy, nil, nil)
}

// Destroyed reports whether Destroy was called.
func (c *Chart) Destroyed() bool { return c.destroyed }

// ResetZoomButton is the "reset zoom" control. Ownership moves between the
// chart and drill levels.
type ResetZoomButton struct {
	Visible   bool
	Destroyed bool
}

// Show makes the button visible.
func (b *ResetZoomButton) Show() { b.Visible = true }

// Hide hides the button without destroying it.
func (b *ResetZoomButton) Hide() { b.Visible = false }

// Destroy hides the button permanently.
func (b *ResetZoomButton) Destroy() {
	b.Visible = false
	b.Destroyed = true
}
