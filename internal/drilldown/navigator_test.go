package drilldown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/drillchart/internal/chart"
)

func point(name string, y float64, target string) chart.PointOptions {
	return chart.PointOptions{Name: name, Y: chart.Float(y), Drilldown: target}
}

func rootSeries() chart.SeriesOptions {
	return chart.SeriesOptions{
		Name: "Things",
		Type: "column",
		Data: []chart.PointOptions{
			point("Animals", 5, "animals"),
			point("Fruits", 2, "fruits"),
			point("Cars", 4, ""),
		},
	}
}

func targets() []chart.SeriesOptions {
	return []chart.SeriesOptions{
		{ID: "animals", Name: "Animals", Type: "column", Data: []chart.PointOptions{
			point("Cats", 4, "cats"),
			point("Dogs", 2, ""),
		}},
		{ID: "fruits", Name: "Fruits", Type: "column", Data: []chart.PointOptions{
			point("Apples", 4, ""),
		}},
		{ID: "cats", Name: "Cats", Type: "column", Data: []chart.PointOptions{
			point("Tabby", 1, "tabby"),
		}},
		{ID: "tabby", Name: "Tabby", Type: "column", Data: []chart.PointOptions{
			point("Stripes", 1, ""),
		}},
	}
}

func newNav(t *testing.T, c *chart.Chart, mutate ...func(*Options)) *Navigator {
	t.Helper()
	opts := DefaultOptions()
	opts.Animation = 0
	opts.Series = targets()
	for _, m := range mutate {
		m(&opts)
	}
	return New(context.Background(), c, opts)
}

// strip drops the navigation tags so options compare by content.
func strip(o chart.SeriesOptions) chart.SeriesOptions {
	o.DrillID = 0
	o.DrillLevel = 0
	o.ColorIndex = nil
	return o
}

func names(c *chart.Chart) []string {
	var out []string
	for _, s := range c.AllSeries() {
		out = append(out, s.Name)
	}
	return out
}

func trailNames(trail []Breadcrumb) []string {
	var out []string
	for _, b := range trail {
		out = append(out, b.Name)
	}
	return out
}

func onlySeries(t *testing.T, c *chart.Chart) *chart.Series {
	t.Helper()
	all := c.AllSeries()
	require.Len(t, all, 1)
	return all[0]
}

func TestNavigator_RoundTrip(t *testing.T) {
	c := chart.New(chart.Options{})
	orig := rootSeries()
	root := c.AddSeries(orig, true)
	nav := newNav(t, c)

	nav.Trigger(root.Points[0])

	require.Len(t, nav.Levels(), 1)
	assert.Equal(t, 1, nav.CurrentLevel())
	_, stillThere := c.Series(root.ID)
	assert.False(t, stillThere)
	animals := onlySeries(t, c)
	assert.Equal(t, "Animals", animals.Name)
	assert.Equal(t, 1, animals.Options.DrillLevel)

	nav.Trigger(animals.Points[0])
	require.Len(t, nav.Levels(), 2)
	assert.Equal(t, []string{"Cats"}, names(c))

	nav.DrillUp(false)
	nav.DrillUp(false)

	assert.Empty(t, nav.Levels())
	assert.Equal(t, 0, nav.CurrentLevel())
	restored := onlySeries(t, c)
	assert.Equal(t, strip(orig), strip(restored.UserOptions))
	assert.Equal(t, root.Color, restored.Color)
}

func TestNavigator_DrillUpAtRootIsNoop(t *testing.T) {
	c := chart.New(chart.Options{})
	c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	fired := 0
	nav.On(EventBeforeDrillUp, func(*chart.Event) { fired++ })
	nav.DrillUp(false)

	assert.Equal(t, 0, fired)
	assert.Len(t, c.AllSeries(), 1)
}

func TestNavigator_SiblingTaggingIsIdempotent(t *testing.T) {
	c := chart.New(chart.Options{})
	first := c.AddSeries(rootSeries(), false)
	second := rootSeries()
	second.Name = "Other"
	c.AddSeries(second, true)
	nav := newNav(t, c)

	nav.Trigger(first.Points[0])
	level := nav.Levels()[0]
	require.Len(t, level.LevelSeriesOptions, 2)
	ids := []int{level.LevelSeriesOptions[0].DrillID, level.LevelSeriesOptions[1].DrillID}
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotZero(t, ids[0])

	nav.DrillUp(false)
	require.Len(t, c.AllSeries(), 2)

	nav.Trigger(c.AllSeries()[0].Points[1])
	level = nav.Levels()[0]
	require.Len(t, level.LevelSeriesOptions, 2)
	assert.Equal(t, ids, []int{level.LevelSeriesOptions[0].DrillID, level.LevelSeriesOptions[1].DrillID})
}

func TestNavigator_CategoryDedupe(t *testing.T) {
	c := chart.New(chart.Options{})
	mk := func(name, target string) chart.SeriesOptions {
		return chart.SeriesOptions{Name: name, Type: "column", Data: []chart.PointOptions{
			{Y: chart.Float(1)},
			{Y: chart.Float(2)},
			{Y: chart.Float(3), Drilldown: target},
		}}
	}
	s1 := c.AddSeries(mk("s1", "A"), false)
	c.AddSeries(mk("s2", "A"), false)
	c.AddSeries(mk("s3", "B"), true)

	nav := newNav(t, c, func(o *Options) {
		o.AllowPointDrilldown = false
		o.Series = []chart.SeriesOptions{
			{ID: "A", Name: "A", Type: "column", Data: []chart.PointOptions{{Y: chart.Float(1)}}},
			{ID: "B", Name: "B", Type: "column", Data: []chart.PointOptions{{Y: chart.Float(1)}}},
		}
	})
	assert.Equal(t, []int{2}, nav.DrillableCategories(c.XAxis(0)))

	var events []*DrilldownEvent
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { events = append(events, dd) })
	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })

	nav.Trigger(s1.Points[2])

	require.Len(t, events, 3)
	require.NotNil(t, events[0].Category)
	assert.Equal(t, 2, *events[0].Category)
	assert.Len(t, events[0].Points, 3)
	assert.Nil(t, events[1].SeriesOptions, "second A is deduplicated")

	levels := nav.Levels()
	require.Len(t, levels, 2)
	assert.Equal(t, 0, levels[0].LevelNumber)
	assert.Equal(t, 0, levels[1].LevelNumber)
	assert.Equal(t, []string{"A", "B"}, names(c))
	assert.Equal(t, 1, applied)

	nav.DrillUp(false)
	assert.Equal(t, []string{"s1", "s2", "s3"}, names(c))
	assert.Empty(t, nav.Levels())
}

// twoRegions adds two column series sharing category 0, drilling into
// targets a and b.
func twoRegions(c *chart.Chart, a, b string) (*chart.Series, *chart.Series) {
	north := c.AddSeries(chart.SeriesOptions{Name: "North", Type: "column", Data: []chart.PointOptions{
		point("Q1", 1, a),
	}}, false)
	south := c.AddSeries(chart.SeriesOptions{Name: "South", Type: "column", Data: []chart.PointOptions{
		point("Q1", 2, b),
	}}, true)
	return north, south
}

func letter(id string) chart.SeriesOptions {
	return chart.SeriesOptions{ID: id, Name: id, Type: "column", Data: []chart.PointOptions{point("x", 1, "")}}
}

func TestNavigator_AsyncCategoryDrill(t *testing.T) {
	c := chart.New(chart.Options{})
	twoRegions(c, "A", "B")
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slots []*Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { slots = append(slots, dd.Slot) })
	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })

	batch := nav.DrilldownCategory(c.XAxis(0), 0)

	require.NotNil(t, batch)
	require.Len(t, slots, 2)
	assert.Equal(t, 2, batch.Pending())
	assert.Same(t, batch, nav.PendingDrilldown())
	assert.Same(t, batch, slots[0].Batch())
	assert.Empty(t, nav.Levels())

	require.NoError(t, slots[0].Resolve(letter("A")))
	assert.Len(t, nav.Levels(), 1, "the level is recorded")
	assert.Equal(t, []string{"North", "South", "A"}, names(c), "the old level is not removed yet")
	assert.Zero(t, applied)

	require.NoError(t, slots[1].Resolve(letter("B")))

	assert.True(t, batch.Applied())
	assert.Nil(t, nav.PendingDrilldown())
	assert.Len(t, nav.Levels(), 2)
	assert.Equal(t, []string{"A", "B"}, names(c))
	assert.Equal(t, 1, applied)

	nav.DrillUp(false)
	assert.Equal(t, []string{"North", "South"}, names(c))
	assert.Empty(t, nav.Levels())
}

func TestNavigator_AsyncCategoryDrillAbandon(t *testing.T) {
	c := chart.New(chart.Options{})
	twoRegions(c, "A", "B")
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slots []*Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { slots = append(slots, dd.Slot) })

	batch := nav.DrilldownCategory(c.XAxis(0), 0)
	require.Len(t, slots, 2)

	slots[1].Abandon()
	assert.Equal(t, 1, batch.Pending())
	assert.False(t, batch.Applied())
	assert.ErrorIs(t, slots[1].Resolve(letter("B")), ErrAbandoned)

	require.NoError(t, slots[0].Resolve(letter("A")))
	assert.True(t, batch.Applied())
	assert.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"A"}, names(c))
}

func TestNavigator_SettleDrilldown(t *testing.T) {
	c := chart.New(chart.Options{})
	twoRegions(c, "A", "B")
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slots []*Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { slots = append(slots, dd.Slot) })
	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })

	assert.False(t, nav.SettleDrilldown(), "nothing open")

	batch := nav.DrilldownCategory(c.XAxis(0), 0)
	require.Len(t, slots, 2)
	require.NoError(t, slots[0].Resolve(letter("A")))

	assert.True(t, nav.SettleDrilldown())
	assert.True(t, batch.Applied())
	assert.Zero(t, batch.Pending())
	assert.Equal(t, 1, applied)
	assert.Len(t, nav.Levels(), 1)
	assert.ErrorIs(t, slots[1].Resolve(letter("B")), ErrAbandoned)
	assert.Len(t, nav.Levels(), 1)

	batch.Settle()
	assert.Equal(t, 1, applied, "settling twice applies once")
}

func TestNavigator_HeldDrillDownsApplyOnce(t *testing.T) {
	c := chart.New(chart.Options{})
	north, south := twoRegions(c, "", "")
	nav := newNav(t, c)

	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })

	nav.DrillDown(north.Points[0], letter("A"), true)
	nav.DrillDown(south.Points[0], letter("B"), true)

	assert.Len(t, nav.Levels(), 2)
	assert.Equal(t, []string{"North", "South", "A", "B"}, names(c))
	assert.Zero(t, applied)

	nav.ApplyDrilldown()

	assert.Equal(t, 1, applied)
	assert.Equal(t, []string{"A", "B"}, names(c))
}

func TestNavigator_DrillDownRendersByDefault(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })

	nav.DrillDown(root.Points[2], letter("A"), false)

	assert.Equal(t, 1, applied)
	assert.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"A"}, names(c))
}

func TestNavigator_DedupeLifetime(t *testing.T) {
	c := chart.New(chart.Options{})
	twoRegions(c, "A", "A")
	nav := newNav(t, c, func(o *Options) {
		o.AllowPointDrilldown = false
		o.Series = []chart.SeriesOptions{letter("A")}
	})

	drill := func() {
		t.Helper()
		nav.Trigger(c.AllSeries()[0].Points[0])
		require.Len(t, nav.Levels(), 1, "one target yields one level")
		assert.Equal(t, []string{"A"}, names(c))
		assert.True(t, nav.dupes.Contains("A"))
	}

	drill()
	nav.DrillUp(false)
	assert.Empty(t, nav.Levels())
	assert.Zero(t, nav.dupes.Len(), "a settled drill-up forgets the targets")

	drill()
	nav.DrillUp(false)
	assert.Empty(t, nav.Levels())
}

func TestNavigator_DedupeSurvivesIntermediateHops(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	nav.Trigger(root.Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	require.Len(t, nav.Levels(), 2)

	var seen []int
	nav.On(EventAfterDrillUp, func(*chart.Event) { seen = append(seen, nav.dupes.Len()) })

	assert.Equal(t, 2, nav.DrillUpTo(0))

	assert.Equal(t, []int{2, 2}, seen, "targets are kept until the last hop completes")
	assert.Zero(t, nav.dupes.Len())
	assert.Equal(t, []string{"Things"}, names(c))
}

func TestNavigator_CroppedCategoryPoints(t *testing.T) {
	c := chart.New(chart.Options{})
	c.AddSeries(chart.SeriesOptions{Name: "North", Type: "column", Data: []chart.PointOptions{
		point("Q1", 1, "A"),
		point("Q2", 1, "B"),
		point("Q3", 1, "C"),
	}}, true)
	nav := newNav(t, c, func(o *Options) {
		o.Series = []chart.SeriesOptions{letter("A"), letter("B"), letter("C")}
	})
	x := c.XAxis(0)

	c.Zoom(x, 0, 1)
	c.Redraw()

	assert.Equal(t, []*chart.Point{nil}, nav.CategoryPoints(x, 2))
	assert.Equal(t, []int{0, 1, 2}, nav.DrillableCategories(x), "cropped categories stay drillable")
	require.Len(t, nav.CategoryPoints(x, 1), 1)
	assert.NotNil(t, nav.CategoryPoints(x, 1)[0])

	batch := nav.DrilldownCategory(x, 2)
	require.NotNil(t, batch)
	assert.True(t, batch.Applied())
	assert.Empty(t, nav.Levels(), "placeholders are skipped")
	assert.False(t, nav.dupes.Contains("C"))

	nav.DrilldownCategory(x, 1)
	assert.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"B"}, names(c))
}

func TestNavigator_MultiStepDrillUpSettlesOnce(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)
	x := c.XAxis(0)
	c.SetAxisExtremes(x, chart.Float(0), chart.Float(2), false)

	nav.Trigger(root.Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	require.Len(t, nav.Levels(), 3)
	assert.Nil(t, c.AxisUserExtremes(x).Min, "drilling clears the zoom")

	before, all, up := 0, 0, 0
	nav.On(EventBeforeDrillUp, func(*chart.Event) { before++ })
	nav.On(EventDrillupAll, func(*chart.Event) { all++ })
	nav.OnDrillup(func(*DrillupEvent) { up++ })

	hops := nav.DrillUpAll()

	assert.Equal(t, 3, hops)
	assert.Equal(t, 3, before)
	assert.Equal(t, 3, up)
	assert.Equal(t, 1, all)
	assert.Empty(t, nav.Levels())
	assert.Equal(t, []string{"Things"}, names(c))

	ext := c.AxisUserExtremes(x)
	require.NotNil(t, ext.Min)
	require.NotNil(t, ext.Max)
	assert.InDelta(t, 0.0, *ext.Min, 0)
	assert.InDelta(t, 2.0, *ext.Max, 0)
}

func TestNavigator_DrillUpToBreadcrumb(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	nav.Trigger(root.Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])

	assert.Equal(t, 2, nav.DrillUpTo(1))
	assert.Equal(t, 1, nav.CurrentLevel())
	assert.Equal(t, []string{"Animals"}, names(c))
	assert.Equal(t, 0, nav.DrillUpTo(1), "already there")
}

func TestNavigator_OnBreadcrumbs(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	var trails [][]string
	off := nav.OnBreadcrumbs(func(trail []Breadcrumb) {
		trails = append(trails, trailNames(trail))
	})

	nav.Trigger(root.Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	nav.DrillUpAll()

	require.Len(t, trails, 3, "two drills and one settled drill-up")
	assert.Equal(t, []string{"Things", "Animals"}, trails[0])
	assert.Equal(t, []string{"Things", "Animals", "Cats"}, trails[1])
	assert.Empty(t, trails[2])

	off()
	nav.Trigger(onlySeries(t, c).Points[0])
	assert.Len(t, trails, 3, "unsubscribed")
}

func TestNavigator_Scenario(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(chart.SeriesOptions{Name: "Root", Data: []chart.PointOptions{
		{Y: chart.Float(3), Drilldown: "a"},
	}}, true)
	nav := newNav(t, c, func(o *Options) {
		o.Series = []chart.SeriesOptions{
			{ID: "a", Name: "A", Data: []chart.PointOptions{{Y: chart.Float(2), Drilldown: "b"}, {Y: chart.Float(1)}}},
			{ID: "b", Name: "B", Data: []chart.PointOptions{{Y: chart.Float(1)}}},
		}
	})

	nav.Trigger(root.Points[0])
	require.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"Root", "A"}, trailNames(nav.Breadcrumbs()))

	x := c.XAxis(0)
	c.SetAxisExtremes(x, chart.Float(0), chart.Float(1), false)
	seriesA := onlySeries(t, c)
	nav.Trigger(seriesA.Points[0])

	levels := nav.Levels()
	require.Len(t, levels, 2)
	assert.Equal(t, 0, levels[0].LevelNumber)
	assert.Equal(t, 1, levels[1].LevelNumber)
	assert.Equal(t, []string{"Root", "A", "B"}, trailNames(nav.Breadcrumbs()))
	assert.Equal(t, "Root / A / B", FormatTrail(nav.Breadcrumbs(), nav.Options().Breadcrumbs))

	nav.DrillUp(false)

	require.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"Root", "A"}, trailNames(nav.Breadcrumbs()))
	ext := c.AxisUserExtremes(x)
	require.NotNil(t, ext.Min)
	assert.InDelta(t, 0.0, *ext.Min, 0)
	assert.InDelta(t, 1.0, *ext.Max, 0)
}

func TestNavigator_PreventedDrilldownHasNoEffect(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	off := nav.On(EventDrilldown, func(e *chart.Event) { e.PreventDefault() })
	ev := nav.RunDrilldown(root.Points[0], false, nil)

	require.NotNil(t, ev)
	assert.Empty(t, nav.Levels())
	assert.Equal(t, []string{"Things"}, names(c))
	assert.ErrorIs(t, ev.Slot.Resolve(targets()[0]), ErrCanceled)

	off()
	nav.Trigger(root.Points[0])
	assert.Len(t, nav.Levels(), 1, "a prevented trigger does not block the target")
}

func TestNavigator_AsyncSlot(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slot *Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) {
		assert.Nil(t, dd.SeriesOptions)
		slot = dd.Slot
	})
	nav.Trigger(root.Points[0])
	require.NotNil(t, slot)
	assert.Empty(t, nav.Levels(), "nothing happens until the data arrives")

	assert.ErrorIs(t, slot.Resolve(chart.SeriesOptions{}), ErrNoSeries)
	assert.False(t, slot.Resolved())

	require.NoError(t, slot.Resolve(targets()[0]))
	assert.Len(t, nav.Levels(), 1)
	assert.Equal(t, []string{"Animals"}, names(c))
	assert.True(t, slot.Resolved())

	assert.ErrorIs(t, slot.Resolve(targets()[0]), ErrAlreadyResolved)
}

func TestNavigator_AsyncSlotAfterDestroy(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slot *Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { slot = dd.Slot })
	nav.Trigger(root.Points[0])
	require.NotNil(t, slot)

	c.Destroy()

	assert.True(t, nav.Destroyed())
	assert.ErrorIs(t, slot.Resolve(targets()[0]), ErrDestroyed)
	assert.Equal(t, []string{"Things"}, names(c))
	assert.Empty(t, nav.Levels())
}

func TestNavigator_AsyncSlotDetachedPoint(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) { o.Series = nil })

	var slot *Slot
	nav.OnDrilldown(func(_ *chart.Event, dd *DrilldownEvent) { slot = dd.Slot })
	nav.Trigger(root.Points[0])
	c.RemoveSeries(root.ID, true)

	assert.ErrorIs(t, slot.Resolve(targets()[0]), ErrPointDetached)
	assert.False(t, slot.Resolved())
}

func TestNavigator_StaleLowerSeries(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	nav.Trigger(root.Points[0])
	lower := onlySeries(t, c)

	// Replace the lower series behind the navigator's back.
	c.RemoveSeries(lower.ID, false)
	replacement := c.AddSeries(lower.Options.Clone(), true)
	replacement.Options.DrillLevel = lower.Options.DrillLevel

	nav.DrillUp(false)

	assert.Equal(t, []string{"Things"}, names(c))
	_, ok := c.Series(replacement.ID)
	assert.False(t, ok, "the replacement is found by identity and torn down")
}

func TestNavigator_StaleLowerSeriesMissing(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	nav.Trigger(root.Points[0])
	c.RemoveSeries(onlySeries(t, c).ID, true)

	assert.NotPanics(t, func() { nav.DrillUp(false) })
	assert.Equal(t, []string{"Things"}, names(c))
	assert.Empty(t, nav.Levels())
}

func TestNavigator_ResetZoomButtonTravelsWithLevels(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	c.Zoom(c.XAxis(0), 0, 1)
	btn := c.ResetZoomButton()
	require.NotNil(t, btn)

	nav.Trigger(root.Points[0])
	assert.Nil(t, c.ResetZoomButton())
	assert.False(t, btn.Visible)
	assert.Same(t, btn, nav.Levels()[0].ResetZoomButton)

	nav.DrillUp(false)
	assert.Same(t, btn, c.ResetZoomButton())
	assert.True(t, btn.Visible)
}

func TestNavigator_ColumnEnterTransition(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) { o.Animation = 100 * time.Millisecond })

	origin := root.Points[0].Shape
	nav.Trigger(root.Points[0])

	lower := onlySeries(t, c)
	p := lower.Points[0]
	require.NotNil(t, p.Graphic)
	assert.Equal(t, origin, p.Graphic.Shape, "points grow out of the origin")
	assert.Equal(t, root.Points[0].Color, p.Graphic.Fill)

	c.Animator().Flush()
	assert.Equal(t, p.Shape, p.Graphic.Shape)
	assert.Equal(t, p.Color, p.Graphic.Fill)
	assert.False(t, lower.Drilling)
}

func TestNavigator_ColumnRestoreTransition(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) { o.Animation = 100 * time.Millisecond })

	nav.Trigger(root.Points[1])
	c.Animator().Flush()
	nav.DrillUp(false)

	restored := onlySeries(t, c)
	for _, p := range restored.Points {
		assert.False(t, p.Graphic.Visible)
	}

	c.Animator().Flush()
	for _, p := range restored.Points {
		assert.True(t, p.Graphic.Visible)
		assert.InDelta(t, 1.0, p.Graphic.Opacity, 0)
	}
}

func TestNavigator_PieEnterSubdividesOrigin(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(chart.SeriesOptions{Name: "Share", Type: "pie", Data: []chart.PointOptions{
		point("Left", 1, "split"),
		point("Right", 1, ""),
	}}, true)
	nav := newNav(t, c, func(o *Options) {
		o.Animation = 100 * time.Millisecond
		o.Series = []chart.SeriesOptions{{ID: "split", Name: "Split", Type: "pie", Data: []chart.PointOptions{
			point("a", 1, ""),
			point("b", 1, ""),
		}}}
	})

	origin := root.Points[0].Shape
	nav.Trigger(root.Points[0])

	lower := onlySeries(t, c)
	half := (origin.End - origin.Start) / 2
	assert.InDelta(t, origin.Start, lower.Points[0].Graphic.Shape.Start, 1e-9)
	assert.InDelta(t, origin.Start+half, lower.Points[1].Graphic.Shape.Start, 1e-9)
	assert.InDelta(t, origin.End, lower.Points[1].Graphic.Shape.End, 1e-9)
}

func TestNavigator_PieToColumnHidesAxesThenRestores(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c, func(o *Options) {
		o.Series = []chart.SeriesOptions{{ID: "animals", Name: "Animals", Type: "pie", Data: []chart.PointOptions{
			point("Cats", 1, ""),
		}}}
	})

	nav.Trigger(root.Points[0])
	assert.False(t, c.AxesVisible())

	nav.DrillUp(false)
	assert.True(t, c.AxesVisible())
}

func mapChart(t *testing.T, animation time.Duration) (*chart.Chart, *chart.Series, *Navigator) {
	t.Helper()
	c := chart.New(chart.Options{Map: true, Width: 100, Height: 50})
	root := c.AddSeries(chart.SeriesOptions{Name: "World", Type: "map", Data: []chart.PointOptions{
		point("Europe", 1, "europe"),
		point("Asia", 1, ""),
	}}, true)
	nav := newNav(t, c, func(o *Options) {
		o.Animation = animation
		o.MapZooming = new(bool)
		*o.MapZooming = true
		o.Series = []chart.SeriesOptions{
			{ID: "europe", Name: "Europe", Type: "map", Data: []chart.PointOptions{
				point("France", 1, "france"),
				point("Spain", 1, ""),
			}},
			{ID: "france", Name: "France", Type: "map", Data: []chart.PointOptions{
				point("Paris", 1, ""),
			}},
		}
	})
	return c, root, nav
}

func TestNavigator_MapZoomDrilldown(t *testing.T) {
	c, root, nav := mapChart(t, 100*time.Millisecond)

	applied := 0
	nav.On(EventAfterApplyDrilldown, func(*chart.Event) { applied++ })
	nav.Trigger(root.Points[0])

	assert.Empty(t, nav.Levels(), "the drill waits for the zoom to settle")
	assert.True(t, root.Drilling)

	c.Animator().Flush()

	require.Len(t, nav.Levels(), 1)
	assert.Equal(t, 1, applied)
	assert.Equal(t, []string{"Europe"}, names(c))
	assert.InDelta(t, 1.0, c.MapView().Zoom, 0)
	assert.False(t, c.MapView().AllowTransformAnimation)
}

func TestNavigator_MapDrillUpRemovesAfterTransform(t *testing.T) {
	c, root, nav := mapChart(t, 100*time.Millisecond)
	nav.Trigger(root.Points[0])
	c.Animator().Flush()
	europe := onlySeries(t, c)

	var after *DrillupEvent
	nav.On(EventAfterDrillUp, func(e *chart.Event) { after, _ = e.Payload.(*DrillupEvent) })
	all := 0
	nav.On(EventDrillupAll, func(*chart.Event) { all++ })

	nav.DrillUp(false)

	_, ok := c.Series(europe.ID)
	assert.True(t, ok, "the lower series stays until the view settles")
	require.NotNil(t, after)
	assert.Equal(t, "World", after.SeriesOptions.Name)
	assert.Equal(t, 1, all)

	c.Animator().Flush()
	_, ok = c.Series(europe.ID)
	assert.False(t, ok)
	assert.Equal(t, []string{"World"}, names(c))
}

func TestNavigator_MapMultiStepRemovesImmediately(t *testing.T) {
	c, root, nav := mapChart(t, 0)
	nav.Trigger(root.Points[0])
	nav.Trigger(onlySeries(t, c).Points[0])
	c.Animator().Flush()
	require.Len(t, nav.Levels(), 2)

	all := 0
	nav.On(EventDrillupAll, func(*chart.Event) { all++ })
	nav.DrillUpAll()
	c.Animator().Flush()

	assert.Equal(t, 1, all)
	assert.Equal(t, []string{"World"}, names(c))
}

func TestNavigator_DestroyStopsListening(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)
	before := c.Bus().Count(chart.EventRender)

	nav.Destroy()
	nav.Destroy()
	nav.Trigger(root.Points[0])

	assert.Empty(t, nav.Levels())
	assert.Equal(t, before-1, c.Bus().Count(chart.EventRender))
}

func TestNavigator_UpdateReplacesTargets(t *testing.T) {
	c := chart.New(chart.Options{})
	root := c.AddSeries(rootSeries(), true)
	nav := newNav(t, c)

	opts := nav.Options()
	opts.Series = []chart.SeriesOptions{{ID: "animals", Name: "Zoo", Data: []chart.PointOptions{point("x", 1, "")}}}
	nav.Update(opts, true)
	nav.Trigger(root.Points[0])

	assert.Equal(t, []string{"Zoo"}, names(c))
}
