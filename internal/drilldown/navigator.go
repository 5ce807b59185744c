// Package drilldown implements hierarchical drill navigation on top of a
// headless chart: drilling from a point into a child series, unwinding one
// or several levels, category-wide drills, and the breadcrumb trail.
package drilldown

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/logging"
)

// DefaultAnimation is the transition duration used when none is configured.
const DefaultAnimation = 500 * time.Millisecond

// Host is the chart surface the navigator drives. *chart.Chart satisfies it.
type Host interface {
	AddSeries(opts chart.SeriesOptions, redraw bool) *chart.Series
	RemoveSeries(id chart.SeriesID, redraw bool) bool
	Series(id chart.SeriesID) (*chart.Series, bool)
	AllSeries() []*chart.Series
	XAxes() []*chart.Axis

	SetAxisExtremes(a *chart.Axis, minV, maxV *float64, redraw bool)
	AxisUserExtremes(a *chart.Axis) chart.Extremes

	On(name string, fn chart.Handler) func()
	Fire(name string, payload any, def func(e *chart.Event)) *chart.Event

	Redraw()
	Animator() *chart.Animator
	MapView() *chart.MapView
	Styles() *chart.StyleCounter
	NextDrillID() int

	ResetZoomButton() *chart.ResetZoomButton
	SetResetZoomButton(b *chart.ResetZoomButton)
	SetAxesVisible(v bool)
	Destroyed() bool
}

// BreadcrumbOptions controls how the trail is rendered.
type BreadcrumbOptions struct {
	Separator    string
	ShowFullPath bool
}

// Options configures a Navigator.
type Options struct {
	// Series are the drill targets, matched by ID against a point's
	// Drilldown reference.
	Series []chart.SeriesOptions

	// AllowPointDrilldown drills a single point on trigger. When false a
	// trigger on a cartesian point drills its whole category.
	AllowPointDrilldown bool

	Animation time.Duration

	// MapZooming zooms the map view into the drilled point. Nil enables it
	// only for projected maps.
	MapZooming *bool

	Breadcrumbs BreadcrumbOptions
}

// DefaultOptions returns the navigator defaults.
func DefaultOptions() Options {
	return Options{
		AllowPointDrilldown: true,
		Animation:           DefaultAnimation,
		Breadcrumbs:         BreadcrumbOptions{Separator: "/", ShowFullPath: true},
	}
}

// Navigator owns the drill stack of one chart. It is not safe for concurrent
// use; drive it from the goroutine that owns the chart.
type Navigator struct {
	host Host
	opts Options

	stack   Stack
	dupes   *DedupeRegistry
	index   map[*chart.Axis]map[int][]*chart.Point
	pending []pendingTransition
	batch   *Batch

	session   string
	logger    zerolog.Logger
	unbind    []func()
	destroyed bool
}

// New attaches a navigator to host.
func New(ctx context.Context, host Host, opts Options) *Navigator {
	n := &Navigator{
		host:    host,
		opts:    opts,
		dupes:   NewDedupeRegistry(),
		index:   make(map[*chart.Axis]map[int][]*chart.Point),
		session: logging.NewTraceID(),
	}
	n.logger = logging.ComponentLogger(*logging.FromContext(ctx), "drilldown").
		With().Str("session", n.session).Logger()

	n.unbind = append(n.unbind,
		host.On(chart.EventRender, func(*chart.Event) { n.rebuildIndex() }),
		host.On(EventDrillup, func(*chart.Event) {
			if b := n.host.ResetZoomButton(); b != nil {
				b.Destroy()
				n.host.SetResetZoomButton(nil)
			}
		}),
		host.On(EventDrillupAll, func(*chart.Event) {
			if b := n.host.ResetZoomButton(); b != nil {
				b.Show()
			}
		}),
		host.On(chart.EventDestroy, func(*chart.Event) { n.Destroy() }),
	)
	n.rebuildIndex()

	n.logger.Debug().
		Str("operation", "new").
		Int("targets", len(opts.Series)).
		Msg("drilldown navigator attached")
	return n
}

// Options returns the active configuration.
func (n *Navigator) Options() Options { return n.opts }

// Update replaces the configuration. Navigation state is kept.
func (n *Navigator) Update(opts Options, redraw bool) {
	n.opts = opts
	if redraw && !n.destroyed {
		n.host.Redraw()
	}
}

// On subscribes fn to a navigation event and returns its unsubscribe func.
func (n *Navigator) On(name string, fn chart.Handler) func() {
	return n.host.On(name, fn)
}

// OnDrilldown subscribes a typed drilldown listener.
func (n *Navigator) OnDrilldown(fn func(e *chart.Event, dd *DrilldownEvent)) func() {
	return n.host.On(EventDrilldown, func(e *chart.Event) {
		if dd, ok := e.Payload.(*DrilldownEvent); ok {
			fn(e, dd)
		}
	})
}

// OnDrillup subscribes a typed drillup listener.
func (n *Navigator) OnDrillup(fn func(du *DrillupEvent)) func() {
	return n.host.On(EventDrillup, func(e *chart.Event) {
		if du, ok := e.Payload.(*DrillupEvent); ok {
			fn(du)
		}
	})
}

// Levels returns the drill stack, oldest first.
func (n *Navigator) Levels() []*Level { return n.stack.Levels() }

// CurrentLevel is the breadcrumb level currently shown; 0 at root.
func (n *Navigator) CurrentLevel() int { return n.stack.Depth() + 1 }

// Session returns the id tagging this navigator's log lines.
func (n *Navigator) Session() string { return n.session }

// Destroyed reports whether the navigator was torn down.
func (n *Navigator) Destroyed() bool { return n.destroyed }

// Destroy detaches the navigator. Pending asynchronous resolutions and
// transition completions become no-ops.
func (n *Navigator) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	for _, off := range n.unbind {
		off()
	}
	n.unbind = nil
	n.pending = nil
	n.batch = nil
	n.logger.Debug().Str("operation", "destroy").Msg("drilldown navigator detached")
}

func (n *Navigator) mapZooming() bool {
	mv := n.host.MapView()
	if mv == nil {
		return false
	}
	if n.opts.MapZooming != nil {
		return *n.opts.MapZooming
	}
	return mv.HasGeoProjection
}

// tag assigns the navigation identity of s once; later calls keep it.
func (n *Navigator) tag(s *chart.Series, levelNumber int) {
	if s.Options.DrillID == 0 {
		s.Options.DrillID = n.host.NextDrillID()
	}
	if s.Options.DrillLevel == 0 {
		s.Options.DrillLevel = levelNumber
	}
}

func (n *Navigator) detachResetZoom() {
	if b := n.host.ResetZoomButton(); b != nil {
		b.Hide()
		n.host.SetResetZoomButton(nil)
	}
}

// completion runs fn once every added task is done and the group is armed.
type completion struct {
	remaining int
	armed     bool
	fired     bool
	fn        func()
}

func (c *completion) add() { c.remaining++ }

func (c *completion) done() {
	c.remaining--
	c.fire()
}

func (c *completion) arm() {
	c.armed = true
	c.fire()
}

func (c *completion) fire() {
	if c.armed && !c.fired && c.remaining <= 0 {
		c.fired = true
		c.fn()
	}
}
