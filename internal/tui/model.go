// Package tui is the interactive terminal viewer for drillable charts.
package tui

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/drillchart/internal/chart"
	"github.com/rshade/drillchart/internal/drilldown"
	"github.com/rshade/drillchart/internal/logging"
	listview "github.com/rshade/drillchart/internal/tui/list"
)

// frameInterval paces animation steps.
const frameInterval = 40 * time.Millisecond

// ViewState is the viewer's mode.
type ViewState int

const (
	// ViewStateBrowse accepts navigation keys.
	ViewStateBrowse ViewState = iota
	// ViewStateLoading still accepts keys while drill targets are fetched.
	ViewStateLoading
	// ViewStateQuitting renders nothing.
	ViewStateQuitting
)

// TargetLoader fetches drill targets that the chart does not define inline.
type TargetLoader interface {
	Load(ctx context.Context, id string) (chart.SeriesOptions, error)
}

// Row is one bar: a visible point and the series it belongs to.
type Row struct {
	Point  *chart.Point
	Series *chart.Series
}

// TargetLoadedMsg carries the result of an on-demand target load.
type TargetLoadedMsg struct {
	ID     string
	Series chart.SeriesOptions
	Err    error
}

// animationFrameMsg advances the chart animator by one step.
type animationFrameMsg struct{}

// pendingLoads tracks drills waiting for data. It is shared by pointer so the
// drilldown listener and the model copies see the same queue.
type pendingLoads struct {
	queued  []*drilldown.Slot
	waiting map[string][]*drilldown.Slot
}

// queue adds slot unless its target is already queued by the same gesture,
// in which case the slot is abandoned: one target yields one level.
func (p *pendingLoads) queue(slot *drilldown.Slot) {
	id := slot.Point().Drilldown
	for _, q := range p.queued {
		if q.Point().Drilldown == id {
			slot.Abandon()
			return
		}
	}
	p.queued = append(p.queued, slot)
}

// barLayout holds the measurements rows are rendered with.
type barLayout struct {
	barWidth int
	maxValue float64
	printer  *message.Printer
}

// ChartModel is the Bubble Tea model driving one chart and its navigator.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ChartModel struct {
	ctx    context.Context
	title  string
	chart  *chart.Chart
	nav    *drilldown.Navigator
	loader TargetLoader
	logger zerolog.Logger

	state   ViewState
	list    *listview.Model[Row]
	layout  *barLayout
	loads   *pendingLoads
	loading *LoadingState
	help    help.Model
	keys    keyMap

	width  int
	height int
	status string
	err    error
	unbind func()
}

// NewChartModel creates a viewer for c. Drill targets missing from the
// navigator's options are fetched through ld; with a nil ld such drills are
// no-ops.
func NewChartModel(
	ctx context.Context,
	title string,
	c *chart.Chart,
	nav *drilldown.Navigator,
	ld TargetLoader,
) ChartModel {
	m := ChartModel{
		ctx:     ctx,
		title:   title,
		chart:   c,
		nav:     nav,
		loader:  ld,
		logger:  logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		state:   ViewStateBrowse,
		layout:  &barLayout{printer: message.NewPrinter(language.English)},
		loads:   &pendingLoads{waiting: make(map[string][]*drilldown.Slot)},
		loading: NewLoadingState(),
		help:    help.New(),
		keys:    newKeyMap(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.list = listview.New(nil, m.listHeight(), m.layout.renderRow)
	m.unbind = nav.OnDrilldown(queueMissingTargets(nav, ld, m.loads))
	m.refreshRows()
	return m
}

// queueMissingTargets queues drills whose target is unknown so Update can
// fetch it. Targets that exist but were skipped as duplicates are left alone.
func queueMissingTargets(
	nav *drilldown.Navigator,
	ld TargetLoader,
	loads *pendingLoads,
) func(*chart.Event, *drilldown.DrilldownEvent) {
	return func(_ *chart.Event, dd *drilldown.DrilldownEvent) {
		if ld == nil || dd.SeriesOptions != nil || dd.Point.Drilldown == "" {
			return
		}
		if hasTarget(nav.Options().Series, dd.Point.Drilldown) {
			return
		}
		loads.queue(dd.Slot)
	}
}

func hasTarget(series []chart.SeriesOptions, id string) bool {
	return slices.ContainsFunc(series, func(s chart.SeriesOptions) bool { return s.ID == id })
}

// Init starts the animation loop if the chart is mid-transition.
func (m ChartModel) Init() tea.Cmd {
	if m.chart.Animator().Pending() > 0 {
		return nextFrame()
	}
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetHeight(m.listHeight())
		m.refreshRows()
		return m, nil
	case TargetLoadedMsg:
		return m.handleTargetLoaded(msg)
	case animationFrameMsg:
		m.chart.Animator().Step()
		m.refreshRows()
		if m.chart.Animator().Pending() > 0 {
			return m, nextFrame()
		}
		return m, nil
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		if m.state == ViewStateQuitting {
			return m, nil
		}
		return m.handleKeypress(msg)
	}
	return m, nil
}

func (m ChartModel) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.list.Page(-1)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.list.Page(1)
		return m, nil
	case key.Matches(msg, m.keys.Drill):
		row, ok := m.list.SelectedItem()
		if !ok {
			return m, nil
		}
		if row.Point.Drilldown == "" {
			m.status = "nothing to drill into"
			return m, nil
		}
		m.nav.Trigger(row.Point)
		m.list.Home()
	case key.Matches(msg, m.keys.Category):
		row, ok := m.list.SelectedItem()
		if !ok || row.Series.XAxis == nil {
			m.status = "category drill needs a cartesian series"
			return m, nil
		}
		batch := m.nav.DrilldownCategory(row.Series.XAxis, row.Point.X)
		if batch != nil && !batch.Applied() && len(m.loads.queued) == 0 {
			// Nothing will arrive for the remaining slots.
			batch.Settle()
		}
		m.list.Home()
	case key.Matches(msg, m.keys.Back):
		m.nav.DrillUp(false)
	case key.Matches(msg, m.keys.Root):
		m.nav.DrillUpAll()
	case key.Matches(msg, m.keys.Jump):
		level, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		if m.nav.DrillUpTo(level) == 0 {
			m.status = fmt.Sprintf("level %d is not above the current one", level)
		}
	default:
		return m, nil
	}
	return m.afterNavigation()
}

// afterNavigation starts any loads the last action queued, refreshes the
// rows and keeps the animation loop running while transitions are pending.
func (m ChartModel) afterNavigation() (tea.Model, tea.Cmd) {
	cmds := m.startLoads()
	m.refreshRows()
	if m.chart.Animator().Pending() > 0 {
		cmds = append(cmds, nextFrame())
	}
	return m, tea.Batch(cmds...)
}

func (m *ChartModel) startLoads() []tea.Cmd {
	var cmds []tea.Cmd
	for _, slot := range m.loads.queued {
		id := slot.Point().Drilldown
		if _, inflight := m.loads.waiting[id]; !inflight {
			cmds = append(cmds, m.loadTarget(id))
		}
		m.loads.waiting[id] = append(m.loads.waiting[id], slot)
	}
	m.loads.queued = nil

	if len(cmds) > 0 && m.state != ViewStateLoading {
		m.state = ViewStateLoading
		cmds = append(cmds, m.loading.Init())
	}
	return cmds
}

func (m ChartModel) loadTarget(id string) tea.Cmd {
	ctx, ld := m.ctx, m.loader
	m.logger.Debug().Str("operation", "load_target").Str("target", id).Msg("fetching drill target")
	return func() tea.Msg {
		series, err := ld.Load(ctx, id)
		return TargetLoadedMsg{ID: id, Series: series, Err: err}
	}
}

func (m ChartModel) handleTargetLoaded(msg TargetLoadedMsg) (tea.Model, tea.Cmd) {
	slots := m.loads.waiting[msg.ID]
	delete(m.loads.waiting, msg.ID)
	if len(m.loads.waiting) == 0 {
		m.state = ViewStateBrowse
	}

	if msg.Err != nil {
		for _, slot := range slots {
			slot.Abandon()
		}
		m.err = fmt.Errorf("loading %s: %w", msg.ID, msg.Err)
		m.logger.Warn().
			Str("operation", "load_target").
			Str("target", msg.ID).
			Err(msg.Err).
			Msg("drill target could not be loaded")
		return m.afterNavigation()
	}

	m.err = nil
	if msg.Series.ID == "" {
		msg.Series.ID = msg.ID
	}
	m.registerTarget(msg.Series)
	for _, slot := range slots {
		if err := slot.Resolve(msg.Series); err != nil {
			m.status = fmt.Sprintf("%s arrived too late: %v", msg.ID, err)
			m.logger.Debug().
				Str("operation", "resolve_slot").
				Str("target", msg.ID).
				Err(err).
				Msg("drill slot not resolved")
		}
	}
	m.list.Home()
	return m.afterNavigation()
}

// registerTarget adds a loaded target to the navigator so later drills into
// it are synchronous and deduplicated.
func (m ChartModel) registerTarget(series chart.SeriesOptions) {
	opts := m.nav.Options()
	if hasTarget(opts.Series, series.ID) {
		return
	}
	opts.Series = append(slices.Clone(opts.Series), series)
	m.nav.Update(opts, false)
}

// refreshRows rebuilds the bar list from the visible series.
func (m ChartModel) refreshRows() {
	var rows []Row
	maxValue := 0.0
	for _, s := range m.chart.AllSeries() {
		if !s.Visible {
			continue
		}
		for _, p := range s.Points {
			if !p.Visible {
				continue
			}
			rows = append(rows, Row{Point: p, Series: s})
			maxValue = max(maxValue, math.Abs(p.Y))
		}
	}
	m.layout.maxValue = maxValue
	m.layout.barWidth = max(m.width-labelWidth-valueWidth-borderPadding*4, minBarWidth)
	m.list.SetItems(rows)
}

// Close detaches the model from the navigator.
func (m ChartModel) Close() {
	if m.unbind != nil {
		m.unbind()
	}
}

// State returns the current view state.
func (m ChartModel) State() ViewState { return m.state }

// Err returns the last load error, if any.
func (m ChartModel) Err() error { return m.err }

// Rows returns the bars currently listed.
func (m ChartModel) Rows() []Row {
	return m.list.Items()
}

func (m ChartModel) listHeight() int {
	return max(m.height-chromeHeight, minListRows)
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return animationFrameMsg{} })
}
