package tui

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/drillchart/internal/drilldown"
)

// View renders the current view (Bubble Tea interface).
func (m ChartModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	body := m.list.View()
	if m.list.Len() == 0 {
		body = SubtleStyle.Render("No points at this level.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(m.title),
		TrailStyle.Render(m.Trail()),
		"",
		body,
		"",
		m.renderStatusBar(),
		m.help.View(m.keys),
	)
}

// Trail returns the breadcrumb text, or the top-level series name at root.
func (m ChartModel) Trail() string {
	trail := drilldown.FormatTrail(m.nav.Breadcrumbs(), m.nav.Options().Breadcrumbs)
	if trail != "" {
		return trail
	}
	for _, s := range m.chart.AllSeries() {
		if s.Visible {
			return s.Name
		}
	}
	return ""
}

// renderStatusBar shows the current level, the row count and any load or
// navigation message.
func (m ChartModel) renderStatusBar() string {
	parts := []string{
		fmt.Sprintf("Level %d", m.nav.CurrentLevel()),
		m.layout.printer.Sprintf("%d points", m.list.Len()),
	}
	status := SubtleStyle.Render(strings.Join(parts, " · "))

	if m.state == ViewStateLoading {
		status += "  " + m.loading.View() + InfoStyle.Render(" loading "+m.waitingTargets())
	}
	if m.status != "" {
		status += "  " + WarningStyle.Render(m.status)
	}
	if m.err != nil {
		status += "  " + CriticalStyle.Render(m.err.Error())
	}
	return status
}

func (m ChartModel) waitingTargets() string {
	ids := make([]string, 0, len(m.loads.waiting))
	for id := range m.loads.waiting {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return strings.Join(ids, ", ")
}

// renderRow draws one bar: cursor, label, bar scaled to the largest value,
// formatted value and a marker on drillable points.
func (l *barLayout) renderRow(row Row, selected bool) string {
	p := row.Point

	cursor := " "
	labelStyle := LabelStyle
	if selected {
		cursor = SelectedStyle.Render(cursorGlyph)
		labelStyle = SelectedStyle
	}

	label := p.Name
	if label == "" && row.Series.XAxis != nil {
		label = row.Series.XAxis.CategoryLabel(p.X)
	}
	if label == "" {
		label = strconv.Itoa(p.X)
	}
	label = fmt.Sprintf("%-*s", labelWidth, truncate(label, labelWidth))

	n := 0
	if l.maxValue > 0 && !p.Null {
		n = int(math.Round(math.Abs(p.Y) / l.maxValue * float64(l.barWidth)))
	}
	bar := strings.Repeat(barGlyph, n) + strings.Repeat(" ", l.barWidth-n)

	value := "–"
	if !p.Null {
		value = l.printer.Sprintf("%.2f", p.Y)
	}

	marker := " "
	if p.Drilldown != "" {
		marker = drillableGlyph
	}

	return fmt.Sprintf("%s %s %s %*s %s",
		cursor,
		labelStyle.Render(label),
		barStyle(p.Color).Render(bar),
		valueWidth, value,
		marker,
	)
}

// truncate shortens s to width runes, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
