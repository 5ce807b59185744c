package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 24
	borderPadding = 2
	// chromeHeight is the number of lines around the bar list: title, trail,
	// blank, status and help.
	chromeHeight = 6
	minListRows  = 3
	labelWidth   = 18
	valueWidth   = 12
	minBarWidth  = 10
)

// Glyphs used by the bar view.
const (
	barGlyph       = "█"
	cursorGlyph    = "›"
	drillableGlyph = "▸"
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	TrailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	LabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	ValueStyle    = lipgloss.NewStyle().Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	InfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	WarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	CriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// barStyle colors a bar with its point's color. Colors that lipgloss cannot
// parse render in the default foreground.
func barStyle(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
