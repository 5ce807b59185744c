package chart

// DefaultPalette is the series color cycle.
//
//nolint:gochecknoglobals // Read-only default palette.
var DefaultPalette = []string{
	"#2caffe", "#544fc5", "#00e272", "#fe6a35", "#6b8abc",
	"#d568fb", "#2ee0ca", "#fa4b42", "#feb56a", "#91e8e1",
}

// DefaultSymbols is the marker symbol cycle.
//
//nolint:gochecknoglobals // Read-only default symbol list.
var DefaultSymbols = []string{"circle", "diamond", "square", "triangle", "triangle-down"}

// StyleCounter allocates default colors and marker symbols to new series.
// It is owned by a Chart and reset by the drilldown engine on every
// navigation step so re-added series get deterministic defaults.
type StyleCounter struct {
	Palette []string
	Symbols []string

	color  int
	symbol int
}

// NewStyleCounter returns a counter over the default palette and symbols.
func NewStyleCounter() *StyleCounter {
	return &StyleCounter{Palette: DefaultPalette, Symbols: DefaultSymbols}
}

// NextColor returns the next palette color and its index.
func (s *StyleCounter) NextColor() (string, int) {
	idx := s.color % len(s.Palette)
	s.color++
	return s.Palette[idx], idx
}

// NextSymbol returns the next marker symbol.
func (s *StyleCounter) NextSymbol() string {
	sym := s.Symbols[s.symbol%len(s.Symbols)]
	s.symbol++
	return sym
}

// Reset rewinds both counters.
func (s *StyleCounter) Reset() {
	s.color = 0
	s.symbol = 0
}

// Counts returns the current color and symbol positions.
func (s *StyleCounter) Counts() (color, symbol int) {
	return s.color, s.symbol
}
