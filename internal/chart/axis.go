package chart

import "strconv"

// AxisKind distinguishes x from y axes.
type AxisKind int

const (
	// AxisX is a horizontal (category) axis.
	AxisX AxisKind = iota
	// AxisY is a vertical (value) axis.
	AxisY
)

// Axis holds the user zoom range and the category names collected from
// named points.
type Axis struct {
	Kind  AxisKind
	Index int

	// UserMin and UserMax are the user-set extremes; nil means auto.
	UserMin *float64
	UserMax *float64

	// Categories are configured labels; Names are collected from point names.
	Categories []string
	Names      []string

	// Pos is the pixel offset of the axis; OldPos is captured before a drill.
	Pos    float64
	OldPos *float64
}

// UserExtremes returns a copy of the user-set range.
func (a *Axis) UserExtremes() Extremes {
	return Extremes{Min: copyFloat(a.UserMin), Max: copyFloat(a.UserMax)}
}

// ResetNames drops collected point names so a new series starts numbering
// its categories from zero.
func (a *Axis) ResetNames() {
	a.Names = a.Names[:0]
}

// nameIndex returns the category index for name, registering it if new.
func (a *Axis) nameIndex(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	a.Names = append(a.Names, name)
	return len(a.Names) - 1
}

// CategoryLabel returns the label shown for category x.
func (a *Axis) CategoryLabel(x int) string {
	if x >= 0 && x < len(a.Names) && a.Names[x] != "" {
		return a.Names[x]
	}
	if x >= 0 && x < len(a.Categories) {
		return a.Categories[x]
	}
	return strconv.Itoa(x)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Float returns a pointer to v, for building extremes and point values.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
