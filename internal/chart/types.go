// Package chart is a headless chart model: series, axes, notifications and
// deferred animations. It holds enough state for the drilldown engine to
// navigate and for a terminal or SVG renderer to draw the result.
package chart

import (
	"github.com/tiendc/go-deepcopy"
)

// SeriesID is a stable handle for a series registered with a Chart. Handles
// are never reused, so a removed series simply stops resolving.
type SeriesID int

// Family groups series types that share drill transitions.
type Family int

const (
	// FamilyCategory covers cartesian types such as column, bar and line.
	FamilyCategory Family = iota
	// FamilyPie covers pie and item series.
	FamilyPie
	// FamilyMap covers geographic map series.
	FamilyMap
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyPie:
		return "pie"
	case FamilyMap:
		return "map"
	default:
		return "category"
	}
}

// FamilyOf maps a series type name onto its family.
func FamilyOf(seriesType string) Family {
	switch seriesType {
	case "pie", "item", "variablepie":
		return FamilyPie
	case "map", "mapline", "mappoint":
		return FamilyMap
	default:
		return FamilyCategory
	}
}

// PointOptions is the user configuration of a single data point.
type PointOptions struct {
	Name      string   `yaml:"name,omitempty" json:"name,omitempty"`
	X         *int     `yaml:"x,omitempty" json:"x,omitempty"`
	Y         *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Color     string   `yaml:"color,omitempty" json:"color,omitempty"`
	Drilldown string   `yaml:"drilldown,omitempty" json:"drilldown,omitempty"`
}

// IsNull reports whether the point has no value.
func (p PointOptions) IsNull() bool { return p.Y == nil }

// SeriesOptions is the user configuration of a series.
//
// DrillID and DrillLevel are navigation tags. Zero means untagged, which for
// DrillLevel coincides with the root depth.
type SeriesOptions struct {
	ID         string         `yaml:"id,omitempty" json:"id,omitempty"`
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Type       string         `yaml:"type,omitempty" json:"type,omitempty"`
	Color      string         `yaml:"color,omitempty" json:"color,omitempty"`
	ColorIndex *int           `yaml:"colorIndex,omitempty" json:"colorIndex,omitempty"`
	XAxis      int            `yaml:"xAxis,omitempty" json:"xAxis,omitempty"`
	Selected   bool           `yaml:"selected,omitempty" json:"selected,omitempty"`
	Visible    *bool          `yaml:"visible,omitempty" json:"visible,omitempty"`
	Data       []PointOptions `yaml:"data,omitempty" json:"data,omitempty"`

	DrillID    int `yaml:"-" json:"-"`
	DrillLevel int `yaml:"-" json:"-"`
}

// Clone returns a deep copy so snapshots stored in drill levels are not
// affected by later mutation of live series.
func (o SeriesOptions) Clone() SeriesOptions {
	var out SeriesOptions
	if err := deepcopy.Copy(&out, o); err != nil {
		out = o
		out.Data = append([]PointOptions(nil), o.Data...)
	}
	return out
}

// Shape is the geometry of a point graphic. Rectangular types use X/Y/Width/
// Height; pie slices use Start/End angles in radians.
type Shape struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Start  float64
	End    float64
}

// BBox is a bounding box in plot coordinates.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds is a geographic extent used by the map view.
type Bounds struct {
	X1, Y1, X2, Y2 float64
}

// Graphic is the rendered state of a point or a series group.
type Graphic struct {
	Shape   Shape
	Fill    string
	Opacity float64
	Visible bool
}

// Extremes is a user-set axis range. Nil bounds mean the axis auto-scales.
type Extremes struct {
	Min *float64
	Max *float64
}
