package chart

import "time"

// MapView is the geographic view of a map chart. Transforms are animated
// through the chart's Animator and report completion through a callback.
type MapView struct {
	AllowTransformAnimation bool
	HasGeoProjection        bool

	// Natural is the full extent; View is what is currently shown.
	Natural Bounds
	View    Bounds
	Zoom    float64

	anim *Animator
}

// FitToBounds shows b immediately, or the natural extent when b is nil.
func (m *MapView) FitToBounds(b *Bounds) {
	if b == nil {
		m.View = m.Natural
		m.Zoom = 1
		return
	}
	m.View = *b
	m.Zoom = zoomFor(m.Natural, *b)
}

// ZoomTo transitions the view to b and calls complete when the transform
// settles.
func (m *MapView) ZoomTo(b Bounds, d time.Duration, complete func()) {
	m.transform(b, d, complete)
}

// SetView transitions back to the natural extent.
func (m *MapView) SetView(d time.Duration, complete func()) {
	m.transform(m.Natural, d, complete)
}

func (m *MapView) transform(b Bounds, d time.Duration, complete func()) {
	if !m.AllowTransformAnimation {
		d = 0
	}
	m.anim.After(d, func() {
		m.FitToBounds(&b)
		if complete != nil {
			complete()
		}
	})
}

func zoomFor(natural, b Bounds) float64 {
	nw := natural.X2 - natural.X1
	bw := b.X2 - b.X1
	if bw <= 0 || nw <= 0 {
		return 1
	}
	return nw / bw
}
