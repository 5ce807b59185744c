package drilldown

import "github.com/rshade/drillchart/internal/chart"

// Event names emitted on the chart's notification bus.
const (
	EventDrilldown           = "drilldown"
	EventAfterDrilldown      = "afterDrilldown"
	EventAfterApplyDrilldown = "afterApplyDrilldown"
	EventBeforeDrillUp       = "beforeDrillUp"
	EventDrillup             = "drillup"
	EventAfterDrillUp        = "afterDrillUp"
	EventDrillupAll          = "drillupall"
)

// DrilldownEvent is the payload of the preventable drilldown event.
//
// Listeners may fill SeriesOptions synchronously, or keep Slot and resolve
// it later once the data is available.
type DrilldownEvent struct {
	Point         *chart.Point
	SeriesOptions *chart.SeriesOptions
	Category      *int
	Points        []*chart.Point
	Slot          *Slot
}

// DrillupEvent is the payload of the drillup and afterDrillUp events.
type DrillupEvent struct {
	SeriesOptions chart.SeriesOptions
	Level         int
}

// Slot is a single-use handle for completing a drilldown asynchronously.
// A slot fired with holdRender only records its level when resolved; if it
// belongs to a category gesture, the gesture's Batch applies the chart.
type Slot struct {
	nav       *Navigator
	point     *chart.Point
	hold      bool
	batch     *Batch
	resolved  bool
	canceled  bool
	abandoned bool
}

// Resolve drills from the slot's origin point into opts. It fails if the
// slot was already used, the event was prevented, the slot was abandoned,
// the navigator was torn down, the origin point left the chart in the
// meantime, or opts is empty.
func (s *Slot) Resolve(opts chart.SeriesOptions) error {
	switch {
	case s.canceled:
		return ErrCanceled
	case s.resolved:
		return ErrAlreadyResolved
	case s.abandoned:
		return ErrAbandoned
	case s.nav.destroyed || s.nav.host.Destroyed():
		return ErrDestroyed
	}
	if _, ok := s.nav.host.Series(s.point.Series); !ok {
		return ErrPointDetached
	}
	if opts.ID == "" && opts.Name == "" && len(opts.Data) == 0 {
		return ErrNoSeries
	}

	s.resolved = true
	s.complete(opts)
	return nil
}

// complete performs the drill of a resolved slot.
func (s *Slot) complete(opts chart.SeriesOptions) {
	if !s.hold {
		s.nav.AddSeriesAsDrilldown(s.point, opts)
		return
	}
	s.nav.AddSingleSeriesAsDrilldown(s.point, opts)
	if s.batch != nil {
		s.batch.release()
	}
}

// Abandon gives up on the slot, for example because its data failed to
// load. A category gesture waiting on it may then be applied.
func (s *Slot) Abandon() {
	if s.resolved || s.canceled || s.abandoned {
		return
	}
	s.abandoned = true
	if s.batch != nil {
		s.batch.release()
	}
}

// Resolved reports whether the slot has been used.
func (s *Slot) Resolved() bool { return s.resolved }

// Point returns the origin point.
func (s *Slot) Point() *chart.Point { return s.point }

// Batch returns the category gesture the slot belongs to, or nil.
func (s *Slot) Batch() *Batch { return s.batch }

// Batch is one category gesture. Its held drills are applied to the chart
// once, after every slot of the gesture has been resolved or abandoned, or
// when the batch is settled.
type Batch struct {
	nav     *Navigator
	slots   []*Slot
	pending int
	armed   bool
	applied bool
}

// Pending returns the number of slots still awaited.
func (b *Batch) Pending() int { return b.pending }

// Applied reports whether the gesture has been applied to the chart.
func (b *Batch) Applied() bool { return b.applied }

// Settle abandons every slot still awaited and applies the gesture.
func (b *Batch) Settle() {
	if b.applied {
		return
	}
	for _, s := range b.slots {
		if !s.resolved && !s.canceled {
			s.abandoned = true
		}
	}
	b.pending = 0
	b.apply()
}

func (b *Batch) add(s *Slot) {
	s.batch = b
	b.slots = append(b.slots, s)
	b.pending++
}

func (b *Batch) release() {
	if b.applied {
		return
	}
	b.pending--
	if b.armed && b.pending <= 0 {
		b.apply()
	}
}

// arm marks the end of the gesture; nothing is applied before it.
func (b *Batch) arm() {
	b.armed = true
	if b.pending <= 0 {
		b.apply()
	}
}

func (b *Batch) apply() {
	if b.applied {
		return
	}
	b.applied = true
	if b.nav.batch == b {
		b.nav.batch = nil
	}
	b.nav.ApplyDrilldown()
}

// PendingDrilldown returns the category gesture still waiting for slots,
// or nil.
func (n *Navigator) PendingDrilldown() *Batch { return n.batch }

// SettleDrilldown applies the category gesture still waiting for slots, if
// any, abandoning the slots it was waiting on. It reports whether there was
// one.
func (n *Navigator) SettleDrilldown() bool {
	b := n.batch
	if b == nil {
		return false
	}
	b.Settle()
	return true
}
