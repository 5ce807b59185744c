package chart

// Event is a named notification with an optional payload. Listeners may
// prevent the default action attached by the emitter.
type Event struct {
	Name    string
	Payload any

	prevented bool
}

// PreventDefault cancels the default action for this event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handler receives fired events.
type Handler func(e *Event)

type listener struct {
	id int
	fn Handler
}

// Bus dispatches named events to listeners in registration order.
type Bus struct {
	listeners map[string][]listener
	nextID    int
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]listener)}
}

// On registers fn for name and returns a function that removes it.
func (b *Bus) On(name string, fn Handler) func() {
	b.nextID++
	id := b.nextID
	b.listeners[name] = append(b.listeners[name], listener{id: id, fn: fn})

	return func() {
		ls := b.listeners[name]
		for i, l := range ls {
			if l.id == id {
				b.listeners[name] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Fire calls every listener for name, then runs def unless a listener
// prevented it. It returns the event so callers can inspect the payload.
func (b *Bus) Fire(name string, payload any, def func(e *Event)) *Event {
	e := &Event{Name: name, Payload: payload}

	// Copy so listeners may unsubscribe while being called.
	ls := append([]listener(nil), b.listeners[name]...)
	for _, l := range ls {
		l.fn(e)
	}

	if def != nil && !e.prevented {
		def(e)
	}
	return e
}

// Count returns the number of listeners registered for name.
func (b *Bus) Count(name string) int {
	return len(b.listeners[name])
}
