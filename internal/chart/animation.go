package chart

import "time"

// tween is one queued transition. A nil target makes it a pure timer.
type tween struct {
	target   *Graphic
	to       Graphic
	duration time.Duration
	complete func()
}

// Animator queues graphic transitions and timers. Nothing advances on its own:
// a renderer calls Step once per frame, and tests call Flush to settle
// everything. Completion callbacks run exactly once.
type Animator struct {
	queue   []*tween
	stopped bool
}

// Animate moves target to the given state over d, then calls complete.
// A non-positive duration applies the state and completes immediately.
func (a *Animator) Animate(target *Graphic, to Graphic, d time.Duration, complete func()) {
	t := &tween{target: target, to: to, duration: d, complete: complete}
	if d <= 0 {
		a.finish(t)
		return
	}
	a.queue = append(a.queue, t)
}

// After schedules fn to run once d has elapsed.
func (a *Animator) After(d time.Duration, fn func()) {
	a.Animate(nil, Graphic{}, d, fn)
}

// Pending returns how many transitions have not completed.
func (a *Animator) Pending() int {
	return len(a.queue)
}

// Step completes the transitions queued before this call and returns how
// many ran. Transitions queued by their completions wait for the next step.
func (a *Animator) Step() int {
	batch := a.queue
	a.queue = nil
	for _, t := range batch {
		a.finish(t)
	}
	return len(batch)
}

// Flush steps until the queue is empty and returns the total completed.
func (a *Animator) Flush() int {
	n := 0
	for len(a.queue) > 0 {
		n += a.Step()
	}
	return n
}

// Stop drops every pending transition without running completions.
func (a *Animator) Stop() {
	a.queue = nil
	a.stopped = true
}

func (a *Animator) finish(t *tween) {
	if a.stopped {
		return
	}
	if t.target != nil {
		*t.target = t.to
	}
	if t.complete != nil {
		t.complete()
	}
}
