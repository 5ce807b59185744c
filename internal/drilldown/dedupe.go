package drilldown

// DedupeRegistry remembers which drill targets were already triggered so one
// gesture touching several points with the same target drills only once.
type DedupeRegistry struct {
	seen map[string]struct{}
}

// NewDedupeRegistry returns an empty registry.
func NewDedupeRegistry() *DedupeRegistry {
	return &DedupeRegistry{seen: make(map[string]struct{})}
}

// Claim records id and reports whether it was new.
func (d *DedupeRegistry) Claim(id string) bool {
	if _, ok := d.seen[id]; ok {
		return false
	}
	d.seen[id] = struct{}{}
	return true
}

// Contains reports whether id was claimed.
func (d *DedupeRegistry) Contains(id string) bool {
	_, ok := d.seen[id]
	return ok
}

// Len returns the number of claimed ids.
func (d *DedupeRegistry) Len() int { return len(d.seen) }

// Clear forgets every claimed id.
func (d *DedupeRegistry) Clear() {
	clear(d.seen)
}

// Release forgets id so a canceled trigger does not block a later one.
func (d *DedupeRegistry) Release(id string) {
	delete(d.seen, id)
}
