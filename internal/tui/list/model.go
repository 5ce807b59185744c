package listview

import (
	"slices"
	"strings"
)

// RenderFunc renders one row. selected marks the row under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a cursor over items with a fixed-height window.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]

	selected int
	from     int
	height   int
}

// New creates a list showing height rows at a time.
func New[T any](items []T, height int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{items: items, render: render, height: max(height, 1)}
	m.scroll()
	return m
}

// SetItems replaces the rows. The selection keeps its index, clamped to the
// new length.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.Select(m.selected)
}

// SetHeight changes the number of visible rows.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.scroll()
}

// Move shifts the selection by delta rows, stopping at either end.
func (m *Model[T]) Move(delta int) {
	m.Select(m.selected + delta)
}

// Page moves the selection one window up (negative) or down.
func (m *Model[T]) Page(direction int) {
	m.Move(direction * m.height)
}

// Home selects the first row.
func (m *Model[T]) Home() { m.Select(0) }

// End selects the last row.
func (m *Model[T]) End() { m.Select(len(m.items) - 1) }

// Select moves the cursor to index, clamped to the valid range.
func (m *Model[T]) Select(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.scroll()
}

// Selected returns the cursor index.
func (m *Model[T]) Selected() int { return m.selected }

// SelectedItem returns the row under the cursor.
func (m *Model[T]) SelectedItem() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.selected], true
}

// Items returns a copy of the rows.
func (m *Model[T]) Items() []T { return slices.Clone(m.items) }

// Len returns the number of rows.
func (m *Model[T]) Len() int { return len(m.items) }

// Window returns the visible range [from, to).
func (m *Model[T]) Window() (int, int) {
	return m.from, min(m.from+m.height, len(m.items))
}

// View renders the visible rows, one per line.
func (m *Model[T]) View() string {
	from, to := m.Window()
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.render(m.items[i], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) scroll() {
	if m.selected < m.from {
		m.from = m.selected
	}
	if m.selected >= m.from+m.height {
		m.from = m.selected - m.height + 1
	}
	// Fill the window when rows were removed below it.
	if last := len(m.items) - m.height; m.from > last {
		m.from = max(last, 0)
	}
}
