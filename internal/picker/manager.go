// Package picker holds the list-navigation core: an ordered collection with a
// filtered working view, a wraparound selection and the viewport window that
// keeps the selection on screen.
package picker

import (
	"iter"
	"slices"
)

// Manager owns the records of one list. origin is the collection as loaded;
// working is the currently visible, order-preserving subset of origin.
//
// selected is always a valid index into working, or 0 when working is empty.
type Manager[T any] struct {
	origin   []T
	working  []T
	selected int
}

// New creates a manager over a copy of items.
func New[T any](items []T) *Manager[T] {
	return &Manager[T]{
		origin:  slices.Clone(items),
		working: slices.Clone(items),
	}
}

// SelectDown moves the selection one row down, wrapping to the top.
func (m *Manager[T]) SelectDown() {
	if len(m.working) == 0 {
		return
	}
	if m.selected == len(m.working)-1 {
		m.selected = 0
		return
	}
	m.selected++
}

// SelectUp moves the selection one row up, wrapping to the bottom.
func (m *Manager[T]) SelectUp() {
	if len(m.working) == 0 {
		return
	}
	if m.selected == 0 {
		m.selected = len(m.working) - 1
		return
	}
	m.selected--
}

// ResetSelection moves the selection back to the first row.
func (m *Manager[T]) ResetSelection() { m.selected = 0 }

// Current returns the selected record, or false when nothing is visible.
func (m *Manager[T]) Current() (T, bool) {
	if m.selected < len(m.working) {
		return m.working[m.selected], true
	}
	var zero T
	return zero, false
}

// Position returns the selected index within the working view.
func (m *Manager[T]) Position() int { return m.selected }

// Count returns the number of visible records.
func (m *Manager[T]) Count() int { return len(m.working) }

// Total returns the number of records as loaded, ignoring any filter.
func (m *Manager[T]) Total() int { return len(m.origin) }

// ApplyFilter rebuilds the working view from origin, keeping the records for
// which keep returns true, and resets the selection. Only the latest
// predicate is ever in effect. A nil keep restores the full collection.
func (m *Manager[T]) ApplyFilter(keep func(T) bool) {
	working := make([]T, 0, len(m.origin))
	for _, item := range m.origin {
		if keep == nil || keep(item) {
			working = append(working, item)
		}
	}
	m.working = working
	m.ResetSelection()
}

// All yields (index, record) pairs of the working view in ascending order.
func (m *Manager[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range m.working {
			if !yield(i, item) {
				return
			}
		}
	}
}
