// Package middle provides a moving "middle value" filter: it outputs the
// window sample closest to the midpoint between the window's minimum and
// maximum.
//
// The filter dampens outliers without the cost of a full median: the
// extrema are maintained incrementally from the ring buffer's eviction
// reports and only a single linear pick is done per Out call.
package middle

import (
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/extremum"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Moving is a sliding-window middle value filter over caller-owned storage.
type Moving[T core.Number] struct {
	window  *ring.Buffer[T]
	tracker extremum.Tracker[T]
}

// NewMoving returns a moving middle filter over storage. The window holds
// len(storage)-1 samples.
func NewMoving[T core.Number](storage []T, opts ...ring.Option) (*Moving[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	return &Moving[T]{window: w}, nil
}

// In pushes one sample and updates the tracked extrema.
func (m *Moving[T]) In(v T) {
	if !m.window.Valid() {
		return
	}
	evicted, ok := m.window.PushFront(v)
	m.tracker.Observe(v, evicted, ok, m.window)
}

// Out returns the window sample closest to the midpoint, or the zero value
// while the window holds fewer than two samples.
func (m *Moving[T]) Out() T {
	return m.tracker.Pick(m.window)
}

// Min returns the window minimum.
func (m *Moving[T]) Min() T { return m.tracker.Min() }

// Max returns the window maximum.
func (m *Moving[T]) Max() T { return m.tracker.Max() }

// Reset empties the window.
func (m *Moving[T]) Reset() {
	m.tracker.Reset()
	m.window.Clear()
}

// Rebind moves the filter onto new storage and resets it.
func (m *Moving[T]) Rebind(storage []T, opts ...ring.Option) error {
	m.tracker.Reset()
	return m.window.Init(storage, opts...)
}

// Valid reports whether the filter is bound to usable storage.
func (m *Moving[T]) Valid() bool {
	return m.window.Valid()
}
