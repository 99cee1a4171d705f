package average

import (
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Moving is a simple moving average with a running sum.
type Moving[T core.Number] struct {
	window *ring.Buffer[T]
	sum    T
}

// NewMoving returns a moving average over storage. The window holds
// len(storage)-1 samples.
func NewMoving[T core.Number](storage []T, opts ...ring.Option) (*Moving[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	return &Moving[T]{window: w}, nil
}

// In adds one sample, dropping the oldest from the sum once the window is
// full.
func (m *Moving[T]) In(v T) {
	if !m.window.Valid() {
		return
	}
	if evicted, ok := m.window.PushFront(v); ok {
		m.sum -= evicted
	}
	m.sum += v
}

// Out returns sum/count, or the zero value for an empty window. Integer
// element types truncate.
func (m *Moving[T]) Out() T {
	n := m.window.Count()
	if n == 0 {
		var zero T
		return zero
	}
	return m.sum / T(n)
}

// Reset empties the window and the sum.
func (m *Moving[T]) Reset() {
	var zero T
	m.sum = zero
	m.window.Clear()
}

// Rebind moves the filter onto new storage and resets it.
func (m *Moving[T]) Rebind(storage []T, opts ...ring.Option) error {
	var zero T
	m.sum = zero
	return m.window.Init(storage, opts...)
}

// Valid reports whether the filter is bound to usable storage.
func (m *Moving[T]) Valid() bool {
	return m.window.Valid()
}
