package median

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-filter/dsp/rank"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Moving is a sliding-window median filter over caller-owned storage.
type Moving[T constraints.Ordered] struct {
	window *ring.Buffer[T]
}

// NewMoving returns a moving median over storage. The window holds
// len(storage)-1 samples; len(storage) must be a power of two >= 4.
func NewMoving[T constraints.Ordered](storage []T, opts ...ring.Option) (*Moving[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	return &Moving[T]{window: w}, nil
}

// In pushes one sample, evicting the oldest when the window is full.
func (m *Moving[T]) In(v T) {
	m.window.PushFront(v)
}

// Out returns the median of the current window, or the zero value while the
// window holds fewer than three samples.
func (m *Moving[T]) Out() T {
	return rank.Median[T](m.window)
}

// Reset empties the window.
func (m *Moving[T]) Reset() {
	m.window.Clear()
}

// Rebind moves the filter onto new storage and empties it.
func (m *Moving[T]) Rebind(storage []T, opts ...ring.Option) error {
	return m.window.Init(storage, opts...)
}

// Valid reports whether the filter is bound to usable storage.
func (m *Moving[T]) Valid() bool {
	return m.window.Valid()
}

// Count returns the number of samples in the window.
func (m *Moving[T]) Count() int {
	return m.window.Count()
}
