package average

import (
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Weighted is a linearly weighted moving average: the newest of n samples
// has weight n, the oldest weight 1.
type Weighted[T core.Number] struct {
	window *ring.Buffer[T]
}

// NewWeighted returns a weighted moving average over storage.
func NewWeighted[T core.Number](storage []T, opts ...ring.Option) (*Weighted[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	return &Weighted[T]{window: w}, nil
}

// In pushes one sample.
func (w *Weighted[T]) In(v T) {
	w.window.PushFront(v)
}

// Out returns the weighted average of the current window. The weighting is
// evaluated in float64 and converted back to T.
func (w *Weighted[T]) Out() T {
	n := w.window.Count()
	if n == 0 {
		var zero T
		return zero
	}

	var acc float64
	for i := 0; i < n; i++ {
		acc += float64(w.window.At(i)) * float64(n-i)
	}
	return T(acc / float64(core.Triangular(n)))
}

// Reset empties the window.
func (w *Weighted[T]) Reset() {
	w.window.Clear()
}

// Rebind moves the filter onto new storage and empties it.
func (w *Weighted[T]) Rebind(storage []T, opts ...ring.Option) error {
	return w.window.Init(storage, opts...)
}

// Valid reports whether the filter is bound to usable storage.
func (w *Weighted[T]) Valid() bool {
	return w.window.Valid()
}
