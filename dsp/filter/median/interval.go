package median

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-filter/dsp/rank"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Interval computes the median of consecutive, non-overlapping windows.
type Interval[T constraints.Ordered] struct {
	window *ring.Buffer[T]
	median T
	ready  bool
}

// NewInterval returns an interval median over storage. Each interval is
// len(storage)-1 samples long.
func NewInterval[T constraints.Ordered](storage []T, opts ...ring.Option) (*Interval[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	return &Interval[T]{window: w}, nil
}

// In pushes one sample. When it completes the window, the median is
// computed and the window starts over.
func (f *Interval[T]) In(v T) {
	if !f.window.Valid() {
		return
	}

	f.window.PushFront(v)
	if !f.window.Full() {
		return
	}

	f.median = rank.Select[T](f.window, f.window.Size()/2)
	f.ready = true
	f.window.Clear()
}

// Out returns the median of the last completed window, or the zero value
// before the first window completes.
func (f *Interval[T]) Out() T {
	return f.median
}

// Ready reports whether at least one window has completed since the last
// reset.
func (f *Interval[T]) Ready() bool {
	return f.ready
}

// Reset drops the pending window and the last median.
func (f *Interval[T]) Reset() {
	var zero T
	f.median, f.ready = zero, false
	f.window.Clear()
}

// Rebind moves the filter onto new storage and resets it.
func (f *Interval[T]) Rebind(storage []T, opts ...ring.Option) error {
	var zero T
	f.median, f.ready = zero, false
	return f.window.Init(storage, opts...)
}

// Valid reports whether the filter is bound to usable storage.
func (f *Interval[T]) Valid() bool {
	return f.window.Valid()
}
