// Package extremum maintains the minimum and maximum of a sliding window
// incrementally and picks the window element closest to their midpoint.
//
// A Tracker does not own the window. The caller pushes into its ring buffer
// and then reports the pushed value together with whatever the push evicted.
// Most updates are a compare or two; only evicting the current minimum or
// maximum without a tighter replacement forces a rescan of the window.
package extremum

import "github.com/cwbudde/algo-filter/dsp/core"

// View is a read-only indexed window. *ring.Buffer satisfies it.
type View[T any] interface {
	At(i int) T
	Count() int
}

// Tracker caches the extrema of a window.
type Tracker[T core.Number] struct {
	min T
	max T
}

// Observe updates the extrema after in was pushed into window. evicted and
// didEvict are the values returned by that push. Elements removed by other
// means (pops, Clear) are not seen; call Rescan or Reset after those.
func (t *Tracker[T]) Observe(in, evicted T, didEvict bool, window View[T]) {
	if !didEvict {
		switch {
		case window.Count() == 1:
			t.min, t.max = in, in
		case in < t.min:
			t.min = in
		case in > t.max:
			t.max = in
		}
		return
	}

	switch {
	case in == evicted:
		// The window holds the same multiset as before.
	case evicted == t.min && in < t.min:
		t.min = in
	case evicted == t.max && in > t.max:
		t.max = in
	case evicted == t.min || evicted == t.max:
		t.Rescan(window)
	case in > t.max:
		t.max = in
	case in < t.min:
		t.min = in
	}
}

// Rescan recomputes both extrema from every element of window.
func (t *Tracker[T]) Rescan(window View[T]) {
	n := window.Count()
	if n == 0 {
		t.Reset()
		return
	}

	t.min = window.At(0)
	t.max = t.min
	for i := 1; i < n; i++ {
		v := window.At(i)
		if v < t.min {
			t.min = v
		} else if v > t.max {
			t.max = v
		}
	}
}

// Min returns the cached minimum.
func (t *Tracker[T]) Min() T { return t.min }

// Max returns the cached maximum.
func (t *Tracker[T]) Max() T { return t.max }

// Midpoint returns the middle of min and max. Integer element types round
// toward zero and never overflow.
func (t *Tracker[T]) Midpoint() T {
	return core.Midpoint(t.min, t.max)
}

// Reset zeroes the cached extrema.
func (t *Tracker[T]) Reset() {
	var zero T
	t.min, t.max = zero, zero
}

// MinPickCount is the smallest window for which Pick is defined.
const MinPickCount = 2

// Pick returns the element of window closest to Midpoint. The newest element
// is the first candidate and ties keep the earlier candidate. Windows with
// fewer than MinPickCount elements return the zero value.
func (t *Tracker[T]) Pick(window View[T]) T {
	n := window.Count()
	if n < MinPickCount {
		var zero T
		return zero
	}

	mid := t.Midpoint()
	best := window.At(0)
	if core.IsFloat[T]() {
		bestDist := core.AbsDiff(mid, best)
		for i := 1; i < n; i++ {
			v := window.At(i)
			if d := core.AbsDiff(mid, v); d < bestDist {
				best, bestDist = v, d
			}
		}
		return best
	}

	// Integer distances are compared as uint64 so that wide ranges of
	// narrow signed types cannot wrap.
	bestGap := core.Gap(mid, best)
	for i := 1; i < n; i++ {
		v := window.At(i)
		if g := core.Gap(mid, v); g < bestGap {
			best, bestGap = v, g
		}
	}
	return best
}
