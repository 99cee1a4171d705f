package rank

import "golang.org/x/exp/constraints"

// View is a read-only indexed window. *ring.Buffer satisfies it.
type View[T any] interface {
	At(i int) T
	Count() int
}

// Slice adapts a plain slice as a View.
type Slice[T any] []T

// At returns the element at index i.
func (s Slice[T]) At(i int) T { return s[i] }

// Count returns the element count.
func (s Slice[T]) Count() int { return len(s) }

// MinMedianCount is the smallest window for which Median is defined.
const MinMedianCount = 3

// Median returns the element of rank Count()/2, or the zero value when the
// window holds fewer than MinMedianCount elements.
func Median[T constraints.Ordered](v View[T]) T {
	n := v.Count()
	if n < MinMedianCount {
		var zero T
		return zero
	}
	return Select(v, n/2)
}

// Select returns the element that would sit at index r if the window were
// sorted ascending. An r outside [0, Count()) returns the zero value.
func Select[T constraints.Ordered](v View[T], r int) T {
	var zero T
	n := v.Count()
	if r < 0 || r >= n {
		return zero
	}

	// Candidates >= skipAbove have too many elements before them; candidates
	// <= skipBelow have too few. Any candidate that survives both checks lies
	// strictly between the bounds, so overwriting a bound always tightens it.
	var skipAbove, skipBelow T
	haveAbove, haveBelow := false, false

	for i := 0; i < n; i++ {
		c := v.At(i)
		if haveAbove && c >= skipAbove {
			continue
		}
		if haveBelow && c <= skipBelow {
			continue
		}

		less, lessEqual := 0, 0
		for j := 0; j < n; j++ {
			x := v.At(j)
			if x < c {
				less++
				lessEqual++
			} else if x == c {
				lessEqual++
			}
		}

		switch {
		case less <= r && r < lessEqual:
			return c
		case r < less:
			skipAbove, haveAbove = c, true
		default:
			skipBelow, haveBelow = c, true
		}
	}

	// Unreachable for totally ordered inputs; NaN candidates never match.
	return zero
}
