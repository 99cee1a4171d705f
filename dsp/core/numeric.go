// Package core holds the element-type constraints and small numeric helpers
// shared by the buffer, selector and filter packages.
package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

const defaultEpsilon = 1e-12

// Number is the set of element types the filters accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of element types accepted by filters with fractional
// coefficients.
type Float interface {
	constraints.Float
}

// AbsDiff returns |a-b| without leaving the domain of T, so it is safe for
// unsigned element types. A signed result wraps when the distance exceeds
// the maximum of T; see Gap.
func AbsDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Midpoint returns the arithmetic middle of lo <= hi. For integer types the
// exact middle is truncated toward zero and no intermediate value leaves the
// domain of T, so it is safe for the full range of narrow types.
func Midpoint[T Number](lo, hi T) T {
	if IsFloat[T]() {
		return lo + (hi-lo)/2
	}

	// Modular uint64 arithmetic yields the exact distance for every signed
	// and unsigned width.
	d := uint64(hi) - uint64(lo)
	mid := T(uint64(lo) + d/2)
	if d%2 == 1 && mid < 0 {
		mid++
	}
	return mid
}

// Gap returns |a-b| for integer types as uint64, which cannot overflow.
// Floating-point inputs are truncated; use AbsDiff for those.
func Gap[T Number](a, b T) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Triangular returns 1 + 2 + ... + n.
func Triangular(n int) int {
	if n <= 0 {
		return 0
	}

	return n * (n + 1) / 2
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
