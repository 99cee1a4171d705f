package testutil

import (
	"math/rand"
	"slices"

	"golang.org/x/exp/constraints"
)

// SortedAt returns the element at index r of a sorted copy of values.
func SortedAt[T constraints.Ordered](values []T, r int) T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[r]
}

// MinMax returns the extrema of a non-empty slice by a plain scan.
func MinMax[T constraints.Ordered](values []T) (lo, hi T) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// RandomInts returns n deterministic integers in [lo, hi).
func RandomInts(seed int64, n, lo, hi int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo)
	}
	return out
}
