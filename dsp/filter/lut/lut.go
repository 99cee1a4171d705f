// Package lut corrects raw readings with a piecewise-linear calibration
// table.
package lut

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// Point is one calibration entry: a measured value and the factor that maps
// it to the real value.
type Point[T core.Float] struct {
	Value       T
	Coefficient float64
}

// Interpolation scales each raw value by a coefficient linearly
// interpolated from a table sorted by ascending Value. Values outside the
// table use the nearest end coefficient.
type Interpolation[T core.Float] struct {
	points []Point[T]
	raw    T
}

// NewInterpolation returns a corrector over caller-owned points. An empty
// table passes values through unchanged.
func NewInterpolation[T core.Float](points []Point[T]) *Interpolation[T] {
	return &Interpolation[T]{points: points}
}

// SetPoint stores the calibration pair at index i: measured is what the
// sensor reported while real was applied.
func (f *Interpolation[T]) SetPoint(i int, real, measured T) error {
	if i < 0 || i >= len(f.points) {
		return fmt.Errorf("lut index out of range [0, %d): %d", len(f.points), i)
	}
	if measured == 0 {
		return fmt.Errorf("lut measured value must be non-zero at index %d", i)
	}
	f.points[i] = Point[T]{Value: measured, Coefficient: float64(real / measured)}
	return nil
}

// Sort orders the table by ascending measured value.
func (f *Interpolation[T]) Sort() {
	slices.SortStableFunc(f.points, func(a, b Point[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})
}

// Points returns the bound table.
func (f *Interpolation[T]) Points() []Point[T] {
	return f.points
}

// In stores the raw value.
func (f *Interpolation[T]) In(v T) {
	f.raw = v
}

// Out returns the corrected value.
func (f *Interpolation[T]) Out() T {
	return f.raw * T(f.Coefficient(f.raw))
}

// Coefficient returns the interpolated correction factor for x.
func (f *Interpolation[T]) Coefficient(x T) float64 {
	n := len(f.points)
	switch {
	case n == 0:
		return 1
	case x <= f.points[0].Value:
		return f.points[0].Coefficient
	case x >= f.points[n-1].Value:
		return f.points[n-1].Coefficient
	}

	for i := 1; i < n; i++ {
		p1, p2 := f.points[i-1], f.points[i]
		if x < p1.Value || x > p2.Value {
			continue
		}
		if p1.Value == p2.Value {
			return (p1.Coefficient + p2.Coefficient) / 2
		}
		t := float64((x - p1.Value) / (p2.Value - p1.Value))
		return p1.Coefficient + (p2.Coefficient-p1.Coefficient)*t
	}
	return 1
}

// Reset clears the raw value.
func (f *Interpolation[T]) Reset() {
	f.raw = 0
}

// Rebind replaces the table and clears the raw value.
func (f *Interpolation[T]) Rebind(points []Point[T]) {
	f.points = points
	f.raw = 0
}
