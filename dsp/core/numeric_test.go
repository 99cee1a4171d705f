package core

import (
	"math"
	"testing"
)

func TestAbsDiffUnsigned(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		want uint8
	}{
		{name: "greater", a: 200, b: 10, want: 190},
		{name: "lesser", a: 10, b: 200, want: 190},
		{name: "equal", a: 7, b: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsDiff(tt.a, tt.b); got != tt.want {
				t.Fatalf("AbsDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Fatalf("Abs(-3.5) = %v, want 3.5", got)
	}
	if got := Abs(int16(-4)); got != 4 {
		t.Fatalf("Abs(-4) = %v, want 4", got)
	}
	if got := Abs(uint(9)); got != 9 {
		t.Fatalf("Abs(9) = %v, want 9", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 20} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{-8, 0, 3, 6, 12, 1000} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestTriangular(t *testing.T) {
	tests := map[int]int{-1: 0, 0: 0, 1: 1, 2: 3, 7: 28}
	for n, want := range tests {
		if got := Triangular(n); got != want {
			t.Fatalf("Triangular(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zeros to be equal with default epsilon")
	}
}

func TestIsFloat(t *testing.T) {
	if !IsFloat[float32]() || !IsFloat[float64]() {
		t.Fatal("IsFloat = false for a float type")
	}
	if IsFloat[int8]() || IsFloat[uint64]() || IsFloat[int]() {
		t.Fatal("IsFloat = true for an integer type")
	}
}

func TestMidpointNarrowSigned(t *testing.T) {
	tests := []struct {
		lo, hi, want int8
	}{
		{lo: -113, hi: 59, want: -27},
		{lo: -128, hi: 127, want: 0},
		{lo: -128, hi: -128, want: -128},
		{lo: 100, hi: 127, want: 113},
		{lo: -5, hi: 0, want: -2},
		{lo: -6, hi: -1, want: -3},
		{lo: -1, hi: 2, want: 0},
		{lo: 1, hi: 8, want: 4},
	}
	for _, tt := range tests {
		if got := Midpoint(tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Midpoint(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
		// Same result as the truncated exact middle in a wide type.
		wide := (int64(tt.lo) + int64(tt.hi)) / 2
		if int64(Midpoint(tt.lo, tt.hi)) != wide {
			t.Fatalf("Midpoint(%d, %d) differs from int64 middle %d", tt.lo, tt.hi, wide)
		}
	}
}

func TestMidpointWideAndFloat(t *testing.T) {
	if got := Midpoint[int64](math.MinInt64, math.MaxInt64); got != 0 {
		t.Fatalf("int64 full range Midpoint = %d, want 0", got)
	}
	if got := Midpoint[uint8](10, 250); got != 130 {
		t.Fatalf("uint8 Midpoint = %d, want 130", got)
	}
	if got := Midpoint[uint64](0, math.MaxUint64); got != math.MaxUint64/2 {
		t.Fatalf("uint64 Midpoint = %d, want %d", got, uint64(math.MaxUint64/2))
	}
	if got := Midpoint(1.0, 8.0); got != 4.5 {
		t.Fatalf("float Midpoint = %v, want 4.5", got)
	}
}

func TestGap(t *testing.T) {
	if got := Gap[int8](-128, 127); got != 255 {
		t.Fatalf("Gap(-128, 127) = %d, want 255", got)
	}
	if got := Gap[int8](59, -113); got != 172 {
		t.Fatalf("Gap(59, -113) = %d, want 172", got)
	}
	if got := Gap[int64](math.MinInt64, math.MaxInt64); got != math.MaxUint64 {
		t.Fatalf("int64 full range Gap = %d, want MaxUint64", got)
	}
	if got := Gap[uint16](3, 3); got != 0 {
		t.Fatalf("Gap(3, 3) = %d, want 0", got)
	}
}
