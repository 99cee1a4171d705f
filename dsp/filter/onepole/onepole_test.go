package onepole

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

var (
	_ filter.Filter[float64] = (*LowPass[float64])(nil)
	_ filter.Filter[float32] = (*HighPass[float32])(nil)
)

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		alpha  float64
		offset int
	}{
		{name: "zero alpha", alpha: 0},
		{name: "negative alpha", alpha: -0.1},
		{name: "alpha above one", alpha: 1.5},
		{name: "nan alpha", alpha: math.NaN()},
		{name: "negative offset", alpha: 0.5, offset: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLowPass[float64](tt.alpha, tt.offset); err == nil {
				t.Fatal("NewLowPass: expected error")
			}
			if _, err := NewHighPass[float64](tt.alpha, tt.offset); err == nil {
				t.Fatal("NewHighPass: expected error")
			}
		})
	}
}

func TestLowPassSeedAndStep(t *testing.T) {
	f, err := NewLowPass[float64](0.25, 1)
	if err != nil {
		t.Fatal(err)
	}
	f.In(8)
	f.In(4)
	if f.Out() != 4 {
		t.Fatalf("seeded Out() = %v, want 4", f.Out())
	}
	f.In(8)
	testutil.RequireNearlyEqual(t, f.Out(), 5, 1e-12)

	f.Reset()
	f.In(2)
	if f.Out() != 2 {
		t.Fatalf("Out() after reset = %v, want 2", f.Out())
	}
}

func TestLowPassDCGain(t *testing.T) {
	f, err := NewLowPass[float64](0.05, 0)
	if err != nil {
		t.Fatal(err)
	}
	f.In(0)
	for i := 0; i < 2000; i++ {
		f.In(3)
	}
	testutil.RequireNearlyEqual(t, f.Out(), 3, 1e-9)
}

func TestHighPassRejectsDC(t *testing.T) {
	f, err := NewHighPass[float64](0.9, 0)
	if err != nil {
		t.Fatal(err)
	}
	f.In(5)
	if f.Out() != 0 {
		t.Fatalf("seed sample produced output %v", f.Out())
	}
	for i := 0; i < 10; i++ {
		f.In(5)
		if f.Out() != 0 {
			t.Fatalf("constant input produced output %v", f.Out())
		}
	}

	f.In(6)
	testutil.RequireNearlyEqual(t, f.Out(), 0.9, 1e-12)
	f.In(6)
	testutil.RequireNearlyEqual(t, f.Out(), 0.81, 1e-12)
	for i := 0; i < 500; i++ {
		f.In(6)
	}
	if math.Abs(f.Out()) > 1e-9 {
		t.Fatalf("step response did not decay: %v", f.Out())
	}
}

func TestHighPassPassesAlternating(t *testing.T) {
	f, err := NewHighPass[float64](0.95, 0)
	if err != nil {
		t.Fatal(err)
	}
	sign := 1.0
	for i := 0; i < 400; i++ {
		f.In(sign)
		sign = -sign
	}
	// Nyquist gain of the RC high-pass is 2*alpha/(1+alpha).
	want := 2 * 0.95 / 1.95
	testutil.RequireNearlyEqual(t, math.Abs(f.Out()), want, 1e-6)
}

func TestCutoffAlpha(t *testing.T) {
	lp, err := LowPassAlpha(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	hp, err := HighPassAlpha(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, lp+hp, 1, 1e-12)
	if lp <= 0 || lp >= 1 {
		t.Fatalf("LowPassAlpha = %v out of range", lp)
	}

	for _, tc := range []struct{ cutoff, rate float64 }{
		{0, 48000}, {24000, 48000}, {100, 0},
	} {
		if _, err := LowPassAlpha(tc.cutoff, tc.rate); err == nil {
			t.Fatalf("LowPassAlpha(%v, %v): expected error", tc.cutoff, tc.rate)
		}
	}
}
