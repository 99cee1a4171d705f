package response

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter/average"
	"github.com/cwbudde/algo-filter/dsp/filter/median"
	"github.com/cwbudde/algo-filter/dsp/filter/onepole"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func movingAverage(t *testing.T) *average.Moving[float64] {
	t.Helper()
	f, err := average.NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestImpulseResponseMovingAverage(t *testing.T) {
	h, err := ImpulseResponse(movingAverage(t), 10, WithWarmup(8))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1. / 7, 1. / 7, 1. / 7, 1. / 7, 1. / 7, 1. / 7, 1. / 7, 0, 0, 0}
	testutil.RequireSliceNearlyEqual(t, h, want, 1e-12)
}

func TestStepResponseMovingAverage(t *testing.T) {
	s, err := StepResponse(movingAverage(t), 9, WithWarmup(8), WithAmplitude(2))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range s {
		want := min(float64(i+1)/7, 1)
		testutil.RequireNearlyEqual(t, v, want, 1e-12)
	}
}

func TestMagnitudeResponseMovingAverage(t *testing.T) {
	mag, err := MagnitudeResponse(movingAverage(t), 64, WithWarmup(8))
	if err != nil {
		t.Fatal(err)
	}
	if len(mag) != 33 {
		t.Fatalf("len = %d, want 33", len(mag))
	}
	testutil.RequireFinite(t, mag)
	testutil.RequireNearlyEqual(t, mag[0], 1, 1e-9)
	testutil.RequireNearlyEqual(t, mag[32], 1./7, 1e-9)
}

func TestMagnitudeResponseLowPass(t *testing.T) {
	f, err := onepole.NewLowPass[float64](0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	mag, err := MagnitudeResponse(f, 1024, WithWarmup(1))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, mag[0], 1, 1e-9)
	// |H(pi)| = alpha / (2 - alpha)
	testutil.RequireNearlyEqual(t, mag[512], 0.1/1.9, 1e-9)
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[k-1]+1e-12 {
			t.Fatalf("magnitude rises at bin %d: %v > %v", k, mag[k], mag[k-1])
		}
	}
}

func TestImpulseResponseMedianRejectsImpulse(t *testing.T) {
	f, err := median.NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatal(err)
	}
	h, err := ImpulseResponse(f, 16, WithWarmup(8))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range h {
		if v != 0 {
			t.Fatalf("h[%d] = %v, want 0", i, v)
		}
	}
}

func TestErrors(t *testing.T) {
	f := movingAverage(t)
	if _, err := ImpulseResponse(nil, 4); err == nil {
		t.Fatal("expected error for nil processor")
	}
	if _, err := ImpulseResponse(f, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
	if _, err := ImpulseResponse(f, 4, WithWarmup(-1)); err == nil {
		t.Fatal("expected error for negative warmup")
	}
	if _, err := StepResponse(f, 4, WithAmplitude(0)); err == nil {
		t.Fatal("expected error for zero amplitude")
	}
	if _, err := MagnitudeResponse(f, 48); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("err = %v, want ErrFFTSize", err)
	}
	if _, err := Magnitude([]float64{1}); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("err = %v, want ErrFFTSize", err)
	}
}

func TestBinFrequencies(t *testing.T) {
	got, err := BinFrequencies(8, WithSampleRate(8000))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1000, 2000, 3000, 4000}, 0)
}
