// Package onepole provides single-state recursive smoothing filters.
//
// Both filters take a smoothing factor alpha in (0, 1] and an offset: the
// first offset+1 samples initialise the state instead of being filtered,
// which removes the start-up transient from a zero state.
package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/dsp/core"
)

func validate(alpha float64, offset int) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return fmt.Errorf("onepole alpha must be in (0, 1]: %g", alpha)
	}
	if offset < 0 {
		return fmt.Errorf("onepole offset must be >= 0: %d", offset)
	}
	return nil
}

func rc(cutoffHz, sampleRate float64) (float64, float64, error) {
	if sampleRate <= 0 {
		return 0, 0, fmt.Errorf("onepole sample rate must be > 0: %g", sampleRate)
	}
	if cutoffHz <= 0 || cutoffHz >= sampleRate/2 {
		return 0, 0, fmt.Errorf("onepole cutoff must be in (0, %g): %g", sampleRate/2, cutoffHz)
	}
	return 1 / (2 * math.Pi * cutoffHz), 1 / sampleRate, nil
}

// LowPassAlpha returns the RC low-pass smoothing factor dt/(RC+dt) for a
// cutoff frequency in Hz.
func LowPassAlpha(cutoffHz, sampleRate float64) (float64, error) {
	r, dt, err := rc(cutoffHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return dt / (r + dt), nil
}

// HighPassAlpha returns the RC high-pass smoothing factor RC/(RC+dt).
func HighPassAlpha(cutoffHz, sampleRate float64) (float64, error) {
	r, dt, err := rc(cutoffHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return r / (r + dt), nil
}

// LowPass is the exponential smoother y += alpha*(x-y).
type LowPass[T core.Float] struct {
	alpha  float64
	offset int
	seed   int
	y      T
}

// NewLowPass returns a low-pass filter.
func NewLowPass[T core.Float](alpha float64, offset int) (*LowPass[T], error) {
	f := &LowPass[T]{}
	if err := f.Configure(alpha, offset); err != nil {
		return nil, err
	}
	return f, nil
}

// Configure replaces alpha and offset and resets the state.
func (f *LowPass[T]) Configure(alpha float64, offset int) error {
	if err := validate(alpha, offset); err != nil {
		return err
	}
	f.alpha, f.offset = alpha, offset
	f.Reset()
	return nil
}

// Alpha returns the smoothing factor.
func (f *LowPass[T]) Alpha() float64 { return f.alpha }

// In filters one sample.
func (f *LowPass[T]) In(x T) {
	if f.seed > 0 {
		f.seed--
		f.y = x
		return
	}
	f.y += T(f.alpha) * (x - f.y)
}

// Out returns the filtered value.
func (f *LowPass[T]) Out() T { return f.y }

// Reset clears the state and re-arms the seed samples.
func (f *LowPass[T]) Reset() {
	f.y = 0
	f.seed = f.offset + 1
}

// HighPass is the RC high-pass y = alpha*(y + x - xPrev).
//
// During the seed samples only the previous input is tracked and Out stays
// at zero, so a constant input never produces an initial step.
type HighPass[T core.Float] struct {
	alpha  float64
	offset int
	seed   int
	y      T
	xPrev  T
}

// NewHighPass returns a high-pass filter.
func NewHighPass[T core.Float](alpha float64, offset int) (*HighPass[T], error) {
	f := &HighPass[T]{}
	if err := f.Configure(alpha, offset); err != nil {
		return nil, err
	}
	return f, nil
}

// Configure replaces alpha and offset and resets the state.
func (f *HighPass[T]) Configure(alpha float64, offset int) error {
	if err := validate(alpha, offset); err != nil {
		return err
	}
	f.alpha, f.offset = alpha, offset
	f.Reset()
	return nil
}

// Alpha returns the smoothing factor.
func (f *HighPass[T]) Alpha() float64 { return f.alpha }

// In filters one sample.
func (f *HighPass[T]) In(x T) {
	if f.seed > 0 {
		f.seed--
		f.xPrev = x
		return
	}
	f.y = T(f.alpha) * (f.y + x - f.xPrev)
	f.xPrev = x
}

// Out returns the filtered value.
func (f *HighPass[T]) Out() T { return f.y }

// Reset clears the state and re-arms the seed samples.
func (f *HighPass[T]) Reset() {
	f.y, f.xPrev = 0, 0
	f.seed = f.offset + 1
}
