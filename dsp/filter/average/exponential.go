package average

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// Exponential is an exponential moving average with alpha = 2/(periods+1).
//
// The first offset+1 samples seed the state directly instead of being
// blended in, which avoids the start-up ramp from zero.
type Exponential[T core.Float] struct {
	alpha  float64
	offset int
	seed   int
	ema    T
}

// NewExponential returns an EMA over the given number of periods.
func NewExponential[T core.Float](periods, offset int) (*Exponential[T], error) {
	e := &Exponential[T]{}
	if err := e.Configure(periods, offset); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure sets periods and seed offset and resets the state.
func (e *Exponential[T]) Configure(periods, offset int) error {
	if periods <= 0 {
		return fmt.Errorf("ema periods must be > 0: %d", periods)
	}
	if offset < 0 {
		return fmt.Errorf("ema offset must be >= 0: %d", offset)
	}
	e.alpha = 2 / float64(periods+1)
	e.offset = offset
	e.Reset()
	return nil
}

// Alpha returns the smoothing factor.
func (e *Exponential[T]) Alpha() float64 {
	return e.alpha
}

// In blends one sample into the average.
func (e *Exponential[T]) In(v T) {
	if e.seed > 0 {
		e.seed--
		e.ema = v
		return
	}
	e.ema += T(e.alpha) * (v - e.ema)
}

// Out returns the current average.
func (e *Exponential[T]) Out() T {
	return e.ema
}

// Reset zeroes the state and re-arms the seed samples.
func (e *Exponential[T]) Reset() {
	e.ema = 0
	e.seed = e.offset + 1
}
