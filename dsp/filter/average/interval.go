package average

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// Interval averages consecutive blocks of a fixed number of samples and
// holds the last block average.
type Interval[T core.Number] struct {
	interval int
	n        int
	sum      T
	avg      T
}

// NewInterval returns an interval average over blocks of interval samples.
func NewInterval[T core.Number](interval int) (*Interval[T], error) {
	if interval <= 0 {
		return nil, fmt.Errorf("average interval must be > 0: %d", interval)
	}
	return &Interval[T]{interval: interval}, nil
}

// In accumulates one sample and publishes a new average when the block
// completes.
func (f *Interval[T]) In(v T) {
	f.sum += v
	f.n++
	if f.n == f.interval {
		f.avg = f.sum / T(f.interval)
		f.n = 0
		var zero T
		f.sum = zero
	}
}

// Out returns the average of the last completed block.
func (f *Interval[T]) Out() T {
	return f.avg
}

// Reset drops the pending block and the last average.
func (f *Interval[T]) Reset() {
	var zero T
	f.sum, f.avg, f.n = zero, zero, 0
}

// SetInterval changes the block length and resets the filter.
func (f *Interval[T]) SetInterval(interval int) error {
	if interval <= 0 {
		return fmt.Errorf("average interval must be > 0: %d", interval)
	}
	f.interval = interval
	f.Reset()
	return nil
}
