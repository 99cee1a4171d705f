package average

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Kaufman is Kaufman's adaptive moving average (KAMA).
//
// The efficiency ratio er = |x[0]-x[n]| / sum|x[i]-x[i+1]| over the last n
// = erPeriods steps moves the smoothing constant between the fast and slow
// EMA constants:
//
//	sc   = (er*(fast-slow) + slow)^2
//	kama = kama + sc*(x - kama)
type Kaufman[T core.Float] struct {
	window    *ring.Buffer[T]
	erPeriods int
	fast      float64
	slow      float64
	kama      T
	ready     bool
}

// NewKaufman returns a KAMA over storage. The window must hold at least
// erPeriods+1 samples and fastPeriods must be shorter than slowPeriods.
//
// Parameter errors follow the ring error policy in opts: under
// ring.SilentInvalid the returned filter is invalid instead.
func NewKaufman[T core.Float](storage []T, erPeriods, fastPeriods, slowPeriods int, opts ...ring.Option) (*Kaufman[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	k := &Kaufman[T]{window: w}
	if err := k.configure(erPeriods, fastPeriods, slowPeriods); err != nil {
		if ring.ApplyOptions(opts...).Policy == ring.SilentInvalid {
			_ = w.Init(nil)
			return k, nil
		}
		return nil, err
	}
	return k, nil
}

func (k *Kaufman[T]) configure(erPeriods, fastPeriods, slowPeriods int) error {
	if erPeriods <= 0 {
		return fmt.Errorf("kama efficiency periods must be > 0: %d", erPeriods)
	}
	if k.window.Valid() && erPeriods+1 > k.window.Size() {
		return fmt.Errorf("kama efficiency periods must be < window size %d: %d", k.window.Size(), erPeriods)
	}
	if fastPeriods <= 0 || slowPeriods <= fastPeriods {
		return fmt.Errorf("kama periods must satisfy 0 < fast < slow: fast=%d slow=%d", fastPeriods, slowPeriods)
	}
	k.erPeriods = erPeriods
	k.fast = 2 / float64(fastPeriods+1)
	k.slow = 2 / float64(slowPeriods+1)
	return nil
}

// In pushes one sample and updates the average once the efficiency window
// is complete.
func (k *Kaufman[T]) In(v T) {
	if !k.window.Valid() {
		return
	}
	k.window.PushFront(v)
	if k.window.Count() <= k.erPeriods {
		k.kama = v
		return
	}

	change := core.Abs(k.window.At(0) - k.window.At(k.erPeriods))
	var volatility T
	for i := 0; i < k.erPeriods; i++ {
		volatility += core.Abs(k.window.At(i) - k.window.At(i+1))
	}

	var er float64
	if volatility != 0 {
		er = float64(change / volatility)
	}
	sc := er*(k.fast-k.slow) + k.slow
	sc *= sc

	k.kama += T(sc) * (v - k.kama)
	k.ready = true
}

// Out returns the current average, or the zero value until the window holds
// erPeriods+1 samples.
func (k *Kaufman[T]) Out() T {
	if !k.ready {
		return 0
	}
	return k.kama
}

// Reset empties the window and the average.
func (k *Kaufman[T]) Reset() {
	k.kama, k.ready = 0, false
	k.window.Clear()
}

// Valid reports whether the filter is bound and configured.
func (k *Kaufman[T]) Valid() bool {
	return k.window.Valid()
}
