package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/filter/average"
	"github.com/cwbudde/algo-filter/dsp/filter/lut"
	"github.com/cwbudde/algo-filter/dsp/filter/median"
	"github.com/cwbudde/algo-filter/dsp/filter/middle"
	"github.com/cwbudde/algo-filter/dsp/filter/mode"
	"github.com/cwbudde/algo-filter/dsp/filter/onepole"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Factory builds one filter from the filter section of the configuration.
type Factory func(cfg filterConfig) (filter.Filter[float64], error)

type entry struct {
	factory Factory
	summary string
}

// Registry maps filter names to their factories.
type Registry struct {
	entries map[string]entry
}

var errDuplicateFilter = errors.New("duplicate filter name")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory under name.
func (r *Registry) Register(name, summary string, factory Factory) error {
	if name == "" {
		return errors.New("empty filter name")
	}
	if factory == nil {
		return errors.New("nil factory")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateFilter, name)
	}
	r.entries[name] = entry{factory: factory, summary: summary}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name, summary string, factory Factory) {
	if err := r.Register(name, summary, factory); err != nil {
		panic("filterinfo registry: " + err.Error())
	}
}

// Lookup returns the factory for name, or nil.
func (r *Registry) Lookup(name string) Factory {
	return r.entries[name].factory
}

// Summary returns the one-line description registered for name.
func (r *Registry) Summary(name string) string {
	return r.entries[name].summary
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build looks up cfg.Name and constructs the filter.
func (r *Registry) Build(cfg filterConfig) (filter.Filter[float64], error) {
	factory := r.Lookup(cfg.Name)
	if factory == nil {
		return nil, fmt.Errorf("unknown filter %q (use -list to see available)", cfg.Name)
	}
	return factory(cfg)
}

// wrap keeps a failed constructor from yielding a non-nil interface around
// a nil pointer.
func wrap[F filter.Filter[float64]](f F, err error) (filter.Filter[float64], error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

func ringOptions(cfg filterConfig) []ring.Option {
	policy := ring.FailFast
	if cfg.Silent {
		policy = ring.SilentInvalid
	}
	return []ring.Option{
		ring.WithErrorPolicy(policy),
		ring.WithSafeErase(cfg.SafeErase),
		ring.WithZeroOnInit(cfg.ZeroOnInit),
	}
}

// DefaultRegistry returns a registry with every filter of this module.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("median", "moving median over the window", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(median.NewMoving(make([]float64, cfg.Storage), ringOptions(cfg)...))
	})
	r.MustRegister("median-interval", "median of each full window, then restart", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(median.NewInterval(make([]float64, cfg.Storage), ringOptions(cfg)...))
	})
	r.MustRegister("middle", "sample nearest to (min+max)/2 of the window", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(middle.NewMoving(make([]float64, cfg.Storage), ringOptions(cfg)...))
	})
	r.MustRegister("mean", "simple moving average", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(average.NewMoving(make([]float64, cfg.Storage), ringOptions(cfg)...))
	})
	r.MustRegister("weighted", "linearly weighted moving average", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(average.NewWeighted(make([]float64, cfg.Storage), ringOptions(cfg)...))
	})
	r.MustRegister("interval", "average of each block of -interval samples", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(average.NewInterval[float64](cfg.Interval))
	})
	r.MustRegister("ema", "exponential moving average over -periods", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(average.NewExponential[float64](cfg.Periods, cfg.Offset))
	})
	r.MustRegister("kama", "Kaufman adaptive moving average (-er, -fast, -slow)", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(average.NewKaufman(make([]float64, cfg.Storage), cfg.ER, cfg.Fast, cfg.Slow, ringOptions(cfg)...))
	})
	r.MustRegister("lowpass", "one-pole low-pass with -alpha", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(onepole.NewLowPass[float64](cfg.Alpha, cfg.Offset))
	})
	r.MustRegister("highpass", "one-pole high-pass with -alpha", func(cfg filterConfig) (filter.Filter[float64], error) {
		return wrap(onepole.NewHighPass[float64](cfg.Alpha, cfg.Offset))
	})
	r.MustRegister("mode", "most frequent value of the window", func(cfg filterConfig) (filter.Filter[float64], error) {
		table := make([]mode.Occurrence[float64], max(cfg.Storage-1, 0))
		return wrap(mode.NewMostFrequent(make([]float64, cfg.Storage), table, ringOptions(cfg)...))
	})
	r.MustRegister("lut", "calibration table correction (config points)", func(cfg filterConfig) (filter.Filter[float64], error) {
		f := lut.NewInterpolation(make([]lut.Point[float64], len(cfg.Points)))
		for i, p := range cfg.Points {
			if err := f.SetPoint(i, p.Real, p.Measured); err != nil {
				return nil, err
			}
		}
		f.Sort()
		return f, nil
	})

	return r
}
