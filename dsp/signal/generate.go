// Package signal generates deterministic test signals for exercising the
// filters: tones, noise, impulses, steps, ramps and impulsive outliers.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultSampleRate is used when no WithSampleRate option is given.
const DefaultSampleRate = 48000.0

// Config holds generator settings.
type Config struct {
	SampleRate float64
	Seed       int64
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the sample rate in Hz used by Sine.
func WithSampleRate(sampleRate float64) Option {
	return func(c *Config) {
		c.SampleRate = sampleRate
	}
}

// WithSeed sets the random seed used by WhiteNoise and Spikes.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func applyOptions(opts ...Option) Config {
	cfg := Config{SampleRate: DefaultSampleRate, Seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg Config
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{cfg: applyOptions(opts...)}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// SetSeed replaces the random seed.
func (g *Generator) SetSeed(seed int64) {
	g.cfg.Seed = seed
}

// Seed returns the random seed.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a single sample of the given amplitude at delay,
// zero elsewhere.
func (g *Generator) Impulse(amplitude float64, samples, delay int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if delay < 0 || delay >= samples {
		return nil, fmt.Errorf("impulse delay must be in [0, %d): %d", samples, delay)
	}
	out := make([]float64, samples)
	out[delay] = amplitude
	return out, nil
}

// Step generates zeros up to delay and amplitude from there on.
func (g *Generator) Step(amplitude float64, samples, delay int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if delay < 0 || delay >= samples {
		return nil, fmt.Errorf("step delay must be in [0, %d): %d", samples, delay)
	}
	out := make([]float64, samples)
	for i := delay; i < samples; i++ {
		out[i] = amplitude
	}
	return out, nil
}

// Ramp generates a linear ramp from start with the given slope per sample.
func (g *Generator) Ramp(start, slope float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = start + slope*float64(i)
	}
	return out, nil
}

// Spikes returns a copy of data in which each sample is replaced, with the
// given probability, by an outlier of +-amplitude. The replaced positions
// depend only on the seed.
func (g *Generator) Spikes(data []float64, probability, amplitude float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("spikes input must not be empty")
	}
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("spikes probability must be in [0, 1]: %f", probability)
	}
	out := make([]float64, len(data))
	copy(out, data)
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	for i := range out {
		if rng.Float64() >= probability {
			continue
		}
		if rng.Intn(2) == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// Add returns the element-wise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
