package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// ErrFFTSize is returned for FFT sizes that are not a power of two >= 2.
var ErrFFTSize = errors.New("response: fft size must be a power of two >= 2")

// Processor is the float64 sample-at-a-time contract measured here. Every
// float64 filter in dsp/filter satisfies it.
type Processor interface {
	In(v float64)
	Out() float64
	Reset()
}

// Config holds measurement settings.
type Config struct {
	// Warmup is the number of zero samples fed before the excitation.
	Warmup int
	// Amplitude of the excitation. The recorded output is divided by it.
	Amplitude float64
	// SampleRate is used by BinFrequencies.
	SampleRate float64
}

// Option mutates a Config.
type Option func(*Config)

// WithWarmup feeds n zero samples before the excitation.
func WithWarmup(n int) Option {
	return func(c *Config) {
		c.Warmup = n
	}
}

// WithAmplitude sets the excitation amplitude. Non-linear filters such as
// the median respond differently to different levels.
func WithAmplitude(a float64) Option {
	return func(c *Config) {
		c.Amplitude = a
	}
}

// WithSampleRate sets the sample rate used to label frequency bins.
func WithSampleRate(sampleRate float64) Option {
	return func(c *Config) {
		c.SampleRate = sampleRate
	}
}

func applyOptions(opts ...Option) (Config, error) {
	cfg := Config{Amplitude: 1, SampleRate: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Warmup < 0 {
		return cfg, fmt.Errorf("response warmup must be >= 0: %d", cfg.Warmup)
	}
	if cfg.Amplitude == 0 {
		return cfg, fmt.Errorf("response amplitude must be non-zero")
	}
	if cfg.SampleRate <= 0 {
		return cfg, fmt.Errorf("response sample rate must be > 0: %f", cfg.SampleRate)
	}
	return cfg, nil
}

// ImpulseResponse resets p and records n output samples for a unit
// impulse.
func ImpulseResponse(p Processor, n int, opts ...Option) ([]float64, error) {
	return excite(p, n, false, opts)
}

// StepResponse resets p and records n output samples for a unit step.
func StepResponse(p Processor, n int, opts ...Option) ([]float64, error) {
	return excite(p, n, true, opts)
}

func excite(p Processor, n int, step bool, opts []Option) ([]float64, error) {
	if p == nil {
		return nil, fmt.Errorf("response processor must not be nil")
	}
	if n <= 0 {
		return nil, fmt.Errorf("response length must be > 0: %d", n)
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	p.Reset()
	for i := 0; i < cfg.Warmup; i++ {
		p.In(0)
	}

	out := make([]float64, n)
	for i := range out {
		x := 0.0
		if i == 0 || step {
			x = cfg.Amplitude
		}
		p.In(x)
		out[i] = p.Out() / cfg.Amplitude
	}
	return out, nil
}

// MagnitudeResponse returns |H(k)| for the bins 0..fftSize/2 of the
// fftSize-sample impulse response of p.
func MagnitudeResponse(p Processor, fftSize int, opts ...Option) ([]float64, error) {
	if fftSize < 2 || !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}
	h, err := ImpulseResponse(p, fftSize, opts...)
	if err != nil {
		return nil, err
	}
	return Magnitude(h)
}

// Magnitude returns the single-sided FFT magnitude of h. len(h) must be a
// power of two >= 2.
func Magnitude(h []float64) ([]float64, error) {
	fftSize := len(h)
	if fftSize < 2 || !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// BinFrequencies returns the centre frequency of each single-sided bin for
// an fftSize-point transform. Without WithSampleRate the result is in
// cycles per sample.
func BinFrequencies(fftSize int, opts ...Option) ([]float64, error) {
	if fftSize < 2 || !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, fftSize/2+1)
	for k := range out {
		out[k] = float64(k) * cfg.SampleRate / float64(fftSize)
	}
	return out, nil
}
