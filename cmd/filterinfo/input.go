package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-filter/dsp/signal"
)

// readSamples parses one number per line. Blank lines and lines starting
// with '#' are skipped; extra fields after the first are ignored.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no samples in input")
	}
	return out, nil
}

func loadInput(cfg signalConfig, stdin io.Reader) ([]float64, error) {
	switch cfg.Input {
	case "":
		return generate(cfg)
	case "-":
		return readSamples(stdin)
	default:
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readSamples(f)
	}
}

// generate builds the configured test signal and adds optional noise.
func generate(cfg signalConfig) ([]float64, error) {
	g := signal.NewGenerator(signal.WithSampleRate(cfg.SampleRate), signal.WithSeed(cfg.Seed))

	var (
		x   []float64
		err error
	)
	switch strings.ToLower(cfg.Kind) {
	case "sine":
		x, err = g.Sine(cfg.Freq, cfg.Amplitude, cfg.Samples)
	case "noise":
		x, err = g.WhiteNoise(cfg.Amplitude, cfg.Samples)
	case "impulse":
		x, err = g.Impulse(cfg.Amplitude, cfg.Samples, 0)
	case "step":
		x, err = g.Step(cfg.Amplitude, cfg.Samples, 0)
	case "ramp":
		x, err = g.Ramp(0, cfg.Amplitude, cfg.Samples)
	case "spikes":
		x, err = g.Sine(cfg.Freq, cfg.Amplitude, cfg.Samples)
		if err == nil {
			x, err = g.Spikes(x, cfg.SpikeProb, cfg.SpikeAmp)
		}
	default:
		return nil, fmt.Errorf("unknown signal %q", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Noise > 0 {
		g.SetSeed(cfg.Seed + 1)
		n, err := g.WhiteNoise(cfg.Noise, len(x))
		if err != nil {
			return nil, err
		}
		return signal.Add(x, n)
	}
	return x, nil
}
