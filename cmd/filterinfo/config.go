package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	yml "gopkg.in/yaml.v2"
)

// DefaultConfigFile is read when present and no -config flag is given.
const DefaultConfigFile = "filterinfo.yml"

type calPoint struct {
	Real     float64 `koanf:"real" yaml:"real"`
	Measured float64 `koanf:"measured" yaml:"measured"`
}

type filterConfig struct {
	Name       string     `koanf:"name" yaml:"name"`
	Storage    int        `koanf:"storage" yaml:"storage"`
	Silent     bool       `koanf:"silent" yaml:"silent"`
	SafeErase  bool       `koanf:"safeerase" yaml:"safeerase"`
	ZeroOnInit bool       `koanf:"zerooninit" yaml:"zerooninit"`
	Alpha      float64    `koanf:"alpha" yaml:"alpha"`
	Offset     int        `koanf:"offset" yaml:"offset"`
	Periods    int        `koanf:"periods" yaml:"periods"`
	Interval   int        `koanf:"interval" yaml:"interval"`
	ER         int        `koanf:"er" yaml:"er"`
	Fast       int        `koanf:"fast" yaml:"fast"`
	Slow       int        `koanf:"slow" yaml:"slow"`
	Points     []calPoint `koanf:"points" yaml:"points"`
}

type signalConfig struct {
	Kind       string  `koanf:"kind" yaml:"kind"`
	Input      string  `koanf:"input" yaml:"input"`
	Samples    int     `koanf:"samples" yaml:"samples"`
	SampleRate float64 `koanf:"samplerate" yaml:"samplerate"`
	Freq       float64 `koanf:"freq" yaml:"freq"`
	Amplitude  float64 `koanf:"amplitude" yaml:"amplitude"`
	Noise      float64 `koanf:"noise" yaml:"noise"`
	SpikeProb  float64 `koanf:"spikeprob" yaml:"spikeprob"`
	SpikeAmp   float64 `koanf:"spikeamp" yaml:"spikeamp"`
	Seed       int64   `koanf:"seed" yaml:"seed"`
}

type outputConfig struct {
	Mode    string `koanf:"mode" yaml:"mode"`
	FFTSize int    `koanf:"fftsize" yaml:"fftsize"`
	Warmup  int    `koanf:"warmup" yaml:"warmup"`
}

type config struct {
	Filter filterConfig `koanf:"filter" yaml:"filter"`
	Signal signalConfig `koanf:"signal" yaml:"signal"`
	Output outputConfig `koanf:"output" yaml:"output"`
}

func defaultConfig() config {
	return config{
		Filter: filterConfig{
			Name:     "median",
			Storage:  8,
			Alpha:    0.1,
			Periods:  10,
			Interval: 4,
			ER:       5,
			Fast:     2,
			Slow:     30,
		},
		Signal: signalConfig{
			Kind:       "spikes",
			Samples:    64,
			SampleRate: 1000,
			Freq:       10,
			Amplitude:  1,
			SpikeProb:  0.1,
			SpikeAmp:   5,
			Seed:       1,
		},
		Output: outputConfig{
			Mode:    "table",
			FFTSize: 256,
		},
	}
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"filter":       "filter.name",
	"storage":      "filter.storage",
	"silent":       "filter.silent",
	"safe-erase":   "filter.safeerase",
	"zero-on-init": "filter.zerooninit",
	"alpha":        "filter.alpha",
	"offset":       "filter.offset",
	"periods":      "filter.periods",
	"interval":     "filter.interval",
	"er":           "filter.er",
	"fast":         "filter.fast",
	"slow":         "filter.slow",
	"signal":       "signal.kind",
	"in":           "signal.input",
	"samples":      "signal.samples",
	"rate":         "signal.samplerate",
	"freq":         "signal.freq",
	"amplitude":    "signal.amplitude",
	"noise":        "signal.noise",
	"spike-prob":   "signal.spikeprob",
	"spike-amp":    "signal.spikeamp",
	"seed":         "signal.seed",
	"out":          "output.mode",
	"fft":          "output.fftsize",
	"warmup":       "output.warmup",
}

// loadConfig layers defaults, the YAML file at path and the flags that were
// set explicitly on fs. A missing default file is ignored; a missing
// explicit file is an error.
func loadConfig(path string, explicit bool, flags *flag.FlagSet) (config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" && (explicit || fileExists(path)) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if flags != nil {
		overrides := map[string]interface{}{}
		flags.Visit(func(f *flag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return
			}
			if g, ok := f.Value.(flag.Getter); ok {
				overrides[key] = g.Get()
			}
		})
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func writeConfig(w io.Writer, cfg config) error {
	return yml.NewEncoder(w).Encode(cfg)
}
