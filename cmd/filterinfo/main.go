// Command filterinfo runs one streaming filter over a test signal or over
// samples read from a file and prints the result.
//
// Usage:
//
//	filterinfo [flags]
//
// Settings come from built-in defaults, then filterinfo.yml (or -config),
// then flags.
//
// Examples:
//
//	filterinfo -filter median -storage 8 -signal spikes
//	filterinfo -filter kama -er 10 -storage 16 -signal ramp -out summary
//	filterinfo -filter mean -out response -fft 512 -warmup 8
//	seq 1 100 | filterinfo -filter ema -periods 5 -in -
//	filterinfo -list
//	filterinfo -printconf > filterinfo.yml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/filter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *string, *bool, *bool) {
	fs := flag.NewFlagSet("filterinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := defaultConfig()
	configPath := fs.String("config", DefaultConfigFile, "YAML configuration file")
	list := fs.Bool("list", false, "list available filters")
	printConf := fs.Bool("printconf", false, "print the effective configuration as YAML and exit")

	fs.String("filter", def.Filter.Name, "filter name (see -list)")
	fs.Int("storage", def.Filter.Storage, "ring storage length, a power of two >= 4; the window holds storage-1 samples")
	fs.Bool("silent", def.Filter.Silent, "make invalid parameters yield an inactive filter instead of an error")
	fs.Bool("safe-erase", def.Filter.SafeErase, "zero the ring storage on bind and clear")
	fs.Bool("zero-on-init", def.Filter.ZeroOnInit, "zero the ring storage on bind only")
	fs.Float64("alpha", def.Filter.Alpha, "smoothing factor for lowpass and highpass")
	fs.Int("offset", def.Filter.Offset, "seed samples minus one for ema, lowpass and highpass")
	fs.Int("periods", def.Filter.Periods, "ema periods")
	fs.Int("interval", def.Filter.Interval, "block length for the interval average")
	fs.Int("er", def.Filter.ER, "kama efficiency ratio periods")
	fs.Int("fast", def.Filter.Fast, "kama fast periods")
	fs.Int("slow", def.Filter.Slow, "kama slow periods")

	fs.String("signal", def.Signal.Kind, "generated signal: sine, noise, impulse, step, ramp, spikes")
	fs.String("in", def.Signal.Input, "read samples from file instead of generating, - for stdin")
	fs.Int("samples", def.Signal.Samples, "generated signal length")
	fs.Float64("rate", def.Signal.SampleRate, "sample rate in Hz")
	fs.Float64("freq", def.Signal.Freq, "sine frequency in Hz")
	fs.Float64("amplitude", def.Signal.Amplitude, "signal amplitude (ramp: slope per sample)")
	fs.Float64("noise", def.Signal.Noise, "added white noise amplitude")
	fs.Float64("spike-prob", def.Signal.SpikeProb, "probability of a spike per sample")
	fs.Float64("spike-amp", def.Signal.SpikeAmp, "spike amplitude")
	fs.Int64("seed", def.Signal.Seed, "random seed")

	fs.String("out", def.Output.Mode, "output: table, summary, response")
	fs.Int("fft", def.Output.FFTSize, "FFT size for -out response")
	fs.Int("warmup", def.Output.Warmup, "zero samples fed before the impulse for -out response")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Runs a streaming filter over a test signal or input samples.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  filterinfo -filter median -signal spikes\n")
		fmt.Fprintf(stderr, "  filterinfo -filter mean -out response -warmup 8\n")
		fmt.Fprintf(stderr, "  filterinfo -list\n")
	}
	return fs, configPath, list, printConf
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, configPath, list, printConf := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	reg := DefaultRegistry()
	if *list {
		printList(stdout, reg)
		return 0
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(*configPath, explicit, fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if *printConf {
		if err := writeConfig(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	f, err := reg.Build(cfg.Filter)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if v, ok := f.(interface{ Valid() bool }); ok && !v.Valid() {
		fmt.Fprintf(stderr, "warning: filter %q is inactive, its output stays at zero\n", cfg.Filter.Name)
	}

	if err := execute(stdout, stdin, f, cfg); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func execute(w io.Writer, stdin io.Reader, f filter.Filter[float64], cfg config) error {
	if cfg.Output.Mode == "response" {
		return printResponse(w, f, cfg.Output, cfg.Signal.SampleRate)
	}

	in, err := loadInput(cfg.Signal, stdin)
	if err != nil {
		return err
	}
	out := make([]float64, len(in))
	filter.Process(f, out, in)

	switch cfg.Output.Mode {
	case "table":
		return printTable(w, in, out)
	case "summary":
		return printSummary(w, in, out)
	default:
		return fmt.Errorf("unknown output mode %q", cfg.Output.Mode)
	}
}

func printList(w io.Writer, reg *Registry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range reg.Names() {
		fmt.Fprintf(tw, "%s\t%s\n", name, reg.Summary(name))
	}
	_ = tw.Flush()
}
