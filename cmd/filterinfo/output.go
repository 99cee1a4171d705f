package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/measure/response"
)

func printTable(w io.Writer, in, out []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "n\tinput\toutput\n-\t-----\t------\n"); err != nil {
		return err
	}
	for i := range in {
		if _, err := fmt.Fprintf(tw, "%d\t%.6g\t%.6g\n", i, in[i], out[i]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type summary struct {
	Min, Max, Mean, Median, StdDev float64
}

func summarize(data []float64) (summary, error) {
	d := stats.Float64Data(data)
	var (
		s   summary
		err error
	)
	if s.Min, err = d.Min(); err != nil {
		return s, err
	}
	if s.Max, err = d.Max(); err != nil {
		return s, err
	}
	if s.Mean, err = d.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = d.Median(); err != nil {
		return s, err
	}
	if s.StdDev, err = d.StandardDeviation(); err != nil {
		return s, err
	}
	return s, nil
}

func printSummary(w io.Writer, in, out []float64) error {
	si, err := summarize(in)
	if err != nil {
		return fmt.Errorf("summarize input: %w", err)
	}
	so, err := summarize(out)
	if err != nil {
		return fmt.Errorf("summarize output: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Signal\tSamples\tMin\tMax\tMean\tMedian\tStdDev\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t---\t---\t----\t------\t------\n"); err != nil {
		return err
	}
	rows := []struct {
		label string
		n     int
		s     summary
	}{
		{"input", len(in), si},
		{"output", len(out), so},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			r.label, r.n, r.s.Min, r.s.Max, r.s.Mean, r.s.Median, r.s.StdDev); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printResponse(w io.Writer, f filter.Filter[float64], cfg outputConfig, sampleRate float64) error {
	mag, err := response.MagnitudeResponse(f, cfg.FFTSize, response.WithWarmup(cfg.Warmup))
	if err != nil {
		return err
	}
	freqs, err := response.BinFrequencies(cfg.FFTSize, response.WithSampleRate(sampleRate))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFreq [Hz]\t|H|\n---\t---------\t---\n"); err != nil {
		return err
	}
	for k := range mag {
		if _, err := fmt.Fprintf(tw, "%d\t%.3f\t%.6f\n", k, freqs[k], mag[k]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
