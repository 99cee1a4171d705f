package extremum

import (
	"testing"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/ring"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

type window[T core.Number] struct {
	buf *ring.Buffer[T]
	tr  Tracker[T]
}

func newWindow[T core.Number](t *testing.T, capacity int) *window[T] {
	t.Helper()
	b, err := ring.New(make([]T, capacity))
	if err != nil {
		t.Fatal(err)
	}
	return &window[T]{buf: b}
}

func (w *window[T]) push(v T) {
	evicted, ok := w.buf.PushFront(v)
	w.tr.Observe(v, evicted, ok, w.buf)
}

func (w *window[T]) contents() []T {
	out := make([]T, w.buf.Count())
	w.buf.CopyTo(out, 0, 0)
	return out
}

func TestObserveWithoutEviction(t *testing.T) {
	w := newWindow[int](t, 8)
	w.push(5)
	if w.tr.Min() != 5 || w.tr.Max() != 5 {
		t.Fatalf("first sample: min/max = %d/%d, want 5/5", w.tr.Min(), w.tr.Max())
	}
	w.push(3)
	w.push(8)
	w.push(4)
	if w.tr.Min() != 3 || w.tr.Max() != 8 {
		t.Fatalf("min/max = %d/%d, want 3/8", w.tr.Min(), w.tr.Max())
	}
}

func TestObserveEvictionCases(t *testing.T) {
	tests := []struct {
		name     string
		fill     []int
		in       int
		wantMin  int
		wantMax  int
		contents []int
	}{
		// fill is pushed oldest first into a 3-element window.
		{name: "same value in and out", fill: []int{4, 1, 9}, in: 4, wantMin: 1, wantMax: 9},
		{name: "evicted min, tighter min", fill: []int{1, 5, 9}, in: 0, wantMin: 0, wantMax: 9},
		{name: "evicted max, tighter max", fill: []int{9, 5, 1}, in: 12, wantMin: 1, wantMax: 12},
		{name: "evicted min, rescan", fill: []int{1, 5, 9}, in: 6, wantMin: 5, wantMax: 9},
		{name: "evicted max, rescan", fill: []int{9, 5, 1}, in: 2, wantMin: 1, wantMax: 5},
		{name: "evicted interior, new max", fill: []int{5, 1, 9}, in: 11, wantMin: 1, wantMax: 11},
		{name: "evicted interior, new min", fill: []int{5, 1, 9}, in: -3, wantMin: -3, wantMax: 9},
		{name: "evicted interior, inside range", fill: []int{5, 1, 9}, in: 6, wantMin: 1, wantMax: 9},
		{name: "evicted duplicate min", fill: []int{1, 1, 9}, in: 7, wantMin: 1, wantMax: 9},
		{name: "all equal, lower in", fill: []int{4, 4, 4}, in: 2, wantMin: 2, wantMax: 4},
		{name: "all equal, higher in", fill: []int{4, 4, 4}, in: 6, wantMin: 4, wantMax: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWindow[int](t, 4)
			for _, v := range tt.fill {
				w.push(v)
			}
			w.push(tt.in)
			if w.tr.Min() != tt.wantMin || w.tr.Max() != tt.wantMax {
				t.Fatalf("min/max = %d/%d, want %d/%d (window %v)",
					w.tr.Min(), w.tr.Max(), tt.wantMin, tt.wantMax, w.contents())
			}
		})
	}
}

// TestTrackerMatchesFullScan cross-checks the cached extrema against a full
// scan after every push, with a narrow value range to force duplicates.
func TestTrackerMatchesFullScan(t *testing.T) {
	for _, capacity := range []int{4, 8, 32} {
		w := newWindow[int](t, capacity)
		for i, v := range testutil.RandomInts(int64(capacity), 3000, 0, 6) {
			w.push(v)
			lo, hi := testutil.MinMax(w.contents())
			if w.tr.Min() != lo || w.tr.Max() != hi {
				t.Fatalf("cap %d step %d: min/max = %d/%d, want %d/%d",
					capacity, i, w.tr.Min(), w.tr.Max(), lo, hi)
			}
		}
	}
}

func TestTrackerFloatAgainstStats(t *testing.T) {
	w := newWindow[float64](t, 16)
	for i, v := range testutil.RandomInts(99, 1000, -500, 500) {
		w.push(float64(v) / 8)
		data := stats.Float64Data(w.contents())
		lo, err := stats.Min(data)
		if err != nil {
			t.Fatal(err)
		}
		hi, err := stats.Max(data)
		if err != nil {
			t.Fatal(err)
		}
		if w.tr.Min() != lo || w.tr.Max() != hi {
			t.Fatalf("step %d: min/max = %v/%v, want %v/%v", i, w.tr.Min(), w.tr.Max(), lo, hi)
		}
	}
}

func TestRescanEmptyResets(t *testing.T) {
	w := newWindow[int](t, 4)
	w.push(3)
	w.push(7)
	w.buf.Clear()
	w.tr.Rescan(w.buf)
	if w.tr.Min() != 0 || w.tr.Max() != 0 {
		t.Fatalf("min/max = %d/%d, want 0/0", w.tr.Min(), w.tr.Max())
	}
}

func TestMidpoint(t *testing.T) {
	w := newWindow[int](t, 8)
	w.push(1)
	w.push(8)
	if got := w.tr.Midpoint(); got != 4 {
		t.Fatalf("int Midpoint() = %d, want 4", got)
	}

	f := newWindow[float64](t, 8)
	f.push(1)
	f.push(8)
	if got := f.tr.Midpoint(); got != 4.5 {
		t.Fatalf("float Midpoint() = %v, want 4.5", got)
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name string
		fill []float64
		want float64
	}{
		{name: "too few", fill: []float64{3}, want: 0},
		{name: "closest", fill: []float64{0, 10, 4, 6.5, 1}, want: 4},
		// Midpoint 5: 4 and 6 are equally close; 6 is newer, so found first.
		{name: "tie keeps newest", fill: []float64{0, 4, 6, 10}, want: 6},
		{name: "all equal", fill: []float64{2, 2, 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWindow[float64](t, 8)
			for _, v := range tt.fill {
				w.push(v)
			}
			if got := w.tr.Pick(w.buf); got != tt.want {
				t.Fatalf("Pick() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickUnsigned(t *testing.T) {
	w := newWindow[uint8](t, 8)
	for _, v := range []uint8{250, 10, 120, 200} {
		w.push(v)
	}
	// Midpoint 130; 120 is 10 away, 200 is 70 away.
	if got := w.tr.Pick(w.buf); got != 120 {
		t.Fatalf("Pick() = %d, want 120", got)
	}
}

func TestPickReturnsNearestLiveElement(t *testing.T) {
	w := newWindow[int](t, 16)
	for i, v := range testutil.RandomInts(17, 1000, -50, 50) {
		w.push(v)
		live := w.contents()
		if len(live) < MinPickCount {
			continue
		}
		got := w.tr.Pick(w.buf)
		mid := w.tr.Midpoint()
		found := false
		for _, x := range live {
			if x == got {
				found = true
			}
			if abs(x-mid) < abs(got-mid) {
				t.Fatalf("step %d: Pick() = %d but %d is closer to %d", i, got, x, mid)
			}
		}
		if !found {
			t.Fatalf("step %d: Pick() = %d is not in the window", i, got)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestPickWideSignedRange(t *testing.T) {
	w := newWindow[int8](t, 8)
	for _, v := range []int8{-128, 127, -100, 20} {
		w.push(v)
	}
	if got := w.tr.Midpoint(); got != 0 {
		t.Fatalf("Midpoint() = %d, want 0", got)
	}
	// Distances from 0 are 128, 127, 100 and 20.
	if got := w.tr.Pick(w.buf); got != 20 {
		t.Fatalf("Pick() = %d, want 20", got)
	}
}

func TestMidpointNegativeOddRange(t *testing.T) {
	w := newWindow[int](t, 8)
	w.push(-5)
	w.push(0)
	if got := w.tr.Midpoint(); got != -2 {
		t.Fatalf("Midpoint() = %d, want -2", got)
	}
}
