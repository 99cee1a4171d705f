// Package mode provides a moving most-frequent-value filter.
//
// The output is always a sample that is present in the window, which makes
// the filter suited to steady signals with sporadic outliers. A changing
// signal produces a staircase.
package mode

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/ring"
)

// ErrTableTooSmall is returned when the occurrence table cannot hold one
// entry per window slot.
var ErrTableTooSmall = errors.New("mode: occurrence table shorter than window size")

// Occurrence counts how many window samples equal Value.
type Occurrence[T core.Number] struct {
	Value T
	Count int
}

// MostFrequent outputs the most frequent sample of a sliding window.
type MostFrequent[T core.Number] struct {
	window *ring.Buffer[T]
	table  []Occurrence[T]
}

// NewMostFrequent returns a most-frequent filter over storage. table must
// hold at least len(storage)-1 entries and is owned by the filter.
func NewMostFrequent[T core.Number](storage []T, table []Occurrence[T], opts ...ring.Option) (*MostFrequent[T], error) {
	w, err := ring.New(storage, opts...)
	if err != nil {
		return nil, err
	}
	f := &MostFrequent[T]{window: w}
	if err := f.bindTable(table, opts); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *MostFrequent[T]) bindTable(table []Occurrence[T], opts []ring.Option) error {
	if size := f.window.Size(); f.window.Valid() && len(table) < size {
		_ = f.window.Init(nil)
		f.table = nil
		if ring.ApplyOptions(opts...).Policy == ring.SilentInvalid {
			return nil
		}
		return fmt.Errorf("%w: %d < %d", ErrTableTooSmall, len(table), size)
	}
	f.table = table
	clear(f.table)
	return nil
}

// In pushes one sample and updates the occurrence counters.
func (f *MostFrequent[T]) In(v T) {
	if !f.window.Valid() {
		return
	}

	evicted, ok := f.window.PushFront(v)
	if ok {
		if evicted == v {
			return
		}
		if i := f.find(evicted); i >= 0 {
			f.table[i].Count--
		}
	}

	i := f.find(v)
	if i < 0 {
		i = f.free()
		f.table[i].Value = v
	}
	f.table[i].Count++
}

func (f *MostFrequent[T]) find(v T) int {
	for i := range f.table {
		if f.table[i].Count > 0 && f.table[i].Value == v {
			return i
		}
	}
	return -1
}

// free returns the first unused slot. The table holds one entry per window
// slot, so a free slot exists whenever a new value enters.
func (f *MostFrequent[T]) free() int {
	for i := range f.table {
		if f.table[i].Count == 0 {
			return i
		}
	}
	return 0
}

// Out returns the value with the highest count; on ties the entry that
// occupies the lower table slot wins. An empty window yields the zero value.
func (f *MostFrequent[T]) Out() T {
	var best Occurrence[T]
	for _, o := range f.table {
		if o.Count > best.Count {
			best = o
		}
	}
	return best.Value
}

// Occurrences returns the live table entries in table order.
func (f *MostFrequent[T]) Occurrences() []Occurrence[T] {
	var out []Occurrence[T]
	for _, o := range f.table {
		if o.Count > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Reset empties the window and the counters.
func (f *MostFrequent[T]) Reset() {
	f.window.Clear()
	clear(f.table)
}

// Rebind moves the filter onto new storage and a new table.
func (f *MostFrequent[T]) Rebind(storage []T, table []Occurrence[T], opts ...ring.Option) error {
	if err := f.window.Init(storage, opts...); err != nil {
		f.table = nil
		return err
	}
	return f.bindTable(table, opts)
}

// Valid reports whether the filter is bound to usable storage.
func (f *MostFrequent[T]) Valid() bool {
	return f.window.Valid()
}
