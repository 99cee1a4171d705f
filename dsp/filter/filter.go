// Package filter defines the sample-at-a-time contract shared by the
// smoothing and order-statistic filters in its subpackages.
//
// Every filter consumes one sample per In call and reports its current
// estimate through Out. Buffer-backed filters run over caller-owned storage
// and never allocate after construction.
package filter

// Filter is a streaming single-channel filter.
type Filter[T any] interface {
	In(v T)
	Out() T
	Reset()
}

// Process feeds src through f and stores Out after every sample in dst.
// It returns the number of processed samples, min(len(dst), len(src)).
func Process[T any](f Filter[T], dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		f.In(src[i])
		dst[i] = f.Out()
	}
	return n
}

// ProcessInPlace replaces every sample of buf with the filter output.
func ProcessInPlace[T any](f Filter[T], buf []T) {
	for i, v := range buf {
		f.In(v)
		buf[i] = f.Out()
	}
}
