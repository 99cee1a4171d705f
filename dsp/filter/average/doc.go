// Package average provides streaming averaging filters.
//
// [Moving] and [Weighted] run over a ring buffer in caller-owned storage and
// use its eviction reports to keep their accumulators current. [Interval]
// averages disjoint blocks. [Exponential] and [Kaufman] are recursive
// smoothers; Kaufman adapts its smoothing constant to the efficiency ratio
// of the recent window.
package average
