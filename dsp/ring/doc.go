// Package ring provides a fixed-capacity circular buffer layered over
// caller-owned storage.
//
// The capacity must be a power of two of at least 4 so that every cursor
// update is a single AND with the mask. One slot is always kept free so that
// head == tail can only mean "empty": a buffer bound to N slots holds at most
// N-1 elements. Pushing into a full buffer silently evicts the element at the
// opposite end and reports it to the caller, which is what the eviction-aware
// filters in dsp/filter build on.
//
// The buffer never allocates or frees its storage. A Buffer is not safe for
// concurrent use.
package ring
