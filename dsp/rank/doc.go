// Package rank selects order statistics from an indexed, read-only window.
//
// Selection works by counting: for each candidate the whole window is
// scanned once to find the block of ranks [less, less+equal) the candidate
// occupies. Candidates already known to lie on the wrong side of the target
// rank are skipped without a scan, which keeps typical inputs well below the
// O(n²) worst case. The returned value is always an element of the window.
package rank
