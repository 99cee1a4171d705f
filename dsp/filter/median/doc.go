// Package median provides order-statistic smoothing filters.
//
// Two evaluation policies are offered and they are not interchangeable:
//
//   - [Moving] keeps a sliding window and recomputes the exact median from
//     scratch on every Out call.
//   - [Interval] collects a full window, computes its median once, emits it
//     until the next window completes and starts over with an empty window.
//
// Both return a value that was actually observed, so isolated outliers are
// removed rather than smeared.
package median
