// Package binpack provides one-dimensional Bin Packing Problem solvers.
//
// It includes three solver families over the same inputs (capacity, item sizes):
//
//   - Greedy — NextFit / FirstFit / BestFit plus Decreasing variants.
//
//   - Complexity: O(n) for NextFit, O(n·k) for the scanning strategies
//     (k = bins opened so far).
//
//   - Feasible, deterministic, not optimal; Decreasing variants never use
//     more bins than their unsorted counterparts in practice.
//
//   - Exact — Branch-and-Bound with ceil(remaining/capacity) pruning.
//
//   - Complexity: worst-case exponential in n; intended for
//     small-to-moderate instances (optionally time-boxed via Options).
//
//   - Always returns the true optimum and one witnessing packing.
//
//   - Genetic — population search over bin-assignment vectors with
//     tournament selection, single-point crossover, point mutation,
//     elitism and early stopping.
//
//   - Complexity: O(generations · population · n) fitness work.
//
//   - Reproducible under a fixed seed; returns the convergence history.
//
// All solvers share one validation pass (capacity > 0, every item > 0) and
// one output shape: a bin count plus per-bin item lists. An empty item list
// is valid input and yields zero bins everywhere.
//
// Use TheoreticalMinimum as the baseline: no packing of any kind can use
// fewer than ceil(sum/capacity) bins.
package binpack
