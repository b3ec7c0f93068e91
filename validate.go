// Package binpack - validation utilities shared by all solvers.
//
// This file contains small, tight helpers that:
//  1. Validate the problem instance (capacity, item sizes).
//  2. Validate Options combinations (strategy, genetic knobs, time budget).
//  3. Validate solver outputs (ValidatePacking - the partition/capacity invariant).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case in the item count; no hidden allocations beyond the
//     multiset counter in ValidatePacking.
package binpack

// validateInstance verifies the shared solver preconditions: capacity > 0 and
// every item size > 0. An empty item list is valid (all solvers return zero
// bins for it), so length is deliberately not checked here.
//
// Complexity: O(n).
func validateInstance(capacity int, items []int) error {
	if capacity <= 0 {
		return ErrBadCapacity
	}

	var size int
	for _, size = range items {
		// A non-positive item can never occupy capacity; reject per item.
		if size <= 0 {
			return ErrBadItemSize
		}
	}

	return nil
}

// validateOptions checks internal consistency of Options without referencing
// the instance. Genetic knobs are checked only when the genetic solver can be
// reached (Pack with Strategy==Genetic, or a direct Genetic call).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined for a soft budget.
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}

	// Accept only known strategies; Pack may still refuse at dispatch time.
	switch opts.Strategy {
	case NextFit, FirstFit, BestFit, FirstFitDecreasing, BestFitDecreasing,
		BranchAndBound, Genetic:
		// ok
	default:
		return ErrUnknownStrategy
	}

	return nil
}

// validateGeneticOptions checks the genetic-only knobs.
//
// Complexity: O(1).
func validateGeneticOptions(opts Options) error {
	if opts.PopulationSize <= 0 {
		return ErrBadPopulationSize
	}
	if opts.Generations <= 0 {
		return ErrBadGenerations
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrBadMutationRate
	}
	if opts.PatienceNoChange <= 0 {
		return ErrBadPatience
	}

	return nil
}

// ValidatePacking enforces the packing invariants against the original input:
//
//	every input item appears in exactly one bin (multiset equality, so
//	duplicates by value are honored), no bin is empty, and every bin's
//	total size is ≤ capacity.
//
// Returns nil if valid; ErrInvalidPacking (or an instance sentinel) otherwise.
//
// Complexity: O(n) time, O(n) extra space for the multiset counter.
func ValidatePacking(packing [][]int, capacity int, items []int) error {
	if err := validateInstance(capacity, items); err != nil {
		return err
	}

	// Count the input multiset.
	counts := make(map[int]int, len(items))

	var size int
	for _, size = range items {
		counts[size]++
	}

	var (
		bin    []int
		sum    int
		placed int
	)
	for _, bin = range packing {
		// Empty bins never arise from a valid solve (a bin opens with an item).
		if len(bin) == 0 {
			return ErrInvalidPacking
		}
		sum = 0
		for _, size = range bin {
			sum += size
			counts[size]--
			// More copies of a value than the input supplied ⇒ not a partition.
			if counts[size] < 0 {
				return ErrInvalidPacking
			}
			placed++
		}
		if sum > capacity {
			return ErrInvalidPacking
		}
	}

	// Fewer placed items than supplied ⇒ something was lost.
	if placed != len(items) {
		return ErrInvalidPacking
	}

	return nil
}
