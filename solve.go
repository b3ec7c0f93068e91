// Package binpack - unified dispatcher for bin-packing solvers.
//
// This file provides the canonical entry point to run any strategy:
//
//   - Pack: validate the instance and Options once, then route to the greedy,
//     exact or genetic solver according to opts.Strategy.
//
// Design principles:
//   - Validation happens exactly once, upfront, shared by every solver family.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - No solver depends on another's output; all consume the same inputs and
//     independently produce a packing.
package binpack

// Pack validates inputs and routes to the strategy selected in opts.
//
// Contracts:
//   - capacity > 0; every item size > 0; empty items are valid and yield
//     Result{Bins: 0}.
//   - Genetic knobs are checked only when opts.Strategy == Genetic.
//
// The genetic strategy's extra artifacts (best vector, history) are dropped
// here; call GeneticPack directly when convergence reporting is needed.
//
// Complexity: validation O(n); the rest per strategy (see greedy.go,
// exact.go, genetic.go).
func Pack(capacity int, items []int, opts Options) (Result, error) {
	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	switch opts.Strategy {
	case NextFit, FirstFit, BestFit, FirstFitDecreasing, BestFitDecreasing:
		return GreedyPack(opts.Strategy, capacity, items)

	case BranchAndBound:
		return ExactPack(capacity, items, opts)

	case Genetic:
		res, err := GeneticPack(capacity, items, opts)
		if err != nil {
			return Result{}, err
		}

		return res.Result, nil

	default:
		return Result{}, ErrUnknownStrategy
	}
}
