// Package binpack - core types, options and sentinel errors shared by all
// bin-packing solvers.
//
// The package solves the one-dimensional Bin Packing Problem (BPP): given a
// bin capacity C>0 and a multiset of positive item sizes, partition the items
// into the fewest bins such that no bin's total exceeds C.
//
// Solver families (see the per-file docs for contracts and complexity):
//
//	– TheoreticalMinimum — ceil(sum/C), a provable lower bound (bound.go).
//	– Greedy             — NextFit / FirstFit / BestFit and the Decreasing
//	                       variants; fast, feasible, not optimal (greedy.go).
//	– Exact              — Branch-and-Bound with lower-bound pruning;
//	                       optimal, worst-case exponential (exact.go).
//	– Genetic            — population search over assignment vectors;
//	                       good-not-optimal within a generation budget
//	                       (genetic.go).
//
// Errors (sentinel):
//
//	– ErrBadCapacity       if capacity ≤ 0.
//	– ErrBadItemSize       if any item size ≤ 0.
//	– ErrUnknownStrategy   if a Strategy value is not recognized.
//	– ErrBadPopulationSize if Options.PopulationSize ≤ 0.
//	– ErrBadGenerations    if Options.Generations ≤ 0.
//	– ErrBadMutationRate   if Options.MutationRate ∉ [0,1].
//	– ErrBadPatience       if Options.PatienceNoChange ≤ 0.
//	– ErrBadTimeLimit      if Options.TimeLimit < 0.
//	– ErrTimeLimit         if the exact solver exceeds a positive TimeLimit.
//	– ErrBadVector         if an assignment vector has wrong length or a
//	                       negative label.
//	– ErrInvalidPacking    if a packing violates the partition or capacity
//	                       invariant (ValidatePacking).
//
// Design principles:
//   - Deterministic: exact and greedy solvers use no randomness; the genetic
//     solver routes all randomness through a single seeded source (rng.go).
//   - Strict sentinels: no fmt.Errorf in solver code where a sentinel suffices.
//   - No logging, no panics on user input.
package binpack

import (
	"errors"
	"time"
)

// Sentinel errors returned by the binpack solvers.
var (
	// ErrBadCapacity indicates a non-positive bin capacity.
	ErrBadCapacity = errors.New("binpack: capacity must be positive")

	// ErrBadItemSize indicates a non-positive item size; such an item can
	// never be packed into any bin.
	ErrBadItemSize = errors.New("binpack: item size must be positive")

	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("binpack: unknown strategy")

	// ErrBadPopulationSize indicates a non-positive genetic population size.
	ErrBadPopulationSize = errors.New("binpack: population size must be positive")

	// ErrBadGenerations indicates a non-positive generation budget.
	ErrBadGenerations = errors.New("binpack: generations must be positive")

	// ErrBadMutationRate indicates a mutation rate outside [0,1].
	ErrBadMutationRate = errors.New("binpack: mutation rate must be in [0,1]")

	// ErrBadPatience indicates a non-positive early-stopping patience.
	ErrBadPatience = errors.New("binpack: patience must be positive")

	// ErrBadTimeLimit indicates a negative time budget (undefined).
	ErrBadTimeLimit = errors.New("binpack: time limit must be non-negative")

	// ErrTimeLimit indicates the exact solver exhausted a positive TimeLimit
	// before proving optimality.
	ErrTimeLimit = errors.New("binpack: time limit exceeded")

	// ErrBadVector indicates an assignment vector whose length does not match
	// the item count, or which carries a negative bin label.
	ErrBadVector = errors.New("binpack: malformed assignment vector")

	// ErrInvalidPacking indicates a packing that is not a partition of the
	// input items or that overfills a bin.
	ErrInvalidPacking = errors.New("binpack: invalid packing")
)

// Strategy selects the solving algorithm used by Pack.
//
//	NextFit            – keep only the most recent bin;    O(n),   worst quality.
//	FirstFit           – first bin with room, else new;    O(n·k).
//	BestFit            – tightest bin with room, else new; O(n·k).
//	FirstFitDecreasing – stable descending sort, then FirstFit.
//	BestFitDecreasing  – stable descending sort, then BestFit.
//	BranchAndBound     – exact optimum; worst-case exponential.
//	Genetic            – stochastic search; quality/effort set via Options.
type Strategy int

const (
	// NextFit places each item in the most recently opened bin, else opens a new one.
	NextFit Strategy = iota

	// FirstFit places each item in the earliest bin with enough remaining capacity.
	FirstFit

	// BestFit places each item in the bin with the smallest sufficient remaining capacity.
	BestFit

	// FirstFitDecreasing sorts items descending (stable), then applies FirstFit.
	FirstFitDecreasing

	// BestFitDecreasing sorts items descending (stable), then applies BestFit.
	BestFitDecreasing

	// BranchAndBound runs the exact pruned search; guaranteed optimal bin count.
	BranchAndBound

	// Genetic runs the population-based stochastic search.
	Genetic
)

// strategyNames maps Strategy values to their canonical lower-snake names,
// shared by String and ParseStrategy.
var strategyNames = map[Strategy]string{
	NextFit:            "next_fit",
	FirstFit:           "first_fit",
	BestFit:            "best_fit",
	FirstFitDecreasing: "first_fit_decreasing",
	BestFitDecreasing:  "best_fit_decreasing",
	BranchAndBound:     "branch_and_bound",
	Genetic:            "genetic",
}

// String returns the canonical name of s ("next_fit", "best_fit_decreasing", …).
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseStrategy resolves a canonical strategy name back to its Strategy value.
// Unknown names yield ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	var (
		s Strategy
		n string
	)
	for s, n = range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, ErrUnknownStrategy
}

// Result holds the outcome of a packing solver.
type Result struct {
	// Bins is the number of bins used; always len(Packing).
	Bins int

	// Packing lists every bin as its items in placement order.
	// Each input item appears in exactly one bin; each bin sums to ≤ capacity.
	Packing [][]int
}

// GeneticResult extends Result with the genetic-solver artifacts consumed by
// convergence reporting.
type GeneticResult struct {
	Result

	// BestVector is the winning assignment vector before decoding: one bin
	// label per input item; equal labels mean "same bin".
	BestVector []int

	// History records the best-of-generation bin count, one entry per
	// executed generation (shorter than Generations when early stopping fires).
	History []int
}

// Options configures the behavior of Pack and of the Exact/Genetic solvers.
//
// Strategy         – algorithm routed by Pack (greedy solvers ignore the rest).
// TimeLimit        – optional soft budget for BranchAndBound; 0 = unbounded
//
//	exactness (the documented default). Checked sparsely; on
//	expiry Exact returns ErrTimeLimit.
//
// PopulationSize   – genetic population size per generation.
// Generations      – maximum genetic generation count.
// MutationRate     – per-child probability of a single-point mutation, in [0,1].
// PatienceNoChange – stop after this many consecutive generations whose
//
//	best-of-generation bin count is literally unchanged
//	(any change, better or worse, resets the counter).
//
// Seed             – RNG seed for the genetic solver. Seed > 0 reproduces runs
//
//	bit-for-bit; Seed == 0 draws entropy from the clock
//	(explicitly non-reproducible).
type Options struct {
	Strategy         Strategy      // algorithm selector for Pack
	TimeLimit        time.Duration // soft exact-solver budget (0 = none)
	PopulationSize   int           // genetic population size
	Generations      int           // genetic generation budget
	MutationRate     float64       // per-child mutation probability
	PatienceNoChange int           // early-stopping patience (generations)
	Seed             int64         // RNG seed; 0 = non-deterministic
}

// Default genetic hyperparameters; modest enough for library use while keeping
// the search meaningful on mid-sized instances.
const (
	// DefaultPopulationSize is the default genetic population size.
	DefaultPopulationSize = 100

	// DefaultGenerations is the default genetic generation budget.
	DefaultGenerations = 500

	// DefaultMutationRate is the default per-child mutation probability.
	DefaultMutationRate = 0.25

	// DefaultPatience is the default early-stopping patience in generations.
	DefaultPatience = 50

	// DefaultSeed is the default genetic RNG seed; non-zero so that default
	// runs are reproducible (pass Seed: 0 to opt into clock entropy).
	DefaultSeed int64 = 1
)

// DefaultOptions returns the canonical starting configuration:
// FirstFitDecreasing routing, unbounded exact search, and reproducible
// genetic defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:         FirstFitDecreasing,
		TimeLimit:        0,
		PopulationSize:   DefaultPopulationSize,
		Generations:      DefaultGenerations,
		MutationRate:     DefaultMutationRate,
		PatienceNoChange: DefaultPatience,
		Seed:             DefaultSeed,
	}
}
