// Package binpack — Branch-and-Bound (exact search with an admissible lower bound).
//
// ExactPack enumerates item-to-bin assignments depth-first and prunes subtrees
// with the same bound TheoreticalMinimum exposes, applied to the unplaced
// suffix. The search is complete, so the returned bin count is the true
// optimum, with one witnessing packing.
//
// Rationale (succinct):
//  1. Items are placed in input order; at each depth the branches are, in this
//     priority: every existing bin with room (in bin-creation order), then a
//     new bin. The new-bin branch is guarded by bins < best−1, since opening
//     one cannot beat the incumbent otherwise.
//  2. Pruning: before branching, LB = max(bins_so_far, ceil(remaining/C)).
//     If LB ≥ best, no completion of this partial packing can win — abandon.
//     Suffix weights are precomputed once, so the bound is O(1) per node.
//  3. The incumbent starts at +infinity; for a non-empty instance the search
//     always terminates with a finite incumbent because one-bin-per-item is
//     feasible.
//  4. The search runs on an explicit frame stack rather than call-stack
//     recursion, so depth is bounded by the heap, not the goroutine stack.
//     Each frame holds the item index, the branch cursor, and the current
//     placement to undo on backtrack.
//  5. Soft time limit: rare deadline checks (every 1024 node events) keep
//     overhead negligible. Zero budget means unbounded exactness.
//
// Determinism: no randomness; identical input order and capacity always yield
// the identical optimal packing (which optimum depends on the branch order
// above and is reproducible under it).
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning provides the
//     practical speed. Intended for small-to-moderate instances.
//   - Per node: O(1) bound + O(1) state updates.
//   - Memory: O(n) frames + O(n) bins/sums + O(n) suffix weights.
package binpack

import (
	"math"
	"time"
)

// unboundedBins seeds the incumbent before any solution is known.
const unboundedBins = math.MaxInt

// bbFrame is one depth of the explicit search stack.
type bbFrame struct {
	idx     int  // index of the item being placed at this depth
	next    int  // branch cursor: 0..k-1 existing bins, k ⇒ open a new bin
	placed  int  // bin currently holding items[idx]; -1 when none
	entered bool // base-case and pruning checks already performed
}

// bbEngine holds all search data. A dedicated engine struct (instead of
// closures over shared locals) keeps the mutable incumbent explicit and the
// hot-path state predictable.
type bbEngine struct {
	capacity int
	items    []int
	n        int
	suffix   []int // suffix[i] = sum(items[i:]); suffix[n] = 0

	// Partial packing under construction.
	bins [][]int
	sums []int

	// Incumbent (best complete packing found so far).
	bestBins    int
	bestPacking [][]int

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
	expired     bool
}

// newBBEngine prepares the engine: suffix weights, empty partial packing,
// +infinity incumbent, optional deadline.
func newBBEngine(capacity int, items []int, limit time.Duration) *bbEngine {
	var e bbEngine
	e.capacity = capacity
	e.items = items
	e.n = len(items)

	// suffix[i] is the unplaced weight once items[0:i] are committed.
	e.suffix = make([]int, e.n+1)
	var i int
	for i = e.n - 1; i >= 0; i-- {
		e.suffix[i] = e.suffix[i+1] + items[i]
	}

	e.bestBins = unboundedBins
	if limit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(limit)
	}

	return &e
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// lowerBound is the live bound for the subtree rooted at item index idx:
// no completion can use fewer bins than the bins already open, nor fewer
// than ceil(remaining_weight/capacity) (pigeonhole on the unplaced suffix).
func (e *bbEngine) lowerBound(idx int) int {
	lb := ceilDiv(e.suffix[idx], e.capacity)
	if len(e.bins) > lb {
		lb = len(e.bins)
	}

	return lb
}

// place commits items[idx] into an existing bin.
func (e *bbEngine) place(bin, size int) {
	e.bins[bin] = append(e.bins[bin], size)
	e.sums[bin] += size
}

// open starts a new bin holding just the item and returns its index.
func (e *bbEngine) open(size int) int {
	e.bins = append(e.bins, []int{size})
	e.sums = append(e.sums, size)

	return len(e.bins) - 1
}

// undo reverts the most recent placement into bin. Deeper frames have already
// undone their own placements, so the item is the bin's last element; a bin
// drained to empty is necessarily the newest bin and is dropped.
func (e *bbEngine) undo(bin int) {
	last := len(e.bins[bin]) - 1
	e.sums[bin] -= e.bins[bin][last]
	e.bins[bin] = e.bins[bin][:last]
	if last == 0 {
		e.bins = e.bins[:len(e.bins)-1]
		e.sums = e.sums[:len(e.sums)-1]
	}
}

// record commits the current complete packing as the new incumbent (deep copy:
// the working bins keep mutating as the search backtracks).
func (e *bbEngine) record() {
	e.bestBins = len(e.bins)
	e.bestPacking = make([][]int, len(e.bins))

	var i int
	for i = 0; i < len(e.bins); i++ {
		e.bestPacking[i] = append([]int(nil), e.bins[i]...)
	}
}

// search runs the frame-stack DFS to exhaustion (or deadline expiry).
func (e *bbEngine) search() {
	stack := make([]bbFrame, 0, e.n+1)
	stack = append(stack, bbFrame{idx: 0, placed: -1})

	var (
		f    *bbFrame
		size int
		k    int
		bin  int
	)
	for len(stack) > 0 {
		f = &stack[len(stack)-1]

		// Control returned from a child subtree: undo its placement first.
		if f.placed >= 0 {
			e.undo(f.placed)
			f.placed = -1
		}

		if !f.entered {
			f.entered = true

			// Base case: all items placed — keep the packing if it improves.
			if f.idx == e.n {
				if len(e.bins) < e.bestBins {
					e.record()
				}
				stack = stack[:len(stack)-1]
				continue
			}

			if e.deadlineCheck() {
				return
			}

			// Prune: no completion of this branch can beat the incumbent.
			if e.lowerBound(f.idx) >= e.bestBins {
				stack = stack[:len(stack)-1]
				continue
			}
		}

		size = e.items[f.idx]
		k = len(e.bins)

		// Branch 1: existing bins in creation order, skipping full ones.
		for f.next < k && e.sums[f.next]+size > e.capacity {
			f.next++
		}
		if f.next < k {
			bin = f.next
			f.next++
			e.place(bin, size)
			f.placed = bin
			stack = append(stack, bbFrame{idx: f.idx + 1, placed: -1})
			continue
		}

		// Branch 2: a new bin, unless it already cannot beat the incumbent.
		if f.next == k {
			f.next++
			if k < e.bestBins-1 {
				f.placed = e.open(size)
				stack = append(stack, bbFrame{idx: f.idx + 1, placed: -1})
				continue
			}
		}

		// All branches exhausted at this depth.
		stack = stack[:len(stack)-1]
	}
}

// ExactPack returns the minimum possible bin count with one witnessing packing.
//
// Errors:
//   - ErrTimeLimit when a positive opts.TimeLimit expires before the search
//     proves optimality (no partial answer is returned in that case).
//   - Instance sentinels for malformed input (see types.go).
//
// Usage caveat: with the default zero TimeLimit the search is unbounded and
// worst-case exponential; keep instances small-to-moderate or set a budget.
func ExactPack(capacity int, items []int, opts Options) (Result, error) {
	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadTimeLimit
	}

	e := newBBEngine(capacity, items, opts.TimeLimit)
	e.search()

	if e.expired {
		return Result{}, ErrTimeLimit
	}

	return Result{Bins: e.bestBins, Packing: e.bestPacking}, nil
}
