// Package binpack — greedy single-pass packers.
//
// Five deterministic placement strategies share one contract: given capacity C
// and an item sequence (order matters), return the bins in creation order with
// each bin's items in placement order.
//
//   - NextFit keeps only the most recently opened bin: place there if the
//     running sum + item ≤ C, else close it and open a new bin.
//     O(n) time, O(1) active state — fastest, typically worst bin count.
//   - FirstFit scans bins in creation order and uses the first with room.
//     O(n·k) with k = bins opened so far.
//   - BestFit scans all bins and uses the one with the smallest remaining
//     capacity that still fits the item (tightest fit). Ties go to the
//     earliest such bin; a bin whose remaining capacity is below the item
//     size is never selected. O(n·k).
//   - FirstFitDecreasing / BestFitDecreasing pre-sort the items descending
//     (stable, so equal sizes keep their original relative order) and
//     delegate to FirstFit / BestFit. The classical approximation-ratio
//     property makes these consistently at least as good as the unsorted
//     variants.
//
// Edge case: an empty item sequence yields zero bins for every strategy.
//
// Design principles:
//   - Running per-bin sums are tracked incrementally; items are never re-summed.
//   - No randomness anywhere: identical input ⇒ identical packing.
//   - Only sentinel errors from types.go.
package binpack

import "sort"

// packer accumulates bins and their running sums during a greedy pass.
// Keeping sums alongside bins turns every fit test into O(1).
type packer struct {
	capacity int
	bins     [][]int
	sums     []int
}

// newPacker returns an empty packer for the given capacity.
func newPacker(capacity int) *packer {
	return &packer{capacity: capacity}
}

// open starts a new bin holding just the given item and returns its index.
func (p *packer) open(size int) int {
	p.bins = append(p.bins, []int{size})
	p.sums = append(p.sums, size)

	return len(p.bins) - 1
}

// place appends the item to an existing bin; the caller guarantees it fits.
func (p *packer) place(bin, size int) {
	p.bins[bin] = append(p.bins[bin], size)
	p.sums[bin] += size
}

// result freezes the accumulated bins into a Result.
func (p *packer) result() Result {
	return Result{Bins: len(p.bins), Packing: p.bins}
}

// NextFitPack packs items with the Next Fit rule: only the most recently
// opened bin is ever considered.
//
// Complexity: O(n) time, O(1) active state beyond the output.
func NextFitPack(capacity int, items []int) (Result, error) {
	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}

	var (
		p    = newPacker(capacity)
		last = -1 // index of the open bin; -1 before the first item
		size int
	)
	for _, size = range items {
		if last >= 0 && p.sums[last]+size <= capacity {
			p.place(last, size)
			continue
		}
		// Current bin (if any) is closed for good; open a fresh one.
		last = p.open(size)
	}

	return p.result(), nil
}

// FirstFitPack packs items with the First Fit rule: the earliest bin with
// enough remaining capacity wins; otherwise a new bin opens.
//
// Complexity: O(n·k) time with k = bins opened so far.
func FirstFitPack(capacity int, items []int) (Result, error) {
	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}

	var (
		p      = newPacker(capacity)
		size   int
		bin    int
		placed bool
	)
	for _, size = range items {
		placed = false
		for bin = 0; bin < len(p.bins); bin++ {
			if p.sums[bin]+size <= capacity {
				p.place(bin, size)
				placed = true
				break
			}
		}
		if !placed {
			p.open(size)
		}
	}

	return p.result(), nil
}

// BestFitPack packs items with the Best Fit rule: among bins that can take
// the item, the one with the smallest remaining capacity wins (tightest fit);
// ties go to the earliest bin. Otherwise a new bin opens.
//
// Complexity: O(n·k) time with k = bins opened so far.
func BestFitPack(capacity int, items []int) (Result, error) {
	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}

	var (
		p    = newPacker(capacity)
		size int
		bin  int
		best int // chosen bin index; -1 when nothing fits
		free int // remaining capacity of the candidate bin
		min  int // smallest sufficient remaining capacity seen so far
	)
	for _, size = range items {
		best = -1
		min = capacity + 1
		for bin = 0; bin < len(p.bins); bin++ {
			free = capacity - p.sums[bin]
			// Strictly-smaller wins; equal remaining keeps the earlier bin.
			if size <= free && free < min {
				best = bin
				min = free
			}
		}
		if best >= 0 {
			p.place(best, size)
		} else {
			p.open(size)
		}
	}

	return p.result(), nil
}

// FirstFitDecreasingPack sorts the items descending (stable) and delegates to
// FirstFitPack.
//
// Complexity: O(n log n + n·k).
func FirstFitDecreasingPack(capacity int, items []int) (Result, error) {
	return FirstFitPack(capacity, sortedDescending(items))
}

// BestFitDecreasingPack sorts the items descending (stable) and delegates to
// BestFitPack.
//
// Complexity: O(n log n + n·k).
func BestFitDecreasingPack(capacity int, items []int) (Result, error) {
	return BestFitPack(capacity, sortedDescending(items))
}

// sortedDescending returns a fresh copy of items sorted by size descending.
// The sort is stable, so equal sizes retain their original relative order;
// the input slice is never mutated.
//
// Complexity: O(n log n) time, O(n) space.
func sortedDescending(items []int) []int {
	sorted := append([]int(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	return sorted
}

// GreedyPack routes a greedy Strategy to its packer; non-greedy strategies
// (BranchAndBound, Genetic) belong to ExactPack/GeneticPack and yield
// ErrUnknownStrategy here.
func GreedyPack(strategy Strategy, capacity int, items []int) (Result, error) {
	switch strategy {
	case NextFit:
		return NextFitPack(capacity, items)
	case FirstFit:
		return FirstFitPack(capacity, items)
	case BestFit:
		return BestFitPack(capacity, items)
	case FirstFitDecreasing:
		return FirstFitDecreasingPack(capacity, items)
	case BestFitDecreasing:
		return BestFitDecreasingPack(capacity, items)
	default:
		return Result{}, ErrUnknownStrategy
	}
}
