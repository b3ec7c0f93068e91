// Package binpack - the theoretical lower bound on bin count.
package binpack

// TheoreticalMinimum returns ceil(sum(items)/capacity), a provable lower
// bound on the bins any valid packing needs: no packing can average more
// usable capacity per bin than the capacity itself (pigeonhole argument).
//
// The same quantity, applied to the unplaced suffix, prunes the exact
// Branch-and-Bound search (see exact.go).
//
// Contracts:
//   - capacity > 0, every item > 0 (ErrBadCapacity / ErrBadItemSize otherwise).
//   - Empty items ⇒ 0.
//
// Complexity: O(n) time, O(1) space.
func TheoreticalMinimum(capacity int, items []int) (int, error) {
	if err := validateInstance(capacity, items); err != nil {
		return 0, err
	}

	var total, size int
	for _, size = range items {
		total += size
	}

	return ceilDiv(total, capacity), nil
}

// ceilDiv computes ceil(a/b) for a ≥ 0, b > 0 in pure integer arithmetic.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
