// Package binpack — assignment-vector decoding for the genetic solver.
package binpack

// DecodeAssignment converts an assignment vector (one bin label per item,
// equal labels meaning "same bin") into the canonical packing. Labels are
// arbitrary non-negative integers — neither contiguous nor minimal — and are
// recompacted to 0..k-1 in order of first appearance, which is a stable,
// insertion-order-preserving mapping. The mapping is rebuilt on every call
// and never assumes sorted labels.
//
// Contracts:
//   - len(vector) == len(items); every label ≥ 0 (ErrBadVector otherwise).
//   - Empty vector + empty items ⇒ an empty packing.
//
// Complexity: O(n) time, O(k) extra space for the label map.
func DecodeAssignment(vector []int, items []int) ([][]int, error) {
	if len(vector) != len(items) {
		return nil, ErrBadVector
	}

	// First pass: compact labels by first appearance.
	var (
		compact = make(map[int]int, len(vector))
		k       int
		label   int
		ok      bool
	)
	for _, label = range vector {
		if label < 0 {
			return nil, ErrBadVector
		}
		if _, ok = compact[label]; !ok {
			compact[label] = k
			k++
		}
	}

	// Second pass: distribute items into their compacted bins, preserving
	// input order inside each bin.
	bins := make([][]int, k)

	var i int
	for i = 0; i < len(vector); i++ {
		label = compact[vector[i]]
		bins[label] = append(bins[label], items[i])
	}

	return bins, nil
}
