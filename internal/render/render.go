// Package render writes solver results to the console: section headers,
// per-bin tables and a textual view of the genetic convergence history.
// It is pure presentation — nothing here feeds back into the solvers.
package render

import (
	"fmt"
	"io"
	"strings"
)

// rule is the section separator width used across the report.
const rule = 60

// maxHistoryRows caps the number of generations shown in the history view;
// longer runs are sampled at an even stride.
const maxHistoryRows = 20

// Header prints an underlined section title.
func Header(w io.Writer, title string) {
	line := strings.Repeat("=", rule)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

// Instance prints the problem statement: capacity, items and their total.
func Instance(w io.Writer, capacity int, items []int) {
	total := 0
	for _, size := range items {
		total += size
	}
	fmt.Fprintf(w, "Bin capacity: %d\n", capacity)
	fmt.Fprintf(w, "Items (%d): %v\n", len(items), items)
	fmt.Fprintf(w, "Total size: %d\n", total)
}

// Packing prints one bin per line with its items and running total.
func Packing(w io.Writer, packing [][]int) {
	for i, bin := range packing {
		sum := 0
		for _, size := range bin {
			sum += size
		}
		fmt.Fprintf(w, "   Bin %d: %v (sum: %d)\n", i+1, bin, sum)
	}
}

// Solution prints a titled bin count followed by the full packing table.
func Solution(w io.Writer, title string, bins int, packing [][]int) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "   Bins: %d\n", bins)
	Packing(w, packing)
	fmt.Fprintln(w)
}

// History prints the best-of-generation bin counts as horizontal bars against
// the theoretical minimum. Long histories are sampled down to maxHistoryRows
// evenly spaced generations (the final generation is always shown).
func History(w io.Writer, history []int, minimum int) {
	if len(history) == 0 {
		fmt.Fprintln(w, "   (no generations executed)")
		return
	}

	peak := history[0]
	for _, bins := range history {
		if bins > peak {
			peak = bins
		}
	}

	fmt.Fprintf(w, "   Theoretical minimum: %d bins\n", minimum)
	for _, gen := range sampleIndices(len(history)) {
		bins := history[gen]
		bar := strings.Repeat("#", scaleBar(bins, peak))
		fmt.Fprintf(w, "   gen %4d | %-40s %d\n", gen+1, bar, bins)
	}
	fmt.Fprintf(w, "   Final best: %d bins after %d generations\n",
		history[len(history)-1], len(history))
}

// sampleIndices returns ≤ maxHistoryRows evenly spaced indices into a history
// of length n, always including the last generation.
func sampleIndices(n int) []int {
	if n <= maxHistoryRows {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	step := n / maxHistoryRows
	indices := make([]int, 0, maxHistoryRows+1)
	for i := 0; i < n; i += step {
		indices = append(indices, i)
	}
	if indices[len(indices)-1] != n-1 {
		indices = append(indices, n-1)
	}
	return indices
}

// scaleBar maps a bin count to a bar width in [1,40] proportional to the peak.
func scaleBar(bins, peak int) int {
	if peak <= 0 {
		return 1
	}
	width := bins * 40 / peak
	if width < 1 {
		width = 1
	}
	return width
}
