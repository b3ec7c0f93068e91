package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/binpack"
	"github.com/katalvlaran/binpack/internal/config"
	"github.com/katalvlaran/binpack/internal/render"
)

// printHeader opens the report with the problem statement.
func printHeader(w io.Writer, cfg config.Config) {
	render.Header(w, "BIN PACKING PROBLEM")
	render.Instance(w, cfg.Capacity, cfg.Items)
	fmt.Fprintln(w)
}

// printMinimum reports the theoretical lower bound with its derivation.
func printMinimum(w io.Writer, cfg config.Config, minimum int) {
	total := 0
	for _, size := range cfg.Items {
		total += size
	}
	fmt.Fprintln(w, "THEORETICAL MINIMUM")
	fmt.Fprintf(w, "   Calculation: ceil(%d/%d) = %.2f\n", total, cfg.Capacity, float64(total)/float64(cfg.Capacity))
	fmt.Fprintf(w, "   Theoretical minimum: %d bins\n\n", minimum)
}

// printGreedyHeader separates the heuristic section of the report.
func printGreedyHeader(w io.Writer) {
	render.Header(w, "GREEDY HEURISTICS")
	fmt.Fprintln(w)
}

// printSolution renders one solver outcome as a titled bin table.
func printSolution(w io.Writer, title string, res binpack.Result) {
	render.Solution(w, title, res.Bins, res.Packing)
}

// printGeneticReport renders the genetic outcome and its convergence history.
func printGeneticReport(w io.Writer, res binpack.GeneticResult, minimum int) {
	render.Header(w, "GENETIC ALGORITHM")
	render.Solution(w, "genetic", res.Bins, res.Packing)
	fmt.Fprintln(w, "CONVERGENCE (best bins per generation)")
	render.History(w, res.History, minimum)
}
