// Command binpack compares bin-packing strategies on one instance: the
// theoretical minimum, the five greedy packers, optionally the exact
// Branch-and-Bound solver, and the genetic solver with its convergence
// history. All output goes to stdout; diagnostics go to the structured log.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/binpack"
	"github.com/katalvlaran/binpack/internal/config"
	"github.com/katalvlaran/binpack/internal/logging"
)

// greedyOrder fixes the report order of the greedy strategies.
var greedyOrder = []binpack.Strategy{
	binpack.NextFit,
	binpack.FirstFit,
	binpack.BestFit,
	binpack.FirstFitDecreasing,
	binpack.BestFitDecreasing,
}

func main() {
	app := kingpin.New("binpack", "Bin Packing toolkit - compares exact, greedy and genetic solvers on one instance")
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	capacityFlag := app.Flag("capacity", "Bin capacity").Default("-1").Int()
	itemsFlag := app.Flag("items", "Comma-separated item sizes").String()
	runExactFlag := app.Flag("exact", "Run the exact Branch-and-Bound solver (may be slow on large instances)").Bool()
	exactLimitFlag := app.Flag("exact-time-limit", "Soft time budget for the exact solver (0 = unbounded)").Default("-1ns").Duration()
	populationFlag := app.Flag("population", "Genetic population size").Default("-1").Int()
	generationsFlag := app.Flag("generations", "Genetic generation budget").Default("-1").Int()
	mutationFlag := app.Flag("mutation-rate", "Genetic per-child mutation probability").Default("-1").Float64()
	seedFlag := app.Flag("seed", "Genetic RNG seed (0 = non-deterministic)").Int64()
	patienceFlag := app.Flag("patience", "Genetic early-stopping patience in generations").Default("-1").Int()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *capacityFlag > 0 {
		overrides.Capacity = capacityFlag
	}

	if *itemsFlag != "" {
		overrides.ItemsStr = itemsFlag
	}

	if *runExactFlag {
		overrides.RunExact = runExactFlag
	}

	if *exactLimitFlag >= 0 {
		overrides.ExactTimeLimit = exactLimitFlag
	}

	if *populationFlag > 0 {
		overrides.PopulationSize = populationFlag
	}

	if *generationsFlag > 0 {
		overrides.Generations = generationsFlag
	}

	if *mutationFlag >= 0 {
		overrides.MutationRate = mutationFlag
	}

	if *seedFlag != 0 {
		overrides.Seed = seedFlag
	}

	if *patienceFlag > 0 {
		overrides.Patience = patienceFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("solver run failed", zap.Error(err))
	}
}

// run executes the full comparison and writes the report to stdout.
func run(cfg config.Config, logger *zap.Logger) error {
	out := os.Stdout
	opts := binpack.Options{
		TimeLimit:        cfg.ExactTimeLimit,
		PopulationSize:   cfg.PopulationSize,
		Generations:      cfg.Generations,
		MutationRate:     cfg.MutationRate,
		PatienceNoChange: cfg.Patience,
		Seed:             cfg.Seed,
	}

	printHeader(out, cfg)

	minimum, err := binpack.TheoreticalMinimum(cfg.Capacity, cfg.Items)
	if err != nil {
		return fmt.Errorf("theoretical minimum: %w", err)
	}
	printMinimum(out, cfg, minimum)

	if cfg.RunExact {
		if err := runExact(out, cfg, opts, minimum, logger); err != nil {
			return err
		}
	}

	printGreedyHeader(out)
	for _, strategy := range greedyOrder {
		started := time.Now()
		res, gerr := binpack.GreedyPack(strategy, cfg.Capacity, cfg.Items)
		if gerr != nil {
			return fmt.Errorf("%s: %w", strategy, gerr)
		}
		logger.Info("greedy solve finished",
			zap.Stringer("strategy", strategy),
			zap.Int("bins", res.Bins),
			zap.Duration("elapsed", time.Since(started)))
		printSolution(out, strategy.String(), res)
	}

	return runGenetic(out, cfg, opts, minimum, logger)
}

// runExact runs the Branch-and-Bound solver; a time-limit expiry is reported,
// not fatal, so the rest of the comparison still prints.
func runExact(out io.Writer, cfg config.Config, opts binpack.Options, minimum int, logger *zap.Logger) error {
	started := time.Now()
	res, err := binpack.ExactPack(cfg.Capacity, cfg.Items, opts)
	if errors.Is(err, binpack.ErrTimeLimit) {
		logger.Warn("exact solver hit its time budget",
			zap.Duration("limit", opts.TimeLimit))
		fmt.Fprintf(out, "EXACT (Branch and Bound): time budget %s exceeded, no proof of optimality\n\n", opts.TimeLimit)
		return nil
	}
	if err != nil {
		return fmt.Errorf("exact solve: %w", err)
	}

	logger.Info("exact solve finished",
		zap.Int("bins", res.Bins),
		zap.Int("theoretical_minimum", minimum),
		zap.Duration("elapsed", time.Since(started)))
	printSolution(out, "branch_and_bound (optimal)", res)

	return nil
}

// runGenetic runs the genetic solver and renders its convergence history.
func runGenetic(out io.Writer, cfg config.Config, opts binpack.Options, minimum int, logger *zap.Logger) error {
	started := time.Now()
	res, err := binpack.GeneticPack(cfg.Capacity, cfg.Items, opts)
	if err != nil {
		return fmt.Errorf("genetic solve: %w", err)
	}

	logger.Info("genetic solve finished",
		zap.Int("bins", res.Bins),
		zap.Int("generations_run", len(res.History)),
		zap.Int64("seed", opts.Seed),
		zap.Duration("elapsed", time.Since(started)))

	printGeneticReport(out, res, minimum)

	return nil
}
