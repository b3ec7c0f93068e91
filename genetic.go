// Package binpack — genetic solver (population search over assignment vectors).
//
// Genetic evolves a population of full assignment vectors (one bin label per
// item, labels in [0, n-1] so any item can start its own bin) toward packings
// with few bins and no overflow.
//
// Fitness (lower is better):
//
//	fitness(v) = distinct_labels(v) + 10 · Σ_bins max(0, bin_total − capacity)
//
// Overflow is penalized ten-fold relative to one bin unit: infeasible
// intermediate states stay reachable but strongly discouraged. The final
// decoded packing is feasibility-checked regardless.
//
// Operators:
//  1. Initialization — PopulationSize vectors of n uniform labels in [0, n-1].
//  2. Selection — tournament of size 3: sample 3 individuals uniformly
//     without replacement, keep the lowest fitness.
//  3. Crossover — single point, cut uniform in [1, n-2]; parents of length
//     < 3 have no interior cut and are cloned unchanged.
//  4. Mutation — with probability MutationRate per child, reassign exactly
//     one random position to a fresh uniform label.
//  5. Elitism — the single best individual of the current generation is
//     copied unchanged into the next one before any reproduction.
//  6. Refill — select-two/crossover/mutate-both until the population is back
//     to size (only the first child lands when one slot remains).
//
// Tracking and termination:
//   - Global best across generations: replaced on strictly fewer distinct
//     bins, or equal bins with strictly better fitness.
//   - History records each generation's best bin count; if that number is
//     literally unchanged (not merely non-improving) for PatienceNoChange
//     consecutive generations, the run stops early. Any change resets the
//     counter.
//   - The returned packing decodes whichever of {global best} ∪ final
//     population has the lowest fitness.
//
// Determinism: reproducible iff Options.Seed != 0 (see rng.go).
//
// Complexity: O(Generations · PopulationSize · n) fitness work,
// O(PopulationSize · n) memory.
package binpack

import "math/rand"

// overflowPenalty scales capacity overflow against one bin unit in fitness.
const overflowPenalty = 10

// tournamentSize is the selection tournament width (capped by population size).
const tournamentSize = 3

// gaEngine holds the population and the scratch buffers reused across the run.
type gaEngine struct {
	capacity int
	items    []int
	n        int

	rng        *rand.Rand
	population [][]int

	// Scratch: index permutation buffer for tournament sampling, the sampled
	// contender indices, and the per-fitness bin accumulator.
	perm       []int
	contenders []int
	binSums    map[int]int
}

// newGAEngine seeds the RNG and generates the initial random population.
func newGAEngine(capacity int, items []int, opts Options) *gaEngine {
	var e gaEngine
	e.capacity = capacity
	e.items = items
	e.n = len(items)
	e.rng = rngFromSeed(opts.Seed)

	e.population = make([][]int, opts.PopulationSize)

	var i, j int
	for i = 0; i < opts.PopulationSize; i++ {
		v := make([]int, e.n)
		for j = 0; j < e.n; j++ {
			v[j] = e.rng.Intn(e.n)
		}
		e.population[i] = v
	}

	e.perm = make([]int, opts.PopulationSize)
	for i = 0; i < opts.PopulationSize; i++ {
		e.perm[i] = i
	}
	e.contenders = make([]int, tournamentSize)
	e.binSums = make(map[int]int, e.n)

	return &e
}

// fitness scores one vector: distinct bins used plus the ten-fold overflow
// penalty. The bin accumulator is reused across calls (hot path).
func (e *gaEngine) fitness(v []int) int {
	clear(e.binSums)

	var i int
	for i = 0; i < e.n; i++ {
		e.binSums[v[i]] += e.items[i]
	}

	var (
		score = len(e.binSums)
		sum   int
	)
	for _, sum = range e.binSums {
		if sum > e.capacity {
			score += overflowPenalty * (sum - e.capacity)
		}
	}

	return score
}

// distinctBins counts the distinct labels of v (the decoded bin count).
func (e *gaEngine) distinctBins(v []int) int {
	clear(e.binSums)

	var i int
	for i = 0; i < e.n; i++ {
		e.binSums[v[i]] = 0
	}

	return len(e.binSums)
}

// bestOf returns the index of the lowest-fitness individual in pop.
// Ties keep the earliest index (deterministic under a fixed seed).
func (e *gaEngine) bestOf(pop [][]int) int {
	var (
		best     = 0
		bestFit  = e.fitness(pop[0])
		i, score int
	)
	for i = 1; i < len(pop); i++ {
		score = e.fitness(pop[i])
		if score < bestFit {
			best = i
			bestFit = score
		}
	}

	return best
}

// tournament samples tournamentSize distinct individuals uniformly without
// replacement and returns the fittest (lowest fitness) of them.
func (e *gaEngine) tournament() []int {
	k := tournamentSize
	if k > len(e.population) {
		k = len(e.population)
	}
	sampleDistinct(e.perm, k, e.contenders, e.rng)

	var (
		winner   = e.contenders[0]
		bestFit  = e.fitness(e.population[winner])
		i, score int
	)
	for i = 1; i < k; i++ {
		score = e.fitness(e.population[e.contenders[i]])
		if score < bestFit {
			winner = e.contenders[i]
			bestFit = score
		}
	}

	return e.population[winner]
}

// crossover produces two children by swapping parent tails at a cut point
// chosen uniformly in [1, n-2]. Vectors shorter than 3 have no interior cut
// and are returned as plain copies.
func (e *gaEngine) crossover(p1, p2 []int) ([]int, []int) {
	if e.n < 3 {
		return cloneVector(p1), cloneVector(p2)
	}

	var (
		point = 1 + e.rng.Intn(e.n-2)
		c1    = make([]int, e.n)
		c2    = make([]int, e.n)
	)
	copy(c1, p1[:point])
	copy(c1[point:], p2[point:])
	copy(c2, p2[:point])
	copy(c2[point:], p1[point:])

	return c1, c2
}

// mutate reassigns one random position of v to a fresh uniform label with the
// configured probability; otherwise v is left untouched.
func (e *gaEngine) mutate(v []int, rate float64) {
	if e.rng.Float64() < rate {
		v[e.rng.Intn(e.n)] = e.rng.Intn(e.n)
	}
}

// cloneVector returns an independent copy of v.
func cloneVector(v []int) []int {
	return append([]int(nil), v...)
}

// GeneticPack runs the genetic solver on the instance.
//
// Errors: instance sentinels plus the genetic-knob sentinels
// (ErrBadPopulationSize, ErrBadGenerations, ErrBadMutationRate, ErrBadPatience).
//
// The result carries the decoded packing, the winning raw assignment vector,
// and the best-of-generation history consumed by convergence reporting.
func GeneticPack(capacity int, items []int, opts Options) (GeneticResult, error) {
	if err := validateInstance(capacity, items); err != nil {
		return GeneticResult{}, err
	}
	if err := validateGeneticOptions(opts); err != nil {
		return GeneticResult{}, err
	}

	// Zero items: nothing to evolve — a valid empty packing, empty history.
	if len(items) == 0 {
		return GeneticResult{Result: Result{Bins: 0, Packing: [][]int{}}}, nil
	}

	e := newGAEngine(capacity, items, opts)

	// Global best starts as the fittest member of the initial population.
	var (
		bestOverall     = cloneVector(e.population[e.bestOf(e.population)])
		bestBinsOverall = e.distinctBins(bestOverall)
		history         = make([]int, 0, opts.Generations)

		lastBestBins      = -1 // best-of-generation bins from the previous generation
		gensWithoutChange int
		gen               int
		bestGen           []int
		bestBinsGen       int
	)
	for gen = 0; gen < opts.Generations; gen++ {
		next := make([][]int, 0, opts.PopulationSize)

		// Elitism: the current best survives verbatim.
		next = append(next, cloneVector(e.population[e.bestOf(e.population)]))

		// Refill by tournament selection, crossover and mutation.
		for len(next) < opts.PopulationSize {
			c1, c2 := e.crossover(e.tournament(), e.tournament())
			e.mutate(c1, opts.MutationRate)
			next = append(next, c1)
			if len(next) < opts.PopulationSize {
				e.mutate(c2, opts.MutationRate)
				next = append(next, c2)
			}
		}
		e.population = next

		// Generation bookkeeping: best-of-generation bin count drives both the
		// history and the early-stopping rule.
		bestGen = e.population[e.bestOf(e.population)]
		bestBinsGen = e.distinctBins(bestGen)
		history = append(history, bestBinsGen)

		// Global best: strictly fewer bins, or equal bins with better fitness.
		if bestBinsGen < bestBinsOverall ||
			(bestBinsGen == bestBinsOverall && e.fitness(bestGen) < e.fitness(bestOverall)) {
			bestOverall = cloneVector(bestGen)
			bestBinsOverall = bestBinsGen
		}

		// Early stopping: any change of the per-generation best (better or
		// worse) resets the counter; a literal plateau drains the patience.
		if bestBinsGen != lastBestBins {
			gensWithoutChange = 0
			lastBestBins = bestBinsGen
		} else {
			gensWithoutChange++
			if gensWithoutChange >= opts.PatienceNoChange {
				break
			}
		}
	}

	// Finalization: lowest fitness among the global best and the final
	// population wins; decode it into the canonical packing.
	var (
		winner    = bestOverall
		winnerFit = e.fitness(bestOverall)
		i, score  int
	)
	for i = 0; i < len(e.population); i++ {
		score = e.fitness(e.population[i])
		if score < winnerFit {
			winner = e.population[i]
			winnerFit = score
		}
	}

	packing, err := DecodeAssignment(winner, items)
	if err != nil {
		return GeneticResult{}, err
	}

	return GeneticResult{
		Result:     Result{Bins: len(packing), Packing: packing},
		BestVector: cloneVector(winner),
		History:    history,
	}, nil
}
