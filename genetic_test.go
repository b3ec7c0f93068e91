package binpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binpack"
)

func TestGenetic_PerfectPairsScenario(t *testing.T) {
	// items=[5,5,5,5], capacity=10: the optimum (2 bins of exactly 10) has
	// fitness 2 and the search space is tiny, so the configured budget finds
	// it. This is the canonical convergence scenario.
	items := []int{5, 5, 5, 5}
	opts := binpack.DefaultOptions()
	opts.PopulationSize = 20
	opts.Generations = 50
	opts.MutationRate = 0.1
	opts.Seed = 1
	opts.PatienceNoChange = 50

	res, err := binpack.GeneticPack(10, items, opts)
	require.NoError(t, err)
	require.Equal(t, 2, res.Bins)
	requireValidPacking(t, res.Result, 10, items)

	// Every bin sums to exactly the capacity.
	for _, bin := range res.Packing {
		sum := 0
		for _, size := range bin {
			sum += size
		}
		require.Equal(t, 10, sum)
	}
}

func TestGenetic_SeedReproducibility(t *testing.T) {
	// Same seed ⇒ identical bin count, packing, vector and history.
	const capacity = 15
	items := randomInstance(30, capacity, instanceSeed)
	opts := geneticOptions()

	first, err := binpack.GeneticPack(capacity, items, opts)
	require.NoError(t, err)
	second, err := binpack.GeneticPack(capacity, items, opts)
	require.NoError(t, err)

	require.Equal(t, first.Bins, second.Bins)
	require.Equal(t, first.Packing, second.Packing)
	require.Equal(t, first.BestVector, second.BestVector)
	require.Equal(t, first.History, second.History)
}

func TestGenetic_FinalPackingIsFeasible(t *testing.T) {
	// Intermediate individuals may overflow bins; the decoded final packing
	// must not.
	const capacity = 20
	for seed := int64(1); seed <= 4; seed++ {
		items := randomInstance(25, capacity, seed)
		opts := geneticOptions()
		opts.Seed = seed

		res, err := binpack.GeneticPack(capacity, items, opts)
		require.NoError(t, err)
		requireValidPacking(t, res.Result, capacity, items)
		requireAtLeastMinimum(t, res.Result, capacity, items)
	}
}

func TestGenetic_HistoryTracksGenerations(t *testing.T) {
	const capacity = 15
	items := randomInstance(20, capacity, instanceSeed)
	opts := geneticOptions()

	res, err := binpack.GeneticPack(capacity, items, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.History)
	require.LessOrEqual(t, len(res.History), opts.Generations)
	for _, bins := range res.History {
		require.Positive(t, bins)
		require.LessOrEqual(t, bins, len(items))
	}
}

func TestGenetic_EarlyStoppingCutsThePlateau(t *testing.T) {
	// Elitism makes the best fitness monotone, and with two items and two
	// labels the one-bin optimum is present in the initial population; the
	// patience rule must then stop the run well before the full budget.
	items := []int{1, 1}
	opts := binpack.DefaultOptions()
	opts.PopulationSize = 30
	opts.Generations = 500
	opts.MutationRate = 0.1
	opts.PatienceNoChange = 5
	opts.Seed = seedDet

	res, err := binpack.GeneticPack(2, items, opts)
	require.NoError(t, err)
	require.Less(t, len(res.History), opts.Generations)
	require.Equal(t, 1, res.Bins)
}

func TestGenetic_BestVectorDecodesToPacking(t *testing.T) {
	const capacity = 12
	items := randomInstance(15, capacity, instanceSeed)

	res, err := binpack.GeneticPack(capacity, items, geneticOptions())
	require.NoError(t, err)
	require.Len(t, res.BestVector, len(items))

	decoded, err := binpack.DecodeAssignment(res.BestVector, items)
	require.NoError(t, err)
	require.Equal(t, res.Packing, decoded)
}

func TestGenetic_EmptyInput(t *testing.T) {
	res, err := binpack.GeneticPack(capDemo, nil, geneticOptions())
	require.NoError(t, err)
	require.Equal(t, 0, res.Bins)
	require.Empty(t, res.Packing)
	require.Empty(t, res.History)
	require.Empty(t, res.BestVector)
}

func TestGenetic_TinyVectorsSkipCrossover(t *testing.T) {
	// Vectors shorter than 3 have no interior cut point; the run must still
	// converge via selection and mutation alone.
	items := []int{4, 4}
	opts := geneticOptions()
	opts.Generations = 30

	res, err := binpack.GeneticPack(8, items, opts)
	require.NoError(t, err)
	require.Equal(t, 1, res.Bins)
	requireValidPacking(t, res.Result, 8, items)
}

func TestGenetic_OptionValidation(t *testing.T) {
	base := geneticOptions()

	opts := base
	opts.PopulationSize = 0
	_, err := binpack.GeneticPack(capDemo, demoItems(), opts)
	require.ErrorIs(t, err, binpack.ErrBadPopulationSize)

	opts = base
	opts.Generations = 0
	_, err = binpack.GeneticPack(capDemo, demoItems(), opts)
	require.ErrorIs(t, err, binpack.ErrBadGenerations)

	opts = base
	opts.MutationRate = 1.5
	_, err = binpack.GeneticPack(capDemo, demoItems(), opts)
	require.ErrorIs(t, err, binpack.ErrBadMutationRate)

	opts = base
	opts.MutationRate = -0.1
	_, err = binpack.GeneticPack(capDemo, demoItems(), opts)
	require.ErrorIs(t, err, binpack.ErrBadMutationRate)

	opts = base
	opts.PatienceNoChange = 0
	_, err = binpack.GeneticPack(capDemo, demoItems(), opts)
	require.ErrorIs(t, err, binpack.ErrBadPatience)
}

func TestGenetic_InstanceValidation(t *testing.T) {
	_, err := binpack.GeneticPack(0, demoItems(), geneticOptions())
	require.ErrorIs(t, err, binpack.ErrBadCapacity)

	_, err = binpack.GeneticPack(capDemo, []int{2, -4}, geneticOptions())
	require.ErrorIs(t, err, binpack.ErrBadItemSize)
}
