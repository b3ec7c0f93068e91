package binpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binpack"
)

func TestNextFit_WorkedExample(t *testing.T) {
	// Trace: [6] | 5 overflows → [5] | 4 joins → [5 4] | 3 overflows → [3].
	res, err := binpack.NextFitPack(capDemo, demoItems())
	require.NoError(t, err)
	require.Equal(t, 3, res.Bins)
	require.Equal(t, [][]int{{6}, {5, 4}, {3}}, res.Packing)
	requireValidPacking(t, res, capDemo, demoItems())
}

func TestFirstFit_WorkedExample(t *testing.T) {
	// 6→bin1; 5 overflows bin1 → bin2; 4 fits bin1 (6+4=10); 3 fits bin2.
	res, err := binpack.FirstFitPack(capDemo, demoItems())
	require.NoError(t, err)
	require.Equal(t, 2, res.Bins)
	require.Equal(t, [][]int{{6, 4}, {5, 3}}, res.Packing)
	requireValidPacking(t, res, capDemo, demoItems())
}

func TestBestFit_WorkedExample(t *testing.T) {
	// 4 goes to bin1 (free 4, tighter than bin2's free 5); 3 only fits bin2.
	res, err := binpack.BestFitPack(capDemo, demoItems())
	require.NoError(t, err)
	require.Equal(t, 2, res.Bins)
	require.Equal(t, [][]int{{6, 4}, {5, 3}}, res.Packing)
	requireValidPacking(t, res, capDemo, demoItems())
}

func TestBestFit_PrefersTightestBin(t *testing.T) {
	// Bins after [7 2]: sums 7 and 2 → free 3 and 8. Item 3 must take the
	// tighter first bin even though the second has plenty of room.
	res, err := binpack.BestFitPack(10, []int{7, 2, 3})
	require.NoError(t, err)
	require.Equal(t, [][]int{{7, 3}, {2}}, res.Packing)
}

func TestBestFit_TieKeepsEarliestBin(t *testing.T) {
	// Two bins with identical remaining capacity: the earlier one wins.
	res, err := binpack.BestFitPack(10, []int{6, 6, 4})
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 4}, {6}}, res.Packing)
}

func TestBestFit_NeverSelectsTooSmallBin(t *testing.T) {
	// Free space 1 in bin1 must not attract the size-2 item.
	res, err := binpack.BestFitPack(10, []int{9, 2})
	require.NoError(t, err)
	require.Equal(t, [][]int{{9}, {2}}, res.Packing)
}

func TestDecreasingVariants_SortStableAndDescending(t *testing.T) {
	// FFD sorts [3 6 4 5] → [6 5 4 3], then packs exactly like the worked
	// example: [6 4] [5 3].
	res, err := binpack.FirstFitDecreasingPack(capDemo, []int{3, 6, 4, 5})
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 4}, {5, 3}}, res.Packing)

	res, err = binpack.BestFitDecreasingPack(capDemo, []int{3, 6, 4, 5})
	require.NoError(t, err)
	require.Equal(t, [][]int{{6, 4}, {5, 3}}, res.Packing)
}

func TestDecreasing_DoesNotMutateInput(t *testing.T) {
	items := []int{3, 6, 4, 5}
	_, err := binpack.FirstFitDecreasingPack(capDemo, items)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6, 4, 5}, items)
}

func TestFirstFitDecreasing_BeatsFirstFitOnClassicInstance(t *testing.T) {
	// Ascending input is adversarial for FirstFit; the descending pre-sort
	// repairs it.
	capacity := 10
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	ff, err := binpack.FirstFitPack(capacity, items)
	require.NoError(t, err)
	ffd, err := binpack.FirstFitDecreasingPack(capacity, items)
	require.NoError(t, err)
	require.Less(t, ffd.Bins, ff.Bins)
}

func TestGreedy_EmptyInput(t *testing.T) {
	strategies := []binpack.Strategy{
		binpack.NextFit, binpack.FirstFit, binpack.BestFit,
		binpack.FirstFitDecreasing, binpack.BestFitDecreasing,
	}
	for _, strategy := range strategies {
		res, err := binpack.GreedyPack(strategy, capDemo, nil)
		require.NoError(t, err, strategy.String())
		require.Equal(t, 0, res.Bins, strategy.String())
		require.Empty(t, res.Packing, strategy.String())
	}
}

func TestGreedy_Idempotence(t *testing.T) {
	// Re-running any greedy strategy on the same input yields an identical
	// packing: there is no hidden state and no randomness.
	const capacity = 17
	items := randomInstance(120, capacity, instanceSeed)

	strategies := []binpack.Strategy{
		binpack.NextFit, binpack.FirstFit, binpack.BestFit,
		binpack.FirstFitDecreasing, binpack.BestFitDecreasing,
	}
	for _, strategy := range strategies {
		first, err := binpack.GreedyPack(strategy, capacity, items)
		require.NoError(t, err)
		second, err := binpack.GreedyPack(strategy, capacity, items)
		require.NoError(t, err)
		require.Equal(t, first, second, strategy.String())
	}
}

func TestGreedy_InvariantsOnRandomInstances(t *testing.T) {
	const capacity = 23
	strategies := []binpack.Strategy{
		binpack.NextFit, binpack.FirstFit, binpack.BestFit,
		binpack.FirstFitDecreasing, binpack.BestFitDecreasing,
	}
	for seed := int64(1); seed <= 8; seed++ {
		items := randomInstance(90, capacity, seed)
		for _, strategy := range strategies {
			res, err := binpack.GreedyPack(strategy, capacity, items)
			require.NoError(t, err)
			requireValidPacking(t, res, capacity, items)
			requireAtLeastMinimum(t, res, capacity, items)
		}
	}
}

func TestGreedy_RejectsNonGreedyStrategy(t *testing.T) {
	_, err := binpack.GreedyPack(binpack.BranchAndBound, capDemo, demoItems())
	require.ErrorIs(t, err, binpack.ErrUnknownStrategy)

	_, err = binpack.GreedyPack(binpack.Genetic, capDemo, demoItems())
	require.ErrorIs(t, err, binpack.ErrUnknownStrategy)
}

func TestGreedy_InstanceValidation(t *testing.T) {
	_, err := binpack.NextFitPack(0, demoItems())
	require.ErrorIs(t, err, binpack.ErrBadCapacity)

	_, err = binpack.BestFitPack(capDemo, []int{5, -2})
	require.ErrorIs(t, err, binpack.ErrBadItemSize)
}
