// Package binpack_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package binpack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binpack"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// capDemo is the capacity of the worked example instance used across tests.
	capDemo = 10

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(1)

	// instanceSeed feeds the local instance generator; independent from the
	// solver seeds so shuffling tests never entangles the two streams.
	instanceSeed = int64(7)
)

// demoItems returns the worked example items (capacity 10): NextFit yields 3
// bins, BestFit and the exact solver yield the optimal 2.
func demoItems() []int {
	return []int{6, 5, 4, 3}
}

// randomInstance builds a reproducible instance of n items with sizes in
// [1, maxSize] from a dedicated source.
func randomInstance(n, maxSize int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	items := make([]int, n)
	for i := range items {
		items[i] = 1 + rng.Intn(maxSize)
	}

	return items
}

// requireValidPacking asserts the partition and capacity invariants of a
// solver result against the original instance.
func requireValidPacking(t *testing.T, res binpack.Result, capacity int, items []int) {
	t.Helper()
	require.NoError(t, binpack.ValidatePacking(res.Packing, capacity, items))
	require.Equal(t, len(res.Packing), res.Bins, "Bins must equal len(Packing)")
}

// requireAtLeastMinimum asserts a solver never beats the theoretical bound.
func requireAtLeastMinimum(t *testing.T, res binpack.Result, capacity int, items []int) {
	t.Helper()
	minimum, err := binpack.TheoreticalMinimum(capacity, items)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Bins, minimum)
}

// geneticOptions returns a small, deterministic genetic configuration for tests.
func geneticOptions() binpack.Options {
	opts := binpack.DefaultOptions()
	opts.Strategy = binpack.Genetic
	opts.PopulationSize = 30
	opts.Generations = 60
	opts.MutationRate = 0.1
	opts.PatienceNoChange = 60
	opts.Seed = seedDet

	return opts
}
