package binpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binpack"
)

func TestDecodeAssignment_RecompactsByFirstAppearance(t *testing.T) {
	// Labels 7,3,7,9 → compacted 0,1,0,2 in order of first appearance.
	items := []int{10, 20, 30, 40}
	bins, err := binpack.DecodeAssignment([]int{7, 3, 7, 9}, items)
	require.NoError(t, err)
	require.Equal(t, [][]int{{10, 30}, {20}, {40}}, bins)
}

func TestDecodeAssignment_LabelsNeedNotBeContiguous(t *testing.T) {
	// Sparse, non-minimal labels are legal; only identity matters.
	items := []int{1, 2, 3}
	bins, err := binpack.DecodeAssignment([]int{1000, 0, 1000}, items)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3}, {2}}, bins)
}

func TestDecodeAssignment_PreservesItemOrderInsideBins(t *testing.T) {
	items := []int{5, 6, 7, 8}
	bins, err := binpack.DecodeAssignment([]int{0, 0, 0, 0}, items)
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 6, 7, 8}}, bins)
}

func TestDecodeAssignment_Empty(t *testing.T) {
	bins, err := binpack.DecodeAssignment(nil, nil)
	require.NoError(t, err)
	require.Empty(t, bins)
}

func TestDecodeAssignment_LengthMismatch(t *testing.T) {
	_, err := binpack.DecodeAssignment([]int{0, 1}, []int{5})
	require.ErrorIs(t, err, binpack.ErrBadVector)
}

func TestDecodeAssignment_NegativeLabel(t *testing.T) {
	_, err := binpack.DecodeAssignment([]int{0, -1}, []int{5, 6})
	require.ErrorIs(t, err, binpack.ErrBadVector)
}
