// SPDX-License-Identifier: MIT

package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairmatch/distance"
)

func TestPairwiseRows(t *testing.T) {
	small := [][]float64{{0, 0}, {3, 4}}
	large := [][]float64{{0, 0}, {6, 8}, {3, 0}}

	c, err := distance.PairwiseRows(small, large, distance.Euclidean)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 10, 3},
		{5, 5, 4},
	}, c.Rows())
}

func TestPairwiseRows_Errors(t *testing.T) {
	_, err := distance.PairwiseRows([][]float64{{1}}, [][]float64{{1, 2}}, distance.Euclidean)
	require.ErrorIs(t, err, distance.ErrDimensionMismatch)

	_, err = distance.PairwiseRows([][]float64{{1, 2}, {1}}, [][]float64{{1, 2}}, distance.Euclidean)
	require.ErrorIs(t, err, distance.ErrDimensionMismatch)

	_, err = distance.PairwiseRows([][]float64{{}}, [][]float64{{}}, distance.Euclidean)
	require.ErrorIs(t, err, distance.ErrNoFeatures)

	_, err = distance.PairwiseRows([][]float64{{1}}, [][]float64{{1}}, "nope")
	require.ErrorIs(t, err, distance.ErrUnsupported)
}

func TestPairwiseRows_EmptyGroup(t *testing.T) {
	c, err := distance.PairwiseRows(nil, [][]float64{{1, 2}, {3, 4}}, distance.Cityblock)
	require.NoError(t, err)
	r, cols := c.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 2, cols)
}
