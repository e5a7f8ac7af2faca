// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pairmatch/matrix"
)

func TestNewCost_Shape(t *testing.T) {
	_, err := matrix.NewCost(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewCost(-1, 0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	c, err := matrix.NewCost(0, 3, nil)
	require.NoError(t, err)
	r, cols := c.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 3, cols)
}

func TestNewCost_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	c, err := matrix.NewCost(2, 2, data)
	require.NoError(t, err)
	data[0] = 99

	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestFromRows(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	c, err := matrix.FromRows(nil)
	require.NoError(t, err)
	r, cols := c.Dims()
	require.Zero(t, r)
	require.Zero(t, cols)

	c, err = matrix.FromRows([][]float64{{1, 9, 9}, {9, 1, 9}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 9, 9}, {9, 1, 9}}, c.Rows())
	require.Equal(t, 38.0, c.Sum())
}

func TestCost_At(t *testing.T) {
	c, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	v, err := c.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = c.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = c.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilCost *matrix.Cost
	_, err = nilCost.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCost_Transpose(t *testing.T) {
	c, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := c.T()
	r, cols := tr.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, cols)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.Rows())
	// receiver untouched
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, c.Rows())
	require.Equal(t, c.Rows(), tr.T().Rows())

	empty, err := matrix.NewCost(0, 4, nil)
	require.NoError(t, err)
	r, cols = empty.T().Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 0, cols)
}

func TestFromMatrix(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	c := matrix.FromMatrix(d)
	d.Set(0, 0, 100)

	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, c.Rows())
}

func TestCost_Integral(t *testing.T) {
	c, err := matrix.FromRows([][]float64{{0.4, 1.5}, {2.6, 3}})
	require.NoError(t, err)

	got, err := c.Integral(matrix.Truncate)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0, 1}, {2, 3}}, got)

	got, err = c.Integral(matrix.Nearest)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0, 2}, {3, 3}}, got)
}

func TestValidateCost(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want error
	}{
		{"nan", math.NaN(), matrix.ErrNaNInf},
		{"inf", math.Inf(1), matrix.ErrNaNInf},
		{"negative", -1, matrix.ErrNegative},
		{"too large", matrix.MaxCost * 2, matrix.ErrTooLarge},
		{"just above bound", math.Nextafter(matrix.MaxCost, math.Inf(1)), matrix.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := matrix.FromRows([][]float64{{1, tc.v}})
			require.NoError(t, err)
			require.ErrorIs(t, matrix.ValidateCost(c), tc.want)
			_, err = c.Integral(matrix.Truncate)
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, matrix.ValidateCost(nil), matrix.ErrNilMatrix)
}

func TestValidateShape(t *testing.T) {
	c, err := matrix.FromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateShape(c, 1, 3))
	require.ErrorIs(t, matrix.ValidateShape(c, 3, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 1), matrix.ErrNilMatrix)
}

func TestParseRounding(t *testing.T) {
	r, err := matrix.ParseRounding("")
	require.NoError(t, err)
	require.Equal(t, matrix.Truncate, r)

	r, err = matrix.ParseRounding("nearest")
	require.NoError(t, err)
	require.Equal(t, matrix.Nearest, r)
	require.Equal(t, "nearest", r.String())

	_, err = matrix.ParseRounding("ceil")
	require.ErrorIs(t, err, matrix.ErrUnknownRounding)
}
