// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxCost is the largest accepted entry: 2^40. Integral costs are summed as
// int64 (matching totals, path lengths and potentials in the solver), so any
// sum of up to 2^22 entries stays below 2^62 and cannot overflow.
const MaxCost = float64(1 << 40)

// Cost is an immutable rows×cols cost matrix.
type Cost struct {
	rows, cols int
	d          *mat.Dense // nil when rows*cols == 0
}

// NewCost wraps row-major data as a rows×cols matrix. data is copied.
//
// Errors:
//   - ErrBadShape if rows or cols is negative or len(data) != rows*cols.
func NewCost(rows, cols int, data []float64) (*Cost, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewCost %dx%d with %d entries: %w", rows, cols, len(data), ErrBadShape)
	}
	c := &Cost{rows: rows, cols: cols}
	if rows*cols > 0 {
		buf := make([]float64, len(data))
		copy(buf, data)
		c.d = mat.NewDense(rows, cols, buf)
	}

	return c, nil
}

// FromRows builds a matrix from a slice of equally long rows.
// A nil or empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape if the rows are ragged.
func FromRows(rows [][]float64) (*Cost, error) {
	if len(rows) == 0 {
		return &Cost{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(r), cols, ErrBadShape)
		}
		data = append(data, r...)
	}

	return NewCost(len(rows), cols, data)
}

// FromMatrix copies any gonum matrix into a Cost.
func FromMatrix(m mat.Matrix) *Cost {
	r, c := m.Dims()
	if r*c == 0 {
		return &Cost{rows: r, cols: c}
	}

	return &Cost{rows: r, cols: c, d: mat.DenseCopyOf(m)}
}

// Dims returns the number of rows and columns.
func (c *Cost) Dims() (rows, cols int) {
	if c == nil {
		return 0, 0
	}

	return c.rows, c.cols
}

// At returns entry (i, j).
//
// Errors:
//   - ErrOutOfRange for an index outside the matrix.
func (c *Cost) At(i, j int) (float64, error) {
	if c == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, c.rows, c.cols, ErrOutOfRange)
	}

	return c.d.At(i, j), nil
}

// T returns the transpose as a new matrix.
// Complexity: O(rows·cols).
func (c *Cost) T() *Cost {
	if c == nil {
		return nil
	}
	t := &Cost{rows: c.cols, cols: c.rows}
	if c.d != nil {
		t.d = mat.DenseCopyOf(c.d.T())
	}

	return t
}

// Rows returns a copy of the matrix as row slices.
func (c *Cost) Rows() [][]float64 {
	if c == nil {
		return nil
	}
	out := make([][]float64, c.rows)
	for i := range out {
		out[i] = make([]float64, c.cols)
		if c.d != nil {
			mat.Row(out[i], i, c.d)
		}
	}

	return out
}

// Sum returns the sum of all entries.
func (c *Cost) Sum() float64 {
	if c == nil || c.d == nil {
		return 0
	}

	return mat.Sum(c.d)
}

// Integral validates c and converts it to int64 costs using policy r.
//
// Steps:
//  1. ValidateCost: not nil, finite, non-negative, ≤ MaxCost.
//  2. Round each entry per r in fixed row-major order.
//
// Complexity: O(rows·cols).
func (c *Cost) Integral(r Rounding) ([][]int64, error) {
	if err := ValidateCost(c); err != nil {
		return nil, err
	}
	out := make([][]int64, c.rows)
	for i := 0; i < c.rows; i++ {
		out[i] = make([]int64, c.cols)
		for j := 0; j < c.cols; j++ {
			out[i][j] = r.apply(c.d.At(i, j))
		}
	}

	return out, nil
}

// String renders the matrix with gonum's formatter.
func (c *Cost) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.d == nil {
		return fmt.Sprintf("[%dx%d]", c.rows, c.cols)
	}

	return fmt.Sprintf("%v", mat.Formatted(c.d, mat.Squeeze()))
}

// Rounding selects how real-valued costs become integers.
type Rounding int

const (
	// Truncate drops the fractional part (an integer cast).
	Truncate Rounding = iota
	// Nearest rounds half away from zero.
	Nearest
)

// String implements fmt.Stringer.
func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding maps "truncate" / "nearest" to a Rounding.
// The empty string selects Truncate.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "", "truncate":
		return Truncate, nil
	case "nearest":
		return Nearest, nil
	default:
		return Truncate, fmt.Errorf("%q: %w", s, ErrUnknownRounding)
	}
}

func (r Rounding) apply(v float64) int64 {
	if r == Nearest {
		return int64(math.Round(v))
	}

	return int64(math.Trunc(v))
}
