// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for cost-matrix validation.
//   - Return sentinel errors wrapped with a validator tag.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape → entries)
//     so the reported error is deterministic when several checks fail.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(c *Cost) error {
	if c == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures c is exactly rows×cols.
// Complexity: O(1).
func ValidateShape(c *Cost, rows, cols int) error {
	if err := ValidateNotNil(c); err != nil {
		return err
	}
	if c.rows != rows || c.cols != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", c.rows, c.cols, rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateCost checks every entry is finite, non-negative and ≤ MaxCost.
// The first offending entry in row-major order is reported.
// Complexity: O(rows·cols).
func ValidateCost(c *Cost) error {
	if err := ValidateNotNil(c); err != nil {
		return err
	}
	if c.d == nil {
		return nil
	}
	for i := 0; i < c.rows; i++ {
		for j := 0; j < c.cols; j++ {
			v := c.d.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return validatorErrorf(fmt.Sprintf("ValidateCost: (%d,%d)", i, j), ErrNaNInf)
			case v < 0:
				return validatorErrorf(fmt.Sprintf("ValidateCost: (%d,%d)=%g", i, j, v), ErrNegative)
			case v > MaxCost:
				return validatorErrorf(fmt.Sprintf("ValidateCost: (%d,%d)=%g", i, j, v), ErrTooLarge)
			}
		}
	}

	return nil
}
