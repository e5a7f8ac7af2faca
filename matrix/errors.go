// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Validators
// return these sentinels wrapped with a validator tag; callers match them
// with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the input rows are ragged or the declared
	// shape disagrees with the backing data length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates the matrix shape differs from the shape
	// required by the caller (|small| × |large| for assignment costs).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative cost entry.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrTooLarge signals an entry above MaxCost, whose int64 sums could
	// overflow.
	ErrTooLarge = errors.New("matrix: entry exceeds MaxCost")

	// ErrNilMatrix indicates that a nil *Cost was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownRounding indicates an unrecognized rounding policy name.
	ErrUnknownRounding = errors.New("matrix: unknown rounding policy")
)
