// SPDX-License-Identifier: MIT

package match

import "errors"

// Sentinel errors returned by Match and its building blocks.
var (
	// ErrInvalidInput reports malformed groups or cost matrices.
	ErrInvalidInput = errors.New("match: invalid input")

	// ErrUnsupportedMetric reports a metric name outside distance.Names().
	ErrUnsupportedMetric = errors.New("match: unsupported metric")

	// ErrDimensionMismatch reports feature vectors of unequal length.
	ErrDimensionMismatch = errors.New("match: feature dimension mismatch")

	// ErrInfeasibleFlow reports that the solver found no feasible flow.
	ErrInfeasibleFlow = errors.New("match: infeasible flow")

	// ErrInternalInconsistency reports a solved flow that violates the
	// unit-capacity or unit-supply structure of the matching network.
	ErrInternalInconsistency = errors.New("match: internal inconsistency")
)
