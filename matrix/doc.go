// SPDX-License-Identifier: MIT

// Package matrix holds the assignment cost matrix: a dense rows×cols table of
// non-negative costs between two indexed subject sets.
//
// Storage is a gonum *mat.Dense. Unlike mat.Dense, a Cost may be empty
// (0×n or n×0): an empty group is a legal, if degenerate, matching input.
//
// Numeric policy:
//
//   - Entries must be finite and non-negative (ValidateCost).
//   - Costs are converted to int64 by a Rounding policy before they enter a
//     flow network; integral costs with unit capacities guarantee an integral
//     optimal flow. Entries above MaxCost are rejected so that int64 sums of
//     costs (totals, shortest-path potentials) cannot overflow.
//   - T returns a materialized transpose; the receiver is never mutated.
package matrix
