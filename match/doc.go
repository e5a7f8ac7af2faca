// SPDX-License-Identifier: MIT

// Package match computes optimal pairwise matchings between two groups of
// subjects, the design step of an observational study (Rosenbaum, "Optimal
// Matching for Observational Studies", 1989).
//
// Every subject of the smaller group is assigned to a distinct subject of the
// larger group so that the total cost is minimal. The problem is encoded as a
// min-cost flow network and solved exactly by package flow:
//
//	source ──(1,0)──▶ small/i ──(1,cost[i][j])──▶ large/j ──(1,0)──▶ sink
//	demand −|small|                                               demand +|small|
//
// Pipeline of Match:
//
//  1. AssignRoles picks the small side: the group with fewer subjects; on a
//     tie group 2 is the small side.
//  2. BuildNetwork produces the integral cost matrix (precomputed and
//     transposed if group 2 is small, or computed with a named metric) and
//     the flow network.
//  3. flow.MinCostFlow solves the network.
//  4. Extract reads one matched edge per small subject and orients every pair
//     as (group 1 ID, group 2 ID), whichever side was small.
//
// Empty groups:
//
// By default a match against an empty group is an empty Matching. With
// WithRejectEmpty it fails with ErrInvalidInput instead.
//
// Errors:
//
//	ErrInvalidInput          - bad IDs, bad or misshapen cost matrix, empty group (opt-in).
//	ErrUnsupportedMetric     - unknown metric name.
//	ErrDimensionMismatch     - feature vectors of different lengths.
//	ErrInfeasibleFlow        - no feasible flow (defensive).
//	ErrInternalInconsistency - the solved flow is not a valid matching (a bug).
//
// Each returned error also wraps the lower-level sentinel (matrix, distance,
// flow) that caused it, so both are reachable with errors.Is.
package match
