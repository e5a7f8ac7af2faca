// SPDX-License-Identifier: MIT

// Package distance computes assignment cost matrices from feature vectors
// with a named pairwise metric.
//
// Metric names follow the scipy cdist vocabulary so that configuration files
// and requests written against scipy-based tooling keep working:
//
//	euclidean    √Σ(aᵢ−bᵢ)²
//	sqeuclidean  Σ(aᵢ−bᵢ)²
//	cityblock    Σ|aᵢ−bᵢ|          (alias: manhattan)
//	chebyshev    max|aᵢ−bᵢ|
//	cosine       1 − a·b / (‖a‖‖b‖)
//	braycurtis   Σ|aᵢ−bᵢ| / Σ|aᵢ+bᵢ|
//	canberra     Σ|aᵢ−bᵢ| / (|aᵢ|+|bᵢ|), 0/0 terms count as 0
//	hamming      fraction of components that differ
//
// Precomputed is not a metric: it tells callers that costs arrive as a matrix.
//
// Vector norms are delegated to gonum.org/v1/gonum/floats.
package distance
