// Package pairmatch computes optimal one-to-one matchings between two groups
// of subjects by reducing the assignment to a minimum-cost flow.
//
// Given a group of n subjects and a group of m subjects (n ≤ m, or the other
// way round), every subject of the smaller group is paired with a distinct
// subject of the larger one so that the summed pair cost is minimal. Costs
// come from a caller matrix or from a distance metric over feature vectors.
//
// Layout:
//
//	core/       directed capacitated graph with vertex demands and edge costs
//	flow/       Dinic max-flow and successive-shortest-path min-cost flow
//	matrix/     dense cost matrices (gonum), validation, integral rounding
//	distance/   pairwise metrics over feature vectors
//	match/      role assignment, network builder, extractor, Match, MatchBatch
//	dataset/    CSV readers for groups and cost matrices
//	config/     YAML configuration and logger construction
//	server/     HTTP API (chi, gzip, zap access logs)
//	cmd/pairmatch command-line front end (cobra)
//
// Quick example:
//
//	     A ──1── X
//	     B ──1── Y        Z stays unmatched
//
//	m, _ := match.Match(ctx, g1, g2, distance.Precomputed, cost)
//
//	go install github.com/katalvlaran/pairmatch/cmd/pairmatch@latest
package pairmatch
