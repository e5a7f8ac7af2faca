// SPDX-License-Identifier: MIT

package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/flow"
	"github.com/katalvlaran/pairmatch/match"
)

// fakeResult marks the listed (small, large) pair edges with the given flow.
func fakeResult(net *match.Network, cost int64, flows map[[2]int]int64) *flow.Result {
	res := &flow.Result{Flow: make(map[string]int64), Cost: cost}
	for ij, f := range flows {
		res.Flow[net.PairEdge(ij[0], ij[1])] = f
	}

	return res
}

func TestExtract(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), group("X", "Y", "Z"), distance.Precomputed,
		costs(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)

	m, err := match.Extract(net, fakeResult(net, 7, map[[2]int]int64{{0, 0}: 1, {1, 2}: 1}))
	require.NoError(t, err)
	require.Equal(t, []match.Pair{{Group1: "A", Group2: "X", Cost: 1}, {Group1: "B", Group2: "Z", Cost: 6}}, m.Pairs)
	require.Equal(t, int64(7), m.TotalCost)
}

func TestExtractInconsistent(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), group("X", "Y", "Z"), distance.Precomputed,
		costs(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)

	tests := []struct {
		name  string
		cost  int64
		flows map[[2]int]int64
	}{
		{"unmatched", 1, map[[2]int]int64{{0, 0}: 1}},
		{"two partners", 9, map[[2]int]int64{{0, 0}: 1, {0, 1}: 1, {1, 2}: 1}},
		{"shared partner", 5, map[[2]int]int64{{0, 0}: 1, {1, 0}: 1}},
		{"non-unit flow", 7, map[[2]int]int64{{0, 0}: 2, {1, 2}: 1}},
		{"cost mismatch", 8, map[[2]int]int64{{0, 0}: 1, {1, 2}: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := match.Extract(net, fakeResult(net, tt.cost, tt.flows))
			require.ErrorIs(t, err, match.ErrInternalInconsistency)
		})
	}

	_, err = match.Extract(nil, &flow.Result{})
	require.ErrorIs(t, err, match.ErrInternalInconsistency)
}

func TestExtractSwappedOrientation(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), group("X"), distance.Precomputed,
		costs(t, [][]float64{{4}, {2}}))
	require.NoError(t, err)

	m, err := match.Extract(net, fakeResult(net, 2, map[[2]int]int64{{0, 1}: 1}))
	require.NoError(t, err)
	require.Equal(t, []match.Pair{{Group1: "B", Group2: "X", Cost: 2}}, m.Pairs)
	require.Equal(t, match.Group2, m.SmallSide)
}

func TestCanonical(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), group("X", "Y", "Z"), distance.Precomputed,
		costs(t, [][]float64{{1, 1, 1}, {1, 1, 1}}))
	require.NoError(t, err)

	m, err := match.Extract(net, fakeResult(net, 2, map[[2]int]int64{{0, 2}: 1, {1, 0}: 1}))
	require.NoError(t, err)
	require.Equal(t, []match.Pair{{Group1: "A", Group2: "Z", Cost: 1}, {Group1: "B", Group2: "X", Cost: 1}}, m.Pairs)

	c, err := match.Canonical(net, m)
	require.NoError(t, err)
	require.Equal(t, []match.Pair{{Group1: "A", Group2: "X", Cost: 1}, {Group1: "B", Group2: "Y", Cost: 1}}, c.Pairs)
	require.Equal(t, m.TotalCost, c.TotalCost)

	_, err = match.Canonical(net, &match.Matching{})
	require.ErrorIs(t, err, match.ErrInternalInconsistency)
}
