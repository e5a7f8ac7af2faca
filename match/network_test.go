// SPDX-License-Identifier: MIT

package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
)

func TestBuildNetworkShape(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), group("X", "Y", "Z"), distance.Precomputed,
		costs(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)

	g := net.Graph
	require.Equal(t, 2+2+3, g.VertexCount())
	require.Equal(t, 2+3+2*3, g.EdgeCount())

	ids := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	require.Equal(t, []string{"source", "sink", "small/0", "small/1", "large/0", "large/1", "large/2"}, ids)

	src, err := g.Vertex(match.SourceID)
	require.NoError(t, err)
	require.Equal(t, int64(-2), src.Demand)
	snk, err := g.Vertex(match.SinkID)
	require.NoError(t, err)
	require.Equal(t, int64(2), snk.Demand)

	b, err := g.Vertex("small/1")
	require.NoError(t, err)
	require.Equal(t, "B", b.Metadata[match.MetaSubjectID])
	require.Equal(t, "group1", b.Metadata[match.MetaSide])
	z, err := g.Vertex("large/2")
	require.NoError(t, err)
	require.Equal(t, "Z", z.Metadata[match.MetaSubjectID])
	require.Equal(t, "group2", z.Metadata[match.MetaSide])

	for _, e := range g.Edges() {
		require.Equal(t, int64(1), e.Capacity, "edge %s", e.ID)
	}
	e, err := g.Edge(net.PairEdge(1, 2))
	require.NoError(t, err)
	require.Equal(t, "small/1", e.From)
	require.Equal(t, "large/2", e.To)
	require.Equal(t, int64(6), e.Cost)
}

func TestBuildNetworkTransposes(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B", "C"), group("X"), distance.Precomputed,
		costs(t, [][]float64{{1}, {2}, {3}}))
	require.NoError(t, err)

	require.True(t, net.Roles.Swapped())
	require.Equal(t, []string{"X"}, net.Roles.Small.IDs())
	require.Equal(t, [][]int64{{1, 2, 3}}, net.Costs)
}

func TestBuildNetworkEmptySmallSide(t *testing.T) {
	net, err := match.BuildNetwork(group("A", "B"), nil, distance.Precomputed, nil)
	require.NoError(t, err)
	require.Equal(t, 2+2, net.Graph.VertexCount())
	require.Equal(t, 2, net.Graph.EdgeCount())

	src, err := net.Graph.Vertex(match.SourceID)
	require.NoError(t, err)
	require.Zero(t, src.Demand)
}

func TestAssignRoles(t *testing.T) {
	r := match.AssignRoles(group("A"), group("X", "Y"))
	require.Equal(t, match.Group1, r.SmallSide)
	require.False(t, r.Swapped())

	r = match.AssignRoles(group("A", "B"), group("X", "Y"))
	require.Equal(t, match.Group2, r.SmallSide)
	require.True(t, r.Swapped())
	require.Equal(t, []string{"A", "B"}, r.Large.IDs())
}

func TestGroupValidate(t *testing.T) {
	require.NoError(t, group("A", "B").Validate())
	require.NoError(t, match.Group(nil).Validate())
	require.ErrorIs(t, group("A", "A").Validate(), match.ErrInvalidInput)
	require.ErrorIs(t, group("").Validate(), match.ErrInvalidInput)
}

func TestSideString(t *testing.T) {
	require.Equal(t, "group1", match.Group1.String())
	require.Equal(t, "group2", match.Group2.String())
	require.Equal(t, "Side(0)", match.Side(0).String())
}
