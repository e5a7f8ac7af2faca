// SPDX-License-Identifier: MIT

package match

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/pairmatch/core"
	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/matrix"
)

// Vertex IDs of the terminals. Subject vertices are "small/<i>" and
// "large/<j>", so caller IDs never reach the graph and identical IDs in the
// two groups stay distinct vertices.
const (
	SourceID = "source"
	SinkID   = "sink"
)

// Vertex metadata keys set on subject vertices.
const (
	MetaSubjectID = "subject"
	MetaSide      = "side"
)

// Network is the flow network of one matching problem together with the
// bookkeeping the extractor needs. It is immutable once built.
type Network struct {
	Graph *core.Graph
	Roles Roles

	// Costs[i][j] is the integral cost of small subject i → large subject j.
	Costs [][]int64

	// pairEdges[i][j] is the core edge ID of small/i → large/j.
	pairEdges [][]string
}

// PairEdge returns the edge ID joining small subject i to large subject j.
func (n *Network) PairEdge(i, j int) string { return n.pairEdges[i][j] }

func smallVertex(i int) string { return "small/" + strconv.Itoa(i) }

func largeVertex(j int) string { return "large/" + strconv.Itoa(j) }

// BuildNetwork validates the input and constructs the matching network.
//
// When metric is distance.Precomputed, cost must be a |g1|×|g2| matrix (rows
// index group 1); it is transposed if group 2 is the small side. Otherwise
// cost is ignored and the matrix is computed from subject features with the
// named metric.
//
// Steps:
//  1. Validate both groups (ErrInvalidInput) and the metric name
//     (ErrUnsupportedMetric).
//  2. AssignRoles; an empty side is an error only under WithRejectEmpty.
//  3. Orient or compute the cost matrix and round it to integers.
//  4. Emit vertices source, sink, small/*, large/* and edges source→small,
//     large→sink, small→large, in that order.
//
// Complexity: O(|small|·|large|·d) for computed costs, O(|small|·|large|) otherwise.
func BuildNetwork(g1, g2 Group, metric distance.Metric, cost *matrix.Cost, opts ...Option) (*Network, error) {
	o := newOptions(opts)
	return buildNetwork(g1, g2, metric, cost, o)
}

func buildNetwork(g1, g2 Group, metric distance.Metric, cost *matrix.Cost, o options) (*Network, error) {
	if err := g1.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Group1, err)
	}
	if err := g2.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Group2, err)
	}

	precomputed := distance.IsPrecomputed(metric)
	var fn distance.Func
	if !precomputed {
		var err error
		if fn, err = distance.Lookup(metric); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedMetric, err)
		}
	}

	roles := AssignRoles(g1, g2)
	if len(roles.Small) == 0 && o.rejectEmpty {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidInput, roles.SmallSide)
	}

	var costs [][]int64
	switch {
	case precomputed && (cost != nil || len(roles.Small) > 0):
		c, err := orientCost(roles, cost)
		if err != nil {
			return nil, err
		}
		if costs, err = c.Integral(o.rounding); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		costs = costs[:len(roles.Small)]
	case !precomputed && len(roles.Small) > 0:
		c, err := computeCost(roles, fn)
		if err != nil {
			return nil, err
		}
		if costs, err = c.Integral(o.rounding); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return assemble(roles, costs)
}

// orientCost brings a caller matrix (rows = group 1, cols = group 2) into
// small×large orientation, transposing when group 2 is the small side. With an
// empty small side any matrix without entries is accepted.
func orientCost(roles Roles, cost *matrix.Cost) (*matrix.Cost, error) {
	if cost == nil {
		return nil, fmt.Errorf("%w: %w: precomputed metric requires a cost matrix", ErrInvalidInput, matrix.ErrNilMatrix)
	}
	c := cost
	if roles.Swapped() {
		c = cost.T()
	}
	if r, k := c.Dims(); len(roles.Small) == 0 && r*k == 0 {
		// 0×0 and 0×m hold the same (no) entries
		return c, nil
	}
	if err := matrix.ValidateShape(c, len(roles.Small), len(roles.Large)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return c, nil
}

// computeCost applies fn to every (small, large) feature pair.
func computeCost(roles Roles, fn distance.Func) (*matrix.Cost, error) {
	small, err := distance.Features(roles.Small.Vectors())
	if err != nil {
		return nil, featureError(roles.SmallSide, err)
	}
	large, err := distance.Features(roles.Large.Vectors())
	if err != nil {
		return nil, featureError(otherSide(roles.SmallSide), err)
	}
	c, err := distance.Pairwise(small, large, fn)
	if err != nil {
		return nil, featureError(0, err)
	}

	return c, nil
}

func featureError(side Side, err error) error {
	kind := ErrInvalidInput
	if errors.Is(err, distance.ErrDimensionMismatch) {
		kind = ErrDimensionMismatch
	}
	if side == 0 {
		return fmt.Errorf("%w: %w", kind, err)
	}

	return fmt.Errorf("%w: %s: %w", kind, side, err)
}

func otherSide(s Side) Side {
	if s == Group1 {
		return Group2
	}

	return Group1
}

// assemble emits the flow network for already-validated inputs.
func assemble(roles Roles, costs [][]int64) (*Network, error) {
	n, m := len(roles.Small), len(roles.Large)
	g := core.NewGraph()
	net := &Network{Graph: g, Roles: roles, Costs: costs, pairEdges: make([][]string, n)}

	if err := g.AddVertex(SourceID, core.WithDemand(int64(-n))); err != nil {
		return nil, err
	}
	if err := g.AddVertex(SinkID, core.WithDemand(int64(n))); err != nil {
		return nil, err
	}
	largeSide := otherSide(roles.SmallSide)
	for i, s := range roles.Small {
		if err := g.AddVertex(smallVertex(i),
			core.WithMetadata(MetaSubjectID, s.ID),
			core.WithMetadata(MetaSide, roles.SmallSide.String())); err != nil {
			return nil, err
		}
	}
	for j, s := range roles.Large {
		if err := g.AddVertex(largeVertex(j),
			core.WithMetadata(MetaSubjectID, s.ID),
			core.WithMetadata(MetaSide, largeSide.String())); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(SourceID, smallVertex(i), 1, 0); err != nil {
			return nil, err
		}
	}
	for j := 0; j < m; j++ {
		if _, err := g.AddEdge(largeVertex(j), SinkID, 1, 0); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		net.pairEdges[i] = make([]string, m)
		for j := 0; j < m; j++ {
			eid, err := g.AddEdge(smallVertex(i), largeVertex(j), 1, costs[i][j])
			if err != nil {
				return nil, err
			}
			net.pairEdges[i][j] = eid
		}
	}

	return net, nil
}
