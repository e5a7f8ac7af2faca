// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/flow"
	"github.com/katalvlaran/pairmatch/matrix"
)

// Pair is one matched couple, always oriented (group 1, group 2).
type Pair struct {
	Group1 string `json:"group1"`
	Group2 string `json:"group2"`
	Cost   int64  `json:"cost"`
}

// Matching is the result of Match.
type Matching struct {
	// Pairs holds one entry per small-side subject, in small-group order.
	Pairs []Pair `json:"pairs"`

	// TotalCost is the sum of pair costs, the minimum over all assignments.
	TotalCost int64 `json:"total_cost"`

	// SmallSide names the group that was fully matched.
	SmallSide Side `json:"-"`
}

// Lookup returns the partner of id. With fromGroup1 set, id is looked up
// among group 1 subjects and the group 2 partner is returned, and vice versa.
func (m *Matching) Lookup(id string, fromGroup1 bool) (string, bool) {
	for _, p := range m.Pairs {
		if fromGroup1 && p.Group1 == id {
			return p.Group2, true
		}
		if !fromGroup1 && p.Group2 == id {
			return p.Group1, true
		}
	}

	return "", false
}

// Match computes the minimum-cost one-to-one matching of the smaller group
// into the larger one.
//
// metric is distance.Precomputed or a name from distance.Names(). With
// Precomputed, cost is required and must be shaped |g1|×|g2|; otherwise it is
// ignored.
//
// Among equal-cost optima the canonical one is returned (see Canonical), so
// swapping g1 and g2 (and transposing cost) yields the same pairs.
//
// The call is synchronous and builds its own network; ctx is checked between
// solver augmentations. On error no Matching is returned.
func Match(ctx context.Context, g1, g2 Group, metric distance.Metric, cost *matrix.Cost, opts ...Option) (*Matching, error) {
	o := newOptions(opts)
	return match(ctx, g1, g2, metric, cost, o)
}

func match(ctx context.Context, g1, g2 Group, metric distance.Metric, cost *matrix.Cost, o options) (*Matching, error) {
	net, err := buildNetwork(g1, g2, metric, cost, o)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("matching network built",
		zap.Stringer("small_side", net.Roles.SmallSide),
		zap.Int("small", len(net.Roles.Small)),
		zap.Int("large", len(net.Roles.Large)),
		zap.String("metric", string(metric)),
		zap.Int("edges", net.Graph.EdgeCount()))

	res, err := flow.MinCostFlow(net.Graph, flow.FlowOptions{
		Ctx:     ctx,
		Logger:  o.logger,
		Verbose: o.verbose,
	})
	if err != nil {
		return nil, solverError(err)
	}

	partner, err := extractPartners(net, res)
	if err != nil {
		return nil, err
	}
	if partner, err = net.canonical(partner); err != nil {
		return nil, err
	}
	m := net.matching(partner)
	o.logger.Debug("matching extracted",
		zap.Int("pairs", len(m.Pairs)),
		zap.Int64("total_cost", m.TotalCost),
		zap.Int("augmentations", res.Augmentations))

	return m, nil
}

// solverError classifies a flow error. Context errors pass through untouched.
func solverError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, flow.ErrInfeasible):
		return fmt.Errorf("%w: %w", ErrInfeasibleFlow, err)
	default:
		// unbalanced demands or negative cycles cannot come out of assemble
		return fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
}
