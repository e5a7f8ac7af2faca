// SPDX-License-Identifier: MIT

package match

import (
	"fmt"

	"github.com/katalvlaran/pairmatch/flow"
)

// Extract turns a solved flow into the caller-facing Matching.
//
// For every small subject exactly one outgoing pair edge must carry flow 1
// and the rest 0; every large subject may be used at most once; the summed
// pair costs must equal the solver's cost. Any violation is reported as
// ErrInternalInconsistency: it means the solver or the network is broken,
// so no edge is ever picked arbitrarily.
//
// Pairs follow small-group order and are oriented (group 1 ID, group 2 ID).
// Extract reports the solver's optimum as is; Match additionally settles
// ties between equal-cost optima (see Canonical).
//
// Complexity: O(|small|·|large|).
func Extract(net *Network, res *flow.Result) (*Matching, error) {
	partner, err := extractPartners(net, res)
	if err != nil {
		return nil, err
	}

	return net.matching(partner), nil
}

// extractPartners returns partner[i], the large index matched to small
// subject i.
func extractPartners(net *Network, res *flow.Result) ([]int, error) {
	if net == nil || res == nil {
		return nil, fmt.Errorf("%w: nil network or flow result", ErrInternalInconsistency)
	}
	roles := net.Roles
	n, m := len(roles.Small), len(roles.Large)

	partner := make([]int, n)
	usedBy := make([]int, m)
	for j := range usedBy {
		usedBy[j] = -1
	}

	var total int64
	for i := 0; i < n; i++ {
		p := -1
		for j := 0; j < m; j++ {
			switch f := res.EdgeFlow(net.PairEdge(i, j)); f {
			case 0:
				continue
			case 1:
				if p >= 0 {
					return nil, fmt.Errorf("%w: small subject %q matched to both %q and %q",
						ErrInternalInconsistency, roles.Small[i].ID, roles.Large[p].ID, roles.Large[j].ID)
				}
				p = j
			default:
				return nil, fmt.Errorf("%w: flow %d on unit edge %q→%q",
					ErrInternalInconsistency, f, roles.Small[i].ID, roles.Large[j].ID)
			}
		}
		if p < 0 {
			return nil, fmt.Errorf("%w: small subject %q left unmatched", ErrInternalInconsistency, roles.Small[i].ID)
		}
		if prev := usedBy[p]; prev >= 0 {
			return nil, fmt.Errorf("%w: large subject %q matched to both %q and %q",
				ErrInternalInconsistency, roles.Large[p].ID, roles.Small[prev].ID, roles.Small[i].ID)
		}
		usedBy[p] = i
		partner[i] = p
		total += net.Costs[i][p]
	}

	if total != res.Cost {
		return nil, fmt.Errorf("%w: matched pairs cost %d, solver reported %d",
			ErrInternalInconsistency, total, res.Cost)
	}

	return partner, nil
}

// matching builds the oriented result for partner (small index → large index).
func (n *Network) matching(partner []int) *Matching {
	out := &Matching{Pairs: make([]Pair, 0, len(partner)), SmallSide: n.Roles.SmallSide}
	for i, j := range partner {
		id1, id2 := n.Roles.orient(i, j)
		c := n.Costs[i][j]
		out.Pairs = append(out.Pairs, Pair{Group1: id1, Group2: id2, Cost: c})
		out.TotalCost += c
	}

	return out
}
