// SPDX-License-Identifier: MIT

package match

import (
	"fmt"
	"slices"
)

// Canonical rewrites an optimal matching into the canonical optimum, so that
// ties between equal-cost assignments never depend on argument order.
//
// The leading group is the small side; on equal sizes it is the group whose
// ID sequence compares lower, and group 1 when both sequences are identical.
// Walking the leading group in order, each subject takes the lowest-index
// partner that still admits an optimal completion. Match(A, B) and
// Match(B, A) with a transposed matrix therefore return the same pairs,
// except when equal-size groups carry identical ID sequences.
//
// m must come from Extract on net. The total cost is unchanged; a matching
// that turns out not to be optimal is ErrInternalInconsistency.
//
// Complexity: O(V·|small|·|large|) with V = |small|+|large|.
func Canonical(net *Network, m *Matching) (*Matching, error) {
	if net == nil || m == nil || len(m.Pairs) != len(net.Roles.Small) {
		return nil, fmt.Errorf("%w: matching does not belong to network", ErrInternalInconsistency)
	}
	partner := make([]int, len(m.Pairs))
	large := make(map[string]int, len(net.Roles.Large))
	for j, s := range net.Roles.Large {
		large[s.ID] = j
	}
	for i, p := range m.Pairs {
		id := p.Group2
		if net.Roles.SmallSide == Group2 {
			id = p.Group1
		}
		j, ok := large[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown subject %q", ErrInternalInconsistency, id)
		}
		partner[i] = j
	}

	partner, err := net.canonical(partner)
	if err != nil {
		return nil, err
	}
	out := net.matching(partner)
	if out.TotalCost != m.TotalCost {
		return nil, fmt.Errorf("%w: canonical cost %d differs from %d",
			ErrInternalInconsistency, out.TotalCost, m.TotalCost)
	}

	return out, nil
}

// leadsSmall reports whether the small side leads the canonical order.
func (r Roles) leadsSmall() bool {
	if len(r.Small) != len(r.Large) {
		return true
	}
	if c := slices.Compare(r.Small.IDs(), r.Large.IDs()); c != 0 {
		return c < 0
	}

	return r.SmallSide == Group1
}

func (n *Network) canonical(partner []int) ([]int, error) {
	if n.Roles.leadsSmall() {
		return leastAssignment(n.Costs, partner, len(n.Roles.Large))
	}

	// equal sizes: lead with the large side on the transposed problem
	k := len(partner)
	costs := make([][]int64, k)
	inv := make([]int, k)
	for j := range costs {
		costs[j] = make([]int64, k)
		for i := 0; i < k; i++ {
			costs[j][i] = n.Costs[i][j]
		}
	}
	for i, j := range partner {
		inv[j] = i
	}
	inv, err := leastAssignment(costs, inv, k)
	if err != nil {
		return nil, err
	}
	for j, i := range inv {
		partner[i] = j
	}

	return partner, nil
}

// assignment is the residual graph of a row-saturating matching: rows are
// nodes 0..r-1, columns r..r+m-1 and the sink r+m. An unmatched pair gives
// row→col at +cost, a matched pair col→row at −cost; a free column reaches
// the sink and the sink reaches every used column, both at 0.
type assignment struct {
	c       [][]int64
	r, m    int
	partner []int // row → col
	owner   []int // col → row, -1 when free
	fixed   []bool
	pi      []int64
}

// leastAssignment returns the lexicographically least (in row order) optimal
// assignment of rows to distinct columns, starting from the optimal partner.
//
// Steps:
//  1. Bellman–Ford potentials over the residual graph; a negative cycle
//     means partner was not optimal.
//  2. Two optima differ by zero-cost cycles made of tight arcs only. For
//     each row in order, search backwards from the row over tight arcs
//     avoiding settled rows, take the lowest better column that closes a
//     cycle, and rotate the matching along it. Then settle the row.
func leastAssignment(c [][]int64, partner []int, m int) ([]int, error) {
	r := len(c)
	if r == 0 {
		return partner, nil
	}
	a := &assignment{
		c:       c,
		r:       r,
		m:       m,
		partner: slices.Clone(partner),
		owner:   make([]int, m),
		fixed:   make([]bool, r),
		pi:      make([]int64, r+m+1),
	}
	for j := range a.owner {
		a.owner[j] = -1
	}
	for i, j := range a.partner {
		a.owner[j] = i
	}

	if err := a.potentials(); err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		a.improve(i)
		a.fixed[i] = true
	}

	return a.partner, nil
}

func (a *assignment) col(j int) int { return a.r + j }

func (a *assignment) sink() int { return a.r + a.m }

// arcs calls fn for every residual arc.
func (a *assignment) arcs(fn func(u, v int, w int64)) {
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.m; j++ {
			if a.partner[i] == j {
				fn(a.col(j), i, -a.c[i][j])
			} else {
				fn(i, a.col(j), a.c[i][j])
			}
		}
	}
	for j := 0; j < a.m; j++ {
		if a.owner[j] < 0 {
			fn(a.col(j), a.sink(), 0)
		} else {
			fn(a.sink(), a.col(j), 0)
		}
	}
}

func (a *assignment) potentials() error {
	nodes := len(a.pi)
	for round := 0; round <= nodes; round++ {
		changed := false
		a.arcs(func(u, v int, w int64) {
			if d := a.pi[u] + w; d < a.pi[v] {
				a.pi[v] = d
				changed = true
			}
		})
		if !changed {
			return nil
		}
	}

	return fmt.Errorf("%w: extracted matching is not optimal", ErrInternalInconsistency)
}

func (a *assignment) tight(u, v int, w int64) bool { return w+a.pi[u]-a.pi[v] == 0 }

// improve moves row i to the lowest column reachable through a zero-cost
// cycle, if any is lower than its current one.
func (a *assignment) improve(i int) {
	next := make([]int, len(a.pi))
	reached := make([]bool, len(a.pi))
	reached[i] = true
	queue := []int{i}
	visit := func(u, v int, w int64) {
		if reached[u] || (u < a.r && a.fixed[u]) || !a.tight(u, v, w) {
			return
		}
		reached[u] = true
		next[u] = v
		queue = append(queue, u)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		switch {
		case v < a.r:
			p := a.partner[v]
			visit(a.col(p), v, -a.c[v][p])
		case v < a.sink():
			j := v - a.r
			for u := 0; u < a.r; u++ {
				if a.partner[u] != j {
					visit(u, v, a.c[u][j])
				}
			}
			if a.owner[j] >= 0 {
				visit(a.sink(), v, 0)
			}
		default:
			for j := 0; j < a.m; j++ {
				if a.owner[j] < 0 {
					visit(a.col(j), v, 0)
				}
			}
		}
	}

	best := -1
	for j := 0; j < a.partner[i]; j++ {
		if reached[a.col(j)] && a.tight(i, a.col(j), a.c[i][j]) {
			best = j
			break
		}
	}
	if best < 0 {
		return
	}

	// cycle: i → best → next… → i
	rows := []int{i}
	for u := a.col(best); u != i; u = next[u] {
		if u < a.r {
			rows = append(rows, u)
		}
	}
	for _, u := range rows {
		a.owner[a.partner[u]] = -1
	}
	a.partner[i], a.owner[best] = best, i
	for _, u := range rows[1:] {
		j := next[u] - a.r
		a.partner[u], a.owner[j] = j, u
	}
}
