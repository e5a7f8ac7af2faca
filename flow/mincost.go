// SPDX-License-Identifier: MIT

package flow

import (
	"container/heap"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/core"
)

// inf marks an unreachable vertex. Half of MaxInt64 keeps dist+cost sums
// from overflowing.
const inf = math.MaxInt64 / 2

// MinCostFlow computes a flow on g that satisfies every vertex demand at
// minimum total cost.
//
// Steps:
//  1. Normalize options; validate g and the demand balance (ErrUnbalanced).
//  2. Build the residual network and attach a super-source/super-sink.
//  3. Probe feasibility with Dinic on a copy (ErrInfeasible if the maximum
//     flow is below the total supply).
//  4. Initial potentials: Bellman–Ford when any cost is negative
//     (ErrNegativeCycle), zero otherwise.
//  5. Until the supply is exhausted: Dijkstra over reduced costs from the
//     super-source, update potentials, augment the bottleneck along the
//     shortest path.
//  6. Read the flow of every core edge off the residual capacities.
//
// Complexity:
//
//	Time:   O(F · (V + E) · log V), F = total supply, plus O(V · E) for
//	        Bellman–Ford when negative costs are present.
//	Memory: O(V + E).
func MinCostFlow(g *core.Graph, opts FlowOptions) (*Result, error) {
	opts.normalize()
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	balance, supply := g.DemandBalance()
	if balance != 0 {
		return nil, fmt.Errorf("%w: demands sum to %d", ErrUnbalanced, balance)
	}

	r := buildResidual(g)
	s, t := r.attachDemands(g)

	if supply > 0 {
		probe := r.clone()
		maxFlow, err := probe.dinic(opts, s, t, supply)
		if err != nil {
			return nil, err
		}
		if maxFlow < supply {
			return nil, fmt.Errorf("%w: at most %d of %d supply units can reach a demand", ErrInfeasible, maxFlow, supply)
		}
	}

	potential, err := r.initialPotentials()
	if err != nil {
		return nil, err
	}

	sp := newPathSearch(len(r.adj))
	var value int64
	augmentations := 0
	for value < supply {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}

		sp.run(r, s, potential)
		if sp.dist[t] >= inf {
			// unreachable after a successful probe means a solver bug, but
			// the caller still gets a typed error rather than a partial flow
			return nil, fmt.Errorf("%w: sink unreachable after %d of %d units", ErrInfeasible, value, supply)
		}
		dt := sp.dist[t]
		for v := range potential {
			if sp.dist[v] < dt {
				potential[v] += sp.dist[v]
			} else {
				potential[v] += dt
			}
		}

		// bottleneck along the path
		amount := supply - value
		var pathCost int64
		for v := t; v != s; {
			u, pos := sp.prevNode[v], sp.prevArc[v]
			a := r.adj[u][pos]
			if a.cap < amount {
				amount = a.cap
			}
			pathCost += a.cost
			v = u
		}
		for v := t; v != s; {
			u, pos := sp.prevNode[v], sp.prevArc[v]
			r.push(u, pos, amount)
			v = u
		}
		value += amount
		augmentations++

		if opts.Verbose {
			opts.Logger.Debug("min-cost augmentation",
				zap.Int("step", augmentations),
				zap.Int64("units", amount),
				zap.Int64("path_cost", pathCost),
				zap.Int64("routed", value),
				zap.Int64("supply", supply))
		}
	}

	flows, cost := r.edgeFlows()
	opts.Logger.Debug("min-cost flow solved",
		zap.Int("vertices", len(r.ids)),
		zap.Int("edges", len(r.edges)),
		zap.Int64("value", value),
		zap.Int64("cost", cost),
		zap.Int("augmentations", augmentations))

	return &Result{
		Flow:          flows,
		Cost:          cost,
		Value:         value,
		Augmentations: augmentations,
	}, nil
}

// initialPotentials returns potentials under which every arc with positive
// capacity has a non-negative reduced cost.
//
// With non-negative costs the zero vector qualifies. Otherwise Bellman–Ford
// runs from a virtual root joined to every vertex at cost 0, which also
// detects negative cycles anywhere in the network.
func (r *residual) initialPotentials() ([]int64, error) {
	n := len(r.adj)
	potential := make([]int64, n)

	negative := false
	for u := range r.adj {
		for _, a := range r.adj[u] {
			if a.cap > 0 && a.cost < 0 {
				negative = true
			}
		}
	}
	if !negative {
		return potential, nil
	}

	for iter := 0; iter < n; iter++ {
		changed := false
		for u := range r.adj {
			for _, a := range r.adj[u] {
				if a.cap > 0 && potential[u]+a.cost < potential[a.to] {
					potential[a.to] = potential[u] + a.cost
					changed = true
				}
			}
		}
		if !changed {
			return potential, nil
		}
	}

	return nil, ErrNegativeCycle
}

// pathSearch holds the reusable buffers of one Dijkstra run.
type pathSearch struct {
	dist     []int64
	prevNode []int
	prevArc  []int
	done     []bool
	pq       nodePQ
}

func newPathSearch(n int) *pathSearch {
	return &pathSearch{
		dist:     make([]int64, n),
		prevNode: make([]int, n),
		prevArc:  make([]int, n),
		done:     make([]bool, n),
		pq:       make(nodePQ, 0, n),
	}
}

// run computes shortest reduced-cost distances from s over arcs with positive
// capacity. Reduced cost: cost(u,v) + potential[u] − potential[v] ≥ 0.
//
// A distance is replaced only on strict improvement, and equal heap keys pop
// in vertex index order, so the resulting tree is deterministic.
func (sp *pathSearch) run(r *residual, s int, potential []int64) {
	for i := range sp.dist {
		sp.dist[i] = inf
		sp.prevNode[i] = -1
		sp.prevArc[i] = -1
		sp.done[i] = false
	}
	sp.pq = sp.pq[:0]
	sp.dist[s] = 0
	heap.Push(&sp.pq, nodeItem{id: s, dist: 0})

	for sp.pq.Len() > 0 {
		item := heap.Pop(&sp.pq).(nodeItem)
		u := item.id
		if sp.done[u] {
			continue
		}
		sp.done[u] = true

		for pos, a := range r.adj[u] {
			if a.cap <= 0 || sp.done[a.to] {
				continue
			}
			nd := sp.dist[u] + a.cost + potential[u] - potential[a.to]
			if nd >= sp.dist[a.to] {
				continue
			}
			sp.dist[a.to] = nd
			sp.prevNode[a.to] = u
			sp.prevArc[a.to] = pos
			heap.Push(&sp.pq, nodeItem{id: a.to, dist: nd})
		}
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id. Stale entries are
// skipped on pop (lazy decrease-key).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
