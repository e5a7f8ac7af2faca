// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/pairmatch/core"
)

// arc is one direction of a residual edge. rev indexes the paired arc in
// adj[to]; edge indexes the originating core edge, or -1 for reverse arcs and
// terminal arcs.
type arc struct {
	to   int
	rev  int
	cap  int64
	cost int64
	edge int
}

// arcRef locates a forward arc inside the adjacency table.
type arcRef struct {
	from, pos int
}

// residual is an index-based residual network built from a core.Graph.
//
// Vertex i of the residual corresponds to the i-th vertex of g.Vertices();
// terminals (if any) are appended after them.
type residual struct {
	ids     []string
	index   map[string]int
	adj     [][]arc
	edges   []*core.Edge // core edges in insertion order
	forward []arcRef     // forward[i] is the arc of edges[i]
}

// buildResidual converts g into a residual network.
//
// Steps:
//  1. Index vertices in insertion order (O(V)).
//  2. For each edge in insertion order add a forward arc with the edge
//     capacity and cost, and a reverse arc with capacity 0 and negated cost.
//
// Complexity: O(V + E).
func buildResidual(g *core.Graph) *residual {
	vertices := g.Vertices()
	edges := g.Edges()
	r := &residual{
		ids:     make([]string, len(vertices)),
		index:   make(map[string]int, len(vertices)),
		adj:     make([][]arc, len(vertices)),
		edges:   edges,
		forward: make([]arcRef, len(edges)),
	}
	for i, v := range vertices {
		r.ids[i] = v.ID
		r.index[v.ID] = i
	}
	for i, e := range edges {
		r.forward[i] = r.addArc(r.index[e.From], r.index[e.To], e.Capacity, e.Cost, i)
	}

	return r
}

// addNode appends an internal vertex and returns its index.
func (r *residual) addNode() int {
	r.adj = append(r.adj, nil)
	return len(r.adj) - 1
}

// addArc inserts u→v with the given capacity and cost plus its reverse arc.
func (r *residual) addArc(u, v int, capacity, cost int64, edge int) arcRef {
	fwdPos := len(r.adj[u])
	revPos := len(r.adj[v])
	r.adj[u] = append(r.adj[u], arc{to: v, rev: revPos, cap: capacity, cost: cost, edge: edge})
	r.adj[v] = append(r.adj[v], arc{to: u, rev: fwdPos, cap: 0, cost: -cost, edge: -1})

	return arcRef{from: u, pos: fwdPos}
}

// attachDemands adds a super-source feeding every supply vertex and a
// super-sink draining every demand vertex, in vertex insertion order.
func (r *residual) attachDemands(g *core.Graph) (source, sink int) {
	source, sink = r.addNode(), r.addNode()
	for i, v := range g.Vertices() {
		switch {
		case v.Demand < 0:
			r.addArc(source, i, -v.Demand, 0, -1)
		case v.Demand > 0:
			r.addArc(i, sink, v.Demand, 0, -1)
		}
	}

	return source, sink
}

// push moves amount units along arc adj[u][pos].
func (r *residual) push(u, pos int, amount int64) {
	a := &r.adj[u][pos]
	a.cap -= amount
	r.adj[a.to][a.rev].cap += amount
}

// clone deep-copies the arc tables so a probe can run without disturbing r.
func (r *residual) clone() *residual {
	c := &residual{
		ids:     r.ids,
		index:   r.index,
		adj:     make([][]arc, len(r.adj)),
		edges:   r.edges,
		forward: r.forward,
	}
	for i, arcs := range r.adj {
		c.adj[i] = append([]arc(nil), arcs...)
	}

	return c
}

// edgeFlows reports flow per core edge: original capacity minus residual capacity.
func (r *residual) edgeFlows() (map[string]int64, int64) {
	flows := make(map[string]int64, len(r.edges))
	var cost int64
	for i, e := range r.edges {
		ref := r.forward[i]
		f := e.Capacity - r.adj[ref.from][ref.pos].cap
		flows[e.ID] = f
		cost += f * e.Cost
	}

	return flows, cost
}
