// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() and OutEdges() return insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import "strconv"

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates the directed edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and capacity, and reject self-loops.
//  2. Require both endpoints to exist (flow vertices carry demands, so they
//     are never created implicitly).
//  3. Enforce the multi-edge policy.
//  4. Store the edge and append it to the adjacency of from.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, capacity, cost int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if capacity < 0 {
		return "", ErrNegativeCapacity
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}
	if !g.allowMulti && g.pair[from][to] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := g.nextEdgeID()
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Capacity: capacity, Cost: cost}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.out[from] = append(g.out[from], eid)
	if g.pair[from] == nil {
		g.pair[from] = make(map[string]int)
	}
	g.pair[from][to]++

	return eid, nil
}

// nextEdgeID returns the next identifier. Caller holds the write lock.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// OutEdges returns the edges leaving id in insertion order.
// Complexity: O(deg⁺(id)).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := g.out[id]
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out, nil
}
