// SPDX-License-Identifier: MIT

// Package core defines the flow-network graph consumed by the min-cost flow
// solver: vertices carrying a demand, and directed edges carrying a capacity
// and a per-unit cost.
//
// The Graph G = (V, E) is a directed multigraph-free network:
//
//   - Vertex.Demand follows the networkx convention: a negative demand is a
//     supply (the vertex emits flow), a positive demand must be absorbed.
//     A feasible flow balances every vertex: inflow − outflow == Demand.
//   - Edge.Capacity is the upper bound of flow on the edge (lower bound 0).
//   - Edge.Cost is the cost per unit of flow.
//
// Determinism:
//
// Unlike a general-purpose graph, a flow network is consumed by index, so
// Vertices(), Edges() and OutEdges() return insertion order. Builders control
// tie-breaking in downstream algorithms simply by the order in which they add
// vertices and edges.
//
// Concurrency:
//
// All methods are safe for concurrent use. A single sync.RWMutex guards the
// vertex catalog, edge catalog and adjacency. Networks are normally built once
// and then only read.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - AddVertex on an existing ID.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNegativeCapacity    - edge capacity below zero.
//	ErrLoopNotAllowed      - AddEdge with from == to (never allowed).
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("s", core.WithDemand(-1))
//	_ = g.AddVertex("t", core.WithDemand(1))
//	_, _ = g.AddEdge("s", "t", 1, 7)
package core
