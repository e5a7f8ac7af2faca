// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates an edge was added with capacity < 0.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")

	// ErrLoopNotAllowed indicates a self-loop was attempted; flow networks never carry them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the flow network.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Demand is the required net inflow (inflow − outflow).
	// Negative values are supplies.
	Demand int64

	// Metadata stores arbitrary user data. It is shared with callers, not copied.
	Metadata map[string]interface{}
}

// Edge is a directed arc From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string

	// Capacity is the maximum flow the edge may carry.
	Capacity int64

	// Cost is charged per unit of flow.
	Cost int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithDemand sets the vertex demand. Use a negative value for supply.
func WithDemand(d int64) VertexOption {
	return func(v *Vertex) { v.Demand = d }
}

// WithMetadata attaches a key/value pair to the vertex metadata.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// Graph is a directed flow network.
//
// vertexOrder and edgeOrder record insertion order; out[from] lists edge IDs
// leaving from, also in insertion order.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool

	edgeSeq     uint64
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*Edge
	edgeOrder   []string

	// out[from] = edge IDs in insertion order
	out map[string][]string
	// pair[from][to] = number of edges from→to
	pair map[string]map[string]int
}

// NewGraph creates an empty network. By default parallel edges are rejected; loops always are.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]string),
		pair:     make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
