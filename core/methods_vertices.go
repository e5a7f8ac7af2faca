// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.

package core

// AddVertex registers a new vertex.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject duplicates (ErrDuplicateVertex).
//   - Stage 3: Allocate the Vertex, apply opts, append to the insertion order.
//
// Unlike a general graph, AddVertex is not idempotent: a flow network that
// registers the same ID twice has been built incorrectly, and silently merging
// two vertices would merge their demands.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, 0, len(g.vertexOrder))
	for _, id := range g.vertexOrder {
		out = append(out, g.vertices[id])
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// DemandBalance returns the sum of all vertex demands together with the total
// supply (the sum of negated negative demands). A feasible network has a zero
// balance.
// Complexity: O(V).
func (g *Graph) DemandBalance() (balance, supply int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.vertexOrder {
		d := g.vertices[id].Demand
		balance += d
		if d < 0 {
			supply -= d
		}
	}

	return balance, supply
}
