// SPDX-License-Identifier: MIT

// Package flow implements network-flow algorithms on *core.Graph flow
// networks (vertices with demands, edges with capacity and per-unit cost).
//
// The key routines offered are:
//
//   - MinCostFlow
//
//   - Method: successive shortest augmenting paths with vertex potentials.
//     Initial potentials come from Bellman–Ford when any edge cost is
//     negative (zero otherwise); every later shortest-path search is a
//     Dijkstra run over non-negative reduced costs.
//
//   - Time:   O(F · E · log V), F = total supply.
//
//   - Memory: O(V + E) for the residual arcs, potentials and heap.
//
//   - Optimality: when no augmenting path remains, no residual cycle of
//     negative reduced cost exists, so the flow is a global optimum.
//
//   - MaxFlow
//
//   - Method: Dinic (BFS level graph + DFS blocking flows).
//
//   - Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//
//   - Used by MinCostFlow as a feasibility probe: if the maximum flow from
//     all supplies to all demands is below the total supply, the instance
//     is reported as ErrInfeasible before any cost is computed.
//
// # Residual representation
//
// Both algorithms convert the core.Graph into an index-based residual network
// once. Every edge becomes a forward arc and a paired reverse arc; vertex
// demands are attached through an internal super-source and super-sink that
// never appear in the caller's graph.
//
// # Determinism
//
// Vertices and edges are consumed in core.Graph insertion order, the heap
// breaks distance ties by the lower vertex index, and a distance is updated
// only on strict improvement. Identical networks therefore always produce the
// identical flow, not merely a flow of identical cost.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // checked between augmentations
//	    Logger               *zap.Logger     // nil means zap.NewNop()
//	    Verbose              bool            // log each augmentation at Debug
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// # Errors
//
//	ErrNilGraph       - graph is nil.
//	ErrSourceNotFound - MaxFlow source vertex missing.
//	ErrSinkNotFound   - MaxFlow sink vertex missing.
//	ErrUnbalanced     - vertex demands do not sum to zero.
//	ErrInfeasible     - demands cannot all be met within the capacities.
//	ErrNegativeCycle  - the network contains a cycle of negative total cost.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is done.
package flow
