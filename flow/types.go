// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrUnbalanced is returned when vertex demands do not sum to zero.
	ErrUnbalanced = errors.New("flow: total supply does not equal total demand")

	// ErrInfeasible is returned when no flow satisfies every demand.
	ErrInfeasible = errors.New("flow: no feasible flow")

	// ErrNegativeCycle is returned when the network has a negative-cost cycle.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle")
)

// FlowOptions configures the flow algorithms.
//   - Ctx: cancellation, checked between augmentations (default Background).
//   - Logger: structured logger (default zap.NewNop()).
//   - Verbose: if true, each augmentation is logged at Debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *zap.Logger
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is the outcome of MinCostFlow.
type Result struct {
	// Flow maps every core edge ID to the flow it carries, zero included.
	Flow map[string]int64

	// Cost is Σ flow(e)·cost(e) over all edges.
	Cost int64

	// Value is the number of units routed from supplies to demands.
	Value int64

	// Augmentations counts shortest-path augmentations performed.
	Augmentations int
}

// EdgeFlow returns the flow on edge id (0 for an unknown ID).
func (r *Result) EdgeFlow(id string) int64 {
	if r == nil {
		return 0
	}

	return r.Flow[id]
}
