// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/core"
)

// MaxFlow computes the maximum flow from source to sink in g using Dinic's
// algorithm (level graph + blocking flows). Edge costs and vertex demands are
// ignored.
//
// Steps:
//  1. Normalize options and validate source and sink (O(1)).
//  2. Build the residual network (O(V + E)).
//  3. Run dinic until the sink is unreachable.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func MaxFlow(g *core.Graph, source, sink string, opts FlowOptions) (int64, error) {
	opts.normalize()
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}

	r := buildResidual(g)
	s, t := r.index[source], r.index[sink]
	if s == t {
		return 0, nil
	}

	return r.dinic(opts, s, t, math.MaxInt64)
}

// dinic pushes up to limit units from s to t, mutating r.
//
// Each phase:
//  1. Cancellation check.
//  2. BFS from s to assign levels over arcs with positive capacity (O(V + E)).
//  3. If t is unreachable, stop.
//  4. DFS blocking flow with per-vertex arc iterators, optionally breaking
//     out every LevelRebuildInterval augmentations to rebuild the levels.
func (r *residual) dinic(opts FlowOptions, s, t int, limit int64) (int64, error) {
	ctx := opts.Ctx
	n := len(r.adj)
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)

	var total int64
	augmentCount := 0
	for total < limit {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		for i := range level {
			level[i] = -1
		}
		level[s] = 0
		queue = append(queue[:0], s)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range r.adj[u] {
				if a.cap > 0 && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[t] < 0 {
			break
		}

		for i := range iter {
			iter[i] = 0
		}
		for total < limit {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			pushed := r.dinicPush(ctx, level, iter, s, t, limit-total)
			if pushed == 0 {
				break
			}
			total += pushed
			augmentCount++
			if opts.Verbose {
				opts.Logger.Debug("dinic push",
					zap.Int64("pushed", pushed),
					zap.Int64("total", total))
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return total, nil
}

// dinicPush recursively pushes flow along the level graph and returns the
// amount actually sent.
func (r *residual) dinicPush(ctx context.Context, level, iter []int, u, t int, available int64) int64 {
	if u == t {
		return available
	}
	if ctx.Err() != nil {
		return 0
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		a := r.adj[u][iter[u]]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		pushed := r.dinicPush(ctx, level, iter, a.to, t, send)
		if pushed > 0 {
			r.push(u, iter[u], pushed)
			return pushed
		}
	}

	return 0
}
