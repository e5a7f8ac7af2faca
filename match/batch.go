// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/matrix"
)

// Job is one independent matching problem.
type Job struct {
	ID     string
	Group1 Group
	Group2 Group
	Metric distance.Metric
	Cost   *matrix.Cost
}

// MatchBatch solves independent jobs in parallel, at most WithBatchLimit at a
// time. Jobs share no state; each is a plain Match call. Results are returned
// in job order. The first failing job cancels the rest and its error is
// returned, tagged with the job index and ID.
func MatchBatch(ctx context.Context, jobs []Job, opts ...Option) ([]*Matching, error) {
	o := newOptions(opts)
	out := make([]*Matching, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.batchLimit)
	for i := range jobs {
		job := jobs[i]
		eg.Go(func() error {
			m, err := match(ctx, job.Group1, job.Group2, job.Metric, job.Cost, o)
			if err != nil {
				o.logger.Debug("batch job failed", zap.Int("job", i), zap.String("id", job.ID), zap.Error(err))
				return fmt.Errorf("job %d (%s): %w", i, job.ID, err)
			}
			out[i] = m

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
