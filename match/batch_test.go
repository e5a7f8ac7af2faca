// SPDX-License-Identifier: MIT

package match_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMatchBatch(t *testing.T) {
	jobs := make([]match.Job, 12)
	for k := range jobs {
		// job k pairs a_i with b_{(i+k)%3} at zero cost
		rows := make([][]float64, 3)
		for i := range rows {
			rows[i] = []float64{5, 5, 5}
			rows[i][(i+k)%3] = 0
		}
		jobs[k] = match.Job{
			ID:     fmt.Sprintf("job-%d", k),
			Group1: numbered("a", 3),
			Group2: numbered("b", 3),
			Metric: distance.Precomputed,
			Cost:   costs(t, rows),
		}
	}

	out, err := match.MatchBatch(context.Background(), jobs, match.WithBatchLimit(3))
	require.NoError(t, err)
	require.Len(t, out, len(jobs))
	for k, m := range out {
		require.Zero(t, m.TotalCost, "job %d", k)
		for _, p := range m.Pairs {
			var i, j int
			_, err := fmt.Sscanf(p.Group1+" "+p.Group2, "a%d b%d", &i, &j)
			require.NoError(t, err)
			require.Equal(t, (i+k)%3, j, "job %d", k)
		}
	}
}

func TestMatchBatchError(t *testing.T) {
	jobs := []match.Job{
		{ID: "ok", Group1: group("A"), Group2: group("X"), Metric: distance.Precomputed, Cost: costs(t, [][]float64{{1}})},
		{ID: "bad", Group1: group("A"), Group2: group("X"), Metric: distance.Metric("nope")},
	}

	out, err := match.MatchBatch(context.Background(), jobs, match.WithBatchLimit(1))
	require.ErrorIs(t, err, match.ErrUnsupportedMetric)
	require.ErrorContains(t, err, "job 1 (bad)")
	require.Nil(t, out)
}

func TestMatchBatchEmpty(t *testing.T) {
	out, err := match.MatchBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, out)
}
