// SPDX-License-Identifier: MIT

package match_test

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

func group(ids ...string) match.Group {
	g := make(match.Group, len(ids))
	for i, id := range ids {
		g[i] = match.Subject{ID: id}
	}

	return g
}

func numbered(prefix string, n int) match.Group {
	g := make(match.Group, n)
	for i := range g {
		g[i] = match.Subject{ID: fmt.Sprintf("%s%d", prefix, i)}
	}

	return g
}

func costs(t require.TestingT, rows [][]float64) *matrix.Cost {
	c, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return c
}

// bruteCost enumerates every injective assignment of the smaller side of
// rows (group 1 × group 2) into the larger one.
func bruteCost(rows [][]float64) int64 {
	n := len(rows)
	if n == 0 {
		return 0
	}
	m := len(rows[0])
	c := make([][]int64, n)
	for i := range rows {
		c[i] = make([]int64, m)
		for j := range rows[i] {
			c[i][j] = int64(rows[i][j])
		}
	}
	if n > m {
		t := make([][]int64, m)
		for j := range t {
			t[j] = make([]int64, n)
			for i := 0; i < n; i++ {
				t[j][i] = c[i][j]
			}
		}
		c, n, m = t, m, n
	}

	used := make([]bool, m)
	best := int64(-1)
	var rec func(i int, acc int64)
	rec = func(i int, acc int64) {
		if i == n {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		for j := 0; j < m; j++ {
			if !used[j] {
				used[j] = true
				rec(i+1, acc+c[i][j])
				used[j] = false
			}
		}
	}
	rec(0, 0)

	return best
}
