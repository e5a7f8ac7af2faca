// SPDX-License-Identifier: MIT

package match

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// lexLeastOptimum enumerates every assignment of rows to distinct columns and
// returns the cheapest, breaking ties by row-order lexicographic comparison.
func lexLeastOptimum(c [][]int64, m int) []int {
	r := len(c)
	var best []int
	bestCost := int64(-1)
	cur := make([]int, r)
	used := make([]bool, m)
	var rec func(i int, acc int64)
	rec = func(i int, acc int64) {
		if i == r {
			if bestCost < 0 || acc < bestCost || (acc == bestCost && slices.Compare(cur, best) < 0) {
				bestCost, best = acc, slices.Clone(cur)
			}
			return
		}
		for j := 0; j < m; j++ {
			if !used[j] {
				used[j], cur[i] = true, j
				rec(i+1, acc+c[i][j])
				used[j] = false
			}
		}
	}
	rec(0, 0)

	return best
}

// anyOptimum returns the last cheapest assignment found, usually not the
// lexicographically least one.
func anyOptimum(c [][]int64, m int) []int {
	r := len(c)
	var best []int
	bestCost := int64(-1)
	cur := make([]int, r)
	used := make([]bool, m)
	var rec func(i int, acc int64)
	rec = func(i int, acc int64) {
		if i == r {
			if bestCost < 0 || acc <= bestCost {
				bestCost, best = acc, slices.Clone(cur)
			}
			return
		}
		for j := 0; j < m; j++ {
			if !used[j] {
				used[j], cur[i] = true, j
				rec(i+1, acc+c[i][j])
				used[j] = false
			}
		}
	}
	rec(0, 0)

	return best
}

func TestLeastAssignment(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 300; trial++ {
		r := 1 + rng.Intn(4)
		m := r + rng.Intn(3)
		c := make([][]int64, r)
		for i := range c {
			c[i] = make([]int64, m)
			for j := range c[i] {
				c[i][j] = int64(rng.Intn(3))
			}
		}

		got, err := leastAssignment(c, anyOptimum(c, m), m)
		require.NoError(t, err)
		require.Equal(t, lexLeastOptimum(c, m), got, "trial %d: %v", trial, c)
	}
}

func TestLeastAssignmentRejectsSuboptimal(t *testing.T) {
	c := [][]int64{{1, 2, 3}, {4, 5, 6}}
	// 1+6 while 1+5 is available
	_, err := leastAssignment(c, []int{0, 2}, 3)
	require.ErrorIs(t, err, ErrInternalInconsistency)
}

func TestLeadsSmall(t *testing.T) {
	g := func(ids ...string) Group {
		out := make(Group, len(ids))
		for i, id := range ids {
			out[i] = Subject{ID: id}
		}
		return out
	}

	require.True(t, AssignRoles(g("a"), g("x", "y")).leadsSmall())
	require.True(t, AssignRoles(g("x", "y"), g("a")).leadsSmall())
	// equal sizes: the lower ID sequence leads whatever the argument order
	require.False(t, AssignRoles(g("a", "b"), g("x", "y")).leadsSmall())
	require.True(t, AssignRoles(g("x", "y"), g("a", "b")).leadsSmall())
	// identical sequences: group 1 leads
	require.False(t, AssignRoles(g("a", "b"), g("a", "b")).leadsSmall())
}
