// SPDX-License-Identifier: MIT

package match_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

// ExampleMatch pairs two treated subjects with their cheapest controls.
func ExampleMatch() {
	treated := match.Group{{ID: "A"}, {ID: "B"}}
	control := match.Group{{ID: "X"}, {ID: "Y"}, {ID: "Z"}}
	cost, _ := matrix.FromRows([][]float64{
		{1, 9, 9},
		{9, 1, 9},
	})

	m, err := match.Match(context.Background(), treated, control, distance.Precomputed, cost)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range m.Pairs {
		fmt.Println(p.Group1, p.Group2, p.Cost)
	}
	fmt.Println("total", m.TotalCost)
	// Output:
	// A X 1
	// B Y 1
	// total 2
}

// ExampleMatch_features derives costs from covariates.
func ExampleMatch_features() {
	treated := match.Group{{ID: "t1", Features: []float64{1, 1}}}
	control := match.Group{
		{ID: "c1", Features: []float64{4, 5}},
		{ID: "c2", Features: []float64{2, 1}},
	}

	m, _ := match.Match(context.Background(), treated, control, distance.SqEuclidean, nil)
	fmt.Println(m.Pairs[0].Group2, m.TotalCost)
	// Output: c2 1
}
