package core_test

import (
	"fmt"

	"github.com/katalvlaran/pairmatch/core"
)

// ExampleGraph builds the smallest transportation network: one supply vertex,
// one demand vertex, one edge.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("s", core.WithDemand(-1))
	_ = g.AddVertex("t", core.WithDemand(1))
	eid, _ := g.AddEdge("s", "t", 1, 7)

	e, _ := g.Edge(eid)
	balance, supply := g.DemandBalance()
	fmt.Println(e.ID, e.From, e.To, e.Capacity, e.Cost)
	fmt.Println(balance, supply)

	// Output:
	// e1 s t 1 7
	// 0 1
}
