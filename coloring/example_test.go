package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/netres/coloring"
	"github.com/katalvlaran/netres/core"
)

// ExampleWelshPowell assigns radio channels to four relay towers.
func ExampleWelshPowell() {
	g := core.NewGraph()
	_ = g.AddEdge("North", "East", 1)
	_ = g.AddEdge("East", "South", 1)
	_ = g.AddEdge("South", "West", 1)
	_ = g.AddEdge("West", "North", 1)
	_ = g.AddEdge("North", "South", 1)

	c, n := coloring.WelshPowell(g)
	fmt.Println("channels:", n)
	for _, id := range g.Nodes() {
		fmt.Printf("%s: %s\n", id, coloring.FrequencyBand(c[id]))
	}
	// Output:
	// channels: 3
	// North: Band A (2.4 GHz)
	// East: Band C (6 GHz)
	// South: Band B (5 GHz)
	// West: Band C (6 GHz)
}
