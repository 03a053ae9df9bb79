package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dijkstra"
)

// ExampleShortestPath routes around a failed relay.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	res := dijkstra.ShortestPath(g, "A", "C")
	fmt.Println(res.Path, res.Distance)

	g.Disable("B")
	res = dijkstra.ShortestPath(g, "A", "C")
	fmt.Println(res.Path, res.Distance)

	g.MarkVulnerable("A", "C")
	res = dijkstra.ShortestPath(g, "A", "C")
	fmt.Println(res.Path, res.Distance, res.Reachable())
	// Output:
	// [A B C] 3
	// [A C] 5
	// [] +Inf false
}

// ExampleDistances lists the cost from a hub to every reachable site.
func ExampleDistances() {
	g := core.NewGraph()
	_ = g.AddEdge("Hub", "X", 2)
	_ = g.AddEdge("X", "Y", 2)
	_ = g.AddNode("Island")

	d := dijkstra.Distances(g, "Hub", dijkstra.WithHeap())
	fmt.Println(d["Hub"], d["X"], d["Y"], len(d))
	// Output: 0 2 4 3
}
