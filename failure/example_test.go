package failure_test

import (
	"fmt"

	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/failure"
)

// ExampleAnalyzer_AnalyzeNodeFailure measures the loss of a relay station.
func ExampleAnalyzer_AnalyzeNodeFailure() {
	g := core.NewGraph()
	_ = g.AddEdge("Depot", "Relay", 2)
	_ = g.AddEdge("Relay", "Clinic", 3)
	_ = g.AddEdge("Relay", "School", 1)
	_ = g.AddEdge("Clinic", "School", 4)

	a, err := failure.NewAnalyzer(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	rep := a.AnalyzeNodeFailure("Relay")
	fmt.Printf("lost %d of %d pairs (%.1f%%)\n", rep.LostPairs, rep.TotalPairs, rep.ConnectivityLoss)
	fmt.Println("cut off:", rep.AffectedNodes)
	// Output:
	// lost 4 of 6 pairs (66.7%)
	// cut off: [Depot]
}

// ExampleAnalyzer_SimulateCascade compares a failed hub that still relays
// traffic with one that is cut out of the network.
func ExampleAnalyzer_SimulateCascade() {
	g := core.NewGraph()
	for _, leaf := range []string{"N", "E", "S", "W"} {
		_ = g.AddEdge("Hub", leaf, 1)
	}
	a, _ := failure.NewAnalyzer(g)
	rep := a.SimulateCascade([]string{"Hub"})
	fmt.Println(rep.Rounds, rep.TotalFailed)

	f := config.Default().Failure
	f.IsolateFailed = true
	a, _ = failure.NewAnalyzer(g, failure.WithConfig(f))
	rep = a.SimulateCascade([]string{"Hub"})
	fmt.Println(rep.Rounds, rep.TotalFailed)
	// Output:
	// 0 [Hub]
	// 1 [Hub N E S W]
}
