// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/netres/builder"
)

// ExampleBuildGraph stacks a topology and a fault overlay.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Wheel(5),
		builder.Disable(builder.CenterVertexID),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes(), g.EdgeCount(), g.ActiveDegree("A"))
	// Output: [A B C D Center] 8 2
}
