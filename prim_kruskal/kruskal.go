package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/unionfind"
)

// Kruskal computes the minimum spanning forest of g over every logical edge.
// Failure flags are ignored: the forest describes the physical network.
//
// Error Conditions:
//   - ErrNilGraph : if graph is nil.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Collect logical edges via graph.Edges() (first-encounter order).
//  3. Stable-sort edges by ascending Weight so equal weights keep Edges() order.
//  4. Register every node in a fresh unionfind.Set.
//  5. Accept each edge whose endpoints lie in different sets, merging them.
//  6. Stop early once the forest holds |V| - components edges.
//
// An empty graph yields an empty forest with weight 0. A disconnected graph
// yields one tree per component, so the edge count is always |V| - components.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Collect logical edges.
	edges := graph.Edges()

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. One singleton set per node.
	nodes := graph.Nodes()
	set := unionfind.New(nodes...)

	// 5. Greedy acceptance.
	forest := make([]core.Edge, 0, len(nodes))
	var total float64
	for _, e := range edges {
		if !set.Union(e.From, e.To) {
			continue // would close a cycle
		}
		forest = append(forest, e)
		total += e.Weight

		// 6. Every merge removes one set; a single set left means a spanning tree.
		if set.Count() == 1 {
			break
		}
	}

	return forest, total, nil
}
