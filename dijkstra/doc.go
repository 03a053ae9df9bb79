// Package dijkstra computes cheapest routes over the active part of a
// *core.Graph: disabled nodes and vulnerable edges are never traversed.
//
// Overview:
//
//   - ShortestPath(g, start, end, opts...) returns a Result{Path, Distance}.
//     No route, an unknown endpoint or a disabled endpoint all produce the
//     same sentinel result: Path == nil, Distance == +Inf.
//   - Distances(g, source, opts...) returns the distance to every node the
//     source can reach. The failure analyzer uses it to count lost pairs.
//
// Strategies:
//
//   - StrategyScan (default): picks the next node by scanning all active
//     nodes. O(V²) time, no heap allocation; suits small dense networks.
//   - StrategyHeap (WithHeap): lazy decrease-key binary heap.
//     O((V + E) log V) time, O(V + E) space.
//
// Both strategies break distance ties by node insertion order and only
// replace a predecessor on a strictly shorter distance, so they return the
// same path for the same graph.
//
// Options:
//
//   - WithHeap() / WithStrategy(s): select the strategy.
//   - WithMaxDistance(x): nodes farther than x are not explored; panics with
//     ErrBadMaxDistance on a negative or NaN cap.
//
// Weights are guaranteed positive by core.Graph.AddEdge, so no negative-weight
// scan is needed.
//
// Thread safety:
//
//   - Queries only read the graph. Concurrent queries are safe as long as no
//     goroutine mutates the graph or its failure flags at the same time.
package dijkstra
