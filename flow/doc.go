// Package flow finds redundant routes between two sites of a *core.Graph by
// running unit-capacity augmenting-path searches over a residual graph.
//
// Every undirected edge becomes two directed unit arcs (parallel copies
// collapse into one), so the number of routes found equals the number of
// edge-disjoint routes between the endpoints, bounded by k.
//
// # API
//
//   - DisjointPaths(g, start, end, k, opts...) [][]string
//     Up to k edge-disjoint routes; fewer when the network runs out.
//   - EdgeConnectivity(g, s, t) int
//     The largest number of such routes (k unbounded).
//
// # Searches
//
//   - SearchDFS (default): Ford–Fulkerson style depth-first search in
//     residual arc order.
//   - SearchBFS: Edmonds–Karp style breadth-first search; each round takes
//     the fewest-arc augmenting path.
//
// Vulnerable edges are never used in either direction. Disabled nodes are
// not filtered. Routes are edge-disjoint but may share nodes.
//
// The residual graph is rebuilt for every call and discarded afterwards; the
// input graph is never modified.
package flow
