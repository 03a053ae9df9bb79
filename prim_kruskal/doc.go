// Package prim_kruskal provides minimum-spanning-tree construction over a
// *core.Graph: Kruskal's algorithm for the whole network (a spanning forest
// when the network is split) and Prim's algorithm for the component that
// contains a chosen root.
//
// What & Why
//
//   - A minimum spanning tree connects every node with the least total edge
//     weight. For a network it is the cheapest backbone that keeps every site
//     reachable; edges outside the tree are redundancy.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all logical edges by weight, then accept each
//     edge whose endpoints are still in different unionfind sets.
//
//   - Output: a minimum spanning forest. Its edge count is always
//     |V| − (number of components); an empty graph yields no edges.
//
//   - Determinism: equal weights keep core.Graph.Edges() order.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree from root with a min-heap of candidate edges.
//
//   - Output: the MST of root's component only.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Both algorithms read stored edges and ignore disabled nodes and vulnerable
// edges. Callers that want a backbone of the surviving network should build
// it from a filtered copy.
//
// Error Conditions
//
//   - ErrNilGraph      : graph is nil (both).
//   - ErrEmptyRoot     : root == "" (Prim).
//   - ErrNodeNotFound  : root is not in the graph (Prim).
//   - ErrUnknownMethod : Compute with an unrecognised MSTOptions.Method.
package prim_kruskal
