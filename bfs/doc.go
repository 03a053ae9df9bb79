// Package bfs provides breadth-first search over the active part of a
// core.Graph, returning hop distances, parent links, and visit order.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing hop count and
//     returns a Result (Order, Depth, Parent).
//   - ShortestPath(g, start, end) returns the fewest-hop route and its hop
//     count, or (nil, Unreachable).
//   - Components(g) partitions the active nodes into connected components;
//     Largest picks the biggest one. The failure analyzer uses both to find
//     nodes cut off from the main network.
//
// Edge weights are ignored. Disabled nodes and vulnerable edges are never
// crossed, and parallel edges count as one hop.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx): abort with ctx.Err() on cancellation.
//   - WithMaxDepth(d):  stop exploring beyond depth d (0 = unlimited).
//   - WithOnVisit(fn):  hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrStartNotFound  if the start node does not exist.
//   - ErrStartDisabled  if the start node is disabled.
//   - ErrBadMaxDepth    if MaxDepth is negative.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
