// Package dfs implements depth-first searches over the active part of a
// core.Graph that a resilience study needs beyond shortest paths.
//
// What:
//
//   - AllPaths(g, start, end, maxPaths): enumerates simple routes from start
//     to end in depth-first order, stopping after maxPaths. Used to show
//     operators alternative routes that are not necessarily disjoint.
//   - ArticulationPoints(g): nodes whose failure splits their component
//     (cut vertices), found with low-link values in one DFS forest.
//
// Disabled nodes and vulnerable edges are never crossed, so both functions
// describe the network as it currently survives.
//
// Complexity:
//
//   - AllPaths:           exponential in the worst case; bounded by maxPaths
//     and by the number of simple paths.
//   - ArticulationPoints: Time O(V+E), Memory O(V).
package dfs
