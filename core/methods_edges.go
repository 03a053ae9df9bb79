// File: methods_edges.go
// Role: Edge lifecycle & edge queries.
// Determinism:
//   - Edges() walks nodes in insertion order and each adjacency list in
//     insertion order, so the first-encounter orientation is stable.

package core

import "math"

// AddEdge adds an undirected edge u—v with weight w, creating missing
// endpoints. A second AddEdge on the same pair adds a parallel edge.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Ensure both endpoints via AddNode.
//  3. Append (v,w) to adjacency[u] and (u,w) to adjacency[v].
//
// Errors:
//   - ErrEmptyNodeID    if u or v is "".
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadWeight      if w ≤ 0, NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if !(w > 0) || math.IsInf(w, 1) {
		return ErrBadWeight
	}

	// 2) Ensure endpoints exist (cannot fail: IDs validated above)
	_ = g.AddNode(u)
	_ = g.AddNode(v)

	// 3) Symmetric storage
	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: w})

	return nil
}

// RemoveEdge removes every u—v edge (both directions, parallel copies
// included) and clears the vulnerability mark of the pair. Unknown endpoints
// are ignored.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v string) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return
	}
	g.adjacency[u] = without(g.adjacency[u], v)
	g.adjacency[v] = without(g.adjacency[v], u)
	g.ClearVulnerable(u, v)
}

// HasEdge reports whether at least one u—v edge is stored, ignoring flags.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	for _, nb := range g.adjacency[u] {
		if nb.ID == v {
			return true
		}
	}

	return false
}

// Edges returns every undirected edge exactly once as (From, To, Weight),
// oriented the way it is first encountered. Flags are ignored.
//
// An entry (v,u) of adjacency[v] is skipped when (u,v) was already emitted
// while scanning u, so parallel edges still appear once per copy.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	seen := make(map[Pair]int)
	out := make([]Edge, 0)
	for _, u := range g.order {
		for _, nb := range g.adjacency[u] {
			// the mirror of an already emitted edge consumes one "seen" credit
			if n := seen[Pair{A: nb.ID, B: u}]; n > 0 {
				seen[Pair{A: nb.ID, B: u}] = n - 1
				continue
			}
			out = append(out, Edge{From: u, To: nb.ID, Weight: nb.Weight})
			seen[Pair{A: u, B: nb.ID}]++
		}
	}

	return out
}

// EdgeCount returns the number of logical edges (parallel copies counted).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}
