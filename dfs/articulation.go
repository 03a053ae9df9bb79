package dfs

import "github.com/katalvlaran/netres/core"

// ArticulationPoints returns the active nodes whose removal would increase
// the number of connected components of the active graph, in node insertion
// order.
//
// Steps:
//  1. Run a DFS forest over active nodes, assigning discovery times.
//  2. low[u] = smallest discovery time reachable from u's subtree through
//     one back edge. Parallel edges to the parent count as back edges.
//  3. A root is a cut vertex iff it has two or more DFS children; any other
//     u is one iff some child c has low[c] ≥ disc[u].
func ArticulationPoints(g *core.Graph) []string {
	if g == nil {
		return nil
	}

	t := &tarjan{
		graph: g,
		disc:  map[string]int{},
		low:   map[string]int{},
		cut:   map[string]bool{},
	}
	nodes := g.ActiveNodes()
	for _, id := range nodes {
		if _, seen := t.disc[id]; !seen {
			t.visit(id, "", true)
		}
	}

	out := make([]string, 0, len(t.cut))
	for _, id := range nodes {
		if t.cut[id] {
			out = append(out, id)
		}
	}

	return out
}

// tarjan holds the low-link bookkeeping of one forest walk.
type tarjan struct {
	graph *core.Graph
	timer int
	disc  map[string]int
	low   map[string]int
	cut   map[string]bool
}

func (t *tarjan) visit(u, parent string, root bool) {
	t.disc[u] = t.timer
	t.low[u] = t.timer
	t.timer++

	children := 0
	parentSkipped := false
	for _, nb := range t.graph.ActiveNeighbors(u) {
		v := nb.ID
		// Only the first edge back to the parent is the tree edge.
		if v == parent && !parentSkipped {
			parentSkipped = true
			continue
		}
		if d, seen := t.disc[v]; seen {
			t.low[u] = min(t.low[u], d)
			continue
		}
		children++
		t.visit(v, u, false)
		t.low[u] = min(t.low[u], t.low[v])
		if !root && t.low[v] >= t.disc[u] {
			t.cut[u] = true
		}
	}
	if root && children > 1 {
		t.cut[u] = true
	}
}
