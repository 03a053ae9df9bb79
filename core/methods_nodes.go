// File: methods_nodes.go
// Role: Node lifecycle & node-level queries.
// Determinism:
//   - Nodes() and ActiveNodes() return IDs in insertion order.

package core

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing node
	}
	g.adjacency[id] = []Neighbor{}
	g.order = append(g.order, id)

	return nil
}

// RemoveNode deletes a node, every edge incident to it (from both endpoints'
// lists), its disabled flag and every vulnerability mark naming it, including
// marks on pairs that share no edge. Removing an unknown node is a no-op.
//
// Steps:
//  1. For each neighbor n of id, filter id out of adjacency[n].
//  2. Drop adjacency[id] and the insertion-order entry.
//  3. Purge disabled and vulnerable state.
//
// Complexity: O(Σ deg(n) + V + |vulnerable|).
func (g *Graph) RemoveNode(id string) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return
	}

	// 1) Mirror cleanup on every neighbor list.
	for _, nb := range nbrs {
		g.adjacency[nb.ID] = without(g.adjacency[nb.ID], id)
	}

	// 2) Storage and order.
	delete(g.adjacency, id)
	for i, n := range g.order {
		if n == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	// 3) Flags.
	delete(g.disabled, id)
	for p := range g.vulnerable {
		if p.A == id || p.B == id {
			delete(g.vulnerable, p)
		}
	}
}

// HasNode reports whether id is stored in the graph (disabled or not).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Nodes returns every node ID in insertion order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns |V|, including disabled nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// ActiveNodes returns the nodes that are not disabled, in insertion order.
func (g *Graph) ActiveNodes() []string {
	out := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if _, off := g.disabled[id]; !off {
			out = append(out, id)
		}
	}

	return out
}

// Neighbors returns a copy of the raw adjacency list of id, ignoring every
// state flag. Unknown nodes yield nil.
func (g *Graph) Neighbors(id string) []Neighbor {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Neighbor, len(nbrs))
	copy(out, nbrs)

	return out
}

// without returns list minus every entry pointing at id. It reuses list's
// backing array, which is safe because callers replace the map value.
func without(list []Neighbor, id string) []Neighbor {
	kept := list[:0]
	for _, nb := range list {
		if nb.ID != id {
			kept = append(kept, nb)
		}
	}

	return kept
}
