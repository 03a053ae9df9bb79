// File: methods_clone.go
// Role: Deep copies of a Graph, storage and flags included.

package core

// Clone returns an independent deep copy of g: node order, adjacency lists,
// disabled nodes and vulnerable marks. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order:      make([]string, len(g.order)),
		adjacency:  make(map[string][]Neighbor, len(g.adjacency)),
		disabled:   make(map[string]struct{}, len(g.disabled)),
		vulnerable: make(map[Pair]struct{}, len(g.vulnerable)),
	}
	copy(c.order, g.order)
	for id, nbrs := range g.adjacency {
		cp := make([]Neighbor, len(nbrs))
		copy(cp, nbrs)
		c.adjacency[id] = cp
	}
	for id := range g.disabled {
		c.disabled[id] = struct{}{}
	}
	for p := range g.vulnerable {
		c.vulnerable[p] = struct{}{}
	}

	return c
}

// CloneEmpty returns a Graph with the same nodes (in the same order) but no
// edges and no flags.
func (g *Graph) CloneEmpty() *Graph {
	c := NewGraph()
	for _, id := range g.order {
		_ = c.AddNode(id)
	}

	return c
}
