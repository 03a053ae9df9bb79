// File: methods_state.go
// Role: Transient failure flags (disabled nodes, vulnerable edges), the
//       "active" view derived from them, and scoped helpers that restore
//       the flags on every exit path.

package core

// Disable excludes id from every active query while keeping it in storage.
// Unknown nodes are ignored.
func (g *Graph) Disable(id string) {
	if g.HasNode(id) {
		g.disabled[id] = struct{}{}
	}
}

// Enable re-admits a previously disabled node. Enabling a node that is not
// disabled is a no-op.
func (g *Graph) Enable(id string) {
	delete(g.disabled, id)
}

// IsDisabled reports whether id is currently disabled.
func (g *Graph) IsDisabled(id string) bool {
	_, off := g.disabled[id]
	return off
}

// Disabled returns the currently disabled nodes in insertion order.
func (g *Graph) Disabled() []string {
	out := make([]string, 0, len(g.disabled))
	for _, id := range g.order {
		if _, off := g.disabled[id]; off {
			out = append(out, id)
		}
	}

	return out
}

// MarkVulnerable flags the u—v pair (both orientations) so that active
// queries skip it. Both endpoints must exist; otherwise the call is ignored.
func (g *Graph) MarkVulnerable(u, v string) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return
	}
	g.vulnerable[Pair{A: u, B: v}] = struct{}{}
	g.vulnerable[Pair{A: v, B: u}] = struct{}{}
}

// ClearVulnerable removes the vulnerability mark of the u—v pair.
func (g *Graph) ClearVulnerable(u, v string) {
	delete(g.vulnerable, Pair{A: u, B: v})
	delete(g.vulnerable, Pair{A: v, B: u})
}

// IsVulnerable reports whether the u—v pair is marked, in either orientation.
func (g *Graph) IsVulnerable(u, v string) bool {
	if _, ok := g.vulnerable[Pair{A: u, B: v}]; ok {
		return true
	}
	_, ok := g.vulnerable[Pair{A: v, B: u}]

	return ok
}

// ActiveNeighbors returns the neighbors of id reachable without crossing a
// disabled node or a vulnerable edge. A disabled or unknown id yields an
// empty (non-nil) slice. Parallel edges are reported once per copy.
//
// Complexity: O(deg(id)).
func (g *Graph) ActiveNeighbors(id string) []Neighbor {
	out := make([]Neighbor, 0, len(g.adjacency[id]))
	if g.IsDisabled(id) {
		return out
	}
	for _, nb := range g.adjacency[id] {
		if g.IsDisabled(nb.ID) {
			continue
		}
		if _, vuln := g.vulnerable[Pair{A: id, B: nb.ID}]; vuln {
			continue
		}
		out = append(out, nb)
	}

	return out
}

// ActiveDegree returns len(ActiveNeighbors(id)) without allocating.
func (g *Graph) ActiveDegree(id string) int {
	if g.IsDisabled(id) {
		return 0
	}
	deg := 0
	for _, nb := range g.adjacency[id] {
		if g.IsDisabled(nb.ID) {
			continue
		}
		if _, vuln := g.vulnerable[Pair{A: id, B: nb.ID}]; vuln {
			continue
		}
		deg++
	}

	return deg
}

// WithDisabled disables ids for the duration of fn and then restores the
// exact prior state, even if fn panics. Nodes that were already disabled
// stay disabled; unknown IDs are ignored.
func (g *Graph) WithDisabled(ids []string, fn func()) {
	added := make([]string, 0, len(ids))
	for _, id := range ids {
		if g.HasNode(id) && !g.IsDisabled(id) {
			g.disabled[id] = struct{}{}
			added = append(added, id)
		}
	}
	defer func() {
		for _, id := range added {
			delete(g.disabled, id)
		}
	}()

	fn()
}

// WithVulnerable marks pairs as vulnerable for the duration of fn and then
// clears only the marks it added, even if fn panics.
func (g *Graph) WithVulnerable(pairs []Pair, fn func()) {
	added := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if g.HasNode(p.A) && g.HasNode(p.B) && !g.IsVulnerable(p.A, p.B) {
			g.MarkVulnerable(p.A, p.B)
			added = append(added, p)
		}
	}
	defer func() {
		for _, p := range added {
			g.ClearVulnerable(p.A, p.B)
		}
	}()

	fn()
}
