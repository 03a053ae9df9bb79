package flow

import "github.com/katalvlaran/netres/core"

// DisjointPaths finds up to k edge-disjoint routes from start to end.
//
// Steps:
//  1. Return nil for k ≤ 0, a nil graph, unknown endpoints or start == end.
//  2. Build a fresh residual graph with one unit arc per distinct neighbor.
//  3. Repeat up to k times: search an augmenting path that uses only arcs
//     with capacity left and never crosses a vulnerable edge; stop early
//     when none exists; otherwise push one unit along it.
//  4. Read the routes off the net flow, so two routes never share an edge
//     even when a later augmentation cancelled part of an earlier one.
//
// Disabled nodes are not excluded; callers that need the surviving network
// only should mark the affected edges vulnerable first. With SearchDFS the
// exploration order decides which routes come first, so two graphs with the
// same edges inserted in a different order may yield different (equally
// many) routes.
//
// Complexity: O(k·(V + E)) time, O(V + E) memory.
func DisjointPaths(g *core.Graph, start, end string, k int, opts ...Option) [][]string {
	// 1. Trivial rejections.
	if k <= 0 || g == nil || start == end || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Residual graph.
	r := newResidual(g)

	// 3. Augment.
	found := 0
	for found < k {
		var path []string
		if cfg.Search == SearchBFS {
			path = bfsAugmentingPath(g, r, start, end)
		} else {
			path = dfsAugmentingPath(g, r, start, end, map[string]bool{})
		}
		if path == nil {
			break
		}
		r.augment(path)
		found++
	}
	if found == 0 {
		return nil
	}

	// 4. Decompose.
	return decompose(g, r, start, end, found)
}

// EdgeConnectivity returns the maximum number of edge-disjoint routes between
// s and t that avoid vulnerable edges. It is 0 for unknown or equal endpoints.
func EdgeConnectivity(g *core.Graph, s, t string) int {
	if g == nil {
		return 0
	}

	return len(DisjointPaths(g, s, t, g.EdgeCount()+1))
}

// dfsAugmentingPath is a recursive depth-first search sharing one visited set
// across the whole search.
func dfsAugmentingPath(g *core.Graph, r *residual, u, end string, visited map[string]bool) []string {
	if u == end {
		return []string{end}
	}
	visited[u] = true
	for _, v := range r.arcs(u) {
		if visited[v] || g.IsVulnerable(u, v) {
			continue
		}
		if sub := dfsAugmentingPath(g, r, v, end, visited); sub != nil {
			return append([]string{u}, sub...)
		}
	}

	return nil
}

// bfsAugmentingPath finds the shortest (fewest-arc) augmenting path.
func bfsAugmentingPath(g *core.Graph, r *residual, start, end string) []string {
	parent := map[string]string{}
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.arcs(u) {
			if visited[v] || g.IsVulnerable(u, v) {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == end {
				path := []string{end}
				for cur := end; cur != start; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, v)
		}
	}

	return nil
}

// decompose walks count routes out of start along arcs with positive net
// flow, consuming each arc as it goes. Arcs are tried in the graph's
// adjacency order. A walk that revisits a node drops the loop it closed.
func decompose(g *core.Graph, r *residual, start, end string, count int) [][]string {
	out := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		path := []string{start}
		pos := map[string]int{start: 0}
		for u := start; u != end; {
			next := ""
			for _, nb := range g.Neighbors(u) {
				if r.flow[core.Pair{A: u, B: nb.ID}] > 0 {
					next = nb.ID
					break
				}
			}
			if next == "" {
				// net flow is conserved, so this cannot happen
				return out
			}
			r.flow[core.Pair{A: u, B: next}]--
			r.flow[core.Pair{A: next, B: u}]++

			if at, seen := pos[next]; seen {
				for _, id := range path[at+1:] {
					delete(pos, id)
				}
				path = path[:at+1]
			} else {
				pos[next] = len(path)
				path = append(path, next)
			}
			u = next
		}
		out = append(out, path)
	}

	return out
}
