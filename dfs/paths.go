package dfs

import "github.com/katalvlaran/netres/core"

// AllPaths returns up to maxPaths simple routes from start to end over active
// nodes and edges, in the order a depth-first search meets them (neighbors in
// adjacency order). Parallel edges yield the same route once.
//
// start == end (active) yields the single route [start]. maxPaths ≤ 0, a nil
// graph, or an unknown or disabled endpoint yields nil.
func AllPaths(g *core.Graph, start, end string, maxPaths int) [][]string {
	if maxPaths <= 0 || g == nil || !active(g, start) || !active(g, end) {
		return nil
	}

	w := &pathWalker{
		graph:   g,
		end:     end,
		limit:   maxPaths,
		onPath:  map[string]bool{},
		current: []string{start},
	}
	w.walk(start)

	return w.found
}

func active(g *core.Graph, id string) bool {
	return g.HasNode(id) && !g.IsDisabled(id)
}

// pathWalker holds the state of one enumeration.
type pathWalker struct {
	graph   *core.Graph
	end     string
	limit   int
	onPath  map[string]bool
	current []string
	found   [][]string
}

func (w *pathWalker) walk(u string) {
	if len(w.found) >= w.limit {
		return
	}
	if u == w.end {
		route := make([]string, len(w.current))
		copy(route, w.current)
		w.found = append(w.found, route)
		return
	}

	w.onPath[u] = true
	tried := map[string]bool{}
	for _, nb := range w.graph.ActiveNeighbors(u) {
		if w.onPath[nb.ID] || tried[nb.ID] {
			continue
		}
		tried[nb.ID] = true
		w.current = append(w.current, nb.ID)
		w.walk(nb.ID)
		w.current = w.current[:len(w.current)-1]
	}
	w.onPath[u] = false
}
