package bfs

import (
	"errors"

	"github.com/katalvlaran/netres/core"
)

// ShortestPath returns the fewest-hop route from start to end over active
// nodes and non-vulnerable edges, plus its hop count.
//
// start == end (active) yields [start], 0. A nil graph, an unknown or
// disabled endpoint, or no route yields nil, Unreachable.
//
// Complexity: O(V + E); the search stops as soon as end is dequeued.
func ShortestPath(g *core.Graph, start, end string) ([]string, int) {
	if g == nil || !g.HasNode(end) || g.IsDisabled(end) {
		return nil, Unreachable
	}

	res, err := BFS(g, start, WithOnVisit(func(id string, _ int) error {
		if id == end {
			return errFound{}
		}
		return nil
	}))
	// Only the errFound abort means end was reached.
	var found errFound
	if !errors.As(err, &found) {
		return nil, Unreachable
	}

	path, _ := res.PathTo(end)

	return path, res.Depth[end]
}

// errFound aborts the traversal once the target is visited.
type errFound struct{}

func (errFound) Error() string { return "bfs: target reached" }

// Components returns the connected components of the active graph.
// Components are listed in order of their first node's insertion, and each
// component lists its nodes in BFS order from that node. Disabled nodes
// belong to no component.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.ActiveNodes() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// Largest returns the biggest component (first one on ties), or nil for a
// graph with no active nodes.
func Largest(components [][]string) []string {
	var best []string
	for _, c := range components {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}
