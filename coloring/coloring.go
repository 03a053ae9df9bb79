package coloring

import (
	"slices"
	"sort"

	"github.com/katalvlaran/netres/core"
)

// WelshPowell colors g and returns the coloring with its color count.
// A nil or empty graph yields an empty coloring and 0.
//
// Steps:
//  1. Order nodes by active degree, highest first; equal degrees keep
//     insertion order.
//  2. For each node, collect colors of already-colored active neighbors.
//  3. Assign the smallest index not in that set.
func WelshPowell(g *core.Graph) (Coloring, int) {
	if g == nil {
		return Coloring{}, 0
	}
	order := g.Nodes()
	sort.SliceStable(order, func(i, j int) bool {
		return g.ActiveDegree(order[i]) > g.ActiveDegree(order[j])
	})
	c := greedy(g, order)

	return c, c.Colors()
}

// ReverseOrder colors g greedily in reverse insertion order.
func ReverseOrder(g *core.Graph) (Coloring, int) {
	if g == nil {
		return Coloring{}, 0
	}
	order := g.Nodes()
	slices.Reverse(order)
	c := greedy(g, order)

	return c, c.Colors()
}

// Best runs every heuristic and returns the one with the fewest colors
// (the first listed on ties) along with all results.
func Best(g *core.Graph) (Result, []Result) {
	wp, wpn := WelshPowell(g)
	ro, ron := ReverseOrder(g)
	all := []Result{
		{Heuristic: HeuristicWelshPowell, Coloring: wp, Colors: wpn},
		{Heuristic: HeuristicReverseOrder, Coloring: ro, Colors: ron},
	}
	best := all[0]
	for _, r := range all[1:] {
		if r.Colors < best.Colors {
			best = r
		}
	}

	return best, all
}

// greedy assigns each node in order the smallest free color.
func greedy(g *core.Graph, order []string) Coloring {
	c := make(Coloring, len(order))
	for _, id := range order {
		used := make(map[int]bool)
		for _, nb := range g.ActiveNeighbors(id) {
			if col, ok := c[nb.ID]; ok {
				used[col] = true
			}
		}
		col := 0
		for used[col] {
			col++
		}
		c[id] = col
	}

	return c
}

// Validate reports whether no active edge of g joins two nodes of the same
// color, and lists each offending edge once in node insertion order. Nodes
// absent from c are not checked.
func Validate(g *core.Graph, c Coloring) (bool, []Violation) {
	if g == nil {
		return true, nil
	}
	var (
		out  []Violation
		seen = make(map[core.Pair]bool)
	)
	for _, id := range g.Nodes() {
		col, ok := c[id]
		if !ok {
			continue
		}
		for _, nb := range g.ActiveNeighbors(id) {
			if other, ok := c[nb.ID]; !ok || other != col {
				continue
			}
			if seen[core.Pair{A: nb.ID, B: id}] || seen[core.Pair{A: id, B: nb.ID}] {
				continue
			}
			seen[core.Pair{A: id, B: nb.ID}] = true
			out = append(out, Violation{From: id, To: nb.ID, Color: col})
		}
	}

	return len(out) == 0, out
}

// AnalyzeEfficiency compares c with the degree bound of g. By Brooks'
// theorem a connected graph other than a clique or odd cycle needs at most
// MaxDegree colors, which serves as the reference point.
func AnalyzeEfficiency(g *core.Graph, c Coloring) Efficiency {
	e := Efficiency{ChromaticNumber: c.Colors(), ColorsUsed: c.Distinct()}
	if g == nil || g.NodeCount() == 0 {
		return e
	}

	sum := 0
	for _, id := range g.Nodes() {
		d := g.ActiveDegree(id)
		sum += d
		e.MaxDegree = max(e.MaxDegree, d)
	}
	e.AverageDegree = float64(sum) / float64(g.NodeCount())
	e.TheoreticalMinimum = max(e.MaxDegree, 1)
	if e.ChromaticNumber > 0 {
		e.Efficiency = float64(e.TheoreticalMinimum) / float64(e.ChromaticNumber) * 100
	}

	return e
}

// MaximumIndependentSet greedily picks nodes no two of which share an
// active edge: lowest active degree first (insertion order on ties), each
// pick removing its neighbors. The result is maximal, not necessarily
// maximum.
func MaximumIndependentSet(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	order := g.Nodes()
	sort.SliceStable(order, func(i, j int) bool {
		return g.ActiveDegree(order[i]) < g.ActiveDegree(order[j])
	})

	var (
		set     []string
		blocked = make(map[string]bool, len(order))
	)
	for _, id := range order {
		if blocked[id] {
			continue
		}
		set = append(set, id)
		blocked[id] = true
		for _, nb := range g.ActiveNeighbors(id) {
			blocked[nb.ID] = true
		}
	}

	return set
}
