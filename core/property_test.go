package core_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/netres/core"
)

// randomGraph builds a graph on n nodes from a flat list of endpoint indices.
// Consecutive pairs (ends[2i], ends[2i+1]) become edges; loops are skipped.
func randomGraph(n int, ends []int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(fmt.Sprintf("N%d", i))
	}
	for i := 0; i+1 < len(ends); i += 2 {
		u, v := ends[i]%n, ends[i+1]%n
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), float64(1+i%7))
	}

	return g
}

// TestGraphInvariants checks structural properties that must hold for any graph.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Edges never lists both (u,v) and (v,u) for a simple pair", prop.ForAll(
		func(n int, ends []int) bool {
			g := randomGraph(n, ends)
			stored := 0
			for _, id := range g.Nodes() {
				stored += len(g.Neighbors(id))
			}
			// every undirected edge is stored twice and reported once
			return len(g.Edges())*2 == stored
		},
		gen.IntRange(2, 12),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("adjacency is symmetric", prop.ForAll(
		func(n int, ends []int) bool {
			g := randomGraph(n, ends)
			for _, e := range g.Edges() {
				if !g.HasEdge(e.From, e.To) || !g.HasEdge(e.To, e.From) {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 12),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("Enable after Disable restores every active neighbor list", prop.ForAll(
		func(n int, ends []int, victim int) bool {
			g := randomGraph(n, ends)
			before := map[string][]core.Neighbor{}
			for _, id := range g.Nodes() {
				before[id] = g.ActiveNeighbors(id)
			}
			x := fmt.Sprintf("N%d", victim%n)
			g.Disable(x)
			g.Enable(x)
			for _, id := range g.Nodes() {
				if !reflect.DeepEqual(before[id], g.ActiveNeighbors(id)) {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 12),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
