package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netres/bfs"
	"github.com/katalvlaran/netres/core"
)

// chain builds v0—v1—…—v(n-1) with unit weights.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	_ = g.AddNode("v0")
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i), 1)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	_ = g.AddNode("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrBadMaxDepth) {
		t.Errorf("negative depth: want ErrBadMaxDepth, got %v", err)
	}
	g.Disable("A")
	if _, err := bfs.BFS(g, "A"); !errors.Is(err, bfs.ErrStartDisabled) {
		t.Errorf("disabled start: want ErrStartDisabled, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle A–B–C–D–A and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])

	path, err := res.PathTo("C")
	require.NoError(t, err)
	if !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v", path)
	}
	_, err = res.PathTo("nowhere")
	assert.Error(t, err)
}

func TestBFS_SkipsFailedElements(t *testing.T) {
	g := chain(5)
	require.NoError(t, g.AddEdge("v0", "v4", 1))
	g.Disable("v2")
	g.MarkVulnerable("v0", "v4")

	res, err := bfs.BFS(g, "v0")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := chain(6)

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	res, err = bfs.BFS(g, "v0", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6, "zero means unlimited")
}

func TestBFS_OnVisitErrorAborts(t *testing.T) {
	g := chain(4)
	boom := errors.New("boom")

	res, err := bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v2" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
}

func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(chain(3), "v0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath(t *testing.T) {
	g := core.NewGraph()
	// long cheap route and short expensive route: hops win
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "E", 50))
	require.NoError(t, g.AddEdge("E", "D", 50))
	require.NoError(t, g.AddNode("Z"))

	path, hops := bfs.ShortestPath(g, "A", "D")
	assert.Equal(t, []string{"A", "E", "D"}, path)
	assert.Equal(t, 2, hops)

	path, hops = bfs.ShortestPath(g, "A", "A")
	assert.Equal(t, []string{"A"}, path)
	assert.Zero(t, hops)

	for _, target := range []string{"Z", "missing"} {
		path, hops = bfs.ShortestPath(g, "A", target)
		assert.Nil(t, path)
		assert.Equal(t, bfs.Unreachable, hops)
	}

	g.Disable("E")
	path, hops = bfs.ShortestPath(g, "A", "D")
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	assert.Equal(t, 3, hops)

	path, hops = bfs.ShortestPath(g, "E", "D")
	assert.Nil(t, path)
	assert.Equal(t, bfs.Unreachable, hops)

	path, hops = bfs.ShortestPath(nil, "A", "D")
	assert.Nil(t, path)
	assert.Equal(t, bfs.Unreachable, hops)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddNode("F"))

	comps := bfs.Components(g)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}, comps)
	assert.Equal(t, []string{"A", "B", "C"}, bfs.Largest(comps))

	g.Disable("B")
	comps = bfs.Components(g)
	assert.Equal(t, [][]string{{"A"}, {"C"}, {"D", "E"}, {"F"}}, comps)
	assert.Equal(t, []string{"D", "E"}, bfs.Largest(comps))

	assert.Nil(t, bfs.Components(nil))
	assert.Nil(t, bfs.Largest(nil))
}
