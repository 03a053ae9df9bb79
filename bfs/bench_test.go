package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netres/bfs"
	"github.com/katalvlaran/netres/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N + 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkComponents runs Components on 100 disjoint 50-node chains.
func BenchmarkComponents(b *testing.B) {
	g := core.NewGraph()
	for c := 0; c < 100; c++ {
		for i := 1; i < 50; i++ {
			_ = g.AddEdge(fmt.Sprintf("c%d_%d", c, i-1), fmt.Sprintf("c%d_%d", c, i), 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
