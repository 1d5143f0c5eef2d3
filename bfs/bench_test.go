package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/commgraph/bfs"
	"github.com/katalvlaran/commgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_StarExcludeHub measures the removal-check pattern on a star.
func BenchmarkBFS_StarExcludeHub(b *testing.B) {
	const leaves = 5000
	g := core.NewGraph()
	for i := 0; i < leaves; i++ {
		_ = g.AddEdge("hub", fmt.Sprintf("l%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "l0", bfs.WithExclude("hub"))
	}
}
