package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

// BenchmarkSearch_Uniform measures corner-to-corner search on a 300×300
// grid of unit costs, where Manhattan is exact.
func BenchmarkSearch_Uniform(b *testing.B) {
	const n = 300
	g := grid.Build(uniform(n, n, 1))
	end := grid.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, grid.Point{}, end)
	}
}

// BenchmarkSearch_Random measures the same search on random costs in [1,9],
// where the heuristic is loose and most of the grid gets expanded.
func BenchmarkSearch_Random(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	g := grid.Build(randomMatrix(rng, n, n, 1, 9))
	end := grid.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, grid.Point{}, end)
	}
}

// BenchmarkSearch_Dijkstra is BenchmarkSearch_Random with the Zero heuristic.
func BenchmarkSearch_Dijkstra(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	g := grid.Build(randomMatrix(rng, n, n, 1, 9))
	end := grid.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, grid.Point{}, end, astar.WithHeuristic(astar.Zero))
	}
}
