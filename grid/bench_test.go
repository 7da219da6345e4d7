package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridastar/grid"
)

// BenchmarkBuild measures building a 1000×1000 grid from random costs.
// Complexity: O(W×H)
func BenchmarkBuild(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	m := make([][]float64, n)
	for x := range m {
		m[x] = make([]float64, n)
		for y := range m[x] {
			m[x][y] = float64(1 + rng.Intn(9))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Build(m)
	}
}

// BenchmarkNeighbors measures neighbour enumeration with a reused buffer.
func BenchmarkNeighbors(b *testing.B) {
	g := grid.Build([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	buf := make([]grid.Point, 0, 4)
	p := grid.Point{X: 1, Y: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.Neighbors(p, buf[:0])
	}
}
