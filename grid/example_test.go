package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// ExampleGrid_Neighbors shows the fixed W, E, S, N neighbour order
// and how border cells lose the neighbours that fall outside the grid.
func ExampleGrid_Neighbors() {
	g := grid.Build([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	for _, p := range g.Neighbors(grid.Point{X: 0, Y: 1}, nil) {
		n, _ := g.At(p)
		fmt.Printf("(%s) cost=%g\n", p, n.Cost)
	}

	// Output:
	// (1,1) cost=5
	// (0,0) cost=1
	// (0,2) cost=3
}
