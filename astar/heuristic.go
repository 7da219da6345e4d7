package astar

import "github.com/katalvlaran/gridastar/grid"

// Heuristic estimates the remaining cost from a to b.
// It must never overestimate for Search to return optimal paths.
type Heuristic func(a, b grid.Point) float64

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|. It is admissible and consistent
// for 4-connected movement whenever every cell costs at least 1.
func Manhattan(a, b grid.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Zero always returns 0, which turns Search into Dijkstra's algorithm.
// It is admissible for any non-negative costs.
func Zero(_, _ grid.Point) float64 { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
