// Package astar finds least-cost paths on weighted grids with the A* algorithm.
//
// Overview:
//
//   - Search walks a grid.Grid under 4-connectivity (W, E, S, N) from a start
//     cell to an end cell and returns the cheapest path between them.
//   - Entering a cell costs that cell's Cost. A path's Weight sums Cost over
//     all of its cells, endpoints included; Result.Cost excludes the start.
//   - The open set is a pqueue.BinaryHeap ordered by f = g + h, with
//     in-place decrease-key, so no cell is ever queued twice.
//
// Heuristics:
//
//   - Manhattan (default): |Δx| + |Δy|. Admissible and consistent when every
//     cell costs at least 1, which guarantees the first extraction of end is
//     optimal.
//   - Zero: turns the search into Dijkstra's algorithm; optimal for any
//     non-negative costs, including fractional ones.
//   - Any func(a, b grid.Point) float64 via WithHeuristic.
//
// Outcomes:
//
//   - Path found:  Result.Path = start..end, Result.Found() == true.
//   - No path:     Result.Path is empty and err is nil. With no blocked cells
//     this only happens on a degenerate grid or when WithMaxCost cuts the
//     search short.
//   - start == end: Result.Path == [start], nothing is relaxed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          Search received a nil grid.
//   - ErrStartOutOfBounds: start names no cell of a non-empty grid.
//   - ErrEndOutOfBounds:   end names no cell of a non-empty grid.
//   - ErrNilHeuristic:     raised (via panic) by WithHeuristic(nil).
//   - ErrBadMaxCost:       raised (via panic) by WithMaxCost with a negative value.
//
// Negative costs and ragged inputs are the caller's responsibility; use
// grid.Grid.Validate before searching untrusted input.
//
// Thread safety:
//
//   - Search keeps all mutable state in a table private to the call and only
//     reads the Grid, so concurrent searches over one Grid are safe as long
//     as nobody mutates the Grid's nodes.
//   - A single search is strictly sequential.
//
// Example usage:
//
//	g := grid.Build(costs)
//	res, err := astar.Search(g, grid.Point{X: 0, Y: 0}, grid.Point{X: rows - 1, Y: cols - 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Total Weight:", res.Weight())
package astar
