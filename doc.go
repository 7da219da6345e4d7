// Package gridastar finds least-cost routes across weighted 2D grids.
//
// What is gridastar?
//
//	A small, allocation-conscious A* toolkit for cost matrices:
//		• grid:   cost matrix → cells, coordinate lookup, 4-connected neighbours
//		• pqueue: generic binary min-heap with in-place decrease-key
//		• astar:  A* search with Manhattan (default) or custom heuristics
//
// Model:
//
//   - Every cell has a non-negative cost; entering a cell pays its cost.
//   - Movement is 4-connected (W, E, S, N). There are no blocked cells, only
//     expensive ones.
//   - A Grid is immutable once built. Each search keeps its own state table,
//     so a Grid can be searched repeatedly and concurrently.
//
// Quick ASCII example (costs; start top-left, end bottom-right):
//
//	1  9  1
//	1  9  1
//	1  1  1
//
// The cheapest route runs down the left column and along the bottom row,
// weight 5.
//
// The gridpath command (cmd/gridpath) wraps the library for text files:
//
//	go install github.com/katalvlaran/gridastar/cmd/gridpath@latest
//	gridpath grid.txt
package gridastar
