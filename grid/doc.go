// Package grid models a 2D matrix of traversal costs as a set of cells
// that a path search can walk over.
//
// What:
//
//   - Grid wraps a [][]float64 cost matrix; one Node per entry.
//   - Node carries only static topology: its Point and its Cost.
//   - Neighbors yields the 4-connected cells (W, E, S, N) in a fixed order.
//   - Index/Point map coordinates to a dense linear offset, so searches can
//     keep their per-run state in flat slices instead of on the nodes.
//
// Coordinates:
//
//   - Point.X selects the row of the input matrix, Point.Y the column inside
//     that row, i.e. node (x,y) was built from matrix[x][y].
//   - West/East step across rows (x∓1), South/North step along a row (y∓1).
//
// Why static nodes:
//
//   - A Grid is never written after Build, so the same Grid can be searched
//     any number of times, sequentially or from several goroutines.
//
// Complexity:
//
//   - Build:     O(N) time and memory, N = number of cells.
//   - At, Index: O(1).
//   - Point:     O(log R), R = number of rows (binary search over row offsets).
//   - Neighbors: O(1).
//
// Errors (returned only by Validate, never by Build):
//
//   - ErrEmptyGrid:      no rows, or the first row has no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost:   a cell holds a negative cost.
package grid
