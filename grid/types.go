package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
)

// Point is a cell coordinate. X is the row, Y the column within the row.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Node is a single grid cell. It never changes after Build.
type Node struct {
	Point
	Cost float64 // Cost paid to enter this cell
}

// Grid owns every Node built from one cost matrix.
// nodes[x][y] is the cell built from matrix[x][y]; offsets[x] is the linear
// index of nodes[x][0]. Rows may differ in length.
type Grid struct {
	nodes   [][]*Node
	offsets []int
	size    int
}

// neighborOffsets lists 4-connected moves in search order: W, E, S, N.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
