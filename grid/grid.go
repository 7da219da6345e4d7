package grid

import (
	"fmt"
	"sort"
)

// Build constructs a Grid with one Node per entry of matrix, Cost set to
// the entry's value. It performs no validation: an empty matrix yields an
// empty Grid, and jagged rows are kept as they are. Call Validate when the
// input comes from an untrusted source.
// Complexity: O(N) time and memory.
func Build(matrix [][]float64) *Grid {
	g := &Grid{
		nodes:   make([][]*Node, len(matrix)),
		offsets: make([]int, len(matrix)),
	}
	for x, row := range matrix {
		g.offsets[x] = g.size
		// One backing array per row keeps cells of a row adjacent in memory.
		cells := make([]Node, len(row))
		g.nodes[x] = make([]*Node, len(row))
		for y, cost := range row {
			cells[y] = Node{Point: Point{X: x, Y: y}, Cost: cost}
			g.nodes[x][y] = &cells[y]
		}
		g.size += len(row)
	}

	return g
}

// Validate reports whether the grid is non-empty, rectangular and free of
// negative costs. The search never calls it.
// Complexity: O(N).
func (g *Grid) Validate() error {
	if len(g.nodes) == 0 || len(g.nodes[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g.nodes[0])
	for x, row := range g.nodes {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, x, len(row), w)
		}
		for _, n := range row {
			if n.Cost < 0 {
				return fmt.Errorf("%w: cell %s cost=%g", ErrNegativeCost, n.Point, n.Cost)
			}
		}
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.nodes) }

// Cols returns the length of row x, or 0 if x is out of range.
func (g *Grid) Cols(x int) int {
	if x < 0 || x >= len(g.nodes) {
		return 0
	}
	return len(g.nodes[x])
}

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.size }

// Empty reports whether the grid holds no cells at all.
func (g *Grid) Empty() bool { return g.size == 0 }

// InBounds reports whether p names an existing cell. Rows are checked
// individually, so jagged grids are handled.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < len(g.nodes) && p.Y >= 0 && p.Y < len(g.nodes[p.X])
}

// At returns the node at p and whether it exists.
func (g *Grid) At(p Point) (*Node, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return g.nodes[p.X][p.Y], true
}

// Node returns the node at (x,y) without a bounds check.
// It panics if the coordinate is out of range.
func (g *Grid) Node(x, y int) *Node {
	return g.nodes[x][y]
}

// Index maps an in-bounds point to its dense linear offset in [0, Len()).
// The result is undefined for out-of-bounds points.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return g.offsets[p.X] + p.Y
}

// Point converts a linear offset produced by Index back to its coordinate.
// Complexity: O(log Rows()).
func (g *Grid) Point(idx int) Point {
	// Last row whose offset is <= idx; empty rows share the next row's
	// offset and are skipped by taking the last match.
	x := sort.Search(len(g.offsets), func(i int) bool { return g.offsets[i] > idx }) - 1

	return Point{X: x, Y: idx - g.offsets[x]}
}

// Neighbors appends to dst the in-bounds 4-connected neighbours of p in
// the order west (x-1,y), east (x+1,y), south (x,y-1), north (x,y+1),
// and returns the extended slice. Missing neighbours are skipped.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point, dst []Point) []Point {
	for _, d := range neighborOffsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) {
			dst = append(dst, q)
		}
	}

	return dst
}

// PathCost sums Cost over every node of path, both endpoints included.
// An empty path costs 0.
func PathCost(path []*Node) float64 {
	var total float64
	for _, n := range path {
		total += n.Cost
	}

	return total
}
