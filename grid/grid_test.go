package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/grid"
)

//----------------------------------------------------------------------------//
// Build and Validate Tests
//----------------------------------------------------------------------------//

// TestBuild_Cells verifies one node per entry with matching coordinates and cost.
func TestBuild_Cells(t *testing.T) {
	g := grid.Build([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols(0))
	require.Equal(t, 6, g.Len())
	require.False(t, g.Empty())

	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			n := g.Node(x, y)
			assert.Equal(t, grid.Point{X: x, Y: y}, n.Point)
			assert.Equal(t, float64(x*3+y+1), n.Cost)
		}
	}
}

// TestBuild_Degenerate checks that empty inputs build an empty grid without error.
func TestBuild_Degenerate(t *testing.T) {
	for name, m := range map[string][][]float64{
		"Nil":      nil,
		"NoRows":   {},
		"EmptyRow": {{}},
	} {
		t.Run(name, func(t *testing.T) {
			g := grid.Build(m)
			assert.True(t, g.Empty())
			assert.Equal(t, 0, g.Len())
			assert.False(t, g.InBounds(grid.Point{}))
		})
	}
}

// TestValidate_Errors verifies Validate rejects empty, ragged and negative inputs.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]float64
		err    error
	}{
		{"EmptyRows", [][]float64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"NegativeCost", [][]float64{{1, 2}, {3, -1}}, grid.ErrNegativeCost},
		{"Valid", [][]float64{{0, 2}, {3, 4}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := grid.Build(tc.matrix).Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

// TestInBounds_Jagged checks per-row bounds on a jagged grid.
func TestInBounds_Jagged(t *testing.T) {
	g := grid.Build([][]float64{
		{1, 1, 1},
		{1},
		{1, 1},
	})

	valid := []grid.Point{{0, 0}, {0, 2}, {1, 0}, {2, 1}}
	for _, p := range valid {
		assert.True(t, g.InBounds(p), "InBounds(%s)", p)
	}
	invalid := []grid.Point{{-1, 0}, {1, 1}, {2, 2}, {3, 0}, {0, -1}}
	for _, p := range invalid {
		assert.False(t, g.InBounds(p), "InBounds(%s)", p)
		_, ok := g.At(p)
		assert.False(t, ok, "At(%s)", p)
	}
}

// TestIndexPoint_RoundTrip verifies Index and Point are inverse over every cell,
// including across empty rows.
func TestIndexPoint_RoundTrip(t *testing.T) {
	g := grid.Build([][]float64{
		{1, 1},
		{},
		{1, 1, 1},
		{1},
	})
	require.Equal(t, 6, g.Len())

	seen := make(map[int]bool, g.Len())
	for x := 0; x < g.Rows(); x++ {
		for y := 0; y < g.Cols(x); y++ {
			p := grid.Point{X: x, Y: y}
			idx := g.Index(p)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, g.Len())
			require.False(t, seen[idx], "duplicate index %d", idx)
			seen[idx] = true
			require.Equal(t, p, g.Point(idx))
		}
	}
}

// TestNeighbors_Order checks the W, E, S, N order and omission at borders.
func TestNeighbors_Order(t *testing.T) {
	g := grid.Build([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	got := g.Neighbors(grid.Point{X: 1, Y: 1}, nil)
	assert.Equal(t, []grid.Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, got)

	got = g.Neighbors(grid.Point{X: 0, Y: 0}, nil)
	assert.Equal(t, []grid.Point{{1, 0}, {0, 1}}, got)

	got = g.Neighbors(grid.Point{X: 2, Y: 2}, nil)
	assert.Equal(t, []grid.Point{{1, 2}, {2, 1}}, got)
}

// TestNeighbors_Jagged ensures neighbours missing from shorter rows are omitted.
func TestNeighbors_Jagged(t *testing.T) {
	g := grid.Build([][]float64{
		{1, 1, 1},
		{1},
	})

	got := g.Neighbors(grid.Point{X: 0, Y: 2}, nil)
	assert.Equal(t, []grid.Point{{0, 1}}, got)
}

// TestPathCost sums both endpoints.
func TestPathCost(t *testing.T) {
	g := grid.Build([][]float64{{1, 2}, {3, 4}})
	path := []*grid.Node{g.Node(0, 0), g.Node(0, 1), g.Node(1, 1)}

	assert.Equal(t, 7.0, grid.PathCost(path))
	assert.Equal(t, 0.0, grid.PathCost(nil))
}
