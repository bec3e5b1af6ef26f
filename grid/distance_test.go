package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rastergrid/coord"
	"github.com/katalvlaran/rastergrid/grid"
)

// TestDistanceField_Open3x3 checks the full table on an obstacle-free grid.
func TestDistanceField_Open3x3(t *testing.T) {
	g, err := grid.New(3, 3, 0)
	require.NoError(t, err)

	dist, err := g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	require.NoError(t, err)

	want := map[coord.Coord]int{
		{X: 0, Y: 0}: 0, {X: 0, Y: 1}: 1, {X: 1, Y: 0}: 1,
		{X: 1, Y: 1}: 2, {X: 2, Y: 0}: 2, {X: 0, Y: 2}: 2,
		{X: 2, Y: 1}: 3, {X: 1, Y: 2}: 3, {X: 2, Y: 2}: 4,
	}
	for c, d := range want {
		got, err := dist.AtC(c)
		require.NoError(t, err)
		assert.Equal(t, d, got, "distance at %v", c)
	}
}

// TestDistanceField_Obstacles verifies walls detour the search and enclosed
// cells stay unreached.
//
//	0 1 0
//	0 1 0
//	0 0 0
func TestDistanceField_Obstacles(t *testing.T) {
	g := mustRows(t, [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	before := g.Clone()

	dist, err := g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, -1, 6},
		{1, -1, 5},
		{2, 3, 4},
	}, dist.Rows())
	assert.True(t, g.Equal(before), "DistanceField must not mutate its source")
	assert.True(t, dist.SameDimensions(g))
}

// TestDistanceField_Degenerate covers sources outside the grid or on a wall.
func TestDistanceField_Degenerate(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0},
		{0, 0},
	})
	for _, src := range []coord.Coord{coord.New(0, 0), coord.New(-1, 0), coord.New(2, 1)} {
		dist, err := g.DistanceField(src, 1, grid.Planar)
		require.NoError(t, err)
		assert.Equal(t, 4, count(dist, grid.Unreached), "source %v", src)
	}
}

// TestDistanceField_Toroidal wraps a single row.
func TestDistanceField_Toroidal(t *testing.T) {
	g, err := grid.New(5, 1, 0)
	require.NoError(t, err)

	dist, err := g.DistanceField(coord.New(0, 0), 1, grid.Toroidal)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 2, 1}}, dist.Rows())

	dist, err = g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, dist.Rows())
}

// TestDistanceField_Independent ensures repeated calls return fresh grids.
func TestDistanceField_Independent(t *testing.T) {
	g, err := grid.New(2, 2, 0)
	require.NoError(t, err)
	a, err := g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	require.NoError(t, err)
	b, err := g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	require.NoError(t, err)

	require.NoError(t, a.Set(1, 1, 99))
	v, _ := b.At(1, 1)
	assert.Equal(t, 2, v)
}

// TestDistanceField_Options covers MaxDepth bounds, the visit hook and option errors.
func TestDistanceField_Options(t *testing.T) {
	g, err := grid.New(3, 3, 0)
	require.NoError(t, err)

	dist, err := g.DistanceField(coord.New(0, 0), 1, grid.Planar, grid.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, -1},
		{1, -1, -1},
		{-1, -1, -1},
	}, dist.Rows())

	var visited []coord.Coord
	depths := map[int]int{}
	_, err = g.DistanceField(coord.New(1, 1), 1, grid.Planar,
		grid.WithMaxDepth(0),
		grid.WithOnVisit(func(c coord.Coord, d int) {
			visited = append(visited, c)
			depths[d]++
		}),
		grid.WithOnVisit(nil),
	)
	require.NoError(t, err)
	assert.Len(t, visited, 9)
	assert.Equal(t, coord.New(1, 1), visited[0])
	assert.Equal(t, map[int]int{0: 1, 1: 4, 2: 4}, depths)

	_, err = g.DistanceField(coord.New(0, 0), 1, grid.Planar, grid.WithMaxDepth(-1))
	require.ErrorIs(t, err, grid.ErrOptionViolation)
}
