// File: grid/example_test.go
package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rastergrid/coord"
	"github.com/katalvlaran/rastergrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fill
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Fill repaints the zero region in the middle of a walled room.
func ExampleGrid_Fill() {
	g, _ := grid.FromRows([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 0},
	})
	n := g.Fill(coord.New(1, 1), 5, grid.Planar)
	fmt.Println("painted:", n)
	fmt.Println(g)
	// Output:
	// painted: 3
	// 1 1 1 1
	// 1 5 5 1
	// 1 5 1 1
	// 1 1 1 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: DistanceField
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_DistanceField prints hop counts from the top-left corner of an
// open 3×3 grid.
func ExampleGrid_DistanceField() {
	g, _ := grid.New(3, 3, 0)
	dist, _ := g.DistanceField(coord.New(0, 0), 1, grid.Planar)
	fmt.Println(dist)
	// Output:
	// 0 1 2
	// 1 2 3
	// 2 3 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ShortestPath routes around a wall and reports an unreachable
// target distinctly from bad input.
func ExampleGrid_ShortestPath() {
	g, _ := grid.FromRows([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	path, err := g.ShortestPath(coord.New(0, 0), coord.New(2, 2), 1, grid.Planar)
	fmt.Println(path, err)

	if err := g.Set(1, 2, 1); err != nil {
		fmt.Println(err)
	}
	_, err = g.ShortestPath(coord.New(0, 0), coord.New(2, 2), 1, grid.Planar)
	fmt.Println(errors.Is(err, grid.ErrNoPath))

	_, err = g.ShortestPath(coord.New(0, 0), coord.New(9, 9), 1, grid.Planar)
	fmt.Println(errors.Is(err, grid.ErrOutOfRange))
	// Output:
	// [0,0 0,1 0,2 1,2 2,2] <nil>
	// true
	// true
}
