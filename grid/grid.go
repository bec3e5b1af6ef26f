package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rastergrid/coord"
)

// Unreached marks a distance-field cell that the search did not reach.
const Unreached = -1

// Grid is a width×height raster of int cells with origin (0,0).
// Cells are stored row-major in a single slice owned by the Grid.
type Grid struct {
	width, height int
	cells         []int
}

// New returns a width×height grid with every cell set to fill.
// Zero-sized grids are valid; negative sizes, or a width×height that does not
// fit in an int, return ErrBadShape.
func New(width, height, fill int) (*Grid, error) {
	g := &Grid{}
	if err := g.Init(width, height, fill); err != nil {
		return nil, err
	}
	return g, nil
}

// NewSquare returns a size×size grid of zeros.
func NewSquare(size int) (*Grid, error) {
	return New(size, size, 0)
}

// FromRows deep-copies rows[y][x] into a new grid.
// A nil or empty input yields a 0×0 grid; ragged input returns ErrNonRectangular.
func FromRows(rows [][]int) (*Grid, error) {
	g := &Grid{}
	if err := g.InitFrom(rows); err != nil {
		return nil, err
	}
	return g, nil
}

// checkShape rejects negative sizes and cell counts that overflow int.
func checkShape(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %d×%d", ErrBadShape, w, h)
	}
	if w != 0 && h > math.MaxInt/w {
		return fmt.Errorf("%w: %d×%d cells overflow int", ErrBadShape, w, h)
	}
	return nil
}

// newFilled allocates without validation; callers run checkShape first.
func newFilled(w, h, fill int) *Grid {
	g := &Grid{width: w, height: h, cells: make([]int, w*h)}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
	return g
}

// Init reallocates g as width×height with every cell set to fill,
// discarding any prior contents.
func (g *Grid) Init(width, height, fill int) error {
	if err := checkShape(width, height); err != nil {
		return err
	}
	*g = *newFilled(width, height, fill)
	return nil
}

// InitFrom replaces g with a deep copy of rows[y][x].
// A nil or empty input (no rows, or only zero-length rows) is a no-op and
// leaves g unchanged.
// Ragged input returns ErrNonRectangular and also leaves g unchanged.
func (g *Grid) InitFrom(rows [][]int) error {
	if len(rows) == 0 {
		return nil
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	if w == 0 {
		return nil
	}
	cells := make([]int, w*h)
	for y, row := range rows {
		copy(cells[y*w:(y+1)*w], row)
	}
	g.width, g.height, g.cells = w, h, cells
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the value at (x,y), or ErrOutOfRange.
func (g *Grid) At(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, g.rangeErr(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

// AtC is At for a Coord.
func (g *Grid) AtC(c coord.Coord) (int, error) {
	return g.At(c.X, c.Y)
}

// Set stores v at (x,y), or returns ErrOutOfRange without modifying g.
func (g *Grid) Set(x, y, v int) error {
	if !g.inBounds(x, y) {
		return g.rangeErr(x, y)
	}
	g.cells[g.index(x, y)] = v
	return nil
}

// SetC is Set for a Coord.
func (g *Grid) SetC(c coord.Coord, v int) error {
	return g.Set(c.X, c.Y, v)
}

// IsInside reports whether c lies within [0,width)×[0,height).
func (g *Grid) IsInside(c coord.Coord) bool {
	return g.inBounds(c.X, c.Y)
}

// IsInsideOpt reports whether o holds a coordinate inside g.
// An absent coordinate is never inside.
func (g *Grid) IsInsideOpt(o coord.Optional) bool {
	c, ok := o.Get()
	return ok && g.IsInside(c)
}

// SameDimensions reports whether o is non-nil and has g's width and height.
func (g *Grid) SameDimensions(o *Grid) bool {
	return o != nil && g.width == o.width && g.height == o.height
}

// inBounds is the O(1) bounds predicate shared by all accessors.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to the row-major offset y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// at and set are unchecked; callers have already validated c.
func (g *Grid) at(c coord.Coord) int {
	return g.cells[c.Y*g.width+c.X]
}

func (g *Grid) set(c coord.Coord, v int) {
	g.cells[c.Y*g.width+c.X] = v
}

func (g *Grid) rangeErr(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %d×%d", ErrOutOfRange, x, y, g.width, g.height)
}
