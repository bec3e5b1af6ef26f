package grid

import (
	"fmt"

	"github.com/katalvlaran/rastergrid/coord"
)

// DrawCircle sets every cell with (x-cx)²+(y-cy)² ≤ r² to v.
// The center may lie outside the grid; only in-range cells are touched.
func (g *Grid) DrawCircle(center coord.Coord, r float64, v int) {
	r2 := r * r
	for y := 0; y < g.height; y++ {
		dy := float64(y - center.Y)
		for x := 0; x < g.width; x++ {
			dx := float64(x - center.X)
			if dx*dx+dy*dy <= r2 {
				g.cells[y*g.width+x] = v
			}
		}
	}
}

// DrawLine sets every cell on the integer line from a to b (both inclusive)
// to v, visiting each cell exactly once. Both endpoints must be inside g;
// otherwise nothing is drawn and ErrOutOfRange is returned.
func (g *Grid) DrawLine(a, b coord.Coord, v int) error {
	if err := g.checkEndpoints(a, b); err != nil {
		return err
	}
	x0, y0 := a.X, a.Y
	dx, dy := abs(b.X-x0), abs(b.Y-y0)
	sx, sy := 1, 1
	if x0 > b.X {
		sx = -1
	}
	if y0 > b.Y {
		sy = -1
	}
	e := dx - dy
	for {
		g.cells[y0*g.width+x0] = v
		if x0 == b.X && y0 == b.Y {
			return nil
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawRect fills the axis-aligned box spanned by corners a and b (inclusive).
// Both corners must be inside g; otherwise nothing is drawn.
func (g *Grid) DrawRect(a, b coord.Coord, v int) error {
	if err := g.checkEndpoints(a, b); err != nil {
		return err
	}
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.cells[y*g.width+x] = v
		}
	}
	return nil
}

func (g *Grid) checkEndpoints(a, b coord.Coord) error {
	for _, c := range [2]coord.Coord{a, b} {
		if !g.IsInside(c) {
			return fmt.Errorf("draw: %w", g.rangeErr(c.X, c.Y))
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
