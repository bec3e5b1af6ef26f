package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rows returns a fresh copy of the cells as rows[y][x].
// Mutating the result never affects g.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether o has g's shape and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameDimensions(o) {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Add adds o cell-wise into g. Returns ErrDimensionMismatch (g unchanged)
// if the shapes differ.
func (g *Grid) Add(o *Grid) error {
	if o == nil {
		return ErrNilGrid
	}
	if !g.SameDimensions(o) {
		return fmt.Errorf("%w: %d×%d vs %d×%d", ErrDimensionMismatch, g.width, g.height, o.width, o.height)
	}
	for i, v := range o.cells {
		g.cells[i] += v
	}
	return nil
}

// Mul multiplies every cell by scalar, truncating toward zero.
// A NaN or infinite scalar, or a product outside the int range, returns
// ErrBadScale and leaves g unchanged.
func (g *Grid) Mul(scalar float64) error {
	if math.IsInf(scalar, 0) || math.IsNaN(scalar) {
		return fmt.Errorf("%w: %v", ErrBadScale, scalar)
	}
	out := make([]int, len(g.cells))
	for i, v := range g.cells {
		p := float64(v) * scalar
		if !fitsInt(p) {
			return fmt.Errorf("%w: %d×%v overflows int", ErrBadScale, v, scalar)
		}
		out[i] = int(p)
	}
	copy(g.cells, out)
	return nil
}

// Rescale resizes g to int(width*sx)×int(height*sy) using nearest-neighbour
// sampling: new cell (x,y) takes the old cell (int(x/sx), int(y/sy)).
func (g *Grid) Rescale(sx, sy float64) error {
	if !validScale(sx) || !validScale(sy) {
		return fmt.Errorf("%w: sx=%v sy=%v", ErrBadScale, sx, sy)
	}
	fw, fh := float64(g.width)*sx, float64(g.height)*sy
	if !fitsInt(fw) || !fitsInt(fh) {
		return fmt.Errorf("%w: %v×%v cells", ErrBadShape, fw, fh)
	}
	nw, nh := int(fw), int(fh)
	if err := checkShape(nw, nh); err != nil {
		return err
	}
	next := newFilled(nw, nh, 0)
	for y := 0; y < nh; y++ {
		oy := min(int(float64(y)/sy), g.height-1)
		for x := 0; x < nw; x++ {
			ox := min(int(float64(x)/sx), g.width-1)
			next.cells[y*nw+x] = g.cells[oy*g.width+ox]
		}
	}
	*g = *next
	return nil
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// fitsInt reports whether truncating f to int is well defined.
func fitsInt(f float64) bool {
	return f >= math.MinInt && f < math.MaxInt
}

// String renders g one row per line, cells separated by single spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.cells[y*g.width+x]))
		}
	}
	return sb.String()
}
