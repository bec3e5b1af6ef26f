package coord

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadFormat indicates that a coordinate string is not of the form "x,y".
var ErrBadFormat = errors.New("coord: expected \"x,y\"")

// Coord is a cell position: X is the column, Y is the row.
// It is never mutated; every operation returns a new value.
type Coord struct {
	X, Y int
}

// New returns the coordinate (x,y).
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c shifted by (dx,dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Distance returns the Euclidean distance between c and o.
func (c Coord) Distance(o Coord) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns |dx|+|dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String renders c as "x,y".
func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Parse reads a coordinate in the form produced by String.
// Surrounding whitespace around either component is ignored.
func Parse(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadFormat, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadFormat, s, err)
	}

	return Coord{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
