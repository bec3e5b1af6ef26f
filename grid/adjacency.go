package grid

import "github.com/katalvlaran/rastergrid/coord"

// Adjacency computes the 4-connected neighbours of a cell.
//
// Neighbors appends to buf (which may be nil) every neighbour of c that lies
// inside a width×height grid and returns the extended slice. Implementations
// must emit neighbours in the order of offsets4 so that results are
// reproducible across policies. c itself is assumed to be inside.
type Adjacency interface {
	Neighbors(c coord.Coord, width, height int, buf []coord.Coord) []coord.Coord
}

// offsets4 is the fixed neighbour order: +x, -x, +y, -y.
var offsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type planar struct{}

func (planar) Neighbors(c coord.Coord, w, h int, buf []coord.Coord) []coord.Coord {
	for _, d := range offsets4 {
		x, y := c.X+d[0], c.Y+d[1]
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		buf = append(buf, coord.Coord{X: x, Y: y})
	}
	return buf
}

func (planar) String() string { return "planar" }

type toroidal struct{}

func (toroidal) Neighbors(c coord.Coord, w, h int, buf []coord.Coord) []coord.Coord {
	for _, d := range offsets4 {
		buf = append(buf, coord.Coord{X: mod(c.X+d[0], w), Y: mod(c.Y+d[1], h)})
	}
	return buf
}

func (toroidal) String() string { return "toroidal" }

// mod reduces v into [0,n). n must be positive.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

var (
	// Planar treats the grid edges as walls: out-of-range neighbours are skipped.
	Planar Adjacency = planar{}

	// Toroidal wraps both axes, so column width-1 neighbours column 0 and
	// row height-1 neighbours row 0.
	Toroidal Adjacency = toroidal{}
)

// AdjacencyFor maps the classic wrap flag onto a policy.
func AdjacencyFor(wrap bool) Adjacency {
	if wrap {
		return Toroidal
	}
	return Planar
}

// orPlanar substitutes Planar for a nil policy.
func orPlanar(adj Adjacency) Adjacency {
	if adj == nil {
		return Planar
	}
	return adj
}
