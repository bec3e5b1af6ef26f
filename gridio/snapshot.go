package gridio

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/rastergrid/grid"
)

// Snapshot is the wire form of a grid: cells are row-major, y = 0 first.
type Snapshot struct {
	Width  int   `msgpack:"w"`
	Height int   `msgpack:"h"`
	Cells  []int `msgpack:"cells"`
}

// NewSnapshot captures g.
func NewSnapshot(g *grid.Grid) Snapshot {
	s := Snapshot{Width: g.Width(), Height: g.Height(), Cells: make([]int, 0, g.Width()*g.Height())}
	for _, row := range g.Rows() {
		s.Cells = append(s.Cells, row...)
	}
	return s
}

// Grid rebuilds a grid from s. Returns ErrSnapshot if the cell count does
// not match the declared size.
func (s Snapshot) Grid() (*grid.Grid, error) {
	if s.Width < 0 || s.Height < 0 || (s.Width != 0 && s.Height > math.MaxInt/s.Width) ||
		len(s.Cells) != s.Width*s.Height {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrSnapshot, len(s.Cells), s.Width, s.Height)
	}
	g, err := grid.New(s.Width, s.Height, 0)
	if err != nil {
		return nil, err
	}
	for i, v := range s.Cells {
		if err := g.Set(i%s.Width, i/s.Width, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MarshalSnapshot encodes g as msgpack.
func MarshalSnapshot(g *grid.Grid) ([]byte, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	return msgpack.Marshal(NewSnapshot(g))
}

// UnmarshalSnapshot decodes data produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (*grid.Grid, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return s.Grid()
}
