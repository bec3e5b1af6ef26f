package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/rastergrid/coord"
)

// ShortestPath returns one shortest obstacle-free path from src to dst,
// inclusive of both ends, so len(path) == distance(src,dst)+1.
//
// Errors are distinct so callers can tell bad input from a defined negative
// result:
//
//   - ErrOutOfRange: src or dst lies outside g.
//   - ErrNoPath:     dst is unreachable (including src or dst on an obstacle).
//   - ErrBrokenField: backtracking found no predecessor (never for fields
//     produced by DistanceField).
//
// Among equal-length paths the one picked follows the fixed neighbour order
// while walking back from dst.
func (g *Grid) ShortestPath(src, dst coord.Coord, obstacle int, adj Adjacency) ([]coord.Coord, error) {
	if !g.IsInside(src) {
		return nil, fmt.Errorf("source: %w", g.rangeErr(src.X, src.Y))
	}
	if !g.IsInside(dst) {
		return nil, fmt.Errorf("target: %w", g.rangeErr(dst.X, dst.Y))
	}
	field, err := g.DistanceField(src, obstacle, adj)
	if err != nil {
		return nil, err
	}
	return PathFromField(field, src, dst, adj)
}

// PathFromField walks a distance field computed from src back from dst.
// At each step it moves to the first neighbour (in adjacency order) whose
// distance is one less, until it reaches distance 0, which must be src.
//
// The walk is bounded by dst's distance, so a corrupted field produces
// ErrBrokenField instead of looping.
func PathFromField(field *Grid, src, dst coord.Coord, adj Adjacency) ([]coord.Coord, error) {
	if field == nil {
		return nil, ErrNilGrid
	}
	if !field.IsInside(src) {
		return nil, fmt.Errorf("source: %w", field.rangeErr(src.X, src.Y))
	}
	if !field.IsInside(dst) {
		return nil, fmt.Errorf("target: %w", field.rangeErr(dst.X, dst.Y))
	}
	adj = orPlanar(adj)

	d := field.at(dst)
	if d == Unreached {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, src, dst)
	}
	// a shortest path never visits more cells than the grid holds
	if d < 0 || d >= len(field.cells) {
		return nil, fmt.Errorf("%w: distance %d at %v", ErrBrokenField, d, dst)
	}

	path := make([]coord.Coord, d+1)
	path[d] = dst
	cur := dst
	nbrs := make([]coord.Coord, 0, len(offsets4))
	for step := d; step > 0; step-- {
		nbrs = adj.Neighbors(cur, field.width, field.height, nbrs[:0])
		found := false
		for _, v := range nbrs {
			if field.at(v) == step-1 {
				cur, found = v, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no predecessor of %v at distance %d", ErrBrokenField, cur, step)
		}
		path[step-1] = cur
	}
	if cur != src {
		return nil, fmt.Errorf("%w: walk ended at %v, want source %v", ErrBrokenField, cur, src)
	}
	return path, nil
}

// ValidatePath checks that path is non-empty, stays inside g, never touches
// an obstacle cell, never repeats a cell, and that each step moves to a
// neighbour under adj. It returns nil or an error wrapping ErrInvalidPath.
func (g *Grid) ValidatePath(path []coord.Coord, obstacle int, adj Adjacency) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	adj = orPlanar(adj)
	seen := mapset.New[coord.Coord]()
	nbrs := make([]coord.Coord, 0, len(offsets4))

	for i, c := range path {
		if !g.IsInside(c) {
			return fmt.Errorf("%w: step %d at %v is outside", ErrInvalidPath, i, c)
		}
		if g.at(c) == obstacle {
			return fmt.Errorf("%w: step %d at %v is an obstacle", ErrInvalidPath, i, c)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: step %d revisits %v", ErrInvalidPath, i, c)
		}
		seen.Put(c)
		if i == 0 {
			continue
		}
		nbrs = adj.Neighbors(path[i-1], g.width, g.height, nbrs[:0])
		if !contains(nbrs, c) {
			return fmt.Errorf("%w: %v -> %v is not a move", ErrInvalidPath, path[i-1], c)
		}
	}
	return nil
}

func contains(cs []coord.Coord, c coord.Coord) bool {
	for _, v := range cs {
		if v == c {
			return true
		}
	}
	return false
}
