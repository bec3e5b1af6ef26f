package grid

import "github.com/katalvlaran/rastergrid/coord"

// DistanceField returns a new grid of g's shape holding, for every cell, the
// minimum number of adjacency moves from src that avoid cells equal to
// obstacle, or Unreached if no such walk exists.
//
// A src outside g or on an obstacle yields an all-Unreached field and a nil
// error. The returned grid never aliases g. The error is non-nil only for an
// invalid Option.
//
// Cells are dequeued in non-decreasing distance and assigned exactly once
// (the Unreached check prevents revisits), so every value is a true
// shortest-hop distance.
//
// Time: O(W·H). Memory: O(W·H).
func (g *Grid) DistanceField(src coord.Coord, obstacle int, adj Adjacency, opts ...Option) (*Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dist := newFilled(g.width, g.height, Unreached)
	if !g.IsInside(src) || g.at(src) == obstacle {
		return dist, nil
	}
	adj = orPlanar(adj)

	dist.set(src, 0)
	queue := []coord.Coord{src}
	nbrs := make([]coord.Coord, 0, len(offsets4))

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		d := dist.at(u)
		o.OnVisit(u, d)
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}
		nbrs = adj.Neighbors(u, g.width, g.height, nbrs[:0])
		for _, v := range nbrs {
			if dist.at(v) != Unreached || g.at(v) == obstacle {
				continue
			}
			dist.set(v, d+1)
			queue = append(queue, v)
		}
	}
	return dist, nil
}
