package grid

import "github.com/katalvlaran/rastergrid/coord"

// Fill repaints the region around start to newValue and returns the number
// of cells painted.
//
// The region is every cell reachable from start by adjacency moves that stay
// on cells equal to start's original value. A start outside the grid, or a
// start already holding newValue, paints nothing and returns 0.
//
// Fill is not a query: it mutates g as its visited-tracking mechanism. Each
// cell is painted before it is enqueued, so once visited it no longer matches
// the original value and is never enqueued twice. Every value, including 0
// and any obstacle value, is fillable the same way.
//
// A nil adj is treated as Planar.
//
// Time: O(W·H). Memory: O(W·H) for the queue in the worst case.
func (g *Grid) Fill(start coord.Coord, newValue int, adj Adjacency) int {
	if !g.IsInside(start) {
		return 0
	}
	old := g.at(start)
	if old == newValue {
		return 0
	}
	adj = orPlanar(adj)

	g.set(start, newValue)
	queue := []coord.Coord{start}
	nbrs := make([]coord.Coord, 0, len(offsets4))

	for qi := 0; qi < len(queue); qi++ {
		nbrs = adj.Neighbors(queue[qi], g.width, g.height, nbrs[:0])
		for _, v := range nbrs {
			if g.at(v) != old {
				continue
			}
			g.set(v, newValue)
			queue = append(queue, v)
		}
	}
	return len(queue)
}
