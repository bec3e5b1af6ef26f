package grid

import "github.com/katalvlaran/rastergrid/coord"

// Regions partitions g into maximal connected components of equal value
// under adj, without modifying g.
//
// Components are discovered in row-major order of their first cell; within
// a component cells appear in BFS order from that cell. Every cell belongs
// to exactly one component, so the sizes always sum to W·H.
//
// Time: O(W·H). Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(adj Adjacency) [][]coord.Coord {
	adj = orPlanar(adj)
	seen := make([]bool, len(g.cells))
	nbrs := make([]coord.Coord, 0, len(offsets4))
	var comps [][]coord.Coord

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			value := g.cells[i0]
			seen[i0] = true
			comp := []coord.Coord{{X: x, Y: y}}

			// comp doubles as the BFS queue
			for qi := 0; qi < len(comp); qi++ {
				nbrs = adj.Neighbors(comp[qi], g.width, g.height, nbrs[:0])
				for _, v := range nbrs {
					vi := g.index(v.X, v.Y)
					if seen[vi] || g.cells[vi] != value {
						continue
					}
					seen[vi] = true
					comp = append(comp, v)
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
