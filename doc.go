// Package rastergrid is a small raster-grid toolkit: an integer cell grid with
// breadth-first region fill, single-source distance fields and shortest-path
// reconstruction over 4-connected (planar or toroidal) adjacency.
//
// Subpackages:
//
//	coord/         immutable (x,y) coordinate and an explicit Optional
//	grid/          Grid type, drawing primitives, Fill, DistanceField,
//	                 ShortestPath, Regions and the Adjacency policies
//	gridio/        plain-text grid files and msgpack snapshots
//	cmd/gridtool/  command-line front end over grid files
//	examples/      runnable walkthroughs
//
// Quick example:
//
//	g, _ := grid.New(3, 3, 0)
//	path, err := g.ShortestPath(coord.New(0, 0), coord.New(2, 2), 1, grid.Planar)
//
// A Grid is not safe for concurrent mutation; every operation is synchronous.
package rastergrid
