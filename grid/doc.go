// Package grid implements a mutable 2D raster of integer cells together with
// the breadth-first algorithms that run over it.
//
// What:
//
//   - Grid is a width×height array of ints with bounds-checked access,
//     bulk (re)initialisation, copy-out, arithmetic and simple rasterisation
//     (circle, line, rectangle).
//   - Fill repaints the 4-connected equal-value region around a cell.
//   - DistanceField computes single-source BFS hop counts around obstacles.
//   - ShortestPath and PathFromField backtrack a distance field into a path.
//   - Regions labels every maximal equal-value component without mutating.
//
// Adjacency:
//
//	Every algorithm takes an Adjacency policy. Planar skips out-of-range
//	neighbours; Toroidal wraps both axes. Neighbours are always produced in the
//	order (+1,0), (-1,0), (0,+1), (0,-1), which fixes tie-breaking in path
//	reconstruction.
//
// Cell values:
//
//	In an obstacle grid one chosen value means "blocked"; any other value is
//	passable. In a distance field Unreached (-1) marks cells the search never
//	reached and values ≥0 are hop counts from the source.
//
// Ownership:
//
//	A Grid owns its backing slice exclusively. Constructors deep-copy their
//	input, Rows copies out, and DistanceField always returns a fresh Grid.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. All operations are synchronous
//	and run to completion; use one grid per goroutine or guard it externally.
//
// Complexity (N = width×height):
//
//   - Fill, DistanceField, Regions: O(N) time, O(N) memory.
//   - ShortestPath: O(N) for the field plus O(path) for backtracking.
//   - DrawCircle: O(N); DrawLine: O(max(|dx|,|dy|)); DrawRect: O(area).
//
// Errors:
//
//   - ErrBadShape:          negative width or height, or a cell count that overflows int.
//   - ErrNonRectangular:    input rows differ in length.
//   - ErrOutOfRange:        cell access or endpoint outside the grid.
//   - ErrDimensionMismatch: two grids of different shape combined.
//   - ErrBadScale:          non-positive rescale factor, or non-finite Mul scalar.
//   - ErrNoPath:            target not reachable from source.
//   - ErrBrokenField:       distance field inconsistent during backtracking.
//   - ErrInvalidPath:       ValidatePath rejected a path.
//   - ErrOptionViolation:   invalid Option (e.g. negative MaxDepth).
//   - ErrNilGrid:           nil *Grid argument.
package grid
