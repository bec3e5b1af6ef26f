// Package gridio loads and stores grid.Grid values.
//
// Text format (Read/Write):
//
//	<width>
//	<height>
//	<height rows of width whitespace-separated integers, y = 0 first>
//
// Blank lines between rows are ignored; a row with the wrong number of cells
// or a missing row is ErrShape, a token that is not an integer is ErrSyntax.
// Both are wrapped with the offending line number.
//
// Binary snapshot (MarshalSnapshot/UnmarshalSnapshot):
//
//	A msgpack-encoded Snapshot {w, h, cells} with row-major cells, for
//	compact storage or transport of a grid between processes.
package gridio
