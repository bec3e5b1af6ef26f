// Package coord provides the integer (column, row) coordinate shared by
// every grid operation in rastergrid.
//
// What:
//
//   - Coord is an immutable value type: X is the column, Y is the row.
//   - Equality is structural (==) and Coord is usable as a map key.
//   - Distance returns the Euclidean distance, Manhattan the L1 distance.
//   - Optional is an explicit "maybe a coordinate" for APIs that accept an
//     absent position instead of relying on a zero value.
//
// Text form:
//
//	String() renders "x,y"; Parse accepts the same form with optional spaces.
//
// Errors:
//
//   - ErrBadFormat: Parse input is not two comma-separated integers.
package coord
