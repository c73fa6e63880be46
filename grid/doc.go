// Package grid provides Grid, a dense, bounds-checked 2-D container indexed
// by unsigned points, plus the parsers and traversals puzzle code keeps
// reaching for.
//
// What:
//
//   - Grid[T] stores W×H cells in one row-major slice; cell (x, y) lives at y*W+x.
//   - Parse builds a Grid[rune] from text, ParseBytes a Grid[byte].
//   - Checked accessors (Get, Ptr, TryGet) report absence with ok=false.
//   - Indexed accessors (At, Set, Row) panic with ErrOutOfBounds: an
//     out-of-range index there is a programming error.
//   - All yields (cell, point) pairs in row-major order; Find returns the
//     first match in that order.
//   - InsertRow / InsertCol grow the grid while keeping the row-major layout.
//   - Neighbors, Regions and Distances cover flood fills and BFS walks.
//
// Index space:
//
//	Index is point.Point[uint], so negative coordinates cannot be expressed.
//	Walk in point.Point[int] and come back through TryGet or point.ToUnsigned.
//
// Complexity:
//
//   - Get/Ptr/TryGet/At/Set/Row: O(1).
//   - All/Find: O(W·H).
//   - InsertRow: O(W·H) worst case; InsertCol: O(W·H).
//   - Regions, Distances: O(W·H·d), d = 4 or 8.
//
// Errors:
//
//   - ErrOutOfBounds: panicking accessors, insert preconditions, bad BFS start.
//   - ErrNonRectangular: FromRows with rows of differing lengths.
//
// Concurrency: a Grid is not synchronized. Concurrent readers are safe;
// any writer needs external coordination.
package grid
