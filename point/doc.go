// Package point provides Point, a 2-D integer coordinate generic over every
// signed and unsigned Go integer width.
//
// What:
//
//   - Point[T] is a plain value: copy it, compare it with ==, use it as a map key.
//   - Component-wise arithmetic (Add, Sub, Scale) and ManhattanDistance.
//   - Lexicographic ordering (x first, then y) via Compare and Less.
//   - Fallible conversions between widths (Convert, ToUnsigned, ToSigned).
//   - Direction offsets (Up, Down, Left, Right, Directions4, Directions8).
//
// Why:
//
//   - Grid indexing is unsigned (grid.Index), while walking a grid is signed
//     arithmetic. Conversions between the two are checked and return
//     ErrOutOfRange instead of silently wrapping.
//
// Overflow:
//
//   - Add, Sub and Scale follow Go's wrapping integer semantics; pick a wide
//     enough T.
//   - ManhattanDistance never overflows while computing differences: each
//     absolute difference is taken in the 64-bit unsigned domain, then cast to T.
//
// Complexity: every operation is O(1).
package point
