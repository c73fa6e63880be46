// SPDX-License-Identifier: MIT

package point

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a 2-D coordinate whose components share the integer type T.
type Point[T constraints.Integer] struct {
	X, Y T
}

// New returns the point (x, y).
func New[T constraints.Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// FromPair returns the point (xy[0], xy[1]).
func FromPair[T constraints.Integer](xy [2]T) Point[T] {
	return Point[T]{X: xy[0], Y: xy[1]}
}

// Map applies f to both components of p.
func Map[T, U constraints.Integer](p Point[T], f func(T) U) Point[U] {
	return Point[U]{X: f(p.X), Y: f(p.Y)}
}

// Pair returns the components of p as an array.
func (p Point[T]) Pair() [2]T {
	return [2]T{p.X, p.Y}
}

// Add returns the component-wise sum p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddAssign sets p to p+q.
func (p *Point[T]) AddAssign(q Point[T]) {
	*p = p.Add(q)
}

// SubAssign sets p to p-q.
func (p *Point[T]) SubAssign(q Point[T]) {
	*p = p.Sub(q)
}

// Scale multiplies both components by k.
func (p Point[T]) Scale(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point[T]) ManhattanDistance(q Point[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// absDiff returns |a-b|. The subtraction happens in uint64, where the
// two's-complement difference of the ordered pair is exact for any width <= 64.
func absDiff[T constraints.Integer](a, b T) T {
	if a < b {
		a, b = b, a
	}

	return T(uint64(a) - uint64(b))
}

// Compare orders points lexicographically: by X, then by Y.
// It returns -1, 0 or +1 and can be passed to slices.SortFunc directly.
func Compare[T constraints.Integer](a, b Point[T]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// Less reports whether p sorts before q.
func (p Point[T]) Less(q Point[T]) bool {
	return Compare(p, q) < 0
}

// String implements fmt.Stringer.
func (p Point[T]) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}
