package point

import "golang.org/x/exp/constraints"

// Unit offsets in screen orientation: y grows downwards.
var (
	Up    = Point[int]{X: 0, Y: -1}
	Down  = Point[int]{X: 0, Y: 1}
	Left  = Point[int]{X: -1, Y: 0}
	Right = Point[int]{X: 1, Y: 0}
)

// Directions4 lists the orthogonal offsets clockwise from Up.
var Directions4 = [4]Point[int]{Up, Right, Down, Left}

// Directions8 lists orthogonal and diagonal offsets clockwise from Up.
var Directions8 = [8]Point[int]{
	Up, {X: 1, Y: -1}, Right, {X: 1, Y: 1},
	Down, {X: -1, Y: 1}, Left, {X: -1, Y: -1},
}

// Neighbors4 returns the four orthogonal neighbours of p in Directions4 order.
func Neighbors4[T constraints.Signed](p Point[T]) [4]Point[T] {
	var out [4]Point[T]
	for i, d := range Directions4 {
		out[i] = Point[T]{X: p.X + T(d.X), Y: p.Y + T(d.Y)}
	}

	return out
}

// Neighbors8 returns all eight neighbours of p in Directions8 order.
func Neighbors8[T constraints.Signed](p Point[T]) [8]Point[T] {
	var out [8]Point[T]
	for i, d := range Directions8 {
		out[i] = Point[T]{X: p.X + T(d.X), Y: p.Y + T(d.Y)}
	}

	return out
}

// TurnRight rotates a direction offset 90° clockwise (screen orientation).
func TurnRight(d Point[int]) Point[int] {
	return Point[int]{X: -d.Y, Y: d.X}
}

// TurnLeft rotates a direction offset 90° counter-clockwise (screen orientation).
func TurnLeft(d Point[int]) Point[int] {
	return Point[int]{X: d.Y, Y: -d.X}
}
