package grid

import (
	"iter"

	"github.com/katalvlaran/advent/point"
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the direction offsets for c, clockwise from north.
func (c Connectivity) offsets() []point.Point[int] {
	if c == Conn8 {
		return point.Directions8[:]
	}

	return point.Directions4[:]
}

// Neighbors yields the in-bounds neighbours of p, clockwise from north.
// Complexity: O(d), d = 4 or 8.
func (g *Grid[T]) Neighbors(p Index, conn Connectivity) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for _, d := range conn.offsets() {
			nx, ny := int(p.X)+d.X, int(p.Y)+d.Y
			if nx < 0 || ny < 0 || uint(nx) >= g.width || uint(ny) >= g.height {
				continue
			}
			if !yield(Index{X: uint(nx), Y: uint(ny)}) {
				return
			}
		}
	}
}
