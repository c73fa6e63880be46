// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/point"
)

// Index addresses a cell: X is the column, Y the row.
type Index = point.Point[uint]

// Grid is a W×H rectangle of cells stored row-major in a single slice.
// Invariant: len(data) == width*height.
type Grid[T any] struct {
	data          []T
	width, height uint
}

// New returns a w×h grid with every cell set to the zero value of T.
// Complexity: O(w·h).
func New[T any](w, h uint) *Grid[T] {
	return &Grid[T]{data: make([]T, w*h), width: w, height: h}
}

// Filled returns a w×h grid with every cell set to v.
// Complexity: O(w·h).
func Filled[T any](w, h uint, v T) *Grid[T] {
	g := New[T](w, h)
	for i := range g.data {
		g.data[i] = v
	}

	return g
}

// FromRows copies rows[y][x] into a new grid.
// Returns ErrNonRectangular if any row length differs from the first one.
// No rows yields an empty 0×0 grid.
// Complexity: O(W·H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	w := len(rows[0])
	g := &Grid[T]{data: make([]T, 0, w*len(rows)), width: uint(w), height: uint(len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		g.data = append(g.data, row...)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() uint { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() uint { return g.height }

// Len returns the number of cells, W·H.
func (g *Grid[T]) Len() int { return len(g.data) }

// Contains reports whether p lies inside the grid.
func (g *Grid[T]) Contains(p Index) bool {
	return p.X < g.width && p.Y < g.height
}

// offset maps p to its row-major position. Callers check bounds first.
func (g *Grid[T]) offset(p Index) uint {
	return p.Y*g.width + p.X
}

// pointAt is the inverse of offset. Only valid while width > 0.
func (g *Grid[T]) pointAt(i uint) Index {
	return Index{X: i % g.width, Y: i / g.width}
}

// Get returns the cell at p, or ok=false when p is outside the grid.
func (g *Grid[T]) Get(p Index) (v T, ok bool) {
	if !g.Contains(p) {
		return v, false
	}

	return g.data[g.offset(p)], true
}

// Ptr returns a pointer to the cell at p, or ok=false when p is outside the
// grid. The pointer stays valid until the next InsertRow or InsertCol.
func (g *Grid[T]) Ptr(p Index) (*T, bool) {
	if !g.Contains(p) {
		return nil, false
	}

	return &g.data[g.offset(p)], true
}

// TryGet is Get for signed coordinates: negative components and
// out-of-bounds points both yield ok=false.
func (g *Grid[T]) TryGet(p point.Point[int]) (v T, ok bool) {
	idx, err := point.ToUnsigned(p)
	if err != nil {
		return v, false
	}

	return g.Get(idx)
}

// At returns the cell at p and panics if p is out of bounds.
func (g *Grid[T]) At(p Index) T {
	if !g.Contains(p) {
		panic(boundsErrorf("At", p, g.width, g.height))
	}

	return g.data[g.offset(p)]
}

// Set stores v at p and panics if p is out of bounds.
func (g *Grid[T]) Set(p Index, v T) {
	if !g.Contains(p) {
		panic(boundsErrorf("Set", p, g.width, g.height))
	}
	g.data[g.offset(p)] = v
}

// Row returns row y as a slice of length W that aliases the grid storage.
// It panics if y >= H.
func (g *Grid[T]) Row(y uint) []T {
	if y >= g.height {
		panic(boundsErrorf("Row", Index{Y: y}, g.width, g.height))
	}
	start := y * g.width

	return g.data[start : start+g.width : start+g.width]
}

// Find returns the first point, in row-major order, whose cell satisfies pred.
// Complexity: O(W·H).
func (g *Grid[T]) Find(pred func(T) bool) (Index, bool) {
	i := slices.IndexFunc(g.data, pred)
	if i < 0 {
		return Index{}, false
	}

	return g.pointAt(uint(i)), true
}

// All yields every (cell, point) pair in row-major order: row 0 left to
// right, then row 1, and so on. Each call returns a fresh sequence.
// The grid must not be mutated while the sequence is being consumed.
func (g *Grid[T]) All() iter.Seq2[T, Index] {
	return func(yield func(T, Index) bool) {
		for i, v := range g.data {
			if !yield(v, g.pointAt(uint(i))) {
				return
			}
		}
	}
}

// InsertRow inserts a row of W copies of v before row y; H grows by one.
// It panics unless y <= H.
// Complexity: O(W·H) worst case.
func (g *Grid[T]) InsertRow(y uint, v T) {
	if y > g.height {
		panic(boundsErrorf("InsertRow", Index{Y: y}, g.width, g.height))
	}
	row := make([]T, g.width)
	for i := range row {
		row[i] = v
	}
	g.data = slices.Insert(g.data, int(y*g.width), row...)
	g.height++
}

// InsertCol inserts a column of H copies of v before column x; W grows by one.
// It panics unless x <= W.
// Complexity: O(W·H).
func (g *Grid[T]) InsertCol(x uint, v T) {
	if x > g.width {
		panic(boundsErrorf("InsertCol", Index{X: x}, g.width, g.height))
	}
	w := g.width + 1
	data := make([]T, 0, w*g.height)
	for y := uint(0); y < g.height; y++ {
		row := g.data[y*g.width : (y+1)*g.width]
		data = append(data, row[:x]...)
		data = append(data, v)
		data = append(data, row[x:]...)
	}
	g.data = data
	g.width = w
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{data: slices.Clone(g.data), width: g.width, height: g.height}
}

// String renders the grid for debugging, one row per line with %v cells.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Grid([\n")
	for y := uint(0); y < g.height; y++ {
		sb.WriteString("  ")
		for _, v := range g.data[y*g.width : (y+1)*g.width] {
			fmt.Fprintf(&sb, "%v, ", v)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("])")

	return sb.String()
}
