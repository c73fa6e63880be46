// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

// ExampleParse parses a tiny map, finds the start and walks right.
func ExampleParse() {
	g := grid.Parse("#S.\n#..\n")
	start, _ := g.Find(func(r rune) bool { return r == 'S' })
	fmt.Println("size:", g.Width(), "x", g.Height(), "start:", start)

	p, _ := point.ToSigned(start)
	for i := 0; i < 3; i++ {
		p = p.Add(point.Right)
		cell, ok := g.TryGet(p)
		fmt.Printf("%v ok=%v cell=%q\n", p, ok, cell)
	}

	// Output:
	// size: 3 x 2 start: Point(1, 0)
	// Point(2, 0) ok=true cell='.'
	// Point(3, 0) ok=false cell='\x00'
	// Point(4, 0) ok=false cell='\x00'
}

// ExampleGrid_All shows the row-major (cell, point) iteration order.
func ExampleGrid_All() {
	g := grid.Parse("ab\ncd\n")
	for cell, p := range g.All() {
		fmt.Printf("%c %v\n", cell, p)
	}

	// Output:
	// a Point(0, 0)
	// b Point(1, 0)
	// c Point(0, 1)
	// d Point(1, 1)
}

// ExampleGrid_InsertCol expands a map by doubling an empty column.
func ExampleGrid_InsertCol() {
	g := grid.Parse("#.#\n...\n")
	g.InsertCol(1, '.')
	fmt.Print(grid.Text(g))

	// Output:
	// #..#
	// ....
}

// ExampleGrid_Regions counts garden plots of equal plants.
func ExampleGrid_Regions() {
	g := grid.ParseBytes("AAAA\nBBCD\nBBCC\nEEEC\n")
	regions := g.Regions(func(a, b byte) bool { return a == b }, grid.Conn4)
	for _, r := range regions {
		fmt.Printf("%c:%d ", g.At(r[0]), len(r))
	}
	fmt.Println()

	// Output:
	// A:4 B:4 C:4 D:1 E:3
}
