package grid

import "strings"

// Text renders a rune grid back to text: cells of a row joined, every row
// terminated by '\n'. Text(Parse(s)) == s for rectangular s that ends in a
// newline and has no trailing whitespace.
func Text(g *Grid[rune]) string {
	var sb strings.Builder
	sb.Grow(len(g.data) + int(g.height))
	for y := uint(0); y < g.height; y++ {
		for _, r := range g.Row(y) {
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Display renders a byte grid that mixes small numbers and characters:
// 0 prints as '.', 1..9 as the digit, anything else as the raw byte.
func Display(g *Grid[byte]) string {
	var sb strings.Builder
	sb.Grow(len(g.data) + int(g.height))
	for y := uint(0); y < g.height; y++ {
		for _, c := range g.Row(y) {
			switch {
			case c == 0:
				sb.WriteByte('.')
			case c < 10:
				sb.WriteByte('0' + c)
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
