package grid

import (
	"strings"
	"unicode"
)

// Parse builds a rune grid from text, one cell per character.
//
// Lines are trimmed of trailing whitespace (so "\r\n" endings and a final
// newline are fine) and blank lines are skipped. W is the rune length of the
// first non-empty line and H the number of non-empty lines.
//
// Input is expected to be rectangular. Rows of another length are cut or
// zero-padded to W so the storage invariant holds; the cell values of such
// rows are not meaningful.
// Complexity: O(len(text)).
func Parse(text string) *Grid[rune] {
	g := &Grid[rune]{data: make([]rune, 0, len(text))}
	for line := range strings.Lines(text) {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}
		row := []rune(line)
		if g.height == 0 {
			g.width = uint(len(row))
		}
		g.data = appendFitted(g.data, row, g.width)
		g.height++
	}

	return g
}

// ParseBytes builds a byte grid from text, one cell per byte.
//
// Newline bytes separate rows and are not stored; every other byte,
// including '\r', is kept verbatim. Empty input yields a 0×0 grid. W is the
// number of bytes before the first newline, and a final row without a
// trailing newline still counts. Rows are fitted to W as in Parse.
// Complexity: O(len(text)).
func ParseBytes(text string) *Grid[byte] {
	g := &Grid[byte]{data: make([]byte, 0, len(text))}
	for text != "" {
		row, rest, _ := strings.Cut(text, "\n")
		if g.height == 0 {
			g.width = uint(len(row))
		}
		if uint(len(row)) >= g.width {
			g.data = append(g.data, row[:g.width]...)
		} else {
			g.data = append(g.data, row...)
			g.data = append(g.data, make([]byte, g.width-uint(len(row)))...)
		}
		g.height++
		text = rest
	}

	return g
}

// appendFitted appends exactly w cells of row to dst, cutting or zero-padding.
func appendFitted[T any](dst, row []T, w uint) []T {
	if uint(len(row)) >= w {
		return append(dst, row[:w]...)
	}
	dst = append(dst, row...)

	return append(dst, make([]T, w-uint(len(row)))...)
}
