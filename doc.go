// Package advent is a small support runtime for Advent of Code solutions.
//
// It is organized as four subpackages:
//
//	point/     generic 2-D integer points, checked conversions, directions
//	grid/      row-major rectangular grids: parse, index, iterate, insert, flood fill
//	intmath/   GCD and LCM over arbitrary-precision integers, integer scanning
//	input/     cached puzzle-input fetcher with single-flight and atomic writes
//
// A typical solution reads its input through input.Input and parses it with
// grid.Parse or intmath.ParseInts:
//
//	text, err := input.Input(ctx, 2023, 10)
//	if err != nil {
//		return err
//	}
//	g := grid.Parse(text)
//
// The input package reads its settings from an optional YAML file named by
// AOC_CONFIG and from AOC_* environment variables; the session cookie comes
// from AOC_COOKIE or the credential file (".env" by default).
package advent
