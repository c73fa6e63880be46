package intmath

import (
	"regexp"
	"strconv"
)

// ParseUint parses a string of ASCII digits without any validation.
// Anything but '0'..'9' yields garbage; use strconv for untrusted text.
func ParseUint(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}

	return n
}

var intPattern = regexp.MustCompile(`-?\d+`)

// ParseInts returns every decimal integer in s, in order. A '-' directly in
// front of digits makes the number negative. Numbers that overflow int are
// skipped.
func ParseInts(s string) []int {
	matches := intPattern.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}

	return out
}
