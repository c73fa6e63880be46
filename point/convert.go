package point

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Convert converts p to Point[To]. It returns ErrOutOfRange when either
// component does not fit To; the zero point is returned in that case.
func Convert[To, From constraints.Integer](p Point[From]) (Point[To], error) {
	x, err := convertComponent[To]("x", p.X)
	if err != nil {
		return Point[To]{}, err
	}
	y, err := convertComponent[To]("y", p.Y)
	if err != nil {
		return Point[To]{}, err
	}

	return Point[To]{X: x, Y: y}, nil
}

// FromPairChecked is the fallible counterpart of FromPair across widths.
func FromPairChecked[To, From constraints.Integer](xy [2]From) (Point[To], error) {
	return Convert[To](FromPair(xy))
}

// ToUnsigned converts a signed point into the unsigned index space.
func ToUnsigned(p Point[int]) (Point[uint], error) {
	return Convert[uint](p)
}

// ToSigned converts an unsigned point into the signed coordinate space.
func ToSigned(p Point[uint]) (Point[int], error) {
	return Convert[int](p)
}

// convertComponent rejects a value if it does not survive the round trip
// or if the conversion flipped its sign.
func convertComponent[To, From constraints.Integer](axis string, v From) (To, error) {
	out := To(v)
	if From(out) != v || (v < 0) != (out < 0) {
		return 0, fmt.Errorf("%s=%d: %w", axis, v, ErrOutOfRange)
	}

	return out, nil
}
