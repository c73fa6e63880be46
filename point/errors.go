package point

import "errors"

// ErrOutOfRange indicates that a component does not fit the destination integer type.
var ErrOutOfRange = errors.New("point: component out of range")
