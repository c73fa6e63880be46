package intmath_test

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/advent/intmath"
)

// ExampleLCM finds when several independent cycles line up again.
func ExampleLCM() {
	cycles := map[string]uint64{
		"AAA": 11309, "BBA": 19199, "CCA": 12361,
		"DDA": 15517, "EEA": 17621, "FFA": 20777,
	}
	fmt.Println(intmath.LCM(maps.Values(cycles)))
	// Output: 12117103786373
}

// ExampleGCDOf reduces a step vector to its smallest equivalent.
func ExampleGCDOf() {
	fmt.Println(intmath.GCDOf(12, -18, 30))
	// Output: 6
}
