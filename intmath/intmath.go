package intmath

import (
	"iter"
	"math/big"
	"slices"

	"golang.org/x/exp/constraints"
)

// GCD folds the greatest common divisor of nums, starting from 0.
// Complexity: O(n) big-integer GCD steps.
func GCD[T constraints.Integer](nums iter.Seq[T]) *big.Int {
	acc := new(big.Int)
	for n := range nums {
		acc.GCD(nil, nil, acc, toBig(n))
	}

	return acc
}

// LCM folds the least common multiple of nums, starting from 1.
// Complexity: O(n) big-integer GCD, multiply and divide steps.
func LCM[T constraints.Integer](nums iter.Seq[T]) *big.Int {
	acc := big.NewInt(1)
	g := new(big.Int)
	for n := range nums {
		b := toBig(n)
		if acc.Sign() == 0 || b.Sign() == 0 {
			acc.SetInt64(0)
			continue
		}
		g.GCD(nil, nil, acc, b)
		// lcm(a, b) = a / gcd(a, b) * |b|
		acc.Quo(acc, g)
		acc.Mul(acc, b.Abs(b))
	}

	return acc
}

// GCDOf is GCD over its arguments.
func GCDOf[T constraints.Integer](nums ...T) *big.Int {
	return GCD(slices.Values(nums))
}

// LCMOf is LCM over its arguments.
func LCMOf[T constraints.Integer](nums ...T) *big.Int {
	return LCM(slices.Values(nums))
}

// toBig converts any integer width without losing the sign or the top bit.
func toBig[T constraints.Integer](n T) *big.Int {
	if n < 0 {
		return new(big.Int).SetInt64(int64(n))
	}

	return new(big.Int).SetUint64(uint64(n))
}
