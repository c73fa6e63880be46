// Package intmath holds the number theory puzzle code needs: GCD and LCM
// folded over a sequence into an arbitrary-precision *big.Int, and quick
// integer extraction from puzzle text.
//
// LCM folds grow past 64 bits easily (cycle lengths of several independent
// loops), which is why results are *big.Int rather than a fixed width.
//
//   - GCD(∅) = 0 and LCM(∅) = 1, the identities of each fold.
//   - Results are never negative; negative inputs count by absolute value.
//   - LCM with a zero element is 0.
package intmath
