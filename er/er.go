package er

import (
	"errors"
	"math/rand"
)

// Sentinel errors shared by the ensembles in this package.
var (
	// ErrNilRNG indicates a constructor was given a nil random number
	// generator.
	ErrNilRNG = errors.New("er: nil random number generator")

	// ErrEdgeBudget indicates a requested edge count above n(n-1)/2.
	ErrEdgeBudget = errors.New("er: edge count exceeds possible edges")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("er: edge probability outside [0, 1]")

	// ErrStepMismatch indicates an undo token that does not match the
	// current ensemble state, i.e. tokens fed back out of order.
	ErrStepMismatch = errors.New("er: undo token does not match state")
)

// drawPair draws an ordered pair of distinct vertices, uniform over all
// n(n-1) pairs. Requires n >= 2.
func drawPair(rng *rand.Rand, n int) (int, int) {
	first := rng.Intn(n)
	second := rng.Intn(n - 1)
	if second >= first {
		second++
	}
	return first, second
}
