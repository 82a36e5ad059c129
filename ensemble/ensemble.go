package ensemble

import (
	"fmt"
	"math/rand"
)

// MarkovChain is a reversible Markov chain with step tokens of type S.
// The token a MarkovStep returns must hold everything needed to invert
// that exact step.
type MarkovChain[S any] interface {
	// MarkovStep performs one Markov step and returns its token.
	MarkovStep() S

	// UndoStep inverts a step. Tokens must come back in reverse order
	// of their creation; a token that does not match the current state
	// yields an error and leaves the state alone.
	UndoStep(step S) error

	// UndoStepQuiet inverts a step, panicking on mismatch. For hot
	// loops where the caller guarantees correct ordering.
	UndoStepQuiet(step S)
}

// SimpleSampler draws uncorrelated samples from an ensemble.
type SimpleSampler interface {
	// Randomize replaces the current graph with a fresh, independent
	// draw from the ensemble distribution.
	Randomize()
}

// WithGraph exposes the graph an ensemble wraps.
type WithGraph[G any] interface {
	// Graph returns the current graph. The ensemble keeps ownership:
	// the next step mutates it in place.
	Graph() *G

	// SortAdj canonicalizes all adjacency lists, making traversal
	// order reproducible for a given seed.
	SortAdj()
}

// HasRNG exposes the random number generator an ensemble draws from.
type HasRNG interface {
	// RNG returns the generator in use.
	RNG() *rand.Rand

	// SwapRNG installs a new generator and returns the previous one.
	SwapRNG(rng *rand.Rand) *rand.Rand
}

// MSteps performs count Markov steps and collects their tokens into
// *steps, reusing its capacity. Pass the result to UndoSteps to roll
// everything back.
func MSteps[S any](c MarkovChain[S], count int, steps *[]S) {
	*steps = (*steps)[:0]
	for i := 0; i < count; i++ {
		*steps = append(*steps, c.MarkovStep())
	}
}

// UndoSteps inverts steps in reverse order. On the first failing token
// it stops and returns the error, wrapped with the token's position;
// earlier (later-performed) steps are already undone at that point.
func UndoSteps[S any](c MarkovChain[S], steps []S) error {
	for i := len(steps) - 1; i >= 0; i-- {
		if err := c.UndoStep(steps[i]); err != nil {
			return fmt.Errorf("ensemble: undo of step %d: %w", i, err)
		}
	}
	return nil
}

// UndoStepsQuiet inverts steps in reverse order, panicking on the
// first mismatched token.
func UndoStepsQuiet[S any](c MarkovChain[S], steps []S) {
	for i := len(steps) - 1; i >= 0; i-- {
		c.UndoStepQuiet(steps[i])
	}
}

// Sample draws count independent graphs and calls measure after each
// draw with the draw's index.
func Sample[E SimpleSampler](e E, count int, measure func(e E, i int)) {
	for i := 0; i < count; i++ {
		e.Randomize()
		measure(e, i)
	}
}

// SampleVec draws count independent graphs and collects one measured
// value per draw.
func SampleVec[E SimpleSampler, V any](e E, count int, measure func(e E) V) []V {
	out := make([]V, 0, count)
	for i := 0; i < count; i++ {
		e.Randomize()
		out = append(out, measure(e))
	}
	return out
}
