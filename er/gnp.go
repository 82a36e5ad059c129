package er

import (
	"fmt"
	"math/rand"

	"github.com/lokmer/graphens/core"
	"github.com/lokmer/graphens/ensemble"
)

// GnpStepKind classifies a G(n,p) Markov step.
type GnpStepKind uint8

const (
	// GnpNothing means the re-draw confirmed the pair's current state.
	GnpNothing GnpStepKind = iota
	// GnpAdded means the drawn pair gained an edge.
	GnpAdded
	// GnpRemoved means the drawn pair lost its edge.
	GnpRemoved
)

// GnpStep is the undo token of one G(n,p) Markov step.
type GnpStep struct {
	Kind GnpStepKind
	Edge [2]int
}

// Gnp is the Erdős–Rényi ensemble with fixed vertex count n and
// independent edge probability p. The zero value is not usable;
// construct with NewGnp.
type Gnp[T core.Payload[T]] struct {
	graph *core.Graph[T]
	p     float64
	rng   *rand.Rand
}

// compile-time contract checks
var (
	_ ensemble.MarkovChain[GnpStep] = (*Gnp[core.EmptyPayload])(nil)
	_ ensemble.SimpleSampler = (*Gnp[core.EmptyPayload])(nil)
	_ ensemble.WithGraph[core.Graph[core.EmptyPayload]] = (*Gnp[core.EmptyPayload])(nil)
	_ ensemble.HasRNG = (*Gnp[core.EmptyPayload])(nil)
)

// NewGnp creates a G(n,p) ensemble and draws an initial sample.
//
// Returns ErrBadProbability for p outside [0, 1], ErrNilRNG for a nil
// generator, core.ErrInvalidSize for negative n.
func NewGnp[T core.Payload[T]](n int, p float64, rng *rand.Rand) (*Gnp[T], error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("er: probability %v: %w", p, ErrBadProbability)
	}
	g, err := core.NewGraph[T](n)
	if err != nil {
		return nil, err
	}
	e := &Gnp[T]{graph: g, p: p, rng: rng}
	e.Randomize()
	return e, nil
}

// Randomize replaces the topology with a fresh draw: every vertex pair
// receives an edge independently with probability p. O(n^2).
func (e *Gnp[T]) Randomize() {
	e.graph.ClearEdges()
	n := e.graph.VertexCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if e.rng.Float64() <= e.p {
				if err := e.graph.AddEdge(i, j); err != nil {
					panic(err)
				}
			}
		}
	}
}

// MarkovStep re-draws the state of one uniformly chosen vertex pair:
// with probability p the edge is wanted (added if absent), otherwise
// unwanted (removed if present). A draw confirming the current state
// yields a GnpNothing token.
func (e *Gnp[T]) MarkovStep() GnpStep {
	if e.graph.VertexCount() < 2 {
		return GnpStep{Kind: GnpNothing}
	}
	i, j := drawPair(e.rng, e.graph.VertexCount())
	if e.rng.Float64() <= e.p {
		if e.graph.AddEdge(i, j) == nil {
			return GnpStep{Kind: GnpAdded, Edge: [2]int{i, j}}
		}
		return GnpStep{Kind: GnpNothing, Edge: [2]int{i, j}}
	}
	if e.graph.RemoveEdge(i, j) == nil {
		return GnpStep{Kind: GnpRemoved, Edge: [2]int{i, j}}
	}
	return GnpStep{Kind: GnpNothing, Edge: [2]int{i, j}}
}

// UndoStep inverts a step: an added edge is removed, a removed edge
// restored, a nothing-token ignored.
//
// Returns ErrStepMismatch when the recorded change cannot be inverted,
// which happens when tokens are replayed out of order.
func (e *Gnp[T]) UndoStep(step GnpStep) error {
	switch step.Kind {
	case GnpAdded:
		if err := e.graph.RemoveEdge(step.Edge[0], step.Edge[1]); err != nil {
			return fmt.Errorf("er: undo add (%d, %d): %w (%w)",
				step.Edge[0], step.Edge[1], ErrStepMismatch, err)
		}
	case GnpRemoved:
		if err := e.graph.AddEdge(step.Edge[0], step.Edge[1]); err != nil {
			return fmt.Errorf("er: undo remove (%d, %d): %w (%w)",
				step.Edge[0], step.Edge[1], ErrStepMismatch, err)
		}
	}
	return nil
}

// UndoStepQuiet inverts a step, panicking on a mismatched token.
func (e *Gnp[T]) UndoStepQuiet(step GnpStep) {
	if err := e.UndoStep(step); err != nil {
		panic(err)
	}
}

// Graph returns the current sample. The ensemble keeps ownership.
func (e *Gnp[T]) Graph() *core.Graph[T] { return e.graph }

// P returns the edge probability.
func (e *Gnp[T]) P() float64 { return e.p }

// SetP installs a new edge probability. Only future steps and draws use
// it; the current sample is untouched until Randomize or MarkovStep.
//
// Returns ErrBadProbability for p outside [0, 1].
func (e *Gnp[T]) SetP(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("er: probability %v: %w", p, ErrBadProbability)
	}
	e.p = p
	return nil
}

// M returns the realized edge count of the current sample.
func (e *Gnp[T]) M() int { return e.graph.EdgeCount() }

// SortAdj canonicalizes all adjacency lists of the current sample.
func (e *Gnp[T]) SortAdj() { e.graph.SortAdj() }

// RNG returns the generator in use.
func (e *Gnp[T]) RNG() *rand.Rand { return e.rng }

// SwapRNG installs rng and returns the previous generator.
func (e *Gnp[T]) SwapRNG(rng *rand.Rand) *rand.Rand {
	old := e.rng
	e.rng = rng
	return old
}
