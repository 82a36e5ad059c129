package er

import (
	"fmt"
	"math/rand"

	"github.com/lokmer/graphens/core"
	"github.com/lokmer/graphens/ensemble"
)

// GnmStepKind classifies a G(n,m) Markov step.
type GnmStepKind uint8

const (
	// GnmSwap means one edge was removed and another inserted.
	GnmSwap GnmStepKind = iota
	// GnmBlocked means the drawn candidate pair was already an edge,
	// so the step left the graph unchanged.
	GnmBlocked
)

// GnmStep is the undo token of one G(n,m) Markov step. For a GnmSwap it
// records the removed edge, the inserted edge and the edge-list slot
// the swap happened in, which makes inversion O(1).
type GnmStep struct {
	Kind     GnmStepKind
	Removed  [2]int
	Inserted [2]int

	slot int
}

// Gnm is the Erdős–Rényi ensemble with fixed vertex count n and fixed
// edge count m. The zero value is not usable; construct with NewGnm.
type Gnm[T core.Payload[T]] struct {
	graph *core.Graph[T]
	m     int
	rng   *rand.Rand

	// edges mirrors the current edge set; slot indices feed the
	// Markov steps and their undo tokens.
	edges [][2]int
}

// compile-time contract checks
var (
	_ ensemble.MarkovChain[GnmStep] = (*Gnm[core.EmptyPayload])(nil)
	_ ensemble.SimpleSampler = (*Gnm[core.EmptyPayload])(nil)
	_ ensemble.WithGraph[core.Graph[core.EmptyPayload]] = (*Gnm[core.EmptyPayload])(nil)
	_ ensemble.HasRNG = (*Gnm[core.EmptyPayload])(nil)
)

// NewGnm creates a G(n,m) ensemble and draws an initial sample.
//
// Returns ErrEdgeBudget when m exceeds n(n-1)/2, ErrNilRNG for a nil
// generator, core.ErrInvalidSize for negative n.
func NewGnm[T core.Payload[T]](n, m int, rng *rand.Rand) (*Gnm[T], error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	g, err := core.NewGraph[T](n)
	if err != nil {
		return nil, err
	}
	maxEdges := n * (n - 1) / 2
	if m < 0 || m > maxEdges {
		return nil, fmt.Errorf("er: %d edges on %d vertices (max %d): %w", m, n, maxEdges, ErrEdgeBudget)
	}
	e := &Gnm[T]{
		graph: g,
		m:     m,
		rng:   rng,
		edges: make([][2]int, 0, m),
	}
	e.Randomize()
	return e, nil
}

// Randomize replaces the topology with a fresh uniform draw: edges are
// rejection-sampled until m distinct pairs are placed.
func (e *Gnm[T]) Randomize() {
	e.graph.ClearEdges()
	e.edges = e.edges[:0]
	n := e.graph.VertexCount()
	for len(e.edges) < e.m {
		i, j := drawPair(e.rng, n)
		if e.graph.AddEdge(i, j) == nil {
			e.edges = append(e.edges, [2]int{i, j})
		}
	}
}

// MarkovStep swaps a uniformly chosen existing edge for a uniformly
// drawn candidate pair. A candidate that is already an edge blocks the
// step: the graph is untouched and the token records GnmBlocked. With
// m == 0 every step is blocked.
func (e *Gnm[T]) MarkovStep() GnmStep {
	if e.m == 0 {
		return GnmStep{Kind: GnmBlocked}
	}
	slot := e.rng.Intn(len(e.edges))
	i, j := drawPair(e.rng, e.graph.VertexCount())
	if e.graph.IsAdjacent(i, j) {
		return GnmStep{Kind: GnmBlocked, Inserted: [2]int{i, j}}
	}

	old := e.edges[slot]
	// both must succeed: old is tracked, (i, j) was just checked absent
	if err := e.graph.RemoveEdge(old[0], old[1]); err != nil {
		panic(err)
	}
	if err := e.graph.AddEdge(i, j); err != nil {
		panic(err)
	}
	e.edges[slot] = [2]int{i, j}
	return GnmStep{Kind: GnmSwap, Removed: old, Inserted: [2]int{i, j}, slot: slot}
}

// UndoStep inverts a step: the inserted edge is removed and the removed
// edge restored in its original slot. A blocked token is a no-op.
//
// Returns ErrStepMismatch when the token does not match the current
// state, which happens when tokens are replayed out of order; the graph
// is left unchanged in that case.
func (e *Gnm[T]) UndoStep(step GnmStep) error {
	if step.Kind == GnmBlocked {
		return nil
	}
	if step.slot >= len(e.edges) || e.edges[step.slot] != step.Inserted {
		return fmt.Errorf("er: slot %d does not hold edge (%d, %d): %w",
			step.slot, step.Inserted[0], step.Inserted[1], ErrStepMismatch)
	}
	if !e.graph.IsAdjacent(step.Removed[0], step.Removed[1]) {
		// safe to invert
		if err := e.graph.RemoveEdge(step.Inserted[0], step.Inserted[1]); err != nil {
			return fmt.Errorf("er: undo remove (%d, %d): %w", step.Inserted[0], step.Inserted[1], err)
		}
		if err := e.graph.AddEdge(step.Removed[0], step.Removed[1]); err != nil {
			return fmt.Errorf("er: undo insert (%d, %d): %w", step.Removed[0], step.Removed[1], err)
		}
		e.edges[step.slot] = step.Removed
		return nil
	}
	return fmt.Errorf("er: edge (%d, %d) already present: %w",
		step.Removed[0], step.Removed[1], ErrStepMismatch)
}

// UndoStepQuiet inverts a step, panicking on a mismatched token.
func (e *Gnm[T]) UndoStepQuiet(step GnmStep) {
	if err := e.UndoStep(step); err != nil {
		panic(err)
	}
}

// Graph returns the current sample. The ensemble keeps ownership.
func (e *Gnm[T]) Graph() *core.Graph[T] { return e.graph }

// M returns the fixed edge count.
func (e *Gnm[T]) M() int { return e.m }

// SortAdj canonicalizes all adjacency lists of the current sample.
func (e *Gnm[T]) SortAdj() { e.graph.SortAdj() }

// RNG returns the generator in use.
func (e *Gnm[T]) RNG() *rand.Rand { return e.rng }

// SwapRNG installs rng and returns the previous generator.
func (e *Gnm[T]) SwapRNG(rng *rand.Rand) *rand.Rand {
	old := e.rng
	e.rng = rng
	return old
}
