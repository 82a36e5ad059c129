package sw

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/lokmer/graphens/core"
	"github.com/lokmer/graphens/ensemble"
)

// Sentinel errors of the small-world ensemble.
var (
	// ErrNilRNG indicates a constructor was given a nil random number
	// generator.
	ErrNilRNG = errors.New("sw: nil random number generator")

	// ErrBadProbability indicates a rewire probability outside [0, 1].
	ErrBadProbability = errors.New("sw: rewire probability outside [0, 1]")

	// ErrRingSize indicates too few vertices for the requested ring
	// distance: the lattice needs at least 2*distance+1 vertices.
	ErrRingSize = errors.New("sw: too few vertices for ring distance")

	// ErrStepMismatch indicates an undo token that does not match the
	// current ensemble state, i.e. tokens fed back out of order.
	ErrStepMismatch = errors.New("sw: undo token does not match state")
)

// Step is the undo token of one small-world Markov step.
type Step = core.SwChange

// Option configures an Ensemble at construction time.
type Option func(*config)

type config struct {
	dist int
}

// WithRingDistance sets the substrate ring distance: every vertex
// connects to its d nearest neighbors on each side. The default is 2,
// the classic small-world substrate. New rejects d < 1 and vertex
// counts below 2*d+1.
func WithRingDistance(d int) Option {
	return func(c *config) { c.dist = d }
}

// Ensemble is the small-world ensemble over n vertices: a ring lattice
// in which every rooted edge is rewired to a random target with
// probability rProb, and sits at its ring position otherwise. The zero
// value is not usable; construct with New.
type Ensemble[T core.Payload[T]] struct {
	graph *core.SwGraph[T]
	rProb float64
	dist  int
	rng   *rand.Rand
}

// compile-time contract checks
var (
	_ ensemble.MarkovChain[Step] = (*Ensemble[core.EmptyPayload])(nil)
	_ ensemble.SimpleSampler = (*Ensemble[core.EmptyPayload])(nil)
	_ ensemble.WithGraph[core.SwGraph[core.EmptyPayload]] = (*Ensemble[core.EmptyPayload])(nil)
	_ ensemble.HasRNG = (*Ensemble[core.EmptyPayload])(nil)
)

// New creates a small-world ensemble and draws an initial sample: the
// ring lattice is built, then every rooted edge is independently
// rewired with probability rProb.
//
// Returns ErrNilRNG for a nil generator, ErrBadProbability for rProb
// outside [0, 1], ErrRingSize when n < 2*dist+1 or dist < 1.
func New[T core.Payload[T]](n int, rProb float64, rng *rand.Rand, opts ...Option) (*Ensemble[T], error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	if rProb < 0 || rProb > 1 {
		return nil, fmt.Errorf("sw: rewire probability %v: %w", rProb, ErrBadProbability)
	}
	cfg := config{dist: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dist < 1 || n < 2*cfg.dist+1 {
		return nil, fmt.Errorf("sw: %d vertices with ring distance %d: %w", n, cfg.dist, ErrRingSize)
	}

	g, err := core.NewSwGraph[T](n)
	if err != nil {
		return nil, err
	}
	if err := g.InitRing(cfg.dist); err != nil {
		return nil, err
	}
	e := &Ensemble[T]{graph: g, rProb: rProb, dist: cfg.dist, rng: rng}
	e.Randomize()
	return e, nil
}

// drawRemaining draws a vertex uniformly from all vertices except skip.
func (e *Ensemble[T]) drawRemaining(skip int) int {
	num := e.rng.Intn(e.graph.VertexCount() - 1)
	if num >= skip {
		num++
	}
	return num
}

// DrawEdge draws a uniformly random rooted edge (i0, i1) plus an
// alternative target i2 uniform over all vertices except i0. i2 may
// coincide with i1, in which case a rewire of the drawn edge is a
// no-op.
func (e *Ensemble[T]) DrawEdge() (i0, i1, i2 int) {
	i0 = e.rng.Intn(e.graph.VertexCount())
	roots := slices.Collect(e.graph.Container(i0).Roots())
	i1 = roots[e.rng.Intn(len(roots))]
	i2 = e.drawRemaining(i0)
	return i0, i1, i2
}

// randomizeEdge re-draws the state of the edge rooted at i0 currently
// ending at i1: with probability rProb it is rewired to a random
// target, otherwise it is reset to its ring position.
func (e *Ensemble[T]) randomizeEdge(i0, i1 int) Step {
	if e.rng.Float64() <= e.rProb {
		return e.graph.RewireEdge(i0, i1, e.drawRemaining(i0))
	}
	return e.graph.ResetEdge(i0, i1)
}

// MarkovStep re-draws the state of one uniformly chosen rooted edge.
// The returned token is the core.SwChange of the move; SwNothing and
// SwBlockedByExistingEdge tokens mean the graph is unchanged.
func (e *Ensemble[T]) MarkovStep() Step {
	i0, i1, i2 := e.DrawEdge()
	if e.rng.Float64() <= e.rProb {
		return e.graph.RewireEdge(i0, i1, i2)
	}
	return e.graph.ResetEdge(i0, i1)
}

// UndoStep inverts a step by rewiring (I0, I2) back onto I1, which
// restores targets and root tags exactly. No-op tokens undo to no-ops.
//
// Returns ErrStepMismatch when the inverse rewire is rejected or when
// the token recorded a failed operation; the graph is unchanged then.
func (e *Ensemble[T]) UndoStep(step Step) error {
	switch step.Kind {
	case core.SwNothing, core.SwBlockedByExistingEdge:
		return nil
	case core.SwRewire, core.SwReset:
		res := e.graph.RewireEdge(step.I0, step.I2, step.I1)
		if res.Kind != core.SwRewire {
			return fmt.Errorf("sw: inverse rewire (%d, %d) -> %d rejected with %s: %w",
				step.I0, step.I2, step.I1, res.Kind, ErrStepMismatch)
		}
		return nil
	default:
		return fmt.Errorf("sw: token of kind %s: %w", step.Kind, ErrStepMismatch)
	}
}

// UndoStepQuiet inverts a step, panicking on a mismatched token.
func (e *Ensemble[T]) UndoStepQuiet(step Step) {
	if err := e.UndoStep(step); err != nil {
		panic(err)
	}
}

// Randomize re-draws the state of every rooted edge independently:
// rewired with probability rProb, reset to the ring otherwise. The
// result is an independent sample of the ensemble.
func (e *Ensemble[T]) Randomize() {
	n := e.graph.VertexCount()
	targets := make([]int, 0, e.dist)
	for i := 0; i < n; i++ {
		// snapshot before mutating: randomizeEdge moves targets around
		targets = slices.AppendSeq(targets[:0], e.graph.Container(i).Roots())
		for _, t := range targets {
			state := e.randomizeEdge(i, t)
			if state.Kind == core.SwInvalidAdjacency || state.Kind == core.SwGraphError {
				panic(fmt.Sprintf("sw: randomize hit %s on edge (%d, %d)", state.Kind, i, t))
			}
		}
	}
}

// RProb returns the rewire probability.
func (e *Ensemble[T]) RProb() float64 { return e.rProb }

// SetRProb installs a new rewire probability. Only future steps and
// draws use it; the current sample is untouched until Randomize or
// MarkovStep.
//
// Returns ErrBadProbability for rProb outside [0, 1].
func (e *Ensemble[T]) SetRProb(rProb float64) error {
	if rProb < 0 || rProb > 1 {
		return fmt.Errorf("sw: rewire probability %v: %w", rProb, ErrBadProbability)
	}
	e.rProb = rProb
	return nil
}

// RingDistance returns the substrate ring distance.
func (e *Ensemble[T]) RingDistance() int { return e.dist }

// Graph returns the current sample. The ensemble keeps ownership.
func (e *Ensemble[T]) Graph() *core.SwGraph[T] { return e.graph }

// SortAdj canonicalizes all adjacency lists of the current sample.
func (e *Ensemble[T]) SortAdj() { e.graph.SortAdj() }

// RNG returns the generator in use.
func (e *Ensemble[T]) RNG() *rand.Rand { return e.rng }

// SwapRNG installs rng and returns the previous generator.
func (e *Ensemble[T]) SwapRNG(rng *rand.Rand) *rand.Rand {
	old := e.rng
	e.rng = rng
	return old
}
