package er_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lokmer/graphens/core"
	"github.com/lokmer/graphens/ensemble"
	"github.com/lokmer/graphens/er"
	"github.com/lokmer/graphens/metrics"
)

func TestNewGnm_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := er.NewGnm[core.EmptyPayload](10, 15, nil)
	require.ErrorIs(t, err, er.ErrNilRNG)

	_, err = er.NewGnm[core.EmptyPayload](-1, 0, rng)
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = er.NewGnm[core.EmptyPayload](4, 7, rng) // max is 6
	require.ErrorIs(t, err, er.ErrEdgeBudget)

	_, err = er.NewGnm[core.EmptyPayload](4, -1, rng)
	require.ErrorIs(t, err, er.ErrEdgeBudget)
}

func TestGnm_InitialDraw(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](10, 15, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, 15, e.M())
	require.Equal(t, 15, e.Graph().EdgeCount())
	require.Equal(t, 10, e.Graph().VertexCount())
	require.InDelta(t, 3.0, e.Graph().AverageDegree(), 1e-12)
}

func TestGnm_RandomizeKeepsEdgeCount(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](10, 15, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		e.Randomize()
		require.Equal(t, 15, e.Graph().EdgeCount())
	}
}

func TestGnm_MarkovStepConservesEdgeCount(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](10, 15, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	swaps, blocked := 0, 0
	for i := 0; i < 500; i++ {
		step := e.MarkovStep()
		require.Equal(t, 15, e.Graph().EdgeCount())
		switch step.Kind {
		case er.GnmSwap:
			swaps++
			require.True(t, e.Graph().IsAdjacent(step.Inserted[0], step.Inserted[1]))
			require.False(t, e.Graph().IsAdjacent(step.Removed[0], step.Removed[1]))
		case er.GnmBlocked:
			blocked++
			require.True(t, e.Graph().IsAdjacent(step.Inserted[0], step.Inserted[1]))
		}
	}
	// with 15 of 45 pairs occupied roughly a third of draws block
	require.Positive(t, swaps)
	require.Positive(t, blocked)
}

func TestGnm_UndoRestoresTopology(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](10, 15, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	before := e.Graph().Clone()

	var steps []er.GnmStep
	ensemble.MSteps[er.GnmStep](e, 100, &steps)
	require.NoError(t, ensemble.UndoSteps[er.GnmStep](e, steps))

	require.True(t, e.Graph().EqualTopology(&before.GenericGraph))
}

func TestGnm_UndoMismatch(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](10, 15, rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	var step er.GnmStep
	for step = e.MarkovStep(); step.Kind != er.GnmSwap; step = e.MarkovStep() {
	}
	require.NoError(t, e.UndoStep(step))

	// replaying the same token again must fail and change nothing
	snapshot := e.Graph().Clone()
	require.ErrorIs(t, e.UndoStep(step), er.ErrStepMismatch)
	require.True(t, e.Graph().EqualTopology(&snapshot.GenericGraph))

	require.Panics(t, func() { e.UndoStepQuiet(step) })
}

func TestGnm_EmptyEnsemble(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](5, 0, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	step := e.MarkovStep()
	require.Equal(t, er.GnmBlocked, step.Kind)
	require.NoError(t, e.UndoStep(step))
	require.Equal(t, 0, e.Graph().EdgeCount())
}

func TestGnm_CompleteGraphAlwaysBlocks(t *testing.T) {
	e, err := er.NewGnm[core.EmptyPayload](4, 6, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	snapshot := e.Graph().Clone()
	for i := 0; i < 50; i++ {
		require.Equal(t, er.GnmBlocked, e.MarkovStep().Kind)
	}
	require.True(t, e.Graph().EqualTopology(&snapshot.GenericGraph))
}

func TestGnm_SeedReproducibility(t *testing.T) {
	a, err := er.NewGnm[core.EmptyPayload](12, 20, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := er.NewGnm[core.EmptyPayload](12, 20, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.MarkovStep(), b.MarkovStep())
	}
	require.True(t, a.Graph().EqualTopology(&b.Graph().GenericGraph))
}

func TestGnm_SwapRNG(t *testing.T) {
	first := rand.New(rand.NewSource(1))
	e, err := er.NewGnm[core.EmptyPayload](8, 10, first)
	require.NoError(t, err)

	second := rand.New(rand.NewSource(2))
	old := e.SwapRNG(second)
	require.Same(t, first, old)
	require.Same(t, second, e.RNG())
}

func TestGnm_ObservablesOnSample(t *testing.T) {
	e, err := er.NewGnm[core.CountingPayload](10, 15, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	e.SortAdj()

	// generic sanity on a random sample rather than fixed values
	ids := metrics.ComponentIDs(e.Graph())
	require.Len(t, ids, 10)
	trans := metrics.Transitivity(e.Graph())
	require.GreaterOrEqual(t, trans, 0.0)
	require.LessOrEqual(t, trans, 1.0)
}
