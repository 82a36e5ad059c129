package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lokmer/graphens/core"
)

func TestNewGraph_InvalidSize(t *testing.T) {
	_, err := core.NewGraph[core.EmptyPayload](-1)
	require.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](0)
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0.0, g.AverageDegree())
}

func TestGraph_PayloadConstruction(t *testing.T) {
	g, err := core.NewGraph[core.CountingPayload](5)
	require.NoError(t, err)
	for v := 0; v < 5; v++ {
		require.Equal(t, v, g.At(v).Index)
		require.Equal(t, v, g.Container(v).ID())
	}
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(-1, 2), core.ErrIndexOutOfRange)
	require.ErrorIs(t, g.AddEdge(0, 4), core.ErrIndexOutOfRange)
	require.ErrorIs(t, g.AddEdge(2, 2), core.ErrSelfLoop)

	require.NoError(t, g.AddEdge(0, 1))
	require.ErrorIs(t, g.AddEdge(0, 1), core.ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(1, 0), core.ErrEdgeExists)
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveEdgeErrors(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	require.ErrorIs(t, g.RemoveEdge(0, 4), core.ErrIndexOutOfRange)
	require.ErrorIs(t, g.RemoveEdge(1, 1), core.ErrSelfLoop)
	require.ErrorIs(t, g.RemoveEdge(2, 3), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveEdge(1, 0))
	require.Equal(t, 0, g.EdgeCount())
	require.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
}

func TestGraph_AdjacencySymmetry(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	require.True(t, g.IsAdjacent(0, 1))
	require.True(t, g.IsAdjacent(1, 0))
	require.False(t, g.IsAdjacent(1, 2))
	require.False(t, g.IsAdjacent(-1, 0))

	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 0, g.Degree(3))
}

// Random add/remove churn must keep the adjacency lists symmetric,
// duplicate-free and in sync with EdgeCount.
func TestGraph_RandomChurnInvariants(t *testing.T) {
	const n = 20
	rng := rand.New(rand.NewSource(84213))
	g, err := core.NewGraph[core.EmptyPayload](n)
	require.NoError(t, err)

	for step := 0; step < 600; step++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if g.IsAdjacent(i, j) {
			require.NoError(t, g.RemoveEdge(i, j))
		} else {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	total := 0
	for v := 0; v < n; v++ {
		seen := make(map[int]bool)
		for u := range g.Neighbors(v) {
			require.False(t, seen[u], "duplicate neighbor %d of %d", u, v)
			seen[u] = true
			require.True(t, g.IsAdjacent(u, v), "missing mirror of (%d, %d)", v, u)
		}
		total += g.Degree(v)
	}
	require.Equal(t, 2*g.EdgeCount(), total)
}

func TestGraph_ClearEdges(t *testing.T) {
	g, err := core.NewGraph[core.CountingPayload](6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	g.ClearEdges()
	require.Equal(t, 0, g.EdgeCount())
	for v := 0; v < 6; v++ {
		require.Equal(t, 0, g.Degree(v))
		require.Equal(t, v, g.At(v).Index)
	}
}

func TestGraph_EdgesYieldsEachOnce(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](5)
	require.NoError(t, err)
	want := [][2]int{{0, 1}, {0, 4}, {2, 3}}
	for _, e := range want {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.SortAdj()

	var got [][2]int
	for i, j := range g.Edges() {
		require.Less(t, i, j)
		got = append(got, [2]int{i, j})
	}
	slices.SortFunc(got, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	require.Equal(t, want, got)
}

func TestGraph_SortAdjDeterminism(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](6)
	require.NoError(t, err)
	for _, u := range []int{5, 2, 4, 1} {
		require.NoError(t, g.AddEdge(0, u))
	}

	g.ShuffleAdj(rand.New(rand.NewSource(7)))
	g.SortAdj()
	require.Equal(t, []int{1, 2, 4, 5}, slices.Collect(g.Neighbors(0)))
}

func TestGraph_InitRing(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](5)
	require.NoError(t, err)

	require.ErrorIs(t, g.InitRing(0), core.ErrInvalidSize)
	require.ErrorIs(t, g.InitRing(3), core.ErrInvalidSize) // 5 < 2*3+1

	require.NoError(t, g.InitRing(2))
	require.Equal(t, 10, g.EdgeCount()) // complete graph on 5 vertices
	for v := 0; v < 5; v++ {
		require.Equal(t, 4, g.Degree(v))
	}

	// re-init replaces, never stacks
	require.NoError(t, g.InitRing(1))
	require.Equal(t, 5, g.EdgeCount())
	for v := 0; v < 5; v++ {
		require.Equal(t, 2, g.Degree(v))
		require.True(t, g.IsAdjacent(v, (v+1)%5))
	}
}

func TestGraph_LeafCountAndAverageDegree(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.Equal(t, 2, g.LeafCount()) // vertices 0 and 2
	require.Equal(t, 1.0, g.AverageDegree())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g, err := core.NewGraph[core.CountingPayload](5)
	require.NoError(t, err)
	require.NoError(t, g.InitRing(1))

	cp := g.Clone()
	require.True(t, g.EqualTopology(&cp.GenericGraph))
	require.Equal(t, 3, cp.At(3).Index)

	require.NoError(t, cp.RemoveEdge(0, 1))
	require.False(t, g.EqualTopology(&cp.GenericGraph))
	require.True(t, g.IsAdjacent(0, 1))
	require.Equal(t, 5, g.EdgeCount())
	require.Equal(t, 4, cp.EdgeCount())
}

func TestGraph_EqualTopologyIgnoresOrder(t *testing.T) {
	a, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)
	b, err := core.NewGraph[core.EmptyPayload](4)
	require.NoError(t, err)

	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(0, 2))
	require.NoError(t, b.AddEdge(0, 2))
	require.NoError(t, b.AddEdge(0, 1))
	require.True(t, a.EqualTopology(&b.GenericGraph))

	require.NoError(t, b.AddEdge(1, 3))
	require.False(t, a.EqualTopology(&b.GenericGraph))
}

func TestContainer_AdjFirst(t *testing.T) {
	g, err := core.NewGraph[core.EmptyPayload](3)
	require.NoError(t, err)

	_, ok := g.Container(0).AdjFirst()
	require.False(t, ok)

	require.NoError(t, g.AddEdge(0, 2))
	first, ok := g.Container(0).AdjFirst()
	require.True(t, ok)
	require.Equal(t, 2, first)
}
