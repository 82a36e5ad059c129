package bfs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lokmer/graphens/bfs"
	"github.com/lokmer/graphens/core"
)

func build(t *testing.T, n int, edges [][2]int) *core.Graph[core.EmptyPayload] {
	t.Helper()
	g, err := core.NewGraph[core.EmptyPayload](n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.SortAdj()
	return g
}

func TestIndexDepth_Path(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	var vertices, depths []int
	for v, d := range bfs.IndexDepth(g, 0) {
		vertices = append(vertices, v)
		depths = append(depths, d)
	}
	require.Equal(t, []int{0, 1, 2, 3}, vertices)
	require.Equal(t, []int{0, 1, 2, 3}, depths)
}

func TestIndexDepth_DepthOrder(t *testing.T) {
	// star plus one extra hop: 0-1, 0-2, 0-3, 3-4
	g := build(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {3, 4}})

	depth := make(map[int]int)
	prev := -1
	for v, d := range bfs.IndexDepth(g, 0) {
		require.GreaterOrEqual(t, d, prev, "depth must be non-decreasing")
		prev = d
		depth[v] = d
	}
	require.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2}, depth)
}

func TestIndexDepth_SkipsUnreachable(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {3, 4}})

	var vertices []int
	for v := range bfs.IndexDepth(g, 0) {
		vertices = append(vertices, v)
	}
	require.Equal(t, []int{0, 1}, vertices)
}

func TestIndexDepth_Restartable(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	seq := bfs.IndexDepth(g, 0)

	first := slices.Collect(keys(seq))
	second := slices.Collect(keys(seq))
	require.Equal(t, first, second)
}

func TestIndexDepth_EarlyBreak(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	count := 0
	for range bfs.IndexDepth(g, 0) {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestIndexDepth_InvalidStart(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}})

	for v, d := range bfs.IndexDepth(g, 7) {
		t.Fatalf("unexpected yield (%d, %d)", v, d)
	}
	for v, d := range bfs.IndexDepth(g, -1) {
		t.Fatalf("unexpected yield (%d, %d)", v, d)
	}
}

func TestIndexDepth_SingleVertex(t *testing.T) {
	g := build(t, 1, nil)

	var vertices, depths []int
	for v, d := range bfs.IndexDepth(g, 0) {
		vertices = append(vertices, v)
		depths = append(depths, d)
	}
	require.Equal(t, []int{0}, vertices)
	require.Equal(t, []int{0}, depths)
}

func keys(seq func(func(int, int) bool)) func(func(int) bool) {
	return func(yield func(int) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
