package metrics

import (
	"slices"

	"github.com/lokmer/graphens/core"
	"github.com/lokmer/graphens/dfs"
)

// ComponentIDs labels every vertex with its connected-component id.
// Ids are dense, assigned in order of each component's lowest vertex.
func ComponentIDs(g core.Topology) []int {
	n := g.VertexCount()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = -1
	}
	next := 0
	for v := 0; v < n; v++ {
		if ids[v] != -1 {
			continue
		}
		for u := range dfs.Visit(g, v) {
			ids[u] = next
		}
		next++
	}
	return ids
}

// Components returns the connected-component sizes sorted descending.
// The empty graph yields an empty slice.
func Components(g core.Topology) []int {
	ids := ComponentIDs(g)
	var sizes []int
	for _, id := range ids {
		for id >= len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[id]++
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}

// IsConnected reports whether every vertex is reachable from every
// other. ok is false for the empty graph, where connectivity is
// undefined; a single vertex counts as connected.
func IsConnected(g core.Topology) (connected, ok bool) {
	n := g.VertexCount()
	if n == 0 {
		return false, false
	}
	count := 0
	for range dfs.Visit(g, 0) {
		count++
	}
	return count == n, true
}
