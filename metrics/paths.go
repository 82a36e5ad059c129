package metrics

import (
	"github.com/lokmer/graphens/bfs"
	"github.com/lokmer/graphens/core"
)

// LongestShortestPathFrom returns the eccentricity of v inside its
// component: the hop distance to the farthest reachable vertex. ok is
// false when v is out of range.
func LongestShortestPathFrom(g core.Topology, v int) (depth int, ok bool) {
	for _, d := range bfs.IndexDepth(g, v) {
		depth, ok = d, true
	}
	return depth, ok
}

// Diameter returns the longest shortest path of a connected graph.
// ok is false when the graph is empty or disconnected.
//
// Complexity: O(V * (V + E)), one breadth-first search per vertex.
func Diameter(g core.Topology) (int, bool) {
	connected, ok := IsConnected(g)
	if !ok || !connected {
		return 0, false
	}
	max := 0
	for v := 1; v < g.VertexCount(); v++ {
		ecc, _ := LongestShortestPathFrom(g, v)
		if ecc > max {
			max = ecc
		}
	}
	return max, true
}

// ClosenessCentrality returns, per vertex, (VertexCount-1) divided by
// the sum of hop distances to its reachable vertices. On a disconnected
// graph unreachable vertices simply do not contribute to the sum, which
// inflates the value; callers wanting a strict definition should check
// IsConnected first. An isolated vertex gets +Inf.
func ClosenessCentrality(g core.Topology) []float64 {
	n := g.VertexCount()
	sum := make([]int, n)
	for v := 0; v < n; v++ {
		for u, d := range bfs.IndexDepth(g, v) {
			sum[u] += d
		}
	}
	out := make([]float64, n)
	for v := range out {
		out[v] = float64(n-1) / float64(sum[v])
	}
	return out
}
