package metrics

import "github.com/lokmer/graphens/core"

// Transitivity returns the ratio of closed two-hop paths to all two-hop
// paths, a global clustering measure. Both counts enumerate directed
// paths, so the factor of two cancels. A graph without any two-hop path
// has transitivity 0.
//
// Complexity: O(sum over v of Degree(v) * max Degree).
func Transitivity(g core.Topology) float64 {
	paths := 0
	closed := 0
	for v := 0; v < g.VertexCount(); v++ {
		for mid := range g.Neighbors(v) {
			for end := range g.Neighbors(mid) {
				if end == v {
					continue
				}
				paths++
				if g.IsAdjacent(end, v) {
					closed++
				}
			}
		}
	}
	if paths == 0 {
		return 0
	}
	return float64(closed) / float64(paths)
}
