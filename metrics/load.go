package metrics

import "github.com/lokmer/graphens/core"

// VertexLoad returns, per vertex, the number of shortest paths passing
// through it, closely related to betweenness centrality. Paths are
// counted from every source; when several shortest paths exist the
// count is split fractionally among them.
//
// With includeEndpoints, every path also counts toward its own
// endpoints: on a complete graph with n vertices every load is n-1.
// Without, endpoint contributions are subtracted and the complete graph
// yields all zeros.
//
// Algorithm after Newman, Phys. Rev. E 64, 016132 (2001).
// Complexity: O(V * (V + E)).
func VertexLoad(g core.Topology, includeEndpoints bool) []float64 {
	n := g.VertexCount()
	load := make([]float64, n)

	partial := make([]float64, n)
	distance := make([]int, n)
	predecessors := make([][]int, n)
	ordering := make([]int, 0, n)
	queue := make([]int, 0, n)
	next := make([]int, 0, n)

	const unseen = -1

	for source := 0; source < n; source++ {
		for v := 0; v < n; v++ {
			partial[v] = 1
			distance[v] = unseen
			predecessors[v] = predecessors[v][:0]
		}
		ordering = ordering[:0]

		// level-order sweep recording shortest-path predecessors
		depth := 0
		distance[source] = 0
		queue = append(queue[:0], source)
		next = next[:0]
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			ordering = append(ordering, v)
			for u := range g.Neighbors(v) {
				switch {
				case distance[u] == unseen:
					distance[u] = depth + 1
					predecessors[u] = append(predecessors[u], v)
					next = append(next, u)
				case distance[u] == depth+1:
					predecessors[u] = append(predecessors[u], v)
				}
			}
			if len(queue) == 0 {
				queue, next = next, queue[:0]
				depth++
			}
		}

		// walk back in reverse distance order, pushing path weight onto
		// predecessors; the source itself accumulates nothing
		for len(ordering) > 1 {
			v := ordering[len(ordering)-1]
			ordering = ordering[:len(ordering)-1]

			load[v] += partial[v]
			if !includeEndpoints {
				load[v]--
			}

			fraction := partial[v] / float64(len(predecessors[v]))
			for _, p := range predecessors[v] {
				partial[p] += fraction
			}
		}
		ordering = ordering[:0]
	}
	return load
}
