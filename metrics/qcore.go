package metrics

import "github.com/lokmer/graphens/core"

// QCore returns the vertices of the q-core: the maximal subset in which
// every vertex has at least q neighbors inside the subset. Computed by
// repeatedly peeling vertices of residual degree below q. For q <= 0
// nothing is peeled and every vertex survives. The result is sorted
// ascending; it is empty when the core is empty.
func QCore(g core.Topology, q int) []int {
	n := g.VertexCount()
	deg := make([]int, n)
	for v := 0; v < n; v++ {
		deg[v] = g.Degree(v)
	}
	removed := make([]bool, n)

	changed := true
	for changed {
		changed = false
		for v := 0; v < n; v++ {
			if removed[v] || deg[v] >= q {
				continue
			}
			removed[v] = true
			changed = true
			for u := range g.Neighbors(v) {
				if !removed[u] {
					deg[u]--
				}
			}
		}
	}

	survivors := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !removed[v] {
			survivors = append(survivors, v)
		}
	}
	return survivors
}

// QCoreSize returns the number of vertices in the largest connected
// component of the q-core. ok is false when the core is undefined:
// q < 2 or an empty graph.
func QCoreSize(g core.Topology, q int) (int, bool) {
	if q < 2 || g.VertexCount() == 0 {
		return 0, false
	}
	surviving := QCore(g, q)
	alive := make(map[int]bool, len(surviving))
	for _, v := range surviving {
		alive[v] = true
	}

	// largest component within the surviving set
	best := 0
	stack := make([]int, 0, len(surviving))
	for _, v := range surviving {
		if !alive[v] {
			continue
		}
		alive[v] = false
		stack = append(stack[:0], v)
		size := 0
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for u := range g.Neighbors(cur) {
				if alive[u] {
					alive[u] = false
					stack = append(stack, u)
				}
			}
		}
		if size > best {
			best = size
		}
	}
	return best, true
}
