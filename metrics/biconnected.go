package metrics

import (
	"slices"

	"github.com/lokmer/graphens/core"
)

// BiconnectedComponents returns the sizes of all maximal biconnected
// components, sorted descending. A component is a maximal vertex set
// that stays connected after removal of any single vertex; under this
// definition a bridge edge forms a component of size 2.
//
// With dropPairs set, size-2 components are omitted, which matches the
// alternative definition requiring two vertex-independent paths between
// any two component members.
//
// Algorithm 447 of Hopcroft and Tarjan, Commun. ACM 16, 372 (1973).
// The edge-consuming walk runs on a scratch copy of the adjacency; g is
// not modified.
func BiconnectedComponents(g core.Topology, dropPairs bool) []int {
	n := g.VertexCount()

	// scratch adjacency, destroyed edge by edge
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		adj[v] = slices.Collect(g.Neighbors(v))
	}
	removeEdge := func(v, u int) {
		i := slices.Index(adj[v], u)
		adj[v][i] = adj[v][len(adj[v])-1]
		adj[v] = adj[v][:len(adj[v])-1]
	}

	low := make([]int, n)
	number := make([]int, n)
	handled := make([]bool, n)
	var edgeStack [][2]int
	var vertexStack []int
	var componentSizes []int
	seen := make(map[int]bool)

	for pivot := 0; pivot < n; pivot++ {
		if handled[pivot] {
			continue
		}
		low[pivot] = 0
		number[pivot] = 0
		handled[pivot] = true
		vertexStack = append(vertexStack[:0], pivot)

		for len(vertexStack) > 0 {
			top := vertexStack[len(vertexStack)-1]

			if len(adj[top]) > 0 {
				// consume one edge, walk it
				nextVertex := adj[top][0]
				edgeStack = append(edgeStack, [2]int{top, nextVertex})
				removeEdge(top, nextVertex)
				removeEdge(nextVertex, top)

				if !handled[nextVertex] {
					number[nextVertex] = len(vertexStack)
					vertexStack = append(vertexStack, nextVertex)
					low[nextVertex] = number[top]
					handled[nextVertex] = true
				} else if number[nextVertex] < low[top] {
					low[top] = number[nextVertex]
				}
				continue
			}

			// top has no edges left, retreat
			vertexStack = vertexStack[:len(vertexStack)-1]
			if len(vertexStack) == 0 {
				break
			}
			prev := vertexStack[len(vertexStack)-1]
			if low[top] == number[prev] {
				// everything above prev on the edge stack is one
				// biconnected component
				clear(seen)
				for len(edgeStack) > 0 {
					e := edgeStack[len(edgeStack)-1]
					if number[e[0]] < number[prev] || number[e[1]] < number[prev] {
						break
					}
					seen[e[0]] = true
					seen[e[1]] = true
					edgeStack = edgeStack[:len(edgeStack)-1]
				}
				if len(seen) > 0 {
					componentSizes = append(componentSizes, len(seen))
				}
			} else if low[top] < low[prev] {
				low[prev] = low[top]
			}
		}
	}

	if dropPairs {
		componentSizes = slices.DeleteFunc(componentSizes, func(s int) bool { return s <= 2 })
	}
	slices.SortFunc(componentSizes, func(a, b int) int { return b - a })
	return componentSizes
}
