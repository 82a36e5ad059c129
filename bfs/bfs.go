package bfs

import (
	"iter"

	"github.com/lokmer/graphens/core"
)

// queued is one frontier entry.
type queued struct {
	v     int
	depth int
}

// IndexDepth yields every vertex reachable from start, paired with its
// hop distance from start. Vertices surface in non-decreasing depth;
// within one depth the order follows the adjacency lists. The start
// vertex itself is yielded first at depth 0.
//
// The sequence is restartable: each range allocates fresh traversal
// state. An out-of-range start yields nothing.
func IndexDepth(g core.Topology, start int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := g.VertexCount()
		if start < 0 || start >= n {
			return
		}
		visited := make([]bool, n)
		visited[start] = true
		queue := []queued{{v: start, depth: 0}}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur.v, cur.depth) {
				return
			}
			for u := range g.Neighbors(cur.v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, queued{v: u, depth: cur.depth + 1})
				}
			}
		}
	}
}
