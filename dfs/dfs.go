package dfs

import (
	"iter"

	"github.com/lokmer/graphens/core"
)

// Visit yields every vertex reachable from start in depth-first order.
// Neighbors are pushed in adjacency-list order and popped last-first.
//
// The sequence is restartable: each range allocates fresh traversal
// state. An out-of-range start yields nothing.
func Visit(g core.Topology, start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := g.VertexCount()
		if start < 0 || start >= n {
			return
		}
		visited := make([]bool, n)
		visited[start] = true
		stack := []int{start}

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(v) {
				return
			}
			for u := range g.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}
	}
}

// WithIndex yields (vertex, discovery index) pairs in the same order as
// Visit, counting discoveries from 0.
func WithIndex(g core.Topology, start int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		i := 0
		for v := range Visit(g, start) {
			if !yield(v, i) {
				return
			}
			i++
		}
	}
}
