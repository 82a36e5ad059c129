// Package bfs provides breadth-first traversal over any core.Topology.
//
// The traversal is exposed as a lazy iter.Seq2 of (vertex, depth) pairs:
// ranging over it walks the connected component of the start vertex in
// non-decreasing depth order, and each new range statement restarts the
// walk from scratch. Breaking out of the loop early abandons the
// remaining frontier with no cleanup needed.
//
//	for v, d := range bfs.IndexDepth(g, 0) {
//	    fmt.Printf("vertex %d at depth %d\n", v, d)
//	}
//
// Complexity: O(V + E) per full walk, O(V) scratch memory.
package bfs
