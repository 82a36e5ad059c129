// Package dfs provides depth-first traversal over any core.Topology.
//
// Visit yields the vertices reachable from a start vertex in iterative
// depth-first order; WithIndex pairs each vertex with its 0-based
// discovery index. Both sequences are lazy and restartable, so a caller
// can stop early or walk the same component twice without extra
// bookkeeping.
//
// Vertices are marked when pushed, so the order differs from the
// recursive formulation on graphs where a vertex is reachable through
// several stack entries. Consumers that only need the reachable set are
// unaffected.
//
// Complexity: O(V + E) per full walk, O(V) scratch memory.
package dfs
