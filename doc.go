// Package graphens is an in-memory toolkit for random-graph ensembles:
// build fixed-size undirected graphs, mutate them through reversible
// Markov steps, and measure their structure.
//
// What graphens gives you:
//
//   - Core primitives: dense integer vertex ids, per-vertex payloads,
//     adjacency containers with strict no-loop / no-multi-edge invariants
//   - Traversals: lazy, restartable BFS and DFS sequences
//   - Observables: connectivity, diameter, transitivity, q-core,
//     vertex load (betweenness-like), biconnected components
//   - Ensembles: Erdős–Rényi G(n,m) and G(n,p), Watts–Strogatz
//     small-world — each with randomize, markov-step and exact undo
//
// Why graphens?
//
//   - Reversibility first – every markov step returns a token sufficient
//     to restore the previous adjacency state bit for bit
//   - Reproducibility – each ensemble exclusively owns its RNG; swap it,
//     seed it, never share it
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under flat subpackages:
//
//	core/     — payloads, adjacency containers, GenericGraph, SW topology
//	bfs/      — breadth-first traversal sequences
//	dfs/      — depth-first traversal sequences
//	metrics/  — structural observables over any topology
//	ensemble/ — ensemble contract: RNG ownership, sampling, markov chains
//	er/       — Erdős–Rényi ensembles (fixed edge count, fixed probability)
//	sw/       — small-world (ring lattice + rewiring) ensemble
//
// Quick ASCII example, a rewired ring:
//
//	    0───1
//	   ╱│    ╲
//	  5 │     2
//	   ╲│    ╱
//	    4───3
//
// Higher-level samplers (Metropolis, Wang–Landau, ...) sit on top of the
// ensemble contract and are intentionally not part of this module.
package graphens
