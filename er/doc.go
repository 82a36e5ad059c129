// Package er implements two Erdős–Rényi random-graph ensembles.
//
//   - Gnm fixes the edge count: every graph with exactly m edges on n
//     vertices is equally likely. Markov steps swap one existing edge
//     for one random candidate pair, so the chain walks the ensemble at
//     constant edge count.
//   - Gnp fixes the edge probability: every vertex pair carries an edge
//     independently with probability p. Markov steps re-draw a single
//     uniformly chosen pair, adding or removing its edge.
//
// Both ensembles own their graph and RNG, satisfy the
// ensemble.MarkovChain, SimpleSampler, WithGraph and HasRNG contracts,
// and produce step tokens that invert exactly. Reproducibility is per
// seed: same seed, same sequence of graphs.
//
// Citation: P. Erdős and A. Rényi, "On the evolution of random graphs",
// Publ. Math. Inst. Hungar. Acad. Sci. 5, 17 (1960).
package er
