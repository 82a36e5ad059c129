// Package sw implements the small-world ensemble: a ring lattice whose
// edges rewire with a per-edge probability, after Watts and Strogatz.
//
// The substrate is a ring where every vertex connects to its nearest
// neighbors up to a fixed distance (2 unless WithRingDistance changes
// it). Each edge stays rooted at the vertex that created it and
// remembers its ring target; Markov steps move the loose end of one
// rooted edge to a random vertex or back to its root, so the ensemble
// can always restore the pristine lattice edge by edge.
//
// Step tokens are core.SwChange values. Rewiring (I0, I2) back onto I1
// inverts any successful move, which is what UndoStep does.
//
// Citation: D. J. Watts and S. H. Strogatz, "Collective dynamics of
// 'small-world' networks", Nature 393, 440 (1998).
package sw
