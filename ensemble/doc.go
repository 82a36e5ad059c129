// Package ensemble defines the contract shared by all random-graph
// ensembles and the helpers built on top of it.
//
// An ensemble owns a graph and a random number generator and mutates
// the graph through small reversible Markov steps. Every MarkovStep
// returns a step token describing exactly what changed; feeding tokens
// back to UndoStep in reverse order restores the earlier state bit for
// bit, which is what Monte Carlo rejection needs.
//
//	var steps []er.GnmStep
//	ensemble.MSteps(e, 32, &steps)
//	if !accept(e.Graph()) {
//	    if err := ensemble.UndoSteps(e, steps); err != nil { ... }
//	}
//
// Sample and SampleVec drive the randomize-measure loop for plain
// ensemble averages.
package ensemble
