// Package metrics computes structural observables of a core.Topology:
// connected components, diameter and eccentricity, transitivity, q-core
// size, vertex load (shortest-path betweenness), closeness centrality
// and biconnected component sizes.
//
// All functions are read-only over the graph and allocate their own
// scratch state, so they can run on a Clone in a separate goroutine
// while the original keeps mutating.
//
// Functions returning (value, ok) use ok=false for inputs where the
// observable is undefined, e.g. connectivity of the empty graph or the
// diameter of a disconnected graph.
package metrics
