// Package core defines the central graph primitives of graphens: vertex
// payloads, adjacency containers, and the GenericGraph arena that owns them.
//
// What:
//
//   - Payload: the capability set a per-vertex value must provide
//     (construct-from-index, clone). EmptyPayload and CountingPayload are
//     ready-made implementations.
//   - AdjContainer: one vertex record — payload plus adjacency list.
//     Two implementations exist: NodeContainer (plain neighbor ids) and
//     SwContainer (neighbor ids tagged with their ring-lattice origin,
//     enabling reset-to-root semantics for small-world graphs).
//   - GenericGraph: a fixed-length, index-addressed collection of
//     containers. Vertices are dense integers in [0, VertexCount());
//     adjacency is symmetric, loop-free and duplicate-free by invariant.
//   - Graph / SwGraph: the two concrete instantiations, with small-world
//     rewire/reset operations defined on the latter.
//
// Why index-based:
//
//	Adjacency is stored as integer ids into one owning slice rather than
//	as interlinked pointers. Vertex lookup stays O(1), cloning is a flat
//	copy, and no reference cycles can form.
//
// Concurrency:
//
//	A graph is exclusively owned by its creator (typically an ensemble).
//	No internal locking is performed; independent graphs may be used from
//	independent goroutines without coordination.
//
// Errors:
//
//	ErrEdgeExists      - edge already present.
//	ErrEdgeNotFound    - edge not present.
//	ErrIndexOutOfRange - vertex index outside [0, VertexCount()).
//	ErrSelfLoop        - both endpoints equal.
//	ErrInvalidSize     - negative size passed to a constructor.
package core
