// Package core: shared types and sentinel errors.
//
// This file declares the Payload capability constraint, the bundled
// payload implementations, the read-only Topology view, and all sentinel
// errors raised by graph mutation.

package core

import (
	"errors"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrEdgeExists indicates an attempt to add an edge that is already present.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge does not exist")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge operation with both endpoints equal.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrInvalidSize indicates a negative vertex count passed to a constructor.
	ErrInvalidSize = errors.New("core: invalid graph size")
)

// Payload is the capability set a per-vertex value must provide.
//
// Implementations are value types: NewFromIndex is invoked on the zero
// value during graph construction, and Clone must return an independent
// copy (for payloads without reference fields, returning the receiver
// is sufficient).
type Payload[T any] interface {
	// NewFromIndex constructs the payload stored at vertex id.
	NewFromIndex(id int) T

	// Clone returns an independent copy of the payload.
	Clone() T
}

// EmptyPayload carries no data. Use it when only topology matters.
type EmptyPayload struct{}

// NewFromIndex returns a fresh EmptyPayload.
func (EmptyPayload) NewFromIndex(int) EmptyPayload { return EmptyPayload{} }

// Clone returns a copy of the payload.
func (EmptyPayload) Clone() EmptyPayload { return EmptyPayload{} }

// CountingPayload stores the index it was constructed at. It documents
// the Payload pattern and is handy for traversal tests.
type CountingPayload struct {
	// Index is the vertex id this payload was created for.
	Index int
}

// NewFromIndex returns a CountingPayload remembering id.
func (CountingPayload) NewFromIndex(id int) CountingPayload {
	return CountingPayload{Index: id}
}

// Clone returns a copy of the payload.
func (p CountingPayload) Clone() CountingPayload { return p }

// Topology is the read-only adjacency view consumed by the traversal and
// metric packages. Every GenericGraph instantiation satisfies it.
//
// All methods require their vertex arguments to lie in
// [0, VertexCount()); out-of-range access panics, matching slice
// semantics.
type Topology interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// Degree returns the number of neighbors of v.
	Degree(v int) int

	// IsAdjacent reports whether an edge (v,u) exists.
	IsAdjacent(v, u int) bool

	// Neighbors yields the neighbor ids of v in adjacency-list order.
	// The sequence is finite and restartable: each range starts over.
	Neighbors(v int) iter.Seq[int]
}
