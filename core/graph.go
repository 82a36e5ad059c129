// Package core: graph storage and topology operations.

package core

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
)

// ContainerPtr constrains A to a pointer to the concrete container type C
// that satisfies AdjContainer[T]. Keeping C as the value type lets
// GenericGraph store containers in one contiguous slice.
type ContainerPtr[T Payload[T], C any] interface {
	*C
	AdjContainer[T]
}

// GenericGraph is an undirected simple graph over a fixed vertex set
// 0..n-1. Vertices are stored densely; there is no vertex insertion or
// removal after construction. The container type decides what per-edge
// state exists: NodeContainer keeps plain adjacency, SwContainer adds
// root tags for small-world rewiring.
//
// A GenericGraph is not safe for concurrent mutation. One goroutine owns
// it; snapshots for parallel analysis go through Clone.
type GenericGraph[T Payload[T], C any, A ContainerPtr[T, C]] struct {
	vertices  []C
	edgeCount int
}

func (g *GenericGraph[T, C, A]) init(size int) error {
	if size < 0 {
		return fmt.Errorf("core: graph size %d: %w", size, ErrInvalidSize)
	}
	g.vertices = make([]C, size)
	g.edgeCount = 0
	for i := range g.vertices {
		var payload T
		A(&g.vertices[i]).init(i, payload.NewFromIndex(i))
	}
	return nil
}

// VertexCount returns the number of vertices.
func (g *GenericGraph[T, C, A]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *GenericGraph[T, C, A]) EdgeCount() int { return g.edgeCount }

// Degree returns the degree of vertex v.
// Panics if v is out of range, as with any slice index.
func (g *GenericGraph[T, C, A]) Degree(v int) int {
	return A(&g.vertices[v]).Degree()
}

// AverageDegree returns 2*EdgeCount/VertexCount, or 0 for the empty graph.
func (g *GenericGraph[T, C, A]) AverageDegree() float64 {
	if len(g.vertices) == 0 {
		return 0
	}
	return 2 * float64(g.edgeCount) / float64(len(g.vertices))
}

// LeafCount returns the number of degree-1 vertices.
func (g *GenericGraph[T, C, A]) LeafCount() int {
	n := 0
	for i := range g.vertices {
		if A(&g.vertices[i]).Degree() == 1 {
			n++
		}
	}
	return n
}

// Container returns the container of vertex v for read access and
// payload mutation. The graph retains ownership.
func (g *GenericGraph[T, C, A]) Container(v int) A {
	return A(&g.vertices[v])
}

// At returns a pointer to the payload of vertex v.
func (g *GenericGraph[T, C, A]) At(v int) *T {
	return A(&g.vertices[v]).Contained()
}

// IsAdjacent reports whether the edge (v, u) exists. O(Degree(v)).
func (g *GenericGraph[T, C, A]) IsAdjacent(v, u int) bool {
	if v < 0 || v >= len(g.vertices) {
		return false
	}
	return A(&g.vertices[v]).IsAdjacent(u)
}

// Neighbors yields the neighbors of v in adjacency-list order.
func (g *GenericGraph[T, C, A]) Neighbors(v int) iter.Seq[int] {
	return A(&g.vertices[v]).Neighbors()
}

func (g *GenericGraph[T, C, A]) checkPair(i, j int) error {
	n := len(g.vertices)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("core: vertex pair (%d, %d) with %d vertices: %w", i, j, n, ErrIndexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("core: vertex pair (%d, %d): %w", i, j, ErrSelfLoop)
	}
	return nil
}

// AddEdge inserts the edge (i, j).
//
// Returns ErrIndexOutOfRange if either endpoint is invalid, ErrSelfLoop
// if i == j, ErrEdgeExists if the edge is already present. O(Degree(i)).
func (g *GenericGraph[T, C, A]) AddEdge(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if err := A(&g.vertices[i]).connect(A(&g.vertices[j])); err != nil {
		return fmt.Errorf("core: add edge (%d, %d): %w", i, j, err)
	}
	g.edgeCount++
	return nil
}

// RemoveEdge deletes the edge (i, j).
//
// Returns ErrIndexOutOfRange if either endpoint is invalid, ErrSelfLoop
// if i == j, ErrEdgeNotFound if the edge is absent. O(Degree(i) + Degree(j)).
func (g *GenericGraph[T, C, A]) RemoveEdge(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if err := A(&g.vertices[i]).disconnect(A(&g.vertices[j])); err != nil {
		return fmt.Errorf("core: remove edge (%d, %d): %w", i, j, err)
	}
	g.edgeCount--
	return nil
}

// ClearEdges removes every edge, keeping vertices and payloads.
func (g *GenericGraph[T, C, A]) ClearEdges() {
	if g.edgeCount == 0 {
		return
	}
	for i := range g.vertices {
		A(&g.vertices[i]).clearEdges()
	}
	g.edgeCount = 0
}

// SortAdj canonicalizes every adjacency list to ascending id order.
// Call after a run of mutations to make iteration order deterministic.
func (g *GenericGraph[T, C, A]) SortAdj() {
	for i := range g.vertices {
		A(&g.vertices[i]).SortAdj()
	}
}

// ShuffleAdj randomizes every adjacency list order using rng. Useful for
// testing order-independence of traversal consumers.
func (g *GenericGraph[T, C, A]) ShuffleAdj(rng *rand.Rand) {
	for i := range g.vertices {
		A(&g.vertices[i]).shuffleAdj(rng)
	}
}

// Edges yields each undirected edge exactly once as (i, j) with no
// ordering guarantee between pairs. Entries with j < i are skipped, so
// every pair surfaces from its lower endpoint.
func (g *GenericGraph[T, C, A]) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range g.vertices {
			for j := range A(&g.vertices[i]).Neighbors() {
				if j < i {
					continue
				}
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// InitRing discards all edges and connects every vertex to its dist
// nearest neighbors on each side of the ring 0..n-1.
//
// Returns ErrInvalidSize when the ring would wrap onto itself, i.e.
// when VertexCount < 2*dist+1, or when dist < 1.
func (g *GenericGraph[T, C, A]) InitRing(dist int) error {
	n := len(g.vertices)
	if dist < 1 || n < 2*dist+1 {
		return fmt.Errorf("core: ring distance %d with %d vertices: %w", dist, n, ErrInvalidSize)
	}
	g.ClearEdges()
	for i := 0; i < n; i++ {
		for d := 1; d <= dist; d++ {
			if err := g.AddEdge(i, (i+d)%n); err != nil {
				return err
			}
		}
	}
	return nil
}

// EqualTopology reports whether g and other have the same vertex count
// and the same edge set, ignoring adjacency order and payloads.
func (g *GenericGraph[T, C, A]) EqualTopology(other *GenericGraph[T, C, A]) bool {
	if len(g.vertices) != len(other.vertices) || g.edgeCount != other.edgeCount {
		return false
	}
	for i := range g.vertices {
		a := slices.Sorted(A(&g.vertices[i]).Neighbors())
		b := slices.Sorted(A(&other.vertices[i]).Neighbors())
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy: containers, adjacency and payloads (via
// Payload.Clone) are all duplicated.
func (g *GenericGraph[T, C, A]) Clone() *GenericGraph[T, C, A] {
	out := &GenericGraph[T, C, A]{
		vertices:  make([]C, len(g.vertices)),
		edgeCount: g.edgeCount,
	}
	for i := range g.vertices {
		A(&out.vertices[i]).copyFrom(A(&g.vertices[i]))
	}
	return out
}

// Graph is the plain undirected graph: GenericGraph over NodeContainer.
type Graph[T Payload[T]] struct {
	GenericGraph[T, NodeContainer[T], *NodeContainer[T]]
}

// NewGraph creates a Graph with size isolated vertices. Payloads are
// built with NewFromIndex.
//
// Returns ErrInvalidSize for negative size.
func NewGraph[T Payload[T]](size int) (*Graph[T], error) {
	g := &Graph[T]{}
	if err := g.init(size); err != nil {
		return nil, err
	}
	return g, nil
}

// Clone returns a deep copy of the graph.
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{GenericGraph: *g.GenericGraph.Clone()}
}
