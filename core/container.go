// Package core: adjacency containers.
//
// An AdjContainer is one vertex record: the caller payload plus the
// adjacency list. Containers are created in place by the owning graph
// and never move to a different id afterwards. All mutation goes through
// unexported hooks so that only GenericGraph can change topology.

package core

import (
	"iter"
	"math/rand"
	"slices"
)

// AdjContainer is the per-vertex contract shared by NodeContainer and
// SwContainer. Mutating hooks are unexported: topology changes only
// happen through the owning GenericGraph.
type AdjContainer[T Payload[T]] interface {
	// ID returns the vertex id this container was created at.
	ID() int

	// Contained returns a pointer to the stored payload for read and
	// write access.
	Contained() *T

	// Degree returns the adjacency-list length.
	Degree() int

	// IsAdjacent reports whether other appears in the adjacency list.
	// O(Degree).
	IsAdjacent(other int) bool

	// Neighbors yields neighbor ids in adjacency-list order. The
	// sequence is finite and restartable.
	Neighbors() iter.Seq[int]

	// AdjFirst returns the first adjacency entry, or ok=false when the
	// vertex is isolated.
	AdjFirst() (id int, ok bool)

	// SortAdj canonicalizes the adjacency list to ascending id order,
	// making iteration order deterministic for a given seed.
	SortAdj()

	init(id int, payload T)
	connect(other AdjContainer[T]) error
	disconnect(other AdjContainer[T]) error
	clearEdges()
	shuffleAdj(rng *rand.Rand)
	copyFrom(src AdjContainer[T])
}

// NodeContainer is the plain AdjContainer: payload plus a flat list of
// neighbor ids.
type NodeContainer[T Payload[T]] struct {
	id      int
	adj     []int
	payload T
}

// ID returns the vertex id this container was created at.
func (c *NodeContainer[T]) ID() int { return c.id }

// Contained returns a pointer to the stored payload.
func (c *NodeContainer[T]) Contained() *T { return &c.payload }

// Degree returns the number of neighbors.
func (c *NodeContainer[T]) Degree() int { return len(c.adj) }

// IsAdjacent reports whether other is a neighbor. O(Degree).
func (c *NodeContainer[T]) IsAdjacent(other int) bool {
	return slices.Contains(c.adj, other)
}

// Neighbors yields neighbor ids in adjacency-list order.
func (c *NodeContainer[T]) Neighbors() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range c.adj {
			if !yield(n) {
				return
			}
		}
	}
}

// AdjFirst returns the first adjacency entry, or ok=false when isolated.
func (c *NodeContainer[T]) AdjFirst() (int, bool) {
	if len(c.adj) == 0 {
		return 0, false
	}
	return c.adj[0], true
}

// SortAdj sorts the adjacency list ascending.
// O(d log d) for adjacency length d.
func (c *NodeContainer[T]) SortAdj() { slices.Sort(c.adj) }

func (c *NodeContainer[T]) init(id int, payload T) {
	c.id = id
	c.payload = payload
	c.adj = nil
}

// connect inserts the edge (c, other) into both adjacency lists.
// Returns ErrEdgeExists if already adjacent.
func (c *NodeContainer[T]) connect(other AdjContainer[T]) error {
	o := other.(*NodeContainer[T])
	if c.IsAdjacent(o.id) {
		return ErrEdgeExists
	}
	c.adj = append(c.adj, o.id)
	o.adj = append(o.adj, c.id)
	return nil
}

// disconnect removes the edge (c, other) from both adjacency lists.
// Returns ErrEdgeNotFound if not adjacent.
func (c *NodeContainer[T]) disconnect(other AdjContainer[T]) error {
	o := other.(*NodeContainer[T])
	if !c.IsAdjacent(o.id) {
		return ErrEdgeNotFound
	}
	c.swapRemove(o.id)
	o.swapRemove(c.id)
	return nil
}

// swapRemove removes elem by swapping it with the last entry.
// O(Degree); does not preserve order. SortAdj restores determinism.
func (c *NodeContainer[T]) swapRemove(elem int) {
	i := slices.Index(c.adj, elem)
	last := len(c.adj) - 1
	c.adj[i] = c.adj[last]
	c.adj = c.adj[:last]
}

func (c *NodeContainer[T]) clearEdges() { c.adj = c.adj[:0] }

func (c *NodeContainer[T]) shuffleAdj(rng *rand.Rand) {
	rng.Shuffle(len(c.adj), func(i, j int) {
		c.adj[i], c.adj[j] = c.adj[j], c.adj[i]
	})
}

func (c *NodeContainer[T]) copyFrom(src AdjContainer[T]) {
	s := src.(*NodeContainer[T])
	c.id = s.id
	c.adj = slices.Clone(s.adj)
	c.payload = s.payload.Clone()
}
