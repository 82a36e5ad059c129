// Package core: small-world adjacency container.
//
// SwContainer tags every adjacency entry with its ring-lattice origin:
// an entry is either the root end of an edge (it remembers the vertex the
// edge originally pointed to) or a loose end (the mirror entry of an edge
// rooted elsewhere). The tags power rewire and reset-to-root semantics
// without any global bookkeeping.

package core

import (
	"iter"
	"math/rand"
	"slices"
)

// looseEnd marks an adjacency entry that is not the root of its edge.
const looseEnd = -1

// swEdge is one adjacency entry of an SwContainer.
type swEdge struct {
	// to is the current neighbor.
	to int
	// rootTo is the original ring-lattice target when this entry is the
	// root end of the edge, looseEnd otherwise.
	rootTo int
}

func (e swEdge) isRoot() bool { return e.rootTo != looseEnd }

func (e swEdge) atRoot() bool { return e.rootTo == e.to }

// SwContainer is the small-world AdjContainer: payload plus an adjacency
// list whose entries carry root tags.
type SwContainer[T Payload[T]] struct {
	id      int
	adj     []swEdge
	payload T
}

// ID returns the vertex id this container was created at.
func (c *SwContainer[T]) ID() int { return c.id }

// Contained returns a pointer to the stored payload.
func (c *SwContainer[T]) Contained() *T { return &c.payload }

// Degree returns the number of neighbors.
func (c *SwContainer[T]) Degree() int { return len(c.adj) }

// IsAdjacent reports whether other is a neighbor. O(Degree).
func (c *SwContainer[T]) IsAdjacent(other int) bool {
	_, ok := c.adjPosition(other)
	return ok
}

// Neighbors yields neighbor ids in adjacency-list order.
func (c *SwContainer[T]) Neighbors() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range c.adj {
			if !yield(e.to) {
				return
			}
		}
	}
}

// AdjFirst returns the first adjacency entry, or ok=false when isolated.
func (c *SwContainer[T]) AdjFirst() (int, bool) {
	if len(c.adj) == 0 {
		return 0, false
	}
	return c.adj[0].to, true
}

// SortAdj sorts the adjacency list by neighbor id ascending.
func (c *SwContainer[T]) SortAdj() {
	slices.SortFunc(c.adj, func(a, b swEdge) int { return a.to - b.to })
}

// Roots yields the current targets of the edges rooted at this vertex,
// in adjacency-list order. A vertex initialized from a ring lattice with
// neighbor distance d roots exactly d edges, and rewire/reset preserve
// that count.
func (c *SwContainer[T]) Roots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range c.adj {
			if e.isRoot() && !yield(e.to) {
				return
			}
		}
	}
}

// Entries yields (neighbor, rootTarget) pairs in adjacency-list order,
// with rootTarget == -1 for loose ends. This is the full per-vertex
// state an external persistence layer needs.
func (c *SwContainer[T]) Entries() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, e := range c.adj {
			if !yield(e.to, e.rootTo) {
				return
			}
		}
	}
}

// CountRoot returns the number of edges rooted at this vertex.
func (c *SwContainer[T]) CountRoot() int {
	n := 0
	for _, e := range c.adj {
		if e.isRoot() {
			n++
		}
	}
	return n
}

// CountRewired returns the number of rooted edges currently pointing
// away from their ring-lattice target.
func (c *SwContainer[T]) CountRewired() int {
	n := 0
	for _, e := range c.adj {
		if e.isRoot() && !e.atRoot() {
			n++
		}
	}
	return n
}

func (c *SwContainer[T]) init(id int, payload T) {
	c.id = id
	c.payload = payload
	c.adj = nil
}

// connect inserts the edge (c, other), rooting it at c.
func (c *SwContainer[T]) connect(other AdjContainer[T]) error {
	o := other.(*SwContainer[T])
	if c.IsAdjacent(o.id) {
		return ErrEdgeExists
	}
	c.adj = append(c.adj, swEdge{to: o.id, rootTo: o.id})
	o.adj = append(o.adj, swEdge{to: c.id, rootTo: looseEnd})
	return nil
}

// disconnect removes the edge (c, other) from both adjacency lists.
func (c *SwContainer[T]) disconnect(other AdjContainer[T]) error {
	o := other.(*SwContainer[T])
	i, ok := c.adjPosition(o.id)
	if !ok {
		return ErrEdgeNotFound
	}
	j, ok := o.adjPosition(c.id)
	if !ok {
		return ErrEdgeNotFound
	}
	c.swapRemoveAt(i)
	o.swapRemoveAt(j)
	return nil
}

func (c *SwContainer[T]) adjPosition(elem int) (int, bool) {
	for i, e := range c.adj {
		if e.to == elem {
			return i, true
		}
	}
	return 0, false
}

// swapRemoveAt removes entry i by swapping it with the last entry.
func (c *SwContainer[T]) swapRemoveAt(i int) {
	last := len(c.adj) - 1
	c.adj[i] = c.adj[last]
	c.adj = c.adj[:last]
}

// pushSingle appends a loose end pointing at otherID. Only valid as the
// mirror half of a root entry restored elsewhere (see SwGraph.ResetEdge).
func (c *SwContainer[T]) pushSingle(otherID int) {
	c.adj = append(c.adj, swEdge{to: otherID, rootTo: looseEnd})
}

// rewire redirects the edge (c, toDisconnect), which must be rooted at c,
// onto toRewire. Loose ends move with it; the root tag stays put.
func (c *SwContainer[T]) rewire(toDisconnect, toRewire *SwContainer[T]) SwChange {
	idx, ok := c.adjPosition(toDisconnect.id)
	if !ok {
		return SwChange{Kind: SwInvalidAdjacency}
	}
	if !c.adj[idx].isRoot() {
		return SwChange{Kind: SwInvalidAdjacency}
	}
	if c.IsAdjacent(toRewire.id) {
		return SwChange{Kind: SwBlockedByExistingEdge}
	}

	j, ok := toDisconnect.adjPosition(c.id)
	if !ok {
		return SwChange{Kind: SwInvalidAdjacency}
	}
	toDisconnect.swapRemoveAt(j)
	c.adj[idx].to = toRewire.id
	toRewire.adj = append(toRewire.adj, swEdge{to: c.id, rootTo: looseEnd})

	return SwChange{Kind: SwRewire, I0: c.id, I1: toDisconnect.id, I2: toRewire.id}
}

// reset returns the edge (c, other), rooted at c, to its ring-lattice
// target. On success the root target id is returned and the caller must
// complete the move with pushSingle on that container; on failure the
// blocking SwChange is returned with ok=false.
func (c *SwContainer[T]) reset(other *SwContainer[T]) (int, SwChange, bool) {
	idx, ok := c.adjPosition(other.id)
	if !ok {
		return 0, SwChange{Kind: SwGraphError, Err: ErrEdgeNotFound}, false
	}
	e := c.adj[idx]
	if !e.isRoot() {
		return 0, SwChange{Kind: SwInvalidAdjacency}, false
	}
	if e.atRoot() {
		return 0, SwChange{Kind: SwNothing}, false
	}
	if c.IsAdjacent(e.rootTo) {
		return 0, SwChange{Kind: SwBlockedByExistingEdge}, false
	}
	j, ok := other.adjPosition(c.id)
	if !ok {
		return 0, SwChange{Kind: SwInvalidAdjacency}, false
	}

	c.adj[idx].to = e.rootTo
	other.swapRemoveAt(j)
	return e.rootTo, SwChange{}, true
}

func (c *SwContainer[T]) clearEdges() { c.adj = c.adj[:0] }

func (c *SwContainer[T]) shuffleAdj(rng *rand.Rand) {
	rng.Shuffle(len(c.adj), func(i, j int) {
		c.adj[i], c.adj[j] = c.adj[j], c.adj[i]
	})
}

func (c *SwContainer[T]) copyFrom(src AdjContainer[T]) {
	s := src.(*SwContainer[T])
	c.id = s.id
	c.adj = slices.Clone(s.adj)
	c.payload = s.payload.Clone()
}
