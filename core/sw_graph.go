// Package core: small-world graph wrapper.

package core

import (
	"fmt"
	"slices"
)

// SwChangeKind classifies the outcome of a small-world edge move.
type SwChangeKind uint8

const (
	// SwNothing means the requested move was a no-op: the drawn target
	// matched the current one, or the edge already sits at its root.
	SwNothing SwChangeKind = iota
	// SwRewire means the edge rooted at I0 moved from I1 to I2.
	SwRewire
	// SwReset means the edge rooted at I0 moved from I1 back to its
	// ring-lattice target I2.
	SwReset
	// SwBlockedByExistingEdge means the move would have created a
	// parallel edge and was refused. The graph is unchanged.
	SwBlockedByExistingEdge
	// SwInvalidAdjacency means the named edge does not exist or is not
	// rooted at I0. The graph is unchanged.
	SwInvalidAdjacency
	// SwGraphError means the request itself was malformed; Err holds
	// the cause. The graph is unchanged.
	SwGraphError
)

// String returns the kind name for logs and test output.
func (k SwChangeKind) String() string {
	switch k {
	case SwNothing:
		return "Nothing"
	case SwRewire:
		return "Rewire"
	case SwReset:
		return "Reset"
	case SwBlockedByExistingEdge:
		return "BlockedByExistingEdge"
	case SwInvalidAdjacency:
		return "InvalidAdjacency"
	case SwGraphError:
		return "GraphError"
	default:
		return fmt.Sprintf("SwChangeKind(%d)", uint8(k))
	}
}

// SwChange describes one small-world edge move. For SwRewire and SwReset
// the triple (I0, I1, I2) reads: the edge rooted at I0 moved from I1 to
// I2. Err is set only for SwGraphError.
//
// An SwChange carries everything needed to invert the move: rewiring
// (I0, I2) back onto I1 restores the previous state, root tags included.
type SwChange struct {
	Kind       SwChangeKind
	I0, I1, I2 int
	Err        error
}

// Changed reports whether the move mutated the graph.
func (c SwChange) Changed() bool {
	return c.Kind == SwRewire || c.Kind == SwReset
}

// SwGraph is an undirected simple graph whose edges remember their
// ring-lattice origin: GenericGraph over SwContainer. Every edge is
// rooted at exactly one endpoint and tagged with the target the ring
// construction gave it; RewireEdge and ResetEdge move the loose end
// around while the root tag stays fixed.
type SwGraph[T Payload[T]] struct {
	GenericGraph[T, SwContainer[T], *SwContainer[T]]
}

// NewSwGraph creates an SwGraph with size isolated vertices.
//
// Returns ErrInvalidSize for negative size.
func NewSwGraph[T Payload[T]](size int) (*SwGraph[T], error) {
	g := &SwGraph[T]{}
	if err := g.init(size); err != nil {
		return nil, err
	}
	return g, nil
}

// InitRing2 builds the ring lattice with neighbor distance 2, the
// canonical small-world substrate.
func (g *SwGraph[T]) InitRing2() error {
	return g.InitRing(2)
}

// RewireEdge moves the edge rooted at i0 and currently ending at i1 onto
// the new target i2.
//
// Outcomes:
//   - SwNothing when i1 == i2;
//   - SwGraphError when an index is out of range or i0 == i2;
//   - SwInvalidAdjacency when (i0, i1) is absent or not rooted at i0;
//   - SwBlockedByExistingEdge when (i0, i2) already exists;
//   - SwRewire on success.
func (g *SwGraph[T]) RewireEdge(i0, i1, i2 int) SwChange {
	if i1 == i2 {
		return SwChange{Kind: SwNothing, I0: i0, I1: i1, I2: i2}
	}
	n := len(g.vertices)
	if i0 < 0 || i0 >= n || i1 < 0 || i1 >= n || i2 < 0 || i2 >= n {
		return SwChange{
			Kind: SwGraphError, I0: i0, I1: i1, I2: i2,
			Err: fmt.Errorf("core: rewire (%d, %d) -> %d with %d vertices: %w", i0, i1, i2, n, ErrIndexOutOfRange),
		}
	}
	if i0 == i2 {
		return SwChange{
			Kind: SwGraphError, I0: i0, I1: i1, I2: i2,
			Err: fmt.Errorf("core: rewire (%d, %d) -> %d: %w", i0, i1, i2, ErrSelfLoop),
		}
	}
	res := g.vertices[i0].rewire(&g.vertices[i1], &g.vertices[i2])
	if res.Kind != SwRewire {
		res.I0, res.I1, res.I2 = i0, i1, i2
	}
	return res
}

// ResetEdge moves the edge rooted at i0 and currently ending at i1 back
// to its ring-lattice target.
//
// Outcomes:
//   - SwNothing when the edge already sits at its root;
//   - SwGraphError when an index is out of range or the edge is absent;
//   - SwInvalidAdjacency when the entry is not rooted at i0;
//   - SwBlockedByExistingEdge when the root target is already adjacent;
//   - SwReset on success, with I2 holding the root target.
func (g *SwGraph[T]) ResetEdge(i0, i1 int) SwChange {
	n := len(g.vertices)
	if i0 < 0 || i0 >= n || i1 < 0 || i1 >= n {
		return SwChange{
			Kind: SwGraphError, I0: i0, I1: i1,
			Err: fmt.Errorf("core: reset (%d, %d) with %d vertices: %w", i0, i1, n, ErrIndexOutOfRange),
		}
	}
	root, blocked, ok := g.vertices[i0].reset(&g.vertices[i1])
	if !ok {
		blocked.I0, blocked.I1 = i0, i1
		return blocked
	}
	// reset moved the root end; complete the edge with the loose end.
	g.vertices[root].pushSingle(i0)
	return SwChange{Kind: SwReset, I0: i0, I1: i1, I2: root}
}

// EqualState reports whether g and other agree on vertex count, edge set
// and every root tag. Adjacency order and payloads are ignored.
func (g *SwGraph[T]) EqualState(other *SwGraph[T]) bool {
	if len(g.vertices) != len(other.vertices) || g.edgeCount != other.edgeCount {
		return false
	}
	cmp := func(a, b swEdge) int {
		if a.to != b.to {
			return a.to - b.to
		}
		return a.rootTo - b.rootTo
	}
	for i := range g.vertices {
		a := slices.SortedFunc(slices.Values(g.vertices[i].adj), cmp)
		b := slices.SortedFunc(slices.Values(other.vertices[i].adj), cmp)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, root tags included.
func (g *SwGraph[T]) Clone() *SwGraph[T] {
	return &SwGraph[T]{GenericGraph: *g.GenericGraph.Clone()}
}
