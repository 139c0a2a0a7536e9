// Package findloop defines the neighbour-iteration contract, sentinel
// errors, and the per-run State record for bridge/loop detection.
package findloop

import (
	"errors"
)

// Sentinel values of the neighbour-iteration contract.
//
// A NeighbourFunc is called with a vertex index (>= 0) to begin iterating
// that vertex's neighbours and return the first one, then with Continue to
// return each subsequent neighbour of the same vertex, until it returns
// Done. The engine always drains a sequence completely before starting the
// next one, and never interleaves two sequences.
const (
	// Continue resumes the neighbour iteration most recently begun.
	Continue = -1
	// Done is returned by a NeighbourFunc when the current iteration is
	// exhausted.
	Done = -1
)

// none marks an absent vertex reference (no parent, no list neighbour).
const none = -1

// NeighbourFunc presents a graph to the detector one neighbour at a time.
// The underlying graph must not mutate during a call to Run. Parallel
// edges may be reported (each occurrence is yielded); the detector
// tolerates them.
type NeighbourFunc func(v int) int

// Sentinel errors for findloop operations.
var (
	// ErrVertexCountNegative indicates Run was called with n < 0.
	ErrVertexCountNegative = errors.New("findloop: vertex count must be non-negative")
	// ErrNeighbourFuncNil indicates Run was called with a nil NeighbourFunc.
	ErrNeighbourFuncNil = errors.New("findloop: neighbour function is nil")
	// ErrNeighbourOutOfRange indicates the NeighbourFunc yielded an index
	// outside [0, n). The graph callback is inconsistent; the run aborts,
	// since any classification built on it would be silently wrong.
	ErrNeighbourOutOfRange = errors.New("findloop: neighbour index out of range")
)

// vertexState is one per-vertex record of the traversal arena.
// prev/next thread the vertex through the scheduling list; integer indices
// into the arena play the role of pointers.
type vertexState struct {
	depth               int // distance from the component root; -1 = unvisited
	shallowestReachable int // min depth reachable from this subtree, init n (= +inf)
	subtreeSize         int // vertices in this subtree, init 1
	parent              int // tree parent, or none for a component root
	componentRoot       int // root of this vertex's spanning tree
	prev, next          int // scheduling-list links
}

// State holds the fully computed traversal records of one Run. It answers
// the derived queries in O(1) without further graph access, and carries no
// reference to the caller's graph. Build once per graph snapshot; a State
// is never updated incrementally.
type State struct {
	pv      []vertexState
	n       int
	anyLoop bool
}

// HasLoop reports whether any cycle exists anywhere in the graph, i.e.
// whether at least one edge is not a bridge.
func (s *State) HasLoop() bool { return s.anyLoop }

// VertexCount returns the n the State was built for.
func (s *State) VertexCount() int { return s.n }
