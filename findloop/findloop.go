package findloop

import (
	"fmt"
)

// Run builds the bridge/loop classification for a graph of n vertices
// presented through neighbour. It returns a State answering IsLoopEdge,
// IsBridge and HasLoop in O(1), or an error if the inputs are unusable.
//
// The graph is taken as a snapshot: it must not mutate while Run executes.
// Every vertex is visited exactly twice (pre-order and post-order), so the
// total work is O(V+E) provided neighbour iteration is linear in degree.
func Run(n int, neighbour NeighbourFunc) (*State, error) {
	// 1. Validate input
	if n < 0 {
		return nil, ErrVertexCountNegative
	}
	if neighbour == nil {
		return nil, ErrNeighbourFuncNil
	}

	// 2. Initialize the arena: every vertex unvisited, its own component
	//    root, shallowestReachable at the +inf stand-in n, and all vertices
	//    threaded onto the scheduling list in index order.
	s := &State{pv: make([]vertexState, n), n: n}
	pv := s.pv
	var u int
	for u = 0; u < n; u++ {
		pv[u] = vertexState{
			depth:               -1,
			shallowestReachable: n,
			subtreeSize:         1,
			parent:              none,
			componentRoot:       u,
			prev:                u - 1,
			next:                u + 1,
		}
	}
	if n == 0 {
		return s, nil
	}
	pv[n-1].next = none

	// 3. Walk the scheduling list with cursor v. A vertex with depth < 0 is
	//    being seen for the first time (descent); a vertex with depth >= 0
	//    is being seen for the second time (its subtree is complete).
	var (
		v = 0 // cursor: the vertex to examine this iteration
		w int // neighbour iterator
	)
	for v != none {
		u = v
		if pv[u].depth < 0 {
			// First visit. A vertex nobody claimed as a child starts a new
			// connected component.
			if pv[u].parent == none {
				pv[u].depth = 0
				pv[u].componentRoot = u
			} else {
				pv[u].depth = pv[pv[u].parent].depth + 1
				pv[u].componentRoot = pv[pv[u].parent].componentRoot
			}

			// Schedule visits to the unvisited neighbours, then back here.
			// The parent edge is skipped exactly once, so a second parallel
			// edge to the parent still registers as a back-edge below.
			skippedParent := false
			for w = neighbour(u); w != Done; w = neighbour(Continue) {
				if w < 0 || w >= n {
					return nil, fmt.Errorf("findloop: neighbour %d of vertex %d: %w",
						w, u, ErrNeighbourOutOfRange)
				}
				if w == pv[u].parent && !skippedParent {
					skippedParent = true
					continue
				}
				if pv[w].depth < 0 {
					if pv[w].parent == u {
						// Parallel edge to a child claimed moments ago in this
						// same enumeration; the duplicate surfaces as a
						// back-edge when w enumerates u later.
						continue
					}
					pv[w].parent = u
					// Unlink w from wherever it currently sits. It may have
					// been claimed at a shallower level already; stealing it
					// deeper keeps the forest a genuine DFS forest.
					if pv[w].prev != none {
						pv[pv[w].prev].next = pv[w].next
					}
					if pv[w].next != none {
						pv[pv[w].next].prev = pv[w].prev
					}
					// Relink it immediately before the cursor, and descend.
					pv[w].prev = pv[v].prev
					pv[w].next = v
					if pv[v].prev != none {
						pv[pv[v].prev].next = w
					}
					pv[v].prev = w
					v = w
				} else {
					// Back-edge to an ancestor (or a self-loop): a loop exists,
					// and u's subtree reaches at least that shallow.
					if pv[w].depth < pv[u].shallowestReachable {
						pv[u].shallowestReachable = pv[w].depth
					}
					s.anyLoop = true
				}
			}
		} else {
			// Second visit: the subtree below u is fully explored. Fold its
			// statistics into the parent and move on; for a component root
			// the next list entry begins the next component.
			if pv[u].parent != none {
				pv[pv[u].parent].subtreeSize += pv[u].subtreeSize
				if pv[u].shallowestReachable < pv[pv[u].parent].shallowestReachable {
					pv[pv[u].parent].shallowestReachable = pv[u].shallowestReachable
				}
			}
			v = pv[u].next
		}
	}

	return s, nil
}

// IsLoopEdge reports whether the edge between adjacent vertices u and v is
// part of some cycle. In the DFS forest every edge is either parent-child
// or child-ancestor; back-edges are loop edges by construction, and a tree
// edge is a loop edge unless the child's subtree reaches nothing above the
// child. Both vertices must be in [0, VertexCount).
// Complexity: O(1).
func (s *State) IsLoopEdge(u, v int) bool {
	if s.pv[u].parent == v && s.pv[u].shallowestReachable >= s.pv[u].depth {
		return false
	}
	if s.pv[v].parent == u && s.pv[v].shallowestReachable >= s.pv[v].depth {
		return false
	}

	return true
}

// isBridgeOneway tests the tree edge child->parent in one direction only:
// it answers for the case where v is u's parent.
func (s *State) isBridgeOneway(u, v int) (bool, int, int) {
	if s.pv[u].parent != v {
		return false, 0, 0
	}
	if s.pv[u].shallowestReachable < s.pv[u].depth {
		return false, 0, 0
	}

	r := s.pv[u].componentRoot

	return true, s.pv[u].subtreeSize, s.pv[r].subtreeSize - s.pv[u].subtreeSize
}

// IsBridge reports whether the edge between adjacent vertices u and v is a
// bridge, i.e. removing it would disconnect u from v. When true, uSide and
// vSide report how many vertices would remain on u's and v's side of the
// cut. Both vertices must be in [0, VertexCount).
// Complexity: O(1).
func (s *State) IsBridge(u, v int) (isBridge bool, uSide, vSide int) {
	var ok bool
	if ok, vSide, uSide = s.isBridgeOneway(v, u); ok {
		return true, uSide, vSide
	}
	if ok, uSide, vSide = s.isBridgeOneway(u, v); ok {
		return true, uSide, vSide
	}

	return false, 0, 0
}
