// Package findloop identifies which edges of an undirected graph lie on
// some cycle, and which are bridges, using Tarjan's bridge-finding
// algorithm restated as an explicit non-recursive depth-first search.
//
// What:
//
//   - Run(n, neighbour): builds a rooted spanning forest of the graph in
//     one pass, recording per vertex its depth, the shallowest depth
//     reachable from its subtree without using its parent edge, and its
//     subtree size.
//   - State.IsLoopEdge(u, v): true iff the edge u-v is part of some cycle.
//   - State.IsBridge(u, v): true iff removing u-v would disconnect its
//     endpoints, plus how many vertices would land on each side.
//   - State.HasLoop(): true iff any cycle exists in the whole graph.
//
// Why:
//   - Loop puzzles highlight erroneous sub-loops by asking, per edge,
//     "are you on a cycle?" after every move
//   - Side counts of a bridge tell a solver how much of the board each
//     half of a cut contains
//   - The graph stays caller-owned: the detector sees it only through the
//     NeighbourFunc iteration contract, so any representation works
//
// How:
//
// The traversal never recurses. All vertices are threaded onto a doubly
// linked scheduling list (arena-indexed, integer links) in index order and
// a cursor walks it. The first time the cursor lands on a vertex, the
// vertex is assigned its depth and component root and its unvisited
// neighbours are spliced into the list immediately before it, so the
// cursor descends depth-first and returns to the vertex only after its
// whole subtree is done; that second landing propagates subtree size and
// shallowest-reachable depth to the parent. Each vertex is therefore
// visited exactly twice. An already-visited neighbour that is not the
// (once-skipped) parent is a back-edge: it both records that a loop exists
// and lowers the shallowest reachable depth.
//
// A tree edge to child c is then a bridge exactly when no vertex of c's
// subtree reaches strictly above c, i.e. shallowestReachable(c) >= depth(c).
//
// Complexity:
//
//   - Run:    Time O(V + E), Memory O(V)
//   - Queries: Time O(1), no graph access
//
// Errors:
//
//   - ErrVertexCountNegative  n < 0
//   - ErrNeighbourFuncNil     neighbour callback is nil
//   - ErrNeighbourOutOfRange  callback yielded an index outside [0, n)
//
// Degenerate inputs: parallel edges are tolerated (a second edge to the
// same neighbour is classified as a back-edge, hence a loop edge, rather
// than double-unifying the tree); self-loops merely set HasLoop; a
// disconnected graph simply yields one spanning tree per component.
package findloop
