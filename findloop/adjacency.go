package findloop

// AdjacencyNeighbours adapts a plain adjacency-list representation to the
// NeighbourFunc iteration contract. adj[v] lists the neighbours of vertex
// v; an undirected edge should appear in both lists. The returned function
// captures its own cursor, so each call to Run needs a fresh adapter.
//
// Complexity: O(1) per yielded neighbour, no allocation after construction.
func AdjacencyNeighbours(adj [][]int) NeighbourFunc {
	var (
		row []int // neighbours of the vertex under iteration
		pos int   // next index within row
	)

	return func(v int) int {
		if v >= 0 {
			row = adj[v]
			pos = 0
		}
		if pos >= len(row) {
			return Done
		}
		next := row[pos]
		pos++

		return next
	}
}
