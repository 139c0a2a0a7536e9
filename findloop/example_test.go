// File: findloop/example_test.go
package findloop_test

import (
	"fmt"

	"github.com/katalvlaran/looptopo/findloop"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Run over a dumbbell graph
////////////////////////////////////////////////////////////////////////////////

// ExampleRun classifies the edges of two triangles joined by a single bar:
//
//	0───1   3───4
//	 \ /     \ /
//	  2───────5   (bar: 2−5)
//
// Every triangle edge lies on a cycle; the bar is the lone bridge and
// splits the graph into two sides of three vertices each.
//
// Complexity: O(V+E) to build, O(1) per query.
func ExampleRun() {
	adj := [][]int{
		{1, 2},    // 0
		{0, 2},    // 1
		{0, 1, 5}, // 2
		{4, 5},    // 3
		{3, 5},    // 4
		{3, 4, 2}, // 5
	}

	st, _ := findloop.Run(6, findloop.AdjacencyNeighbours(adj))

	fmt.Println("has loop:", st.HasLoop())
	fmt.Println("0-1 on a loop:", st.IsLoopEdge(0, 1))

	ok, uSide, vSide := st.IsBridge(2, 5)
	fmt.Printf("2-5 bridge: %v, sides %d/%d\n", ok, uSide, vSide)

	// Output:
	// has loop: true
	// 0-1 on a loop: true
	// 2-5 bridge: true, sides 3/3
}

////////////////////////////////////////////////////////////////////////////////
// Example: NeighbourFunc over caller-owned state
////////////////////////////////////////////////////////////////////////////////

// ExampleNeighbourFunc shows the iteration contract directly: a closure
// over caller state yields neighbours one at a time, restarting whenever a
// vertex index (>= 0) is passed and resuming on Continue.
func ExampleNeighbourFunc() {
	// A 4-cycle stored as a function of the vertex, not as a data structure.
	const n = 4
	var pending []int
	neighbour := func(v int) int {
		if v >= 0 {
			pending = []int{(v + 1) % n, (v + n - 1) % n}
		}
		if len(pending) == 0 {
			return findloop.Done
		}
		next := pending[0]
		pending = pending[1:]

		return next
	}

	st, _ := findloop.Run(n, neighbour)
	fmt.Println("has loop:", st.HasLoop())
	ok, _, _ := st.IsBridge(0, 1)
	fmt.Println("0-1 bridge:", ok)

	// Output:
	// has loop: true
	// 0-1 bridge: false
}
