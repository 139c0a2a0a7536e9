package findloop_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/looptopo/findloop"
)

// BenchmarkRun_Path measures the detector on a linear chain of N vertices
// (worst case for the scheduling list: every edge is a bridge).
func BenchmarkRun_Path(b *testing.B) {
	const n = 10000
	adj := make([][]int, n)
	for i := 0; i < n-1; i++ {
		adj[i] = append(adj[i], i+1)
		adj[i+1] = append(adj[i+1], i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = findloop.Run(n, findloop.AdjacencyNeighbours(adj))
	}
}

// BenchmarkRun_RandomSparse measures the detector on a random sparse graph
// with ~2 edges per vertex, mixing bridges and loop edges.
func BenchmarkRun_RandomSparse(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	adj := make([][]int, n)
	for i := 0; i < 2*n; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = findloop.Run(n, findloop.AdjacencyNeighbours(adj))
	}
}

// BenchmarkIsBridge measures the O(1) query path on a precomputed State.
func BenchmarkIsBridge(b *testing.B) {
	const n = 1000
	adj := make([][]int, n)
	for i := 0; i < n-1; i++ {
		adj[i] = append(adj[i], i+1)
		adj[i+1] = append(adj[i+1], i)
	}
	st, err := findloop.Run(n, findloop.AdjacencyNeighbours(adj))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = st.IsBridge(i%(n-1), i%(n-1)+1)
	}
}
