// Package looptopo is the graph-topology engine behind loop puzzles:
// detecting which edges of a graph lie on cycles, and growing random
// simple closed curves through the faces of a planar grid.
//
// 🚀 What is looptopo?
//
//	A small, deterministic, callback-driven library that brings together:
//		• findloop/ — Tarjan bridge finding over an opaque neighbour
//		  callback, answering "is this edge part of a loop?" and
//		  "is this edge a bridge, and how big is each side?" in O(1)
//		• loopgen/  — random generation of a single non-self-intersecting
//		  closed curve over a planar face subdivision, with a pluggable
//		  bias hook for puzzle-specific taste
//
// ✨ Why choose looptopo?
//
//   - Graph-agnostic – the engine never owns or copies your graph; it sees
//     it only through a narrow neighbour-iteration contract
//   - Deterministic – same seed ⇒ identical output, on every platform
//   - Non-recursive – traversal runs on an arena-indexed work list, so
//     million-vertex graphs never touch the call stack
//   - Pure computation – no I/O, no goroutines, no hidden state between calls
//
// Quick ASCII example:
//
//	    0───1       3───4
//	    │   │       │   │
//	    └─2─┴───────┴─5─┘
//
//	two triangles joined by one edge: findloop reports every triangle edge
//	as a loop edge and the joining edge as the only bridge (3 vertices on
//	each side).
//
// Dive into findloop/ and loopgen/ for full contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/looptopo
package looptopo
