// Package loopgen randomly constructs a single non-self-intersecting
// closed curve through the faces of a planar grid, by two-colouring the
// faces so that the white/black boundary is exactly one simple loop.
//
// What:
//
//   - Generate(grid, opts...): colours every face White (inside the loop)
//     or Black (outside), starting from one random white seed face and the
//     permanently black exterior, and returns the finished board.
//   - NewSquareGrid(w, h): the square-tiling subdivision most puzzles use.
//   - WithSeed / WithRand / WithBias: deterministic randomness and an
//     optional scoring hook to skew face selection.
//
// How:
//
// Both regions grow one grey face at a time. A face may take a colour only
// if (a) it already touches that colour along an edge and (b) walking the
// cyclic ring of faces around it (edge- and corner-neighbours in order)
// crosses between "that colour" and "not that colour" exactly twice. Fewer
// transitions would seed a disconnected island; more would pinch two
// regions together into a sub-loop or a corner-touching point. This single
// count subsumes every topology constraint, so the final boundary is
// guaranteed to be one simple closed curve.
//
// Candidates for each colour live in a rank-ordered set (a B-tree keyed by
// score, then a fixed per-face random tiebreak, then index), where a
// face's score for a colour is minus its same-coloured edge-neighbour
// count: the generator prefers growing into open space over thickening a
// straight run, which makes the loop convoluted. Each step flips a fair
// coin for the colour, takes the best-ranked candidate (or bias-probes all
// of them), colours it, and rescans every face sharing a corner with it.
//
// A topological argument guarantees termination with no grey left: while
// any grey face remains, neither region can be sealed off without already
// having violated the shape invariant, so both candidate sets stay
// non-empty until everything is coloured.
//
// Two post-passes then improve loop quality: a shuffled pass repeatedly
// flips any legally flippable face with exactly one opposite-coloured
// edge-neighbour (growing tendrils into clumps; each flip grows the
// perimeter, which is bounded, so this terminates), and one final pass
// flips each legally flippable face with probability 1/10 so the result
// does not sit at the locally-maximal perimeter a solver could exploit.
//
// Complexity:
//
//   - Generate: O(F·d·log F) for the growth loop on typical grids
//     (F faces, d the ring length around a face), plus the post-passes;
//     with a bias installed, each step probes every current candidate.
//   - Memory:   O(F) working state, discarded before returning.
//
// Errors:
//
//   - ErrGridNil            grid pointer is nil
//   - ErrEmptyGrid          grid has no faces
//   - ErrGridInvalid        face/dot cross-references do not line up
//   - ErrTopologyViolated   invariants broke mid-run (non-planar input)
//
// Determinism: given the same grid, seed (or RNG state) and bias function,
// Generate returns an identical board on every platform.
package loopgen
