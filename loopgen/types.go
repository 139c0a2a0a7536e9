// Package loopgen defines the planar-subdivision types, options, and
// sentinel errors for topological loop generation.
package loopgen

import (
	"errors"
	"math/rand"
)

// Color is the state of one face of the board during and after generation.
type Color uint8

const (
	// Grey marks a face not yet claimed by either region. No Grey faces
	// remain in a successfully generated board.
	Grey Color = iota
	// Black marks a face outside the loop. The infinite exterior face is
	// always Black.
	Black
	// White marks a face inside the loop.
	White
)

// String returns the lowercase colour name.
func (c Color) String() string {
	switch c {
	case Grey:
		return "grey"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// Outside identifies the infinite exterior face wherever a face index is
// expected. It is permanently Black and never appears in a board slice.
const Outside = -1

// Face is one finite region of the subdivision. Dots lists its corner
// indices in cyclic order; Neighbours[i] is the face across the edge from
// Dots[i] to Dots[(i+1)%len(Dots)], or Outside when that edge borders the
// exterior.
type Face struct {
	Dots       []int
	Neighbours []int
}

// Dot is one corner of the subdivision. Faces lists the faces around it in
// cyclic order, in the same rotational sense as every Face.Dots list;
// a contiguous exterior stretch appears as a single Outside entry.
type Dot struct {
	Faces []int
}

// Grid is a planar subdivision, arena-indexed: faces and dots refer to one
// another by index, never by pointer. The caller owns it; Generate only
// reads it.
type Grid struct {
	Faces []Face
	Dots  []Dot
}

// BiasFunc lets callers skew candidate selection. It is called once with
// the tentative colour applied to face (returning a score; higher wins),
// once immediately after the colour is reverted (notification, return
// value ignored), and exactly once, with no revert to follow, when a
// choice is committed. Exactly one face changes between consecutive calls,
// so incremental scorers stay cheap. The callback must not retain board
// and must not re-enter the generator.
type BiasFunc func(board []Color, face int) int

// Sentinel errors for loopgen operations.
var (
	// ErrGridNil indicates Generate was called with a nil grid.
	ErrGridNil = errors.New("loopgen: grid is nil")
	// ErrEmptyGrid indicates a grid with no faces, or non-positive square
	// grid dimensions.
	ErrEmptyGrid = errors.New("loopgen: grid must contain at least one face")
	// ErrGridInvalid indicates inconsistent face/dot cross-references.
	// The subdivision is a caller bug; generation refuses to start.
	ErrGridInvalid = errors.New("loopgen: inconsistent face/dot cross-references")
	// ErrTopologyViolated indicates a generation invariant broke mid-run:
	// the input was not a genuine planar subdivision, and any board built
	// on it would be silently wrong.
	ErrTopologyViolated = errors.New("loopgen: generation invariant violated: input is not a planar subdivision")
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0,
// keeping reproducible defaults.
const defaultSeed int64 = 1

// Option configures optional behaviour of Generate.
type Option func(*Options)

// Options holds configurable parameters for loop generation.
type Options struct {
	// Seed selects the deterministic random stream. Seed==0 falls back to
	// a fixed default; identical seeds produce identical boards.
	Seed int64

	// Rand, if non-nil, overrides Seed entirely. Generate advances the
	// stream; do not share it across concurrent calls.
	Rand *rand.Rand

	// Bias, if non-nil, is probed for every candidate of the chosen colour
	// at each step, per the BiasFunc protocol.
	Bias BiasFunc
}

// DefaultOptions returns Options with the default deterministic stream,
// no external RNG, and no bias.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Rand: nil,
		Bias: nil,
	}
}

// WithSeed returns an Option that selects the deterministic random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand returns an Option that installs an explicit RNG, overriding any
// seed. Passing nil has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithBias returns an Option that installs a candidate-selection bias.
func WithBias(fn BiasFunc) Option {
	return func(o *Options) {
		o.Bias = fn
	}
}
