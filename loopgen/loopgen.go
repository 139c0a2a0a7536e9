package loopgen

import (
	"math/rand"
)

// randomFlipOdds is the documented 1-in-10 probability of the final
// decorrelating pass flipping a legally flippable face.
const randomFlipOdds = 10

// colourAt reads the colour of face nb on board; the exterior face is
// permanently Black.
func colourAt(board []Color, nb int) Color {
	if nb == Outside {
		return Black
	}

	return board[nb]
}

// countNeighbours returns how many edge-neighbours of face currently have
// the given colour, the exterior counting as Black.
func (g *Grid) countNeighbours(board []Color, face int, colour Color) int {
	count := 0
	for _, nb := range g.Faces[face].Neighbours {
		if colourAt(board, nb) == colour {
			count++
		}
	}

	return count
}

// score rates face's desirability for taking colour: minus its
// same-coloured edge-neighbour count, so extending into open space ranks
// above thickening an existing run. Higher is better.
func (g *Grid) score(board []Color, face int, colour Color) int {
	return -g.countNeighbours(board, face, colour)
}

// canColour reports whether face (currently grey) may legally take colour.
//
// Two conditions. First, the face must already touch colour along an edge:
// regions grow by accretion, never by seeding a new island. Second, walk
// the cyclic ring of faces around the candidate (every face it touches
// along an edge or at a corner, in rotational order) and count the
// transitions between "coloured colour" and "not coloured colour". The
// count is even; exactly 2 is the only legal value. 0 would mean starting
// a detached island, and 4 or more would pinch separate same-coloured
// regions together, creating a sub-loop or a corner-touching point. This
// one count enforces the whole single-simple-loop invariant.
//
// The walk's termination point needs care: on degenerate subdivisions the
// candidate can border the same face (typically the exterior) along
// several disjoint stretches, so neither "back at the first face" nor
// "back at the first corner" alone is a safe stop. One step is taken
// before fixing the (corner, face) pair that marks the end of the lap.
func (g *Grid) canColour(board []Color, face int, colour Color) bool {
	f := &g.Faces[face]

	// Accretion check along edges.
	sameNeighbour := false
	for _, nb := range f.Neighbours {
		if colourAt(board, nb) == colour {
			sameNeighbour = true

			break
		}
	}
	if !sameNeighbour {
		return false
	}

	// Ring walk. (i, j) addresses g.Dots[f.Dots[i]].Faces[j]; cur is the
	// ring face under the cursor.
	i, j := 0, 0
	cur := g.Dots[f.Dots[0]].Faces[0]
	if cur == face {
		j = 1
		cur = g.Dots[f.Dots[0]].Faces[1]
	}

	transitions := 0
	started := false
	var state, s bool // "equals colour" of the previous / current ring face
	var startDot, startFace int
	for {
		// Advance to the next ring face; whenever the cursor runs into the
		// candidate itself, step to the next corner and relocate cur there.
		steps := 0
		for {
			j++
			if j == len(g.Dots[f.Dots[i]].Faces) {
				j = 0
			}
			if g.Dots[f.Dots[i]].Faces[j] != face {
				break
			}
			i++
			if i == len(f.Dots) {
				i = 0
			}
			steps++
			if steps > len(f.Dots) {
				// Lapped every corner without leaving cur: the ring holds a
				// single face, so colouring would erase the boundary.
				return false
			}
			d := &g.Dots[f.Dots[i]]
			for j = 0; j < len(d.Faces); j++ {
				if d.Faces[j] == cur {
					break
				}
			}
			if j == len(d.Faces) {
				// cur must reappear around the next corner on any grid whose
				// corner rings interlock; Validate screens representational
				// errors, so this cannot be reached from a checked grid.
				panic("loopgen: corner rings do not interlock")
			}
		}
		cur = g.Dots[f.Dots[i]].Faces[j]

		s = colourAt(board, cur) == colour
		if !started {
			started = true
			startDot, startFace = f.Dots[i], cur
			state = s

			continue
		}
		if s != state {
			transitions++
			state = s
			if transitions > 2 {
				break
			}
		}
		if f.Dots[i] == startDot && cur == startFace {
			break
		}
	}

	return transitions == 2
}

// rescan re-evaluates face nb for both candidate sets after a nearby
// colouring. The entry is removed first even when it stays eligible: its
// score may have moved, and set order is keyed on it.
func (g *Grid) rescan(board []Color, nb int, scores []faceScore,
	whiteable, blackable *candidateSet) {
	fs := &scores[nb]

	whiteable.remove(fs)
	if g.canColour(board, nb, White) {
		fs.whiteScore = g.score(board, nb, White)
		whiteable.add(fs)
	}

	blackable.remove(fs)
	if g.canColour(board, nb, Black) {
		fs.blackScore = g.score(board, nb, Black)
		blackable.add(fs)
	}
}

// Generate colours every face of g White or Black so that the boundary
// between the two colours (with the exterior Black) is a single simple
// closed curve, and returns the finished board.
//
// The working state (score records, candidate sets, shuffled face list)
// is allocated per call and discarded before returning; Generate keeps no
// state between calls and never mutates g.
func Generate(g *Grid, opts ...Option) ([]Color, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options; resolve the RNG (explicit stream wins over seed)
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	rng := o.Rand
	if rng == nil {
		seed := o.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	// 3. All faces start grey; per-face tiebreaks are drawn once
	numFaces := len(g.Faces)
	board := make([]Color, numFaces)
	scores := make([]faceScore, numFaces)
	var i int
	for i = 0; i < numFaces; i++ {
		scores[i] = faceScore{index: i, random: uint32(rng.Int31())}
	}

	// 4. Seed: one random finite face turns white; the exterior is the
	//    black seed. The two regions grow from here.
	board[rng.Intn(numFaces)] = White

	whiteable := newCandidateSet(func(fs *faceScore) int { return fs.whiteScore })
	blackable := newCandidateSet(func(fs *faceScore) int { return fs.blackScore })

	// 5. Initial scan over every face. The full legality check is needed
	//    even here: on some grids a face bordering the exterior is still
	//    not blackable.
	for i = 0; i < numFaces; i++ {
		if board[i] != Grey {
			continue
		}
		if g.canColour(board, i, Black) {
			scores[i].blackScore = g.score(board, i, Black)
			blackable.add(&scores[i])
		}
		if g.canColour(board, i, White) {
			scores[i].whiteScore = g.score(board, i, White)
			whiteable.add(&scores[i])
		}
	}

	// 6. Growth loop: colour one face per iteration until nothing is
	//    colourable. While grey faces remain, neither region can be sealed
	//    off without an earlier invariant breach, so on a genuine planar
	//    subdivision the two sets empty out together.
	for whiteable.size() > 0 || blackable.size() > 0 {
		if whiteable.size() == 0 || blackable.size() == 0 {
			return nil, ErrTopologyViolated
		}

		colour := Black
		candidates := blackable
		if rng.Intn(2) == 1 {
			colour = White
			candidates = whiteable
		}

		var pick *faceScore
		if o.Bias != nil {
			// Probe each candidate best-first: tentatively apply, score,
			// revert, notify the revert. Ties keep the earlier (better
			// ranked) candidate, hence the strict >.
			bestScore := 0
			candidates.scan(func(fs *faceScore) bool {
				board[fs.index] = colour
				sc := o.Bias(board, fs.index)
				board[fs.index] = Grey
				o.Bias(board, fs.index)
				if pick == nil || sc > bestScore {
					pick = fs
					bestScore = sc
				}

				return true
			})
		} else {
			pick, _ = candidates.best()
		}

		i = pick.index
		board[i] = colour
		if o.Bias != nil {
			o.Bias(board, i) // commit notification, no revert follows
		}
		whiteable.remove(pick)
		blackable.remove(pick)

		// The new colour affects the legality and scores of every face
		// touching any corner of the coloured face. Coloured faces are not
		// in either set, so only grey ones need re-evaluation.
		for _, d := range g.Faces[i].Dots {
			for _, nb := range g.Dots[d].Faces {
				if nb == Outside || nb == i || board[nb] != Grey {
					continue
				}
				g.rescan(board, nb, scores, whiteable, blackable)
			}
		}
	}

	// 7. The termination argument leaves no grey behind; a leftover means
	//    the input was not a planar subdivision after all.
	for i = 0; i < numFaces; i++ {
		if board[i] == Grey {
			return nil, ErrTopologyViolated
		}
	}

	// 8. Post-processing, in one fixed shuffled order. The greedy pass
	//    flips any legally flippable face with exactly one opposite
	//    edge-neighbour, growing tendrils into clumps; every such flip
	//    lengthens the boundary, which is bounded, so the pass settles.
	//    The final pass then flips legally flippable faces with fixed low
	//    probability, so the result does not sit at the locally-maximal
	//    perimeter a solver could otherwise exploit as a side channel.
	faceList := make([]int, numFaces)
	for i = 0; i < numFaces; i++ {
		faceList[i] = i
	}
	for i = numFaces - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		faceList[i], faceList[j] = faceList[j], faceList[i]
	}

	randomPass := false
	for {
		flipped := false
		for _, face := range faceList {
			opp := Black
			if board[face] == Black {
				opp = White
			}
			if !g.canColour(board, face, opp) {
				continue
			}
			if randomPass {
				if rng.Intn(randomFlipOdds) == 0 {
					board[face] = opp
				}
			} else if g.countNeighbours(board, face, opp) == 1 {
				board[face] = opp
				flipped = true
			}
		}
		if randomPass {
			break
		}
		if !flipped {
			randomPass = true
		}
	}

	return board, nil
}
