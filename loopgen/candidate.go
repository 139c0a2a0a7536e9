package loopgen

import (
	"github.com/tidwall/btree"
)

// faceScore carries the selection keys of one grey face. The two scores
// track current desirability for each colour; random is drawn once per run
// and never changes, so the candidate ordering stays total and stable even
// among equal scores, without a nondeterministic comparator.
type faceScore struct {
	index      int
	whiteScore int
	blackScore int
	random     uint32
}

// candidateSet is a rank-ordered set of the grey faces currently colourable
// with one specific colour, best candidate first. Ordering is (score
// descending, random tiebreak ascending, face index ascending); which
// score field keys the order is fixed at construction.
//
// Entries must be removed before their keyed score changes and re-added
// after: the tree locates items by comparison, so mutating a key in place
// would strand the entry.
type candidateSet struct {
	tree *btree.BTreeG[*faceScore]
}

// newCandidateSet builds an empty set ordered by the given score field.
func newCandidateSet(score func(*faceScore) int) *candidateSet {
	less := func(a, b *faceScore) bool {
		if score(a) != score(b) {
			return score(a) > score(b)
		}
		if a.random != b.random {
			return a.random < b.random
		}

		// Equal 32-bit tiebreaks are possible; fall back to the face index
		// to keep the order total. The directional bias is negligible.
		return a.index < b.index
	}

	return &candidateSet{tree: btree.NewBTreeG(less)}
}

// add inserts fs. Complexity: O(log n).
func (cs *candidateSet) add(fs *faceScore) { cs.tree.Set(fs) }

// remove deletes fs if present; deleting an absent entry is a no-op.
// Complexity: O(log n).
func (cs *candidateSet) remove(fs *faceScore) { cs.tree.Delete(fs) }

// size returns the number of candidates.
func (cs *candidateSet) size() int { return cs.tree.Len() }

// best returns the top-ranked candidate, if any.
func (cs *candidateSet) best() (*faceScore, bool) { return cs.tree.Min() }

// scan visits candidates best-first until fn returns false.
func (cs *candidateSet) scan(fn func(*faceScore) bool) { cs.tree.Scan(fn) }
