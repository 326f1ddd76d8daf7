// Package bitset provides the fixed-width bitmap types the solver core
// builds everything else on top of: NodeSet (one bit per board region)
// and ColorSet (one bit per color).
package bitset

import "math/bits"

const wordBits = 64

// wordCount returns the number of 64-bit words needed to hold n bits.
func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// WordCount returns the number of 64-bit words a NodeSet over n ids uses.
// Exported so callers that need to size their own key buffers (the
// fingerprint table) don't have to duplicate the rounding rule.
func WordCount(n int) int {
	return wordCount(n)
}

// NodeSet is a fixed-width bitmap over region ids 0..n-1. The zero value
// is not usable; construct with NewNodeSet. Every NodeSet derived from
// the same board has the same word count, so two NodeSets may be
// combined directly without a size check.
type NodeSet struct {
	words []uint64
	n     int
}

// NewNodeSet allocates an empty NodeSet sized to hold n ids.
func NewNodeSet(n int) NodeSet {
	return NodeSet{words: make([]uint64, wordCount(n)), n: n}
}

// Len returns the number of ids this set is defined over.
func (s NodeSet) Len() int { return s.n }

// Set marks id i as a member.
func (s NodeSet) Set(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear removes id i from the set.
func (s NodeSet) Clear(i int) {
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Get reports whether id i is a member.
func (s NodeSet) Get(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// ClearAll empties the set in place.
func (s NodeSet) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// FlipAll complements every bit within Len(), in place.
func (s NodeSet) FlipAll() {
	for i := range s.words {
		s.words[i] = ^s.words[i]
	}
	s.maskTail()
}

// maskTail clears the bits beyond n in the last word, which would
// otherwise appear set after FlipAll and corrupt PopCount/Equal/Hash.
func (s NodeSet) maskTail() {
	if s.n%wordBits == 0 || len(s.words) == 0 {
		return
	}
	last := len(s.words) - 1
	s.words[last] &= (uint64(1) << uint(s.n%wordBits)) - 1
}

// PopCount returns the number of members.
func (s NodeSet) PopCount() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// IsEmpty reports whether the set has no members.
func (s NodeSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// UnionWith sets s to s ∪ other, in place.
func (s NodeSet) UnionWith(other NodeSet) {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
}

// IntersectWith sets s to s ∩ other, in place.
func (s NodeSet) IntersectWith(other NodeSet) {
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// DifferenceWith sets s to s \ other, in place.
func (s NodeSet) DifferenceWith(other NodeSet) {
	for i := range s.words {
		s.words[i] &^= other.words[i]
	}
}

// SymmetricDifferenceWith sets s to s Δ other, in place.
func (s NodeSet) SymmetricDifferenceWith(other NodeSet) {
	for i := range s.words {
		s.words[i] ^= other.words[i]
	}
}

// Intersects reports whether s ∩ other is non-empty, without allocating.
func (s NodeSet) Intersects(other NodeSet) bool {
	for i := range s.words {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// NextSet returns the smallest member id >= from, or -1 if none exists.
// Iterate a whole set with:
//
//	for i := s.NextSet(0); i != -1; i = s.NextSet(i + 1) { ... }
func (s NodeSet) NextSet(from int) int {
	if from < 0 {
		from = 0
	}
	wordIdx := from / wordBits
	if wordIdx >= len(s.words) {
		return -1
	}
	w := s.words[wordIdx] &^ ((uint64(1) << uint(from%wordBits)) - 1)
	for {
		if w != 0 {
			return wordIdx*wordBits + bits.TrailingZeros64(w)
		}
		wordIdx++
		if wordIdx >= len(s.words) {
			return -1
		}
		w = s.words[wordIdx]
	}
}

// ForEach calls f once for every member id, in ascending order.
func (s NodeSet) ForEach(f func(i int)) {
	for i := s.NextSet(0); i != -1; i = s.NextSet(i + 1) {
		f(i)
	}
}

// Equal reports content equality (not identity).
func (s NodeSet) Equal(other NodeSet) bool {
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy backed by its own array.
func (s NodeSet) Clone() NodeSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return NodeSet{words: words, n: s.n}
}

// CopyFrom overwrites s's contents with other's, in place (no allocation).
func (s NodeSet) CopyFrom(other NodeSet) {
	copy(s.words, other.words)
}

// Words exposes the underlying word array read-only, for use as a
// fingerprint table key. Callers must not mutate the returned slice.
func (s NodeSet) Words() []uint64 { return s.words }

// Hash folds the word array to a single 64-bit digest by rotate-xor, the
// same scheme used by the fingerprint table (solver.fingerprintTable)
// when hashing a Filled key.
func (s NodeSet) Hash() uint64 {
	return FoldWords(s.words)
}

// FoldWords rotate-xor folds an arbitrary word array to a 64-bit digest.
// Shared between NodeSet.Hash and the fingerprint table so both use
// exactly the same fold.
func FoldWords(words []uint64) uint64 {
	var h uint64
	for _, w := range words {
		h = bits.RotateLeft64(h, 1) ^ w
	}
	return h
}
