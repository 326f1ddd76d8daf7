package state

import (
	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
)

// SimpleBoardState is a mutable BoardState with a reusable scratch
// NodeSet, so the heuristics (which replay dozens of moves per call)
// and the ring-cache reconstruction path don't allocate per move. It
// takes ownership of the BoardState passed to it; clone first if the
// caller still needs the original.
type SimpleBoardState struct {
	BoardState
	scratch bitset.NodeSet
}

// NewSimpleBoardState wraps pos for repeated in-place moves. Takes
// ownership of pos's NodeSets — callers that still need pos afterward
// must pass pos.Clone().
func NewSimpleBoardState(pos BoardState) SimpleBoardState {
	return SimpleBoardState{
		BoardState: pos,
		scratch:    bitset.NewNodeSet(pos.Board.AmountOfNodes()),
	}
}

// MakeMove plays a single color, reusing the scratch buffer instead of
// allocating (§4.2). Reports false and leaves the state untouched if c
// is not sensible.
func (s *SimpleBoardState) MakeMove(c board.Color) bool {
	s.scratch.CopyFrom(s.Board.NodesByColor[c])
	s.scratch.IntersectWith(s.Neighbors)
	if s.scratch.IsEmpty() {
		return false
	}
	s.absorb(s.scratch)
	return true
}

// MakeMultiColorMove plays several colors together in one step.
func (s *SimpleBoardState) MakeMultiColorMove(colors bitset.ColorSet) bool {
	s.scratch.ClearAll()
	colors.ForEach(func(c int) {
		s.scratch.UnionWith(s.Board.NodesByColor[c])
	})
	s.scratch.IntersectWith(s.Neighbors)
	if s.scratch.IsEmpty() {
		return false
	}
	s.absorb(s.scratch)
	return true
}

// MakeColorBlindMove absorbs every current neighbor regardless of
// color, the move the admissible heuristic's lower bound plays.
func (s *SimpleBoardState) MakeColorBlindMove() bool {
	if s.Neighbors.IsEmpty() {
		return false
	}
	s.scratch.CopyFrom(s.Neighbors)
	s.absorb(s.scratch)
	return true
}

// TakeGivenNodes absorbs an externally-computed subset of Neighbors
// directly, skipping the color lookup. Nothing in this repository
// calls it; the A* driver's color-elimination step applies one color
// at a time through BoardState.ApplyMove.
func (s *SimpleBoardState) TakeGivenNodes(nodes bitset.NodeSet) {
	s.absorb(nodes)
}
