// Package state implements the three coupled views of a Flood-It
// playing position the spec describes (§3, §4.2): the immutable-ish
// BoardState transition core, Game (owns move history, used by
// interactive callers), and SimpleBoardState (a mutable scratch copy
// the solver's heuristics and reconstruction path reuse without
// reallocating).
package state

import (
	"github.com/pkg/errors"

	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
)

// BoardState is a playing position: three disjoint NodeSets that
// together cover every region id (§3 invariant i). Filled is regions
// already claimed by the player, Neighbors is regions adjacent to
// Filled but not in it, and NotFilledNotNeighbors is everything else.
type BoardState struct {
	Board                 *board.GameBoard
	Filled                bitset.NodeSet
	Neighbors             bitset.NodeSet
	NotFilledNotNeighbors bitset.NodeSet
}

// NewBoardState builds the initial position: only the start region
// filled, its borders as neighbors, everything else untouched.
func NewBoardState(gb *board.GameBoard) BoardState {
	n := gb.AmountOfNodes()
	filled := bitset.NewNodeSet(n)
	filled.Set(gb.StartNodeID)

	neighbors := bitset.NewNodeSet(n)
	neighbors.UnionWith(gb.Nodes[gb.StartNodeID].BorderingNodes)

	notFilledNotNeighbors := bitset.NewNodeSet(n)
	notFilledNotNeighbors.FlipAll()
	notFilledNotNeighbors.DifferenceWith(filled)
	notFilledNotNeighbors.DifferenceWith(neighbors)

	return BoardState{
		Board:                 gb,
		Filled:                filled,
		Neighbors:             neighbors,
		NotFilledNotNeighbors: notFilledNotNeighbors,
	}
}

// IsWon reports whether every region has been claimed (§3 invariant iv).
func (s BoardState) IsWon() bool {
	return s.Neighbors.IsEmpty()
}

// Clone returns an independent copy backed by its own NodeSet arrays.
func (s BoardState) Clone() BoardState {
	return BoardState{
		Board:                 s.Board,
		Filled:                s.Filled.Clone(),
		Neighbors:             s.Neighbors.Clone(),
		NotFilledNotNeighbors: s.NotFilledNotNeighbors.Clone(),
	}
}

// absorb is the shared tail of every move kind (§4.2 steps 2-5): fold
// newNodes into Filled, pull in their borders as new Neighbors, then
// re-derive NotFilledNotNeighbors. newNodes must already be a subset
// of Neighbors; callers compute it differently depending on whether
// the move is single-color, multi-color, or color-blind.
func (s BoardState) absorb(newNodes bitset.NodeSet) {
	s.Filled.UnionWith(newNodes)
	newNodes.ForEach(func(i int) {
		s.Neighbors.UnionWith(s.Board.Nodes[i].BorderingNodes)
	})
	s.Neighbors.DifferenceWith(s.Filled)
	s.NotFilledNotNeighbors.DifferenceWith(s.Neighbors)
}

// ApplyMove plays a single color (§4.2). Reports false and leaves the
// state untouched if c has no regions in Neighbors (a no-op per
// property 4); the solver never constructs such a call, but Game
// guards it explicitly for callers outside the search.
func (s BoardState) ApplyMove(c board.Color) bool {
	newNodes := s.Board.NodesByColor[c].Clone()
	newNodes.IntersectWith(s.Neighbors)
	if newNodes.IsEmpty() {
		return false
	}
	s.absorb(newNodes)
	return true
}

// ApplyMultiColorMove plays several colors in a single step (§4.2).
func (s BoardState) ApplyMultiColorMove(colors bitset.ColorSet) bool {
	newNodes := bitset.NewNodeSet(s.Board.AmountOfNodes())
	colors.ForEach(func(c int) {
		newNodes.UnionWith(s.Board.NodesByColor[c])
	})
	newNodes.IntersectWith(s.Neighbors)
	if newNodes.IsEmpty() {
		return false
	}
	s.absorb(newNodes)
	return true
}

// ApplyColorBlindMove absorbs every current neighbor regardless of
// color (§4.2): the move the admissible heuristic's lower bound plays,
// never legal in real play.
func (s BoardState) ApplyColorBlindMove() bool {
	if s.Neighbors.IsEmpty() {
		return false
	}
	s.absorb(s.Neighbors.Clone())
	return true
}

// SensibleMoves computes {n.Color | n ∈ Neighbors} (§4.2 step 6),
// choosing whichever iteration direction is cheaper.
func SensibleMoves(s BoardState) bitset.ColorSet {
	gb := s.Board
	var sm bitset.ColorSet
	if s.Neighbors.PopCount() < gb.Colors.Count() {
		s.Neighbors.ForEach(func(i int) {
			sm = sm.Set(int(gb.Nodes[i].Color))
		})
	} else {
		gb.Colors.ForEach(func(c int) {
			if gb.NodesByColor[c].Intersects(s.Neighbors) {
				sm = sm.Set(c)
			}
		})
	}
	return sm
}

// errNotSensible is returned by Game.MakeMove for a color with no
// regions in Neighbors (§7 caller-misuse).
var errNotSensible = errors.New("state: color is not a sensible move")
