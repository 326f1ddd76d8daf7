package solver

import (
	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/state"
)

// colorEnabledBy reports whether some region in B borders an already-
// filled region of color p (§4.5: "c is enabled by p").
func colorEnabledBy(gb *board.GameBoard, b bitset.NodeSet, filled bitset.NodeSet, p board.Color) bool {
	for i := b.NextSet(0); i != -1; i = b.NextSet(i + 1) {
		bordering := gb.Nodes[i].BorderingNodes
		for r := bordering.NextSet(0); r != -1; r = bordering.NextSet(r + 1) {
			if filled.Get(r) && gb.Nodes[r].Color == p {
				return true
			}
		}
	}
	return false
}

// colorAdjacentToUnfilledP reports whether some region in B borders a
// not-yet-filled region of color p: the admissible pruner's signal that
// c could have been played right after p in a cheaper order.
func colorAdjacentToUnfilledP(gb *board.GameBoard, b bitset.NodeSet, filled bitset.NodeSet, p board.Color) bool {
	for i := b.NextSet(0); i != -1; i = b.NextSet(i + 1) {
		bordering := gb.Nodes[i].BorderingNodes
		for r := bordering.NextSet(0); r != -1; r = bordering.NextSet(r + 1) {
			if !filled.Get(r) && gb.Nodes[r].Color == p {
				return true
			}
		}
	}
	return false
}

// candidateBorder is the B set from §4.5: the regions a move to color c
// would absorb from the current position.
func candidateBorder(s state.BoardState, c board.Color) bitset.NodeSet {
	b := s.Board.NodesByColor[c].Clone()
	b.IntersectWith(s.Neighbors)
	return b
}

// inadmissiblePruner is the weaker, more aggressive pruner (§4.5), only
// sound alongside an already-inadmissible heuristic. lastMove is
// ignored (full sensible set allowed) when hasLastMove is false, i.e.
// at the root. wasEliminationNode relaxes an empty result back to the
// full sensible set, preserving completeness of elimination-first
// pruning.
func inadmissiblePruner(s state.BoardState, lastMove board.Color, hasLastMove, wasEliminationNode bool) bitset.ColorSet {
	sm := state.SensibleMoves(s)
	if !hasLastMove {
		return sm
	}
	var allowed bitset.ColorSet
	sm.ForEach(func(c int) {
		b := candidateBorder(s, board.Color(c))
		if colorEnabledBy(s.Board, b, s.Filled, lastMove) {
			allowed = allowed.Set(c)
		}
	})
	if allowed.IsEmpty() && wasEliminationNode {
		return sm
	}
	return allowed
}

// admissiblePruner is the stronger pruner required to preserve A*
// optimality with an admissible heuristic (§4.5).
func admissiblePruner(s state.BoardState, lastMove board.Color, hasLastMove bool) bitset.ColorSet {
	sm := state.SensibleMoves(s)
	if !hasLastMove {
		return sm
	}
	var allowed bitset.ColorSet
	sm.ForEach(func(c int) {
		b := candidateBorder(s, board.Color(c))
		if colorEnabledBy(s.Board, b, s.Filled, lastMove) {
			allowed = allowed.Set(c)
			return
		}
		if board.Color(c) < lastMove {
			return
		}
		if colorAdjacentToUnfilledP(s.Board, b, s.Filled, lastMove) {
			return
		}
		allowed = allowed.Set(c)
	})
	return allowed
}

// allowedMoves picks the pruner appropriate to strategy (§4.5): the
// admissible pruner for Admissible, the inadmissible pruner otherwise.
func allowedMoves(strategy Strategy, s state.BoardState, lastMove board.Color, hasLastMove, wasEliminationNode bool) bitset.ColorSet {
	if strategy.isAdmissible() {
		return admissiblePruner(s, lastMove, hasLastMove)
	}
	return inadmissiblePruner(s, lastMove, hasLastMove, wasEliminationNode)
}
