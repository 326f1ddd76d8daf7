package solver

import (
	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/state"
)

// GreedyMoves runs the greedy policy from pos to a win (§4.3): at each
// step, eliminate every currently-eliminable color at once if any
// exist, else play the single sensible color with the greatest
// colorExposure. Returns the winning move sequence; never fails on a
// well-formed board, since a color-blind-equivalent move is always
// available while neighbors is non-empty.
func GreedyMoves(pos state.BoardState) []board.Color {
	scratch := state.NewSimpleBoardState(pos.Clone())
	var moves []board.Color
	for !scratch.IsWon() {
		elim := eliminableColors(scratch.BoardState)
		if !elim.IsEmpty() {
			elim.ForEach(func(c int) {
				scratch.MakeMove(board.Color(c))
				moves = append(moves, board.Color(c))
			})
			continue
		}
		c, ok := bestExposureColor(scratch.BoardState)
		if !ok {
			break
		}
		scratch.MakeMove(c)
		moves = append(moves, c)
	}
	return moves
}

// GreedyMoveCount is GreedyMoves' length without retaining the move
// sequence, the form the heuristics and the queue-cutoff triage score
// actually need.
func GreedyMoveCount(pos state.BoardState) int {
	if pos.IsWon() {
		return 0
	}
	scratch := state.NewSimpleBoardState(pos.Clone())
	moves := 0
	for !scratch.IsWon() {
		elim := eliminableColors(scratch.BoardState)
		if !elim.IsEmpty() {
			elim.ForEach(func(c int) {
				scratch.MakeMove(board.Color(c))
			})
			moves += elim.Count()
			continue
		}
		c, ok := bestExposureColor(scratch.BoardState)
		if !ok {
			break
		}
		scratch.MakeMove(c)
		moves++
	}
	return moves
}
