package state

import (
	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
)

// Game is a BoardState plus its move history (§3): the view an
// interactive caller or a partially-played solve resumes from.
// Immutable — MakeMove returns a new Game rather than mutating in
// place.
type Game struct {
	Position      BoardState
	PlayedMoves   []board.Color
	SensibleMoves bitset.ColorSet
}

// NewGame starts a fresh game with only the start region filled.
func NewGame(gb *board.GameBoard) Game {
	pos := NewBoardState(gb)
	return Game{
		Position:      pos,
		SensibleMoves: SensibleMoves(pos),
	}
}

// MakeMove plays c, returning a new Game. Returns errNotSensible and
// leaves g untouched if c has no regions in Neighbors (§7
// caller-misuse: the interactive surface rejects these; the solver
// never constructs one).
func (g Game) MakeMove(c board.Color) (Game, error) {
	if !g.SensibleMoves.Get(int(c)) {
		return Game{}, errNotSensible
	}
	newPos := g.Position.Clone()
	if !newPos.ApplyMove(c) {
		return Game{}, errNotSensible
	}
	newMoves := make([]board.Color, len(g.PlayedMoves)+1)
	copy(newMoves, g.PlayedMoves)
	newMoves[len(g.PlayedMoves)] = c

	return Game{
		Position:      newPos,
		PlayedMoves:   newMoves,
		SensibleMoves: SensibleMoves(newPos),
	}, nil
}

// IsWon reports whether the position has been fully flooded.
func (g Game) IsWon() bool {
	return g.Position.IsWon()
}
