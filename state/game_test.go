package state

import (
	"testing"

	"github.com/Flolle/terminal-flood/board"
)

func TestGameMakeMoveRejectsNonSensible(t *testing.T) {
	gb := mustBoard(t, "1221")
	g := NewGame(gb)

	var notSensible board.Color = -1
	for c := 0; c <= board.MaxColor; c++ {
		if !g.SensibleMoves.Get(c) && gb.Colors.Get(c) {
			notSensible = board.Color(c)
			break
		}
	}
	if notSensible < 0 {
		t.Skip("every board color happens to be sensible from the start state")
	}
	if _, err := g.MakeMove(notSensible); err == nil {
		t.Fatal("expected an error for a non-sensible move")
	}
}

func TestGameMakeMoveAppendsHistoryAndPreservesOriginal(t *testing.T) {
	gb := mustBoard(t, "1221")
	g := NewGame(gb)
	var played board.Color = -1
	for c := 0; c <= board.MaxColor; c++ {
		if g.SensibleMoves.Get(c) {
			played = board.Color(c)
			break
		}
	}
	next, err := g.MakeMove(played)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.PlayedMoves) != 1 || next.PlayedMoves[0] != played {
		t.Fatalf("expected play history [%v], got %v", played, next.PlayedMoves)
	}
	if len(g.PlayedMoves) != 0 {
		t.Fatal("expected the original game to be untouched")
	}
	if next.Position.Filled.PopCount() <= g.Position.Filled.PopCount() {
		t.Fatal("expected the new game's Filled to have grown")
	}
}

func TestGameSolvesSC2TwoColorTrivial(t *testing.T) {
	// SC2: "1212" (2x2, colors {1,2}): rows "12" and "12" give two
	// bordering 2-cell column regions.
	gb, err := board.NewGameBoardFromCompact("1212", board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := NewGame(gb)
	moves := 0
	for !g.IsWon() && moves < 10 {
		var c board.Color = -1
		for cand := 0; cand <= board.MaxColor; cand++ {
			if g.SensibleMoves.Get(cand) {
				c = board.Color(cand)
				break
			}
		}
		if c < 0 {
			t.Fatal("no sensible move available before winning")
		}
		g, err = g.MakeMove(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		moves++
	}
	if !g.IsWon() {
		t.Fatalf("expected the board to be won within 10 moves, took more")
	}
}
