package state

import (
	"testing"

	"github.com/Flolle/terminal-flood/board"
)

func mustBoard(t *testing.T, compact string) *board.GameBoard {
	t.Helper()
	gb, err := board.NewGameBoardFromCompact(compact, board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error building board: %v", err)
	}
	return gb
}

// checkPartition verifies property 1: the three sets partition the
// region-id universe.
func checkPartition(t *testing.T, s BoardState) {
	t.Helper()
	n := s.Board.AmountOfNodes()
	for i := 0; i < n; i++ {
		count := 0
		if s.Filled.Get(i) {
			count++
		}
		if s.Neighbors.Get(i) {
			count++
		}
		if s.NotFilledNotNeighbors.Get(i) {
			count++
		}
		if count != 1 {
			t.Fatalf("region %d is in %d of the three sets, want exactly 1", i, count)
		}
	}
}

func TestNewBoardStatePartition(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	checkPartition(t, s)
	if s.Filled.PopCount() != 1 {
		t.Fatalf("expected exactly the start region filled, got %d", s.Filled.PopCount())
	}
}

func TestSensibleMovesMatchesNeighborColors(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	sm := SensibleMoves(s)

	var fromNeighbors bitSetColors
	s.Neighbors.ForEach(func(i int) {
		fromNeighbors = fromNeighbors.add(int(gb.Nodes[i].Color))
	})
	for c := 0; c <= board.MaxColor; c++ {
		if sm.Get(c) != fromNeighbors.has(c) {
			t.Fatalf("sensible moves mismatch for color %d", c)
		}
	}
}

// bitSetColors is a tiny test-local set so the test above doesn't
// depend on the bitset package's ColorSet being correct too.
type bitSetColors map[int]bool

func (b bitSetColors) add(c int) bitSetColors {
	if b == nil {
		b = make(bitSetColors)
	}
	b[c] = true
	return b
}

func (b bitSetColors) has(c int) bool {
	return b[c]
}

func TestApplyMoveIncreasesFilledForSensibleColor(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	before := s.Filled.PopCount()

	var played board.Color = -1
	sm := SensibleMoves(s)
	for c := 0; c <= board.MaxColor; c++ {
		if sm.Get(c) {
			played = board.Color(c)
			break
		}
	}
	if played < 0 {
		t.Fatal("expected at least one sensible move")
	}

	ok := s.ApplyMove(played)
	if !ok {
		t.Fatal("expected ApplyMove to succeed for a sensible color")
	}
	checkPartition(t, s)
	if s.Filled.PopCount() <= before {
		t.Fatal("expected Filled to grow strictly")
	}
}

func TestApplyMoveNoopForNonSensibleColor(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	sm := SensibleMoves(s)

	var notSensible board.Color = -1
	for c := 0; c <= board.MaxColor; c++ {
		if !sm.Get(c) && gb.Colors.Get(c) {
			notSensible = board.Color(c)
			break
		}
	}
	if notSensible < 0 {
		t.Skip("every board color happens to be sensible from the start state")
	}

	before := s.Clone()
	if s.ApplyMove(notSensible) {
		t.Fatal("expected ApplyMove to report false for a non-sensible color")
	}
	if !s.Filled.Equal(before.Filled) || !s.Neighbors.Equal(before.Neighbors) {
		t.Fatal("expected state to be unchanged after a non-sensible move")
	}
}

func TestWinClearsNeighborsAndNotFilledNotNeighbors(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	for !s.IsWon() {
		sm := SensibleMoves(s)
		played := false
		for c := 0; c <= board.MaxColor; c++ {
			if sm.Get(c) {
				s.ApplyMove(board.Color(c))
				played = true
				break
			}
		}
		if !played {
			t.Fatal("stuck with no sensible move before winning")
		}
	}
	if !s.Neighbors.IsEmpty() || !s.NotFilledNotNeighbors.IsEmpty() {
		t.Fatal("expected both Neighbors and NotFilledNotNeighbors empty at a win")
	}
	if s.Filled.PopCount() != gb.AmountOfNodes() {
		t.Fatal("expected every region filled at a win")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	gb := mustBoard(t, "1221")
	s := NewBoardState(gb)
	clone := s.Clone()
	sm := SensibleMoves(s)
	for c := 0; c <= board.MaxColor; c++ {
		if sm.Get(c) {
			s.ApplyMove(board.Color(c))
			break
		}
	}
	if s.Filled.Equal(clone.Filled) {
		t.Fatal("expected mutating s to leave the clone untouched")
	}
}
