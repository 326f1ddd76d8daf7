package floodit

import (
	"context"
	"strings"
	"testing"

	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/solver"
)

func TestSolveAndFormatRoundTrip(t *testing.T) {
	gb, err := ParseCompactBoard("1221", board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moves, err := Solve(gb.WithUnboundedSteps(), solver.Admissible, solver.NoQueueCutoff)
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("expected a 2-move solution, got %d: %v", len(moves), moves)
	}

	formatted := FormatMoves(moves)
	parsed, err := ParseMoves(formatted)
	if err != nil {
		t.Fatalf("unexpected error parsing formatted moves: %v", err)
	}
	if len(parsed) != len(moves) {
		t.Fatalf("round trip length mismatch: %d vs %d", len(parsed), len(moves))
	}
	for i := range moves {
		if parsed[i] != moves[i] {
			t.Fatalf("round trip mismatch at %d: %v vs %v", i, parsed[i], moves[i])
		}
	}
}

func TestFormatCompactBoardRoundTrip(t *testing.T) {
	const compact = "1221"
	gb, err := ParseCompactBoard(compact, board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatCompactBoard(gb); got != compact {
		t.Fatalf("expected round trip %q, got %q", compact, got)
	}
}

func TestCreateBoardDeterministic(t *testing.T) {
	gb1, err := CreateBoard("xyzzy", 10, 5, board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gb2, err := CreateBoard("xyzzy", 10, 5, board.UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatCompactBoard(gb1) != FormatCompactBoard(gb2) {
		t.Fatal("expected identical boards for identical seeds")
	}
}

func TestSolveDatasetPreservesOrderAndHandlesBadLines(t *testing.T) {
	input := strings.Join([]string{"1221", "", "1", "1212"}, "\n")
	var out strings.Builder

	err := SolveDataset(context.Background(), strings.NewReader(input), &out, DatasetOptions{
		StartPos: board.UpperLeft,
		Strategy: solver.Admissible,
		Workers:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines (blank input line skipped), got %d: %v", len(lines), lines)
	}
	if lines[1] != unsolvedMarker {
		t.Fatalf("expected the single-color board to be marked unsolved, got %q", lines[1])
	}
	if lines[0] == unsolvedMarker || lines[2] == unsolvedMarker {
		t.Fatalf("expected the two valid boards to solve, got %v", lines)
	}
}
