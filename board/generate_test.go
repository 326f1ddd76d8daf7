package board

import "testing"

func TestCreateBoardDeterministic(t *testing.T) {
	// SC4: createBoard("xyzzy", 14, 6, UPPER_LEFT) produces the same
	// compact string on any run.
	gb1, err := CreateBoard("xyzzy", 14, 6, UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gb2, err := CreateBoard("xyzzy", 14, 6, UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grid1 := gridOf(gb1)
	grid2 := gridOf(gb2)
	if FormatCompactGrid(grid1) != FormatCompactGrid(grid2) {
		t.Fatal("expected createBoard to be deterministic for a fixed seed")
	}
}

func TestCreateBoardDifferentSeedsDiffer(t *testing.T) {
	gb1, err := CreateBoard("seed-one", 10, 5, UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gb2, err := CreateBoard("seed-two", 10, 5, UpperLeft, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatCompactGrid(gridOf(gb1)) == FormatCompactGrid(gridOf(gb2)) {
		t.Fatal("expected different seeds to (almost certainly) produce different boards")
	}
}

func TestCreateBoardRejectsBadColorCount(t *testing.T) {
	if _, err := CreateBoard("seed", 10, 1, UpperLeft, 0); err == nil {
		t.Fatal("expected an error for colors < 2")
	}
	if _, err := CreateBoard("seed", 10, 40, UpperLeft, 0); err == nil {
		t.Fatal("expected an error for colors > MaxColor")
	}
}

func gridOf(gb *GameBoard) [][]Color {
	grid := make([][]Color, gb.Size)
	for y := range grid {
		grid[y] = make([]Color, gb.Size)
	}
	for _, n := range gb.Nodes {
		for _, p := range n.OccupiedFields {
			grid[p.Y][p.X] = n.Color
		}
	}
	return grid
}
