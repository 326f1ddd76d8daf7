package board

import "testing"

func grid2x2(a, b, c, d Color) [][]Color {
	return [][]Color{
		{a, b},
		{c, d},
	}
}

func TestNewGameBoardRejectsSingleColor(t *testing.T) {
	// SC1: "1111" (2x2, 1 color) is rejected at construction.
	_, err := NewGameBoard(grid2x2(1, 1, 1, 1), Point{0, 0}, 0)
	if err == nil {
		t.Fatal("expected an error for a single-color board")
	}
}

func TestNewGameBoardTwoColorTrivial(t *testing.T) {
	// SC2: a 2x2 checkerboard gives four singleton regions under
	// 4-connectivity, since same-colored cells only touch diagonally.
	gb, err := NewGameBoard(grid2x2(1, 2, 2, 1), Point{0, 0}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gb.AmountOfNodes() != 4 {
		t.Fatalf("expected 4 singleton regions, got %d", gb.AmountOfNodes())
	}
	if gb.Colors.Count() != 2 {
		t.Fatalf("expected 2 colors, got %d", gb.Colors.Count())
	}
	for _, n := range gb.Nodes {
		if n.AmountOfFields() != 1 {
			t.Fatalf("expected singleton region, got %d fields", n.AmountOfFields())
		}
		if n.BorderingNodes.Get(n.ID) {
			t.Fatalf("region %d borders itself", n.ID)
		}
	}
}

func TestNewGameBoardDoesNotMergeDiagonalSameColor(t *testing.T) {
	// "1221": (0,0)=1 alone, (0,1)=2 and (1,0)=2 are diagonal (not
	// 4-connected) so they form two separate regions, (1,1)=1 alone.
	gb, err := NewGameBoard(grid2x2(1, 2, 2, 1), Point{0, 0}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gb.AmountOfNodes() != 4 {
		t.Fatalf("expected 4 regions (no 4-connectivity across the diagonal), got %d", gb.AmountOfNodes())
	}
}

func TestNewGameBoardBorderSymmetry(t *testing.T) {
	grid := [][]Color{
		{1, 1, 2},
		{1, 3, 2},
		{3, 3, 2},
	}
	gb, err := NewGameBoard(grid, Point{0, 0}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, n := range gb.Nodes {
		n.BorderingNodes.ForEach(func(otherID int) {
			other := gb.Nodes[otherID]
			if !other.BorderingNodes.Get(n.ID) {
				t.Fatalf("border relation not symmetric between %d and %d", n.ID, otherID)
			}
		})
	}
}

func TestNewGameBoardRejectsNonSquareRows(t *testing.T) {
	grid := [][]Color{
		{1, 2},
		{1},
	}
	if _, err := NewGameBoard(grid, Point{0, 0}, 0); err == nil {
		t.Fatal("expected an error for a ragged grid")
	}
}

func TestNewGameBoardDefaultMaxSteps(t *testing.T) {
	grid := [][]Color{
		{1, 2},
		{1, 2},
	}
	gb, err := NewGameBoard(grid, Point{0, 0}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	size, colors := 2, 2
	want := int(0.30 * float64(size) * float64(colors))
	if want < 1 {
		want = 1
	}
	if gb.MaxSteps != want {
		t.Fatalf("expected default maxSteps %d, got %d", want, gb.MaxSteps)
	}
}
