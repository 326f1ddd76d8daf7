package board

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// base35Alphabet maps a cell color value 0..34 to its compact-string
// character and back (§6 Compact board string / Solution output).
const base35Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXY"

// charToColor is the reverse of base35Alphabet (character to color,
// -1 for characters outside the alphabet), precomputed once.
var charToColor [256]int8

func init() {
	for i := range charToColor {
		charToColor[i] = -1
	}
	for i := 0; i < len(base35Alphabet); i++ {
		charToColor[base35Alphabet[i]] = int8(i)
	}
}

// ParseCompactGrid parses a single line of boardSize^2 base-35 digits
// into a row-major color grid. Returns an input-format error (no
// partial board) if the length isn't a perfect square or a character
// falls outside the alphabet.
func ParseCompactGrid(s string) ([][]Color, error) {
	n := len(s)
	if n == 0 {
		return nil, errors.New("board: empty compact board string")
	}
	size := int(math.Sqrt(float64(n)))
	if size*size != n {
		return nil, errors.Errorf("board: compact board length %d is not a perfect square", n)
	}

	grid := make([][]Color, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]Color, size)
		for x := 0; x < size; x++ {
			ch := s[y*size+x]
			c := charToColor[ch]
			if c < 0 {
				return nil, errors.Errorf("board: invalid color character %q at position %d", ch, y*size+x)
			}
			grid[y][x] = Color(c)
		}
	}
	return grid, nil
}

// FormatCompactGrid is the inverse of ParseCompactGrid: a row-major
// boardSize^2-character string of base-35 digits.
func FormatCompactGrid(grid [][]Color) string {
	var b strings.Builder
	for _, row := range grid {
		for _, c := range row {
			b.WriteByte(base35Alphabet[c])
		}
	}
	return b.String()
}

// NewGameBoardFromCompact parses a compact board string and builds the
// region graph in one step.
func NewGameBoardFromCompact(s string, startPos StartPosition, maxSteps int) (*GameBoard, error) {
	grid, err := ParseCompactGrid(s)
	if err != nil {
		return nil, err
	}
	return NewGameBoard(grid, startPos.Point(len(grid)), maxSteps)
}

// FormatMoves renders a play-order move sequence using the same
// base-35 alphabet as the board string (§6 Solution output).
func FormatMoves(moves []Color) string {
	var b strings.Builder
	for _, c := range moves {
		b.WriteByte(base35Alphabet[c])
	}
	return b.String()
}

// ParseMoves is the inverse of FormatMoves.
func ParseMoves(s string) ([]Color, error) {
	moves := make([]Color, len(s))
	for i := 0; i < len(s); i++ {
		c := charToColor[s[i]]
		if c < 0 {
			return nil, errors.Errorf("board: invalid move character %q at position %d", s[i], i)
		}
		moves[i] = Color(c)
	}
	return moves, nil
}
