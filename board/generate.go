package board

import (
	"hash/fnv"

	"github.com/pkg/errors"
)

// createBoard's PRNG: the seed string is folded to a 32-bit state with
// FNV-1a (the same hashing family the teacher demo uses for its board
// fingerprint, hash/fnv, just the 32-bit variant here since we only need
// a PRNG seed rather than a collision-resistant digest), then advanced
// with a xorshift32 step. Deterministic across runs and architectures.
type deterministicRand struct {
	state uint32
}

func newDeterministicRand(seed string) *deterministicRand {
	h := fnv.New32a()
	h.Write([]byte(seed))
	state := h.Sum32()
	if state == 0 {
		// xorshift32 has a fixed point at 0; nudge off it so a seed
		// that happens to hash to zero still produces a sequence.
		state = 0x9E3779B9
	}
	return &deterministicRand{state: state}
}

func (r *deterministicRand) next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// CreateBoard builds a GameBoard from a deterministic (seed, size,
// colors) tuple (§6): the seed hash seeds a 32-bit PRNG, and cell
// (x, y) gets color 1 + rand() mod colors, scanned row-major for
// reproducibility with the rest of the construction pipeline (§4.1
// also scans row-major).
func CreateBoard(seed string, size, colors int, startPos StartPosition, maxSteps int) (*GameBoard, error) {
	if size < 1 {
		return nil, errors.Errorf("board: size must be >= 1, got %d", size)
	}
	if colors < 2 || colors > MaxColor {
		return nil, errors.Errorf("board: color count %d out of range [2, %d]", colors, MaxColor)
	}

	rnd := newDeterministicRand(seed)
	grid := make([][]Color, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]Color, size)
		for x := 0; x < size; x++ {
			grid[y][x] = Color(1 + int(rnd.next()%uint32(colors)))
		}
	}

	return NewGameBoard(grid, startPos.Point(size), maxSteps)
}
