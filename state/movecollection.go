package state

import "github.com/Flolle/terminal-flood/board"

// NoPrev is the chain-terminator sentinel: an entry whose prev is
// NoPrev is the first move of its chain.
const NoPrev = -1

// MoveCollection is the shared-prefix move-list store (§4.9, §9 design
// notes): two parallel growable arrays replacing the source's
// immutable-linked-list move history. Every search node's move
// sequence is a chain through this store identified by an end index;
// many nodes share the same prefix, so appending a move is O(1) and
// memory grows with nodes pushed, not with nodes-times-depth.
type MoveCollection struct {
	prev  []int32
	color []board.Color
}

// NewMoveCollection returns an empty collection.
func NewMoveCollection() *MoveCollection {
	return &MoveCollection{}
}

// AddMoveEntry appends a new chain entry on top of prevIdx (NoPrev for
// a fresh chain) and returns its index, the new chain's end handle.
func (mc *MoveCollection) AddMoveEntry(prevIdx int, c board.Color) int {
	mc.prev = append(mc.prev, int32(prevIdx))
	mc.color = append(mc.color, c)
	return len(mc.prev) - 1
}

// Moves walks the chain ending at endIdx back to its root and returns
// the moves in play order. Returns nil for endIdx == NoPrev (empty
// chain).
func (mc *MoveCollection) Moves(endIdx int) []board.Color {
	if endIdx == NoPrev {
		return nil
	}
	var rev []board.Color
	for i := endIdx; i != NoPrev; i = int(mc.prev[i]) {
		rev = append(rev, mc.color[i])
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}

// Len returns the number of entries ever added.
func (mc *MoveCollection) Len() int {
	return len(mc.prev)
}
