package solver

import (
	"math/bits"

	"github.com/Flolle/terminal-flood/bitset"
)

// maxG is the largest g-cost the 16-bit value column can hold. A board
// requiring more moves than this is an invariant violation the driver
// reports rather than silently wrapping.
const maxG = 65534

// fibMultiplier is 2^64/φ rounded to an odd 64-bit integer, the
// standard Fibonacci-hashing constant (§4.7): multiplying a digest by
// it and keeping the top bits spreads sequential/clustered digests
// uniformly across the table.
const fibMultiplier = 0x9E3779B97F4A7C15

// fingerprintTable is the BoardStateHashMap (§4.7): an open-addressed
// table keyed by a board's `filled` word array, mapping to the
// smallest g-cost seen at that fingerprint. Single-threaded, one
// instance per solve.
type fingerprintTable struct {
	keys     [][]uint64
	values   []uint16
	count    int
	capBits  uint
	wordSize int
}

// newFingerprintTable allocates a table sized for keys of wordSize
// words (the board's NodeSet word count).
func newFingerprintTable(wordSize int) *fingerprintTable {
	const initialCapBits = 10 // 1024 slots
	return &fingerprintTable{
		keys:     make([][]uint64, 1<<initialCapBits),
		values:   make([]uint16, 1<<initialCapBits),
		capBits:  initialCapBits,
		wordSize: wordSize,
	}
}

// Len reports the number of distinct fingerprints recorded.
func (t *fingerprintTable) Len() int { return t.count }

func wordsEqual(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *fingerprintTable) indexOf(digest uint64) int {
	return int((digest * fibMultiplier) >> (64 - t.capBits))
}

// PutIfLess records g at key's fingerprint if no entry exists yet, or
// replaces it if g is strictly smaller than the stored value (§4.7).
// Returns true if the table was updated, meaning the caller's
// successor is worth pushing onto the frontier.
func (t *fingerprintTable) PutIfLess(key bitset.NodeSet, g int) bool {
	if t.count+1 > (len(t.keys)*9)/10 {
		t.grow()
	}
	words := key.Words()
	digest := bitset.FoldWords(words)
	idx := t.indexOf(digest)
	for {
		if t.keys[idx] == nil {
			owned := make([]uint64, t.wordSize)
			copy(owned, words)
			t.keys[idx] = owned
			t.values[idx] = uint16(g)
			t.count++
			return true
		}
		if wordsEqual(t.keys[idx], words) {
			if g < int(t.values[idx]) {
				t.values[idx] = uint16(g)
				return true
			}
			return false
		}
		idx = (idx + 1) % len(t.keys)
	}
}

func (t *fingerprintTable) grow() {
	oldKeys, oldValues := t.keys, t.values
	t.capBits++
	t.keys = make([][]uint64, 1<<t.capBits)
	t.values = make([]uint16, 1<<t.capBits)
	for i, k := range oldKeys {
		if k == nil {
			continue
		}
		digest := bitset.FoldWords(k)
		idx := t.indexOf(digest)
		for t.keys[idx] != nil {
			idx = (idx + 1) % len(t.keys)
		}
		t.keys[idx] = k
		t.values[idx] = oldValues[i]
	}
}

// fibLog2 returns floor(log2(n)) for n >= 1. No caller uses it; the
// growth test checks the power-of-two capacity with a bit trick.
func fibLog2(n int) uint { return uint(bits.Len(uint(n))) - 1 }
