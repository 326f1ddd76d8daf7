package solver

import "github.com/Flolle/terminal-flood/state"

// defaultRingCacheSize is the ring cache's default slot count (§4.8).
const defaultRingCacheSize = 10000

// ringCache is a fixed-size circular buffer of expanded BoardStates
// (§4.8). Add assigns the next insertion index; Get reports a miss once
// that index has scrolled out of the window, signalling the caller to
// reconstruct the state from the move chain instead. Single-threaded,
// no locking, by design — one instance per solve.
type ringCache struct {
	slots         []state.BoardState
	lastUsedIndex int
}

// newRingCache allocates a cache with the given slot count.
func newRingCache(capacity int) *ringCache {
	return &ringCache{
		slots:         make([]state.BoardState, capacity),
		lastUsedIndex: -1,
	}
}

// Add stores s at the next insertion index and returns that index.
func (r *ringCache) Add(s state.BoardState) int {
	r.lastUsedIndex++
	r.slots[r.lastUsedIndex%len(r.slots)] = s
	return r.lastUsedIndex
}

// Get returns the state stored at index, or a miss if that slot has
// since been overwritten by a later Add.
func (r *ringCache) Get(index int) (state.BoardState, bool) {
	if index < 0 || index > r.lastUsedIndex || index <= r.lastUsedIndex-len(r.slots) {
		return state.BoardState{}, false
	}
	return r.slots[index%len(r.slots)], true
}
