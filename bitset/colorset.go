package bitset

import "math/bits"

// MaxColor is the highest legal color value (colors are 1..MaxColor; 0
// and negative values are reserved for "no color").
const MaxColor = 34

// ColorSet is a one-word bitmap over color values 0..34. The zero value
// is the empty set and is ready to use.
type ColorSet uint64

// Set returns the set with color added.
func (c ColorSet) Set(color int) ColorSet {
	return c | (1 << uint(color))
}

// Clear returns the set with color removed.
func (c ColorSet) Clear(color int) ColorSet {
	return c &^ (1 << uint(color))
}

// Get reports whether color is a member.
func (c ColorSet) Get(color int) bool {
	return c&(1<<uint(color)) != 0
}

// Count returns the number of members.
func (c ColorSet) Count() int {
	return bits.OnesCount64(uint64(c))
}

// IsEmpty reports whether the set has no members.
func (c ColorSet) IsEmpty() bool {
	return c == 0
}

// Union returns c ∪ other.
func (c ColorSet) Union(other ColorSet) ColorSet {
	return c | other
}

// Intersect returns c ∩ other.
func (c ColorSet) Intersect(other ColorSet) ColorSet {
	return c & other
}

// Difference returns c \ other.
func (c ColorSet) Difference(other ColorSet) ColorSet {
	return c &^ other
}

// Intersects reports whether c ∩ other is non-empty.
func (c ColorSet) Intersects(other ColorSet) bool {
	return c&other != 0
}

// Equal reports content equality.
func (c ColorSet) Equal(other ColorSet) bool {
	return c == other
}

// NextSet returns the smallest member color >= from, or -1 if none.
func (c ColorSet) NextSet(from int) int {
	if from < 0 {
		from = 0
	}
	if from >= wordBits {
		return -1
	}
	masked := uint64(c) &^ ((uint64(1) << uint(from)) - 1)
	if masked == 0 {
		return -1
	}
	return bits.TrailingZeros64(masked)
}

// ForEach calls f once for every member color, in ascending order.
func (c ColorSet) ForEach(f func(color int)) {
	for i := c.NextSet(0); i != -1; i = c.NextSet(i + 1) {
		f(i)
	}
}
