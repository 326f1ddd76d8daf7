package solver

import (
	"testing"

	"github.com/Flolle/terminal-flood/bitset"
)

func TestFingerprintTablePutIfLessFirstInsertSucceeds(t *testing.T) {
	tbl := newFingerprintTable(2)
	key := bitset.NewNodeSet(100)
	key.Set(5)

	if !tbl.PutIfLess(key, 3) {
		t.Fatal("expected the first insert at a fresh fingerprint to succeed")
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}
}

func TestFingerprintTableRejectsEqualOrHigherG(t *testing.T) {
	tbl := newFingerprintTable(2)
	key := bitset.NewNodeSet(100)
	key.Set(5)
	tbl.PutIfLess(key, 5)

	if tbl.PutIfLess(key, 5) {
		t.Fatal("expected a duplicate g to be rejected")
	}
	if tbl.PutIfLess(key, 7) {
		t.Fatal("expected a higher g to be rejected")
	}
	if !tbl.PutIfLess(key, 2) {
		t.Fatal("expected a strictly lower g to be accepted")
	}
}

func TestFingerprintTableDistinguishesKeys(t *testing.T) {
	tbl := newFingerprintTable(2)
	a := bitset.NewNodeSet(100)
	a.Set(1)
	b := bitset.NewNodeSet(100)
	b.Set(2)

	tbl.PutIfLess(a, 4)
	if !tbl.PutIfLess(b, 4) {
		t.Fatal("expected a distinct fingerprint to be accepted independently")
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", tbl.Len())
	}
}

func TestFingerprintTableGrowsPastLoadFactor(t *testing.T) {
	tbl := newFingerprintTable(1)
	initialCap := len(tbl.keys)
	inserted := 0
	for i := 0; i < initialCap; i++ {
		key := bitset.NewNodeSet(64)
		// Encode i+1 in binary so every i yields a distinct, non-empty
		// single-word key.
		for b := 0; b < 63; b++ {
			if (i+1)>>b&1 != 0 {
				key.Set(b)
			}
		}
		if tbl.PutIfLess(key, i+1) {
			inserted++
		}
	}
	if len(tbl.keys) <= initialCap {
		t.Fatalf("expected the table to grow past its initial capacity of %d, stayed at %d after %d inserts", initialCap, len(tbl.keys), inserted)
	}
	// Capacity must remain a power of two after growth.
	if len(tbl.keys)&(len(tbl.keys)-1) != 0 {
		t.Fatalf("expected capacity to stay a power of two, got %d", len(tbl.keys))
	}
}
