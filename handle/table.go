// Package handle implements the fixed-capacity handle table described
// in spec.md §4.2: a flat array of slots indexed by small integer,
// scanned linearly from index 1 on allocation. Handle 0 is reserved
// and never returned (spec.md §3 invariant 8).
//
// This plays the same role cesium's kfs.FS[T] entry map plays for
// on-disk files — a table mapping a key to metadata about an open
// resource, with acquire/release semantics — but the contract here is
// an array of fixed capacity rather than a growable map, because
// spec.md fixes MAX_HANDLES at construction and wants O(1)-by-slot
// access rather than map lookups.
package handle

import (
	"github.com/cockroachdb/errors"

	"ramfs/node"
)

// ErrExhausted is returned by Alloc when every slot is occupied.
var ErrExhausted = errors.New("[ramfs.handle] too many open files")

// Slot is one entry in the handle table: the node it refers to, the
// kind recorded at open time, the per-handle cursor, and the flags the
// caller supplied to open. A Slot with a nil Node is free.
//
// DirCursor is a portable stand-in for spec.md's raw "pointer to the
// next child" cursor (spec.md §9): an index into the owning node's
// Children slice, with -1 standing in for the null/exhausted cursor.
// The engine, not this package, owns the policy for advancing it.
// The index is not adjusted when the directory's children change
// between two readdir calls: unlinking a child that was already
// yielded shifts later children down by one, so the next readdir
// skips one sibling.
type Slot struct {
	Node        *node.Node
	IsDirectory bool
	FileCursor  int
	DirCursor   int
	OpenFlags   uint32
}

func (s *Slot) free() bool { return s.Node == nil }

// Table is the fixed-capacity array of handle slots. Index 0 is never
// allocated; valid handles returned by Alloc lie in [1, len(slots)).
type Table struct {
	slots []Slot
}

// New constructs a handle table with the given capacity, which must
// include the reserved slot 0 (so New(16) yields 15 usable handles).
func New(capacity int) *Table {
	return &Table{slots: make([]Slot, capacity)}
}

// Cap returns the table's total capacity, including the reserved slot.
func (t *Table) Cap() int { return len(t.slots) }

// Alloc scans from index 1 for the first free slot, installs node
// (opaque to this package — the engine stores a *node.Node here) and
// the supplied metadata, and returns the slot's handle index. Returns
// ErrExhausted if every slot from 1 onward is occupied.
func (t *Table) Alloc(n *node.Node, isDirectory bool, flags uint32) (int, error) {
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i].free() {
			t.slots[i] = Slot{
				Node:        n,
				IsDirectory: isDirectory,
				OpenFlags:   flags,
			}
			return i, nil
		}
	}
	return 0, ErrExhausted
}

// Get returns a pointer to the slot for h and whether h is a currently
// occupied, in-range handle. Handle 0 and out-of-range handles always
// report false.
func (t *Table) Get(h int) (*Slot, bool) {
	if h <= 0 || h >= len(t.slots) {
		return nil, false
	}
	if t.slots[h].free() {
		return nil, false
	}
	return &t.slots[h], true
}

// Free marks h's slot empty. It is a no-op for an invalid or already-
// free handle, matching spec.md §4.3 close()'s "unknown handles are
// silently tolerated" behavior — the caller is expected to check
// whether h was valid before deciding whether to adjust a node's
// use_count.
func (t *Table) Free(h int) {
	if h <= 0 || h >= len(t.slots) {
		return
	}
	t.slots[h] = Slot{}
}

// CountForNode returns the number of occupied slots whose Node equals
// n, used to assert spec.md invariant 3 (use_count equals the exact
// count of handle slots referring to the node) in tests.
func CountForNode(t *Table, n *node.Node) int {
	count := 0
	for i := 1; i < len(t.slots); i++ {
		if !t.slots[i].free() && t.slots[i].Node == n {
			count++
		}
	}
	return count
}
