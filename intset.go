package intset

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultCapacity is the buffer size used whenever a capacity hint is
// absent or not positive.
const DefaultCapacity = 16

// IntSet is an insertion-ordered set of int64 values backed by a
// manually grown contiguous buffer. The buffer is always allocated to
// the exact current capacity; used counts the live members, stored at
// buf[0:used] with the oldest membership first. Whatever sits at and
// past buf[used] is garbage.
type IntSet struct {
	buf  []int64
	used int
}

// New creates an empty set with the given capacity. Hints that are not
// positive fall back to DefaultCapacity, so the capacity is always at
// least one.
func New(capacityHint int) *IntSet {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacity
	}
	return &IntSet{buf: allocate(capacityHint)}
}

func (s *IntSet) Len() int {
	return s.used
}

func (s *IntSet) IsEmpty() bool {
	return s.used == 0
}

// Cap returns the allocated buffer size. It bounds nothing the caller
// can rely on beyond Cap() >= Len().
func (s *IntSet) Cap() int {
	return len(s.buf)
}

func (s *IntSet) Has(item int64) bool {
	for i := 0; i < s.used; i++ {
		if s.buf[i] == item {
			return true
		}
	}
	return false
}

// Insert adds item unless it is already a member. A set that is at
// capacity grows by half plus one before the new member is stored.
func (s *IntSet) Insert(item int64) (modified bool) {
	if s.Has(item) {
		return false
	}
	if s.used == len(s.buf) {
		s.Resize(len(s.buf) + len(s.buf)/2 + 1)
	}
	s.buf[s.used] = item
	s.used++
	return true
}

// Remove drops item from the set, closing the gap so the remaining
// members keep their relative order. It reports whether item was a
// member.
func (s *IntSet) Remove(item int64) bool {
	for i := 0; i < s.used; i++ {
		if s.buf[i] != item {
			continue
		}
		copy(s.buf[i:], s.buf[i+1:s.used])
		s.used--
		return true
	}
	return false
}

// Clear forgets all members. The buffer is kept at its current
// capacity.
func (s *IntSet) Clear() {
	s.used = 0
}

// Resize reallocates the buffer to the hinted capacity. Hints that
// cannot hold the live members are corrected silently: anything below
// the current length clamps to the length, and a hint that is not
// positive falls back to DefaultCapacity. The members and their order
// never change.
func (s *IntSet) Resize(capacityHint int) {
	capacity := capacityHint
	switch {
	case capacityHint <= 0:
		capacity = DefaultCapacity
	case capacityHint < s.used:
		capacity = s.used
	}
	next := allocate(capacity)
	copy(next, s.buf[:s.used])
	s.buf = next
}

// Clone returns an independent copy: same members, same order, same
// capacity, separate buffer.
func (s *IntSet) Clone() *IntSet {
	clone := &IntSet{buf: allocate(len(s.buf)), used: s.used}
	copy(clone.buf, s.buf[:s.used])
	return clone
}

// Assign overwrites the receiver with an independent copy of src. The
// replacement buffer is fully built before the old one is dropped, so
// assigning a set to itself is harmless.
func (s *IntSet) Assign(src *IntSet) {
	if s == src {
		return
	}
	next := allocate(len(src.buf))
	copy(next, src.buf[:src.used])
	s.buf = next
	s.used = src.used
}

// Release drops the buffer. Calling Release again is a no-op; any
// other use after Release is outside the contract.
func (s *IntSet) Release() {
	s.buf = nil
	s.used = 0
}

// InsertSet adds every member of src that is missing from s, in src's
// stored order.
func (s *IntSet) InsertSet(src *IntSet) (modified bool) {
	for i := 0; i < src.used; i++ {
		if s.Insert(src.buf[i]) {
			modified = true
		}
	}
	return modified
}

// InsertSlice adds every item of the slice that is missing from s, in
// slice order.
func (s *IntSet) InsertSlice(items []int64) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}
	return modified
}

// Items returns the members in insertion order. The result is a copy;
// mutating it does not touch the set.
func (s *IntSet) Items() []int64 {
	items := make([]int64, s.used)
	copy(items, s.buf[:s.used])
	return items
}

// Dump writes the members to w in stored order, separated by two
// spaces, with no leading or trailing separator and no newline. An
// empty set writes nothing.
func (s *IntSet) Dump(w io.Writer) {
	for i := 0; i < s.used; i++ {
		if i == 0 {
			fmt.Fprintf(w, "%d", s.buf[i])
		} else {
			fmt.Fprintf(w, "  %d", s.buf[i])
		}
	}
}

func (s *IntSet) String() string {
	var b strings.Builder
	s.Dump(&b)
	return b.String()
}

// allocate obtains a fresh buffer of the wanted capacity. An
// allocation failure is not recoverable: a diagnostic goes to stderr
// and the process terminates.
func allocate(capacity int) (buf []int64) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "intset: cannot allocate a buffer of %d elements: %v\n", capacity, r)
			os.Exit(1)
		}
	}()
	return make([]int64, capacity)
}
