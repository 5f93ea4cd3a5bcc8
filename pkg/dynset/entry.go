package dynset

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/atomic"
)

// entryIDs hands out entry ids. Ids are never reused within a process, so a
// packed dynamic handle uniquely identifies one entry for its whole life.
var entryIDs atomic.Uint64

// dynamicShift leaves the two tag bits of a dynamic handle clear.
const dynamicShift = 2

// Entry is one interned string. Everything but the reference count is
// immutable after insert.
type Entry struct {
	str  string
	hash uint64
	id   uint64
	refs atomic.Int64
	set  *Set
}

func newEntry(set *Set, s string, hash uint64) *Entry {
	e := &Entry{
		str:  s,
		hash: hash,
		id:   entryIDs.Inc(),
		set:  set,
	}
	e.refs.Store(1)
	return e
}

func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// String returns the interned content.
func (e *Entry) String() string { return e.str }

// Hash returns the xxhash of the content, computed once at insert.
func (e *Entry) Hash() uint64 { return e.hash }

// ID returns the serial number of the entry. Ids start at 1.
func (e *Entry) ID() uint64 { return e.id }

// Packed returns the handle bits of atoms backed by e.
func (e *Entry) Packed() uint64 { return e.id << dynamicShift }

// RefCount returns the current number of references. It is only a snapshot.
func (e *Entry) RefCount() int64 { return e.refs.Load() }

// Retain adds a reference. The caller must already hold one.
func (e *Entry) Retain() {
	e.refs.Inc()
}

// Release drops a reference and reports whether the entry was removed from
// its set. Releasing more references than were taken panics.
func (e *Entry) Release() bool {
	for {
		n := e.refs.Load()
		if n <= 0 {
			panic("dynset: release of entry " + e.str + " with no references")
		}
		if n == 1 {
			break
		}
		if e.refs.CompareAndSwap(n, n-1) {
			return false
		}
	}
	return e.set.releaseLast(e)
}
