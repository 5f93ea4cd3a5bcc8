// Package phf implements the read side and the generator of CHD
// (hash, displace and compress) perfect hash tables over strings.
//
// A Set is immutable once built. Generated tables are emitted as Go literals
// by atomgen, so the index of every string is fixed for a given build.
package phf

import (
	"unsafe"

	"github.com/segmentio/fasthash/fnv1a"
)

// Disp is the displacement pair of one bucket.
type Disp struct {
	D1, D2 uint32
}

// Set is a perfect hash table over a fixed list of strings.
type Set struct {
	// Key seeds the hash function. It is chosen by Generate.
	Key uint64
	// Disps holds one displacement pair per bucket.
	Disps []Disp
	// Atoms holds the strings in slot order.
	Atoms []string
	// Hashes holds the keyed hash of Atoms[i], reused as the atom hash.
	Hashes []uint64
}

// Hashes are the three 32-bit values CHD needs for one string.
type Hashes struct {
	G, F1, F2 uint32
	// Full is the 64-bit keyed hash G and F1/F2 are derived from.
	Full uint64
}

// Hash computes the keyed hashes of s.
func Hash(s string, key uint64) Hashes {
	h := fnv1a.AddString64(fnv1a.Init64^key, s)
	m := mix64(h)
	return Hashes{
		G:    uint32(h >> 32),
		F1:   uint32(m),
		F2:   uint32(m >> 32),
		Full: h,
	}
}

// HashBytes is Hash for a byte slice.
func HashBytes(b []byte, key uint64) Hashes {
	return Hash(bytesToString(b), key)
}

// bytesToString views b as a string without copying. The result must not
// outlive b or be retained.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}

func displace(f1, f2, d1, d2 uint32) uint32 {
	return d2 + f1*d1 + f2
}

// Len returns the number of strings in the set.
func (s *Set) Len() int {
	return len(s.Atoms)
}

// slot maps hashes to a candidate slot. The slot is only meaningful for
// strings known to be in the set.
func (s *Set) slot(h Hashes) uint32 {
	d := s.Disps[h.G%uint32(len(s.Disps))]
	return displace(h.F1, h.F2, d.D1, d.D2) % uint32(len(s.Atoms))
}

// Index returns the candidate slot for str without verifying it.
func (s *Set) Index(str string) uint32 {
	return s.slot(Hash(str, s.Key))
}

// Lookup returns the slot holding str. Unrelated strings land on arbitrary
// slots, so the candidate is always compared against the stored string.
func (s *Set) Lookup(str string) (uint32, bool) {
	if len(s.Atoms) == 0 {
		return 0, false
	}
	idx := s.slot(Hash(str, s.Key))
	if s.Atoms[idx] != str {
		return 0, false
	}
	return idx, true
}

// LookupBytes is Lookup for a byte slice.
func (s *Set) LookupBytes(b []byte) (uint32, bool) {
	return s.Lookup(bytesToString(b))
}

// Contains reports whether str is in the set.
func (s *Set) Contains(str string) bool {
	_, ok := s.Lookup(str)
	return ok
}

// MustIndex returns the slot of str and panics if it is absent.
func (s *Set) MustIndex(str string) uint32 {
	idx, ok := s.Lookup(str)
	if !ok {
		panic("phf: " + str + " is not in the set")
	}
	return idx
}
