// Package atom provides interned strings that compare and hash as integers.
//
// An Atom is one of three things: a string of up to MaxInlineLen bytes
// packed into the handle, an index into a static table generated at build
// time, or a reference counted entry in the process wide dynamic set. Equal
// content always produces the same handle, so == on two atoms of the same
// type is string equality.
//
// Dynamic atoms hold a reference. Copying an Atom value does not take one;
// use Clone to share an atom and Release when done with it. Static and
// inline atoms ignore both.
package atom

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/grafana/stringcache/pkg/dynset"
)

// Atom is an interned string bound to the static set S.
//
// The zero Atom is not a valid atom. It is what failed constructions and
// Release leave behind, and it reads as the empty string.
type Atom[S StaticSet] struct {
	data  uint64
	entry *dynset.Entry
}

// FromString interns s. It fails with ErrInvalidEncoding if s is not valid
// UTF-8.
func FromString[S StaticSet](s string) (Atom[S], error) {
	if err := validate(s); err != nil {
		return Atom[S]{}, err
	}

	var a Atom[S]
	switch idx, ok := staticTable[S]().Lookup(s); {
	case ok:
		a.data = packStatic(idx)
	case len(s) <= MaxInlineLen:
		a.data = packInline(s)
	default:
		a.entry = dynset.Default().Intern(s)
		a.data = a.entry.Packed()
	}
	recordIntern(a.data, s)
	return a, nil
}

// FromBytes is FromString for a byte slice. b is copied only if a new
// dynamic entry is created.
func FromBytes[S StaticSet](b []byte) (Atom[S], error) {
	if !utf8.Valid(b) {
		return Atom[S]{}, invalidAt(b)
	}

	var a Atom[S]
	switch idx, ok := staticTable[S]().LookupBytes(b); {
	case ok:
		a.data = packStatic(idx)
	case len(b) <= MaxInlineLen:
		a.data = packInlineBytes(b)
	default:
		a.entry = dynset.Default().InternBytes(b)
		a.data = a.entry.Packed()
	}
	if sink := dynset.Default().Sink(); sink != nil {
		sink.Record(dynset.Event{Kind: dynset.EventIntern, ID: a.data, String: string(b)})
	}
	return a, nil
}

// MustFromString is FromString that panics on invalid input. Intended for
// literals.
func MustFromString[S StaticSet](s string) Atom[S] {
	a, err := FromString[S](s)
	if err != nil {
		panic(err)
	}
	return a
}

// PackStatic returns the atom at index of the static table of S. It is
// used by generated code and does not check the index.
func PackStatic[S StaticSet](index uint32) Atom[S] {
	return Atom[S]{data: packStatic(index)}
}

// Empty returns the static empty-string atom of S.
func Empty[S StaticSet]() Atom[S] {
	var set S
	return PackStatic[S](set.EmptyStringIndex())
}

func recordIntern(data uint64, s string) {
	if sink := dynset.Default().Sink(); sink != nil {
		sink.Record(dynset.Event{Kind: dynset.EventIntern, ID: data, String: s})
	}
}

// Kind reports how the atom is stored.
func (a Atom[S]) Kind() Kind {
	return KindOf(a.data)
}

func (a Atom[S]) IsValid() bool   { return a.Kind() != KindInvalid }
func (a Atom[S]) IsStatic() bool  { return a.data&tagMask == staticTag }
func (a Atom[S]) IsInline() bool  { return a.data&tagMask == inlineTag }
func (a Atom[S]) IsDynamic() bool { return a.entry != nil }

// Packed returns the raw handle bits. Two atoms of the same type are equal
// exactly when their packed values are.
func (a Atom[S]) Packed() uint64 {
	return a.data
}

// String returns the atom content.
func (a Atom[S]) String() string {
	switch a.Kind() {
	case KindStatic:
		return staticTable[S]().Atoms[unpackStatic(a.data)]
	case KindInline:
		s, _ := DecodeInline(a.data)
		return s
	case KindDynamic:
		return a.entry.String()
	default:
		return ""
	}
}

// AppendTo appends the atom content to dst without an intermediate string.
func (a Atom[S]) AppendTo(dst []byte) []byte {
	if a.IsInline() {
		return appendInline(dst, a.data)
	}
	return append(dst, a.String()...)
}

// Len returns the length of the content in bytes.
func (a Atom[S]) Len() int {
	switch a.Kind() {
	case KindStatic:
		return len(staticTable[S]().Atoms[unpackStatic(a.data)])
	case KindInline:
		return inlineLen(a.data)
	case KindDynamic:
		return len(a.entry.String())
	default:
		return 0
	}
}

func (a Atom[S]) IsEmpty() bool {
	return a.Len() == 0
}

// Hash returns a 64-bit hash of the atom. Static atoms use the hash stored
// in their table and dynamic atoms the hash cached on their entry, so no
// string bytes are read.
func (a Atom[S]) Hash() uint64 {
	switch a.Kind() {
	case KindStatic:
		return staticTable[S]().Hashes[unpackStatic(a.data)]
	case KindInline:
		return fnv1a.HashUint64(a.data)
	case KindDynamic:
		return a.entry.Hash()
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same string.
func (a Atom[S]) Equal(b Atom[S]) bool {
	return a.data == b.data
}

// EqualString reports whether the atom content is s.
func (a Atom[S]) EqualString(s string) bool {
	if a.IsInline() {
		if len(s) != inlineLen(a.data) {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] != byte(a.data>>(8*(i+1))) {
				return false
			}
		}
		return true
	}
	return a.String() == s
}

// Compare orders atoms by content, like strings.Compare.
func (a Atom[S]) Compare(b Atom[S]) int {
	if a.data == b.data {
		return 0
	}
	return strings.Compare(a.String(), b.String())
}

// GoString renders the atom as Atom("div" type=static).
func (a Atom[S]) GoString() string {
	return fmt.Sprintf("Atom(%q type=%s)", a.String(), a.Kind())
}

// Clone returns a copy holding its own reference.
func (a Atom[S]) Clone() Atom[S] {
	if a.entry != nil {
		a.entry.Retain()
	}
	return a
}

// Release drops the reference held by a and resets it to the zero Atom.
// Releasing a static, inline or zero atom only resets it.
func (a *Atom[S]) Release() {
	if a.entry != nil {
		a.entry.Release()
	}
	*a = Atom[S]{}
}

// RefCount returns the reference count of a dynamic atom, or 0.
func (a Atom[S]) RefCount() int64 {
	if a.entry == nil {
		return 0
	}
	return a.entry.RefCount()
}
