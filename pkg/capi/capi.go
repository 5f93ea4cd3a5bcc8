// Package capi exposes atoms as plain integer handles for callers that
// cannot hold Go values, such as a C shim.
//
// A Handle must be destroyed exactly once. Handles compare equal exactly
// when their UniqueID fields do.
package capi

import (
	"bytes"
	"sync"
	"unsafe"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/markup"
)

// Handle is an interned string. It is *not* safe to copy it without Clone.
type Handle struct {
	UniqueID uint64
}

// live is one dynamic atom kept alive on behalf of its handles. Every handle
// owns one reference on the shared entry.
type live struct {
	atom    markup.LocalName
	handles int
}

// Registry maps dynamic handle ids back to their atoms.
type Registry struct {
	mtx  sync.Mutex
	live map[uint64]*live
}

func NewRegistry() *Registry {
	return &Registry{live: map[uint64]*live{}}
}

var defaultRegistry = NewRegistry()

// FromBuffer interns b. b must be valid UTF-8 and is not retained.
func FromBuffer(b []byte) (Handle, error) { return defaultRegistry.FromBuffer(b) }

// FromCString interns b up to its first NUL byte.
func FromCString(b []byte) (Handle, error) { return defaultRegistry.FromCString(b) }

func Clone(h Handle) Handle    { return defaultRegistry.Clone(h) }
func Destroy(h *Handle)        { defaultRegistry.Destroy(h) }
func Data(h Handle) []byte     { return defaultRegistry.Data(h) }
func Len(h Handle) int         { return defaultRegistry.Len(h) }
func Equal(a, b Handle) bool   { return a.UniqueID == b.UniqueID }
func LiveHandles() int         { return defaultRegistry.LiveHandles() }
func (h Handle) IsValid() bool { return atom.KindOf(h.UniqueID) != atom.KindInvalid }

func (r *Registry) FromBuffer(b []byte) (Handle, error) {
	a, err := atom.FromBytes[markup.LocalNameStaticSet](b)
	if err != nil {
		return Handle{}, err
	}
	if a.IsDynamic() {
		r.mtx.Lock()
		if l, ok := r.live[a.Packed()]; ok {
			// the new reference taken by FromBytes now belongs to this handle
			l.handles++
		} else {
			r.live[a.Packed()] = &live{atom: a, handles: 1}
		}
		r.mtx.Unlock()
	}
	return Handle{UniqueID: a.Packed()}, nil
}

func (r *Registry) FromCString(b []byte) (Handle, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return r.FromBuffer(b)
}

// Clone returns a new handle to the same string.
func (r *Registry) Clone(h Handle) Handle {
	if atom.KindOf(h.UniqueID) != atom.KindDynamic {
		return h
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	l, ok := r.live[h.UniqueID]
	if !ok {
		return Handle{}
	}
	l.atom.Clone()
	l.handles++
	return h
}

// Destroy releases h and zeroes it.
func (r *Registry) Destroy(h *Handle) {
	if atom.KindOf(h.UniqueID) == atom.KindDynamic {
		r.mtx.Lock()
		if l, ok := r.live[h.UniqueID]; ok {
			a := l.atom
			a.Release()
			l.handles--
			if l.handles == 0 {
				delete(r.live, h.UniqueID)
			}
		}
		r.mtx.Unlock()
	}
	*h = Handle{}
}

// Data returns the bytes of h. For static and dynamic handles the slice
// shares the interned storage and must not be modified; it stays valid until
// h is destroyed. Inline handles return a copy.
func (r *Registry) Data(h Handle) []byte {
	switch atom.KindOf(h.UniqueID) {
	case atom.KindInline:
		s, _ := atom.DecodeInline(h.UniqueID)
		return []byte(s)
	case atom.KindStatic:
		idx, _ := atom.UnpackStaticIndex(h.UniqueID)
		return stringBytes(markup.LocalNameStaticSet{}.StaticTable().Atoms[idx])
	case atom.KindDynamic:
		r.mtx.Lock()
		l, ok := r.live[h.UniqueID]
		r.mtx.Unlock()
		if !ok {
			return nil
		}
		return stringBytes(l.atom.String())
	default:
		return nil
	}
}

func (r *Registry) Len(h Handle) int {
	return len(r.Data(h))
}

// LiveHandles returns the number of dynamic handles not yet destroyed.
func (r *Registry) LiveHandles() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	n := 0
	for _, l := range r.live {
		n += l.handles
	}
	return n
}

func stringBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
