// Package dynset implements the concurrent interning table behind dynamic
// atoms.
//
// A Set holds at most one Entry per distinct string. Entries are reference
// counted and removed when the last reference is released, so the
// table never grows past the set of strings currently in use.
package dynset

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/dolthub/swiss"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const (
	cacheLineSize    = 64
	initialShardSize = 8
)

type shardState struct {
	mtx     sync.RWMutex
	entries *swiss.Map[string, *Entry]
}

// shard is padded to a cache line so neighbouring locks don't share one.
type shard struct {
	shardState
	_ [cacheLineSize - unsafe.Sizeof(shardState{})%cacheLineSize]byte
}

// Set is a sharded, reference counted string table. It is safe for
// concurrent use.
type Set struct {
	shards []shard

	live  atomic.Int64
	bytes atomic.Int64

	metrics *metrics
	sink    EventSink
	logger  kitlog.Logger
}

// Option configures a Set.
type Option func(*Set)

// WithEventSink records insert and remove events into sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Set) {
		s.sink = sink
	}
}

func WithLogger(logger kitlog.Logger) Option {
	return func(s *Set) {
		s.logger = logger
	}
}

// New creates a Set. Metrics are registered on reg unless it is nil.
func New(cfg Config, reg prometheus.Registerer, opts ...Option) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Set{
		shards:  make([]shard, cfg.Shards),
		metrics: newMetrics(reg),
		logger:  kitlog.NewNopLogger(),
	}
	for i := range s.shards {
		s.shards[i].entries = swiss.NewMap[string, *Entry](initialShardSize)
	}
	for _, opt := range opts {
		opt(s)
	}

	level.Info(s.logger).Log("msg", "created dynamic atom set", "shards", cfg.Shards)
	return s, nil
}

func (s *Set) shardFor(hash uint64) *shard {
	return &s.shards[hash%uint64(len(s.shards))]
}

// Intern returns the entry for str with one reference taken on behalf of
// the caller, inserting it if needed.
func (s *Set) Intern(str string) *Entry {
	hash := hashString(str)
	sh := s.shardFor(hash)

	sh.mtx.RLock()
	if e, ok := sh.entries.Get(str); ok {
		e.refs.Inc()
		sh.mtx.RUnlock()
		s.metrics.hits.Inc()
		return e
	}
	sh.mtx.RUnlock()

	return s.insert(sh, str, hash, false)
}

// InternBytes is Intern for a byte slice. b is only copied when a new entry
// is inserted.
func (s *Set) InternBytes(b []byte) *Entry {
	view := unsafe.String(unsafe.SliceData(b), len(b))
	hash := hashString(view)
	sh := s.shardFor(hash)

	sh.mtx.RLock()
	if e, ok := sh.entries.Get(view); ok {
		e.refs.Inc()
		sh.mtx.RUnlock()
		s.metrics.hits.Inc()
		return e
	}
	sh.mtx.RUnlock()

	return s.insert(sh, view, hash, true)
}

func (s *Set) insert(sh *shard, str string, hash uint64, copyKey bool) *Entry {
	sh.mtx.Lock()
	// another goroutine may have inserted it since the read lock was dropped
	if e, ok := sh.entries.Get(str); ok {
		e.refs.Inc()
		sh.mtx.Unlock()
		s.metrics.hits.Inc()
		return e
	}
	if copyKey {
		str = strings.Clone(str)
	}
	e := newEntry(s, str, hash)
	sh.entries.Put(str, e)
	sh.mtx.Unlock()

	s.live.Inc()
	s.bytes.Add(int64(len(str)))
	s.metrics.misses.Inc()
	s.metrics.entries.Inc()
	s.metrics.bytes.Add(float64(len(str)))
	if s.sink != nil {
		s.sink.Record(Event{Kind: EventInsert, ID: e.Packed(), String: str})
	}
	return e
}

// releaseLast performs the decrement that may bring refs to zero. It holds
// the shard write lock so no interner can pick the entry up in between the
// decrement and the removal.
func (s *Set) releaseLast(e *Entry) bool {
	sh := s.shardFor(e.hash)

	sh.mtx.Lock()
	n := e.refs.Dec()
	if n < 0 {
		sh.mtx.Unlock()
		panic("dynset: release of entry " + e.str + " with no references")
	}
	if n > 0 {
		sh.mtx.Unlock()
		return false
	}
	if cur, ok := sh.entries.Get(e.str); ok && cur == e {
		sh.entries.Delete(e.str)
	}
	sh.mtx.Unlock()

	s.live.Dec()
	s.bytes.Sub(int64(len(e.str)))
	s.metrics.removals.Inc()
	s.metrics.entries.Dec()
	s.metrics.bytes.Sub(float64(len(e.str)))
	if s.sink != nil {
		s.sink.Record(Event{Kind: EventRemove, ID: e.Packed(), String: e.str})
	}
	return true
}

// Lookup returns the live entry for str without taking a reference.
func (s *Set) Lookup(str string) (*Entry, bool) {
	sh := s.shardFor(hashString(str))
	sh.mtx.RLock()
	defer sh.mtx.RUnlock()
	return sh.entries.Get(str)
}

// Len returns the number of live entries.
func (s *Set) Len() int {
	return int(s.live.Load())
}

// Sink returns the installed event sink, or nil.
func (s *Set) Sink() EventSink {
	return s.sink
}

// Stats is a point in time summary of a Set.
type Stats struct {
	Entries         int   `json:"entries"`
	Bytes           int64 `json:"bytes"`
	Shards          int   `json:"shards"`
	MaxShardEntries int   `json:"max_shard_entries"`
}

func (s *Set) Stats() Stats {
	st := Stats{
		Entries: s.Len(),
		Bytes:   s.bytes.Load(),
		Shards:  len(s.shards),
	}
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mtx.RLock()
		if n := sh.entries.Count(); n > st.MaxShardEntries {
			st.MaxShardEntries = n
		}
		sh.mtx.RUnlock()
	}
	return st
}
