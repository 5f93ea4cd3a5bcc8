package dynset

import (
	"fmt"
	"io"
	"sync"

	kitlog "github.com/go-kit/log"
)

// EventKind is the type of a lifecycle event.
type EventKind string

const (
	// EventIntern is recorded for every atom construction, whatever its kind.
	EventIntern EventKind = "intern"
	// EventInsert is recorded when a new entry is added to the set.
	EventInsert EventKind = "insert"
	// EventRemove is recorded when an entry is removed after its last release.
	EventRemove EventKind = "remove"
)

// Event describes one lifecycle step. ID holds the packed atom handle.
type Event struct {
	Kind   EventKind
	ID     uint64
	String string
}

// EventSink receives events. Implementations must be safe for concurrent use.
type EventSink interface {
	Record(Event)
}

// MemorySink keeps events in memory, mostly for tests.
type MemorySink struct {
	mtx    sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Record(e Event) {
	m.mtx.Lock()
	m.events = append(m.events, e)
	m.mtx.Unlock()
}

// Events returns a copy of everything recorded so far.
func (m *MemorySink) Events() []Event {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Reset drops all recorded events.
func (m *MemorySink) Reset() {
	m.mtx.Lock()
	m.events = nil
	m.mtx.Unlock()
}

// LogfmtSink writes one logfmt line per event:
//
//	event=insert id=0x0000000000000004 string=camembert
type LogfmtSink struct {
	logger kitlog.Logger
}

func NewLogfmtSink(w io.Writer) *LogfmtSink {
	return &LogfmtSink{logger: kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))}
}

func (l *LogfmtSink) Record(e Event) {
	_ = l.logger.Log("event", string(e.Kind), "id", fmt.Sprintf("0x%016x", e.ID), "string", e.String)
}
