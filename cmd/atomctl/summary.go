package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/facette/natsort"
	"github.com/go-logfmt/logfmt"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/dynset"
)

type atomSummary struct {
	String string
	Kind   atom.Kind
	Times  int
}

type eventSummary struct {
	Atoms       []atomSummary
	ByKind      map[atom.Kind]int
	Total       int
	Inserts     int
	Removes     int
	PeakDynamic int
	LiveDynamic int
}

type event struct {
	kind      dynset.EventKind
	id        uint64
	str       string
	hasString bool
}

// summarizeEvents reads a logfmt event log. Dynamic entries are tracked by
// id between their insert and remove events, intern events are counted per
// string.
func summarizeEvents(r io.Reader) (*eventSummary, error) {
	var (
		dynamic = map[uint64]string{}
		byAtom  = map[string]*atomSummary{}
		sum     = &eventSummary{ByKind: map[atom.Kind]int{}}
		line    = 0
	)

	d := logfmt.NewDecoder(r)
	for d.ScanRecord() {
		line++
		var (
			ev     event
			fields int
		)
		for d.ScanKeyval() {
			fields++
			switch string(d.Key()) {
			case "event":
				ev.kind = dynset.EventKind(d.Value())
			case "id":
				id, err := strconv.ParseUint(string(d.Value()), 0, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid id: %w", line, err)
				}
				ev.id = id
			case "string":
				ev.str = string(d.Value())
				ev.hasString = true
			}
		}
		if d.Err() != nil {
			break
		}
		if fields == 0 {
			continue
		}

		switch ev.kind {
		case dynset.EventIntern:
			kind := atom.KindOf(ev.id)
			str := ev.str
			switch kind {
			case atom.KindDynamic:
				live, ok := dynamic[ev.id]
				if !ok {
					return nil, fmt.Errorf("line %d: intern of unknown dynamic id 0x%016x", line, ev.id)
				}
				str = live
			case atom.KindInline:
				str, _ = atom.DecodeInline(ev.id)
			case atom.KindStatic:
				if !ev.hasString {
					return nil, fmt.Errorf("line %d: static intern without a string", line)
				}
			default:
				return nil, fmt.Errorf("line %d: invalid id 0x%016x", line, ev.id)
			}

			s, ok := byAtom[str]
			if !ok {
				s = &atomSummary{String: str, Kind: kind}
				byAtom[str] = s
			}
			s.Times++
			sum.ByKind[kind]++
			sum.Total++

		case dynset.EventInsert:
			if _, ok := dynamic[ev.id]; ok {
				return nil, fmt.Errorf("line %d: insert of live id 0x%016x", line, ev.id)
			}
			if !ev.hasString {
				return nil, fmt.Errorf("line %d: insert without a string", line)
			}
			dynamic[ev.id] = ev.str
			sum.Inserts++
			if len(dynamic) > sum.PeakDynamic {
				sum.PeakDynamic = len(dynamic)
			}

		case dynset.EventRemove:
			if _, ok := dynamic[ev.id]; !ok {
				return nil, fmt.Errorf("line %d: remove of unknown id 0x%016x", line, ev.id)
			}
			delete(dynamic, ev.id)
			sum.Removes++

		default:
			return nil, fmt.Errorf("line %d: unknown event %q", line, ev.kind)
		}
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	sum.LiveDynamic = len(dynamic)
	for _, s := range byAtom {
		sum.Atoms = append(sum.Atoms, *s)
	}
	sort.Slice(sum.Atoms, func(i, j int) bool {
		a, b := sum.Atoms[i], sum.Atoms[j]
		if a.Times != b.Times {
			return a.Times > b.Times
		}
		return natsort.Compare(a.String, b.String)
	})
	return sum, nil
}

func (s *eventSummary) render(w io.Writer) {
	kinds := table.NewWriter()
	kinds.SetOutputMirror(w)
	kinds.AppendHeader(table.Row{"kind", "times", "pct", ""})
	for _, k := range []atom.Kind{atom.KindDynamic, atom.KindInline, atom.KindStatic} {
		n := s.ByKind[k]
		note := ""
		if k == atom.KindDynamic {
			note = fmt.Sprintf("%s inserts, peak size %s, miss rate %s",
				humanize.Comma(int64(s.Inserts)), humanize.Comma(int64(s.PeakDynamic)), percent(s.Inserts, n))
		}
		kinds.AppendRow(table.Row{k.String(), humanize.Comma(int64(n)), percent(n, s.Total), note})
	}
	kinds.AppendFooter(table.Row{"total", humanize.Comma(int64(s.Total)), "", ""})
	kinds.Render()

	atoms := table.NewWriter()
	atoms.SetOutputMirror(w)
	atoms.AppendHeader(table.Row{"atom", "times", "kind"})
	for _, a := range s.Atoms {
		atoms.AppendRow(table.Row{a.String, a.Times, a.Kind.String()})
	}
	atoms.Render()
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%4.1f%%", 100*float64(n)/float64(total))
}
