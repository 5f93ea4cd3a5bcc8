package main

import (
	"bufio"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/dynset"
	"github.com/grafana/stringcache/pkg/markup"
)

type internCmd struct {
	Input  string `arg:"" optional:"" type:"existingfile" help:"File of whitespace separated words, stdin when empty."`
	Events string `help:"File to append events to, stdout when empty." type:"path"`
	Keep   bool   `help:"Hold every atom until the end instead of releasing it right away."`
}

func (cmd *internCmd) Run(opts *globalOptions) error {
	in := io.Reader(os.Stdin)
	if cmd.Input != "" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		in = f
	}

	events, report := io.Writer(os.Stdout), io.Writer(os.Stderr)
	if cmd.Events != "" {
		f, err := os.OpenFile(cmd.Events, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrap(err, "failed to open event log")
		}
		defer f.Close()
		events, report = f, os.Stdout
	}

	if _, err := opts.setup(dynset.NewLogfmtSink(events)); err != nil {
		return err
	}

	counts, err := internWords(in, cmd.Keep)
	if err != nil {
		return err
	}

	w := table.NewWriter()
	w.SetOutputMirror(report)
	w.AppendHeader(table.Row{"kind", "atoms"})
	total := 0
	for _, k := range []atom.Kind{atom.KindStatic, atom.KindInline, atom.KindDynamic} {
		w.AppendRow(table.Row{k.String(), humanize.Comma(int64(counts[k]))})
		total += counts[k]
	}
	w.AppendFooter(table.Row{"total", humanize.Comma(int64(total))})
	w.Render()
	return nil
}

// internWords interns every word read from r as a LocalName and counts the
// results by kind.
func internWords(r io.Reader, keep bool) (map[atom.Kind]int, error) {
	counts := map[atom.Kind]int{}
	var held []markup.LocalName
	defer func() {
		for i := range held {
			held[i].Release()
		}
	}()

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		a, err := atom.FromBytes[markup.LocalNameStaticSet](scanner.Bytes())
		if err != nil {
			return nil, err
		}
		counts[a.Kind()]++
		if keep {
			held = append(held, a)
			continue
		}
		a.Release()
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read words")
	}
	return counts, nil
}
