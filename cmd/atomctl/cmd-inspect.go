package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/dynset"
	"github.com/grafana/stringcache/pkg/markup"
)

type inspectCmd struct {
	Words []string `arg:"" help:"Words to inspect."`
}

func (cmd *inspectCmd) Run(opts *globalOptions) error {
	if _, err := opts.setup(nil); err != nil {
		return err
	}

	atoms := make([]markup.LocalName, 0, len(cmd.Words))
	defer func() {
		for i := range atoms {
			atoms[i].Release()
		}
	}()

	for _, word := range cmd.Words {
		a, err := atom.FromString[markup.LocalNameStaticSet](word)
		if err != nil {
			return fmt.Errorf("%q: %w", word, err)
		}
		atoms = append(atoms, a)
	}

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.AppendHeader(table.Row{"atom", "kind", "packed", "hash", "len", "refs"})
	for _, a := range atoms {
		w.AppendRow(table.Row{
			a.GoString(),
			a.Kind().String(),
			fmt.Sprintf("0x%016x", a.Packed()),
			fmt.Sprintf("0x%016x", a.Hash()),
			a.Len(),
			a.RefCount(),
		})
	}
	w.AppendFooter(table.Row{"dynamic entries", dynset.Default().Len()})
	w.Render()
	return nil
}
