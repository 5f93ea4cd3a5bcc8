package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-kit/log/level"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/dynset"
	"github.com/grafana/stringcache/pkg/markup"
	"github.com/grafana/stringcache/pkg/util/log"
)

type stressCmd struct {
	Workers    int           `help:"Number of concurrent workers." default:"8"`
	Iterations int           `help:"Words interned per worker." default:"100000"`
	Words      int           `help:"Number of distinct dynamic words." default:"1024"`
	Duration   time.Duration `help:"Run for this long instead of a fixed number of iterations."`
	JSON       bool          `help:"Print the final stats as JSON."`
}

type stressResult struct {
	Workers  int          `json:"workers"`
	Interns  int64        `json:"interns"`
	Elapsed  string       `json:"elapsed"`
	Dynamic  dynset.Stats `json:"dynamic"`
	Leftover int          `json:"leftover"`
}

func (cmd *stressCmd) Run(opts *globalOptions) error {
	if _, err := opts.setup(nil); err != nil {
		return err
	}

	ctx := context.Background()
	if cmd.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Duration)
		defer cancel()
	}

	start := time.Now()
	interns, err := stress(ctx, cmd.Workers, cmd.Iterations, stressWords(cmd.Words), cmd.Duration > 0)
	if err != nil {
		return err
	}

	res := stressResult{
		Workers: cmd.Workers,
		Interns: interns,
		Elapsed: time.Since(start).Round(time.Millisecond).String(),
		Dynamic: dynset.Default().Stats(),
	}
	res.Leftover = res.Dynamic.Entries

	if cmd.JSON {
		s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(res)
		if err != nil {
			return err
		}
		fmt.Println(s)
	} else {
		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"workers", "interns", "elapsed", "shards", "max shard", "leftover"})
		w.AppendRow(table.Row{res.Workers, res.Interns, res.Elapsed, res.Dynamic.Shards, res.Dynamic.MaxShardEntries, res.Leftover})
		w.Render()
	}

	if res.Leftover != 0 {
		level.Error(log.Logger).Log("msg", "dynamic entries leaked", "entries", res.Leftover)
		return fmt.Errorf("%d dynamic entries still live after stress", res.Leftover)
	}
	return nil
}

// stressWords mixes dynamic words with static and inline ones.
func stressWords(n int) []string {
	words := []string{"html", "body", "div", "a", "c", "zz", "blah", "xyzzy01"}
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("stress-word-%06d", i))
	}
	return words
}

// stress runs workers interning words until iterations are done, or until
// ctx ends when untilDone is set. Every atom is checked and released
// before the worker moves on.
func stress(ctx context.Context, workers, iterations int, words []string, untilDone bool) (int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make([]int64, workers)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; untilDone || i < iterations; i++ {
				if i%1024 == 0 && ctx.Err() != nil {
					if untilDone {
						return nil
					}
					return ctx.Err()
				}

				word := words[(i*31+w*17)%len(words)]
				a, err := atom.FromString[markup.LocalNameStaticSet](word)
				if err != nil {
					return err
				}
				b := a.Clone()
				if b.String() != word || !a.Equal(b) {
					return fmt.Errorf("worker %d: interned %q but got %q", w, word, b.String())
				}
				a.Release()
				b.Release()
				counts[w]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}
