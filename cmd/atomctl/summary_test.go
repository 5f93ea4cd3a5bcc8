package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/dynset"
	"github.com/grafana/stringcache/pkg/markup"
)

func writeEvents(events ...dynset.Event) *bytes.Buffer {
	var buf bytes.Buffer
	sink := dynset.NewLogfmtSink(&buf)
	for _, e := range events {
		sink.Record(e)
	}
	return &buf
}

func TestSummarizeEvents(t *testing.T) {
	const (
		cheese = uint64(1 << 2)
		other  = uint64(2 << 2)
	)
	buf := writeEvents(
		dynset.Event{Kind: dynset.EventInsert, ID: cheese, String: "camembert"},
		dynset.Event{Kind: dynset.EventIntern, ID: cheese, String: "camembert"},
		dynset.Event{Kind: dynset.EventIntern, ID: cheese, String: "camembert"},
		dynset.Event{Kind: dynset.EventInsert, ID: other, String: "roquefort"},
		dynset.Event{Kind: dynset.EventIntern, ID: other, String: "roquefort"},
		dynset.Event{Kind: dynset.EventRemove, ID: cheese, String: "camembert"},
		dynset.Event{Kind: dynset.EventIntern, ID: 0x6311, String: "c"},
		dynset.Event{Kind: dynset.EventIntern, ID: markup.LocalNameBody.Packed(), String: "body"},
		dynset.Event{Kind: dynset.EventIntern, ID: markup.LocalNameBody.Packed(), String: "body"},
	)

	sum, err := summarizeEvents(buf)
	require.NoError(t, err)

	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 2, sum.Inserts)
	assert.Equal(t, 1, sum.Removes)
	assert.Equal(t, 2, sum.PeakDynamic)
	assert.Equal(t, 1, sum.LiveDynamic)
	assert.Equal(t, map[atom.Kind]int{atom.KindDynamic: 3, atom.KindInline: 1, atom.KindStatic: 2}, sum.ByKind)
	assert.Equal(t, []atomSummary{
		{String: "body", Kind: atom.KindStatic, Times: 2},
		{String: "camembert", Kind: atom.KindDynamic, Times: 2},
		{String: "c", Kind: atom.KindInline, Times: 1},
		{String: "roquefort", Kind: atom.KindDynamic, Times: 1},
	}, sum.Atoms)

	var out bytes.Buffer
	sum.render(&out)
	for _, want := range []string{"camembert", "roquefort", "2 inserts, peak size 2", "TOTAL"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestSummarizeEventsNaturalOrder(t *testing.T) {
	// inline events carry their string in the id
	sum, err := summarizeEvents(writeEvents(
		dynset.Event{Kind: dynset.EventIntern, ID: packed(t, "item10")},
		dynset.Event{Kind: dynset.EventIntern, ID: packed(t, "item2")},
		dynset.Event{Kind: dynset.EventIntern, ID: packed(t, "item1")},
	))
	require.NoError(t, err)

	var got []string
	for _, a := range sum.Atoms {
		got = append(got, a.String)
	}
	assert.Equal(t, []string{"item1", "item2", "item10"}, got)
}

func packed(t *testing.T, s string) uint64 {
	t.Helper()
	a, err := atom.FromString[markup.LocalNameStaticSet](s)
	require.NoError(t, err)
	require.True(t, a.IsInline())
	return a.Packed()
}

func TestSummarizeEventsErrors(t *testing.T) {
	tests := map[string]string{
		"unknown event":       "event=evict id=0x4 string=x\n",
		"unknown dynamic id":  "event=intern id=0x0000000000000008 string=x\n",
		"remove of unknown":   "event=remove id=0x4 string=x\n",
		"insert of live":      "event=insert id=0x4 string=x\nevent=insert id=0x4 string=x\n",
		"invalid id":          "event=intern id=banana string=x\n",
		"insert without text": "event=insert id=0x4\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := summarizeEvents(strings.NewReader(in))
			require.Error(t, err)
		})
	}

	sum, err := summarizeEvents(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total)
}

func TestInternWords(t *testing.T) {
	counts, err := internWords(strings.NewReader("body head  c\nzz blockquote blockquote\n"), false)
	require.NoError(t, err)
	assert.Equal(t, map[atom.Kind]int{atom.KindStatic: 2, atom.KindInline: 2, atom.KindDynamic: 2}, counts)
	_, ok := dynset.Default().Lookup("blockquote")
	assert.False(t, ok)

	counts, err = internWords(strings.NewReader("held-dynamic-word held-dynamic-word"), true)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[atom.KindDynamic])
	_, ok = dynset.Default().Lookup("held-dynamic-word")
	assert.False(t, ok)

	_, err = internWords(strings.NewReader("ok \xff"), false)
	require.ErrorIs(t, err, atom.ErrInvalidEncoding)
}

func TestStress(t *testing.T) {
	words := stressWords(64)
	n, err := stress(context.Background(), 4, 2000, words, false)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), n)

	for _, w := range words {
		_, ok := dynset.Default().Lookup(w)
		assert.False(t, ok, w)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atomctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dynamic:\n  shards: ${SHARDS}\nlog_level: debug\n"), 0o600))
	t.Setenv("SHARDS", "32")

	cfg, err := loadConfig(&globalOptions{ConfigFile: path, ConfigExpandEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Dynamic.Shards)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logfmt", cfg.LogFormat)

	cfg, err = loadConfig(&globalOptions{ConfigFile: path, ConfigExpandEnv: true, Shards: 4, LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Dynamic.Shards)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, err = loadConfig(&globalOptions{})
	require.NoError(t, err)
	assert.Equal(t, dynset.DefaultConfig(), cfg.Dynamic)

	_, err = loadConfig(&globalOptions{Shards: -3, LogLevel: "loud", LogFormat: "xml"})
	require.Error(t, err)
	for _, want := range []string{"dynamic", "log_level", "log_format"} {
		assert.Contains(t, err.Error(), want)
	}

	_, err = loadConfig(&globalOptions{ConfigFile: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("failed to read configFile %s", filepath.Join(dir, "missing.yaml")))
}
