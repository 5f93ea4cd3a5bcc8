package phf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	atoms := []string{"a", "b", "address", "area", "body", "font-weight", "❤", "❤💯"}
	set, err := Generate(atoms)
	require.NoError(t, err)

	// "" is always added
	assert.Equal(t, len(atoms)+1, set.Len())
	assert.True(t, set.Contains(""))

	seen := map[uint32]string{}
	for _, a := range append(atoms, "") {
		idx, ok := set.Lookup(a)
		require.True(t, ok, a)
		assert.Equal(t, a, set.Atoms[idx])
		assert.Equal(t, Hash(a, set.Key).Full, set.Hashes[idx])

		prev, dup := seen[idx]
		assert.False(t, dup, "%q and %q share slot %d", prev, a, idx)
		seen[idx] = a

		bidx, ok := set.LookupBytes([]byte(a))
		require.True(t, ok)
		assert.Equal(t, idx, bidx)
		assert.Equal(t, idx, set.Index(a))
		assert.Equal(t, idx, set.MustIndex(a))
	}
}

func TestLookupMiss(t *testing.T) {
	set := MustGenerate([]string{"html", "head", "body"})

	for _, s := range []string{"blockquote", "c", "HTML", "bod", "bodyy", "\x00"} {
		_, ok := set.Lookup(s)
		assert.False(t, ok, s)
		assert.False(t, set.Contains(s), s)
	}
	assert.Panics(t, func() { set.MustIndex("blockquote") })
}

func TestLookupEmptySet(t *testing.T) {
	var set Set
	_, ok := set.Lookup("")
	assert.False(t, ok)
}

func TestHashIsKeyed(t *testing.T) {
	a := Hash("body", 1)
	b := Hash("body", 2)
	assert.NotEqual(t, a.Full, b.Full)
	assert.Equal(t, a, Hash("body", 1))
	assert.Equal(t, a, HashBytes([]byte("body"), 1))
	assert.Equal(t, uint32(a.Full>>32), a.G)
}

func BenchmarkLookup(b *testing.B) {
	atoms := make([]string, 0, 512)
	for i := 0; i < 512; i++ {
		atoms = append(atoms, fmt.Sprintf("atom-%d", i))
	}
	set := MustGenerate(atoms)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = set.Lookup(atoms[i%len(atoms)])
	}
}
