package phf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsReproducible(t *testing.T) {
	atoms := []string{"html", "head", "body", "div", "span", "a", "b", "id", "class"}
	reversed := make([]string, 0, len(atoms))
	for i := len(atoms) - 1; i >= 0; i-- {
		reversed = append(reversed, atoms[i])
	}

	first, err := Generate(atoms)
	require.NoError(t, err)
	second, err := Generate(reversed)
	require.NoError(t, err)
	withDups, err := Generate(append(append([]string{}, atoms...), "html", "", "body"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, withDups)
}

func TestGenerateOnlyEmpty(t *testing.T) {
	set, err := Generate(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{""}, set.Atoms)
	assert.Len(t, set.Disps, 1)
	idx, ok := set.Lookup("")
	assert.True(t, ok)
	assert.Equal(t, uint32(0), idx)
	assert.False(t, set.Contains("x"))
}

func TestGenerateLarge(t *testing.T) {
	atoms := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		atoms = append(atoms, fmt.Sprintf("w%d", i))
	}

	set, err := Generate(atoms)
	require.NoError(t, err)
	require.Equal(t, len(atoms)+1, set.Len())

	for _, a := range atoms {
		idx, ok := set.Lookup(a)
		require.True(t, ok, a)
		require.Equal(t, a, set.Atoms[idx])
	}
}

func TestGenerateInvalidUTF8(t *testing.T) {
	_, err := Generate([]string{"ok", "\xff\xfe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestNextKeyIsDeterministic(t *testing.T) {
	k1 := nextKey(0)
	k2 := nextKey(k1)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, nextKey(0))
}
