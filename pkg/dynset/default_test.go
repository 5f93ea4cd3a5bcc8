package dynset

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsSingleton(t *testing.T) {
	s := Default()
	require.NotNil(t, s)
	assert.Same(t, s, Default())
	assert.Equal(t, DefaultShards, s.Stats().Shards)

	err := Configure(Config{Shards: 4}, nil)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Same(t, s, Default())
}

func TestConfigFlags(t *testing.T) {
	var cfg Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlagsAndApplyDefaults("dynamic", fs)
	assert.Equal(t, DefaultShards, cfg.Shards)
	require.NoError(t, cfg.Validate())

	require.NoError(t, fs.Parse([]string{"-dynamic.shards=8"}))
	assert.Equal(t, 8, cfg.Shards)

	cfg.Shards = -1
	assert.Error(t, cfg.Validate())
	assert.Equal(t, DefaultConfig(), Config{Shards: DefaultShards})
}
