package dynset

import (
	"flag"
	"fmt"
)

const (
	DefaultShards = 256
	maxShards     = 1 << 16
)

// Config is the configuration of a dynamic atom set.
type Config struct {
	// Shards is the number of independently locked partitions.
	Shards int `yaml:"shards"`
}

// DefaultConfig returns the configuration used by Default.
func DefaultConfig() Config {
	return Config{Shards: DefaultShards}
}

func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.Shards, prefixConfig(prefix, "shards"), DefaultShards, "Number of shards of the dynamic atom set.")
}

func (cfg *Config) Validate() error {
	if cfg.Shards < 1 || cfg.Shards > maxShards {
		return fmt.Errorf("shards must be between 1 and %d, got %d", maxShards, cfg.Shards)
	}
	return nil
}

func prefixConfig(prefix, option string) string {
	if len(prefix) > 0 {
		return prefix + "." + option
	}
	return option
}
