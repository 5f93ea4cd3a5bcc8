package dynset

import (
	"errors"
	"sync"

	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrAlreadyInitialized is returned by Configure once the process set exists.
var ErrAlreadyInitialized = errors.New("dynset: default set already initialized")

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process wide set used by atoms. It is created on
// first use with DefaultConfig and lives until the process exits.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := New(DefaultConfig(), prometheus.DefaultRegisterer)
		if err != nil {
			panic(err)
		}
		defaultSet = s
	})
	return defaultSet
}

// Configure creates the process wide set with cfg. It must run before any
// dynamic atom is created.
func Configure(cfg Config, reg prometheus.Registerer, opts ...Option) error {
	var (
		configured bool
		err        error
	)
	defaultOnce.Do(func() {
		configured = true
		var s *Set
		s, err = New(cfg, reg, opts...)
		if err != nil {
			// keep the process usable with the defaults
			s, _ = New(DefaultConfig(), reg, opts...)
		}
		defaultSet = s
	})
	if !configured {
		level.Debug(defaultSet.logger).Log("msg", "ignoring configuration, default atom set already initialized")
		return ErrAlreadyInitialized
	}
	return err
}
