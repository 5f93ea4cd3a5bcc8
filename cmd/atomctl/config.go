package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/drone/envsubst"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/grafana/stringcache/pkg/dynset"
	"github.com/grafana/stringcache/pkg/util/log"
)

// config is the file configuration of atomctl. Flags given on the command
// line take precedence.
type config struct {
	Dynamic   dynset.Config `yaml:"dynamic"`
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
}

func (c *config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.Dynamic.RegisterFlagsAndApplyDefaults(prefix+"dynamic", f)
	c.LogLevel = "info"
	c.LogFormat = "logfmt"
}

func (c *config) Validate() error {
	var errs error
	if err := c.Dynamic.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("dynamic: %w", err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.LogFormat != "logfmt" && c.LogFormat != "json" {
		errs = multierr.Append(errs, fmt.Errorf("log_format must be logfmt or json, got %q", c.LogFormat))
	}
	return errs
}

// loadConfig applies defaults, overlays the config file and then the flags.
func loadConfig(opts *globalOptions) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlagsAndApplyDefaults("", fs)

	if opts.ConfigFile != "" {
		buff, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read configFile %s: %w", opts.ConfigFile, err)
		}

		if opts.ConfigExpandEnv {
			s, err := envsubst.EvalEnv(string(buff))
			if err != nil {
				return nil, fmt.Errorf("failed to expand env vars from configFile %s: %w", opts.ConfigFile, err)
			}
			buff = []byte(s)
		}

		if err := yaml.Unmarshal(buff, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configFile %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Shards != 0 {
		cfg.Dynamic.Shards = opts.Shards
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration, initialises the logger and creates the
// process atom set. sink may be nil.
func (opts *globalOptions) setup(sink dynset.EventSink) (*config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	lvl, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.InitLogger(cfg.LogFormat, lvl)

	setOpts := []dynset.Option{dynset.WithLogger(logger)}
	if sink != nil {
		setOpts = append(setOpts, dynset.WithEventSink(sink))
	}
	if err := dynset.Configure(cfg.Dynamic, prometheus.DefaultRegisterer, setOpts...); err != nil {
		return nil, err
	}

	level.Debug(logger).Log("msg", "configured", "shards", cfg.Dynamic.Shards)
	return cfg, nil
}
