package main

import (
	"github.com/alecthomas/kong"
	"github.com/prometheus/common/version"
)

const appName = "atomctl"

type globalOptions struct {
	ConfigFile      string `name:"config.file" help:"Configuration file to load." type:"path"`
	ConfigExpandEnv bool   `name:"config.expand-env" help:"Expand environment variables in the configuration file."`
	Shards          int    `name:"dynamic.shards" help:"Number of shards of the dynamic atom set."`
	LogLevel        string `name:"log.level" help:"Only log messages with the given severity or above."`
	LogFormat       string `name:"log.format" help:"Output log messages in the given format (logfmt or json)."`
}

var cli struct {
	globalOptions `embed:""`

	Version kong.VersionFlag `help:"Print version information and exit."`

	Intern          internCmd          `cmd:"" help:"Intern words and write their lifecycle events."`
	SummarizeEvents summarizeEventsCmd `cmd:"" help:"Summarize an event log written by intern."`
	Stress          stressCmd          `cmd:"" help:"Intern and release words concurrently and check nothing leaks."`
	Inspect         inspectCmd         `cmd:"" help:"Print how words are encoded."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("Inspect and exercise the string cache."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": version.Print(appName)},
	)
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}
