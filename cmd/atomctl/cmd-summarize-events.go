package main

import (
	"os"

	"github.com/pkg/errors"
)

type summarizeEventsCmd struct {
	File string `arg:"" type:"existingfile" help:"Event log to summarize."`
}

func (cmd *summarizeEventsCmd) Run(_ *globalOptions) error {
	f, err := os.Open(cmd.File)
	if err != nil {
		return errors.Wrap(err, "failed to open event log")
	}
	defer f.Close()

	sum, err := summarizeEvents(f)
	if err != nil {
		return errors.Wrap(err, "failed to summarize "+cmd.File)
	}

	sum.render(os.Stdout)
	return nil
}
