package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/grafana/stringcache/pkg/atomgen"
)

const appName = "atomgen"

type cli struct {
	Definition string   `help:"YAML definition of the atom set." type:"existingfile"`
	ExpandEnv  bool     `help:"Expand environment variables in the definition." name:"expand-env"`
	Package    string   `help:"Go package name, when no definition is given."`
	Type       string   `help:"Atom type name, when no definition is given."`
	Set        string   `help:"Name of the variable listing all atoms, when no definition is given."`
	Output     string   `short:"o" help:"File to write, stdout when empty." type:"path"`
	Atoms      []string `arg:"" optional:"" help:"Atoms to add to the set."`
}

func (c *cli) definition() (*atomgen.Definition, error) {
	def := &atomgen.Definition{}
	if c.Definition != "" {
		var err error
		def, err = atomgen.LoadDefinition(c.Definition, c.ExpandEnv)
		if err != nil {
			return nil, err
		}
	}

	if c.Package != "" {
		def.Package = c.Package
	}
	if c.Type != "" {
		def.Type = c.Type
	}
	if c.Set != "" {
		def.Set = c.Set
	}
	for _, a := range c.Atoms {
		def.Atoms = append(def.Atoms, atomgen.AtomDef{Value: a})
	}
	return def, nil
}

func (c *cli) Run() error {
	def, err := c.definition()
	if err != nil {
		return err
	}

	src, err := atomgen.Generate(def)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}

	// keep the file modification time when nothing changed
	if existing, err := os.ReadFile(c.Output); err == nil && bytes.Equal(existing, src) {
		return nil
	}
	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return errors.Wrap(err, "failed to write "+c.Output)
	}
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name(appName),
		kong.Description("Generate the static table of an atom type."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
