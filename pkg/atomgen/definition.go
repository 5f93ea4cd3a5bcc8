// Package atomgen generates Go source for static atom sets.
//
// A definition names the Go package, the atom type and the list variable,
// and lists the strings known at build time. The output declares the
// perfect hash table, a marker type implementing atom.StaticSet, and one
// variable per string bound to its static encoding.
package atomgen

import (
	"fmt"
	"go/token"
	"os"
	"unicode/utf8"

	"github.com/drone/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Definition describes one static atom set.
type Definition struct {
	// Package is the Go package the output belongs to.
	Package string `yaml:"package"`
	// Type is the atom type name, e.g. LocalName.
	Type string `yaml:"type"`
	// Set is the name of the variable listing every generated atom.
	Set   string    `yaml:"set"`
	Atoms []AtomDef `yaml:"atoms"`
}

// AtomDef is one static string. Name is the suffix of the generated
// variable and is derived from Value when empty.
type AtomDef struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// UnmarshalYAML accepts either a bare string or a {name, value} mapping.
func (a *AtomDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Name = ""
		a.Value = node.Value
		return nil
	}

	type plain AtomDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = AtomDef(p)
	return nil
}

// LoadDefinition reads a YAML definition, optionally expanding environment
// variables first.
func LoadDefinition(path string, expandEnv bool) (*Definition, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read definition %s", path)
	}

	if expandEnv {
		s, err := envsubst.EvalEnv(string(buff))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to expand env vars in definition %s", path)
		}
		buff = []byte(s)
	}

	def := &Definition{}
	if err := yaml.Unmarshal(buff, def); err != nil {
		return nil, errors.Wrapf(err, "failed to parse definition %s", path)
	}
	return def, nil
}

// Validate checks the definition is usable. All problems are reported at once.
func (d *Definition) Validate() error {
	var errs error
	if !token.IsIdentifier(d.Package) {
		errs = multierr.Append(errs, fmt.Errorf("package %q is not a valid Go identifier", d.Package))
	}
	if !token.IsIdentifier(d.Type) || !token.IsExported(d.Type) {
		errs = multierr.Append(errs, fmt.Errorf("type %q must be an exported Go identifier", d.Type))
	}
	if !token.IsIdentifier(d.Set) {
		errs = multierr.Append(errs, fmt.Errorf("set %q is not a valid Go identifier", d.Set))
	}
	for _, a := range d.Atoms {
		if !utf8.ValidString(a.Value) {
			errs = multierr.Append(errs, fmt.Errorf("atom %q is not valid UTF-8", a.Value))
		}
		if a.Name != "" && !token.IsIdentifier(d.Type+a.Name) {
			errs = multierr.Append(errs, fmt.Errorf("atom name %q does not form a Go identifier", a.Name))
		}
	}
	return errs
}
