package atom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, so atoms encode as JSON
// strings and can be used as JSON map keys.
func (a Atom[S]) MarshalText() ([]byte, error) {
	return a.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any atom previously
// held by a is released.
func (a *Atom[S]) UnmarshalText(text []byte) error {
	v, err := FromBytes[S](text)
	if err != nil {
		return err
	}
	a.Release()
	*a = v
	return nil
}

func (a Atom[S]) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Atom[S]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: atom must be a scalar", node.Line)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := FromString[S](s)
	if err != nil {
		return err
	}
	a.Release()
	*a = v
	return nil
}
