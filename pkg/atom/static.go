package atom

import (
	"github.com/grafana/stringcache/pkg/phf"
)

// StaticSet binds an atom type to a table of strings known at build time.
// Implementations are zero size marker types, usually generated by atomgen.
type StaticSet interface {
	// StaticTable returns the table. It must always return the same table.
	StaticTable() *phf.Set
	// EmptyStringIndex returns the index of "" in the table.
	EmptyStringIndex() uint32
}

var emptyTable = phf.MustGenerate(nil)

// EmptyStaticSet holds only the empty string. Atoms bound to it are either
// inline or dynamic.
type EmptyStaticSet struct{}

func (EmptyStaticSet) StaticTable() *phf.Set    { return emptyTable }
func (EmptyStaticSet) EmptyStringIndex() uint32 { return 0 }

// DefaultAtom is an atom without a static vocabulary.
type DefaultAtom = Atom[EmptyStaticSet]

func staticTable[S StaticSet]() *phf.Set {
	var set S
	return set.StaticTable()
}
