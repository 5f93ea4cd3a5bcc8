// Package markup holds the static vocabularies of an HTML/XML consumer:
// element and attribute names as LocalName atoms and namespace URIs as
// Namespace atoms.
package markup

import (
	"github.com/grafana/stringcache/pkg/atom"
)

//go:generate go run ../../cmd/atomgen --definition local_names.yaml --output local_names_gen.go
//go:generate go run ../../cmd/atomgen --definition namespaces.yaml --output namespaces_gen.go

// QualName is a local name qualified by its namespace.
type QualName struct {
	NS    Namespace
	Local LocalName
}

func NewQualName(ns Namespace, local LocalName) QualName {
	return QualName{NS: ns, Local: local}
}

// ParseQualName splits the {ns}local notation produced by String. A name
// without braces has the empty namespace.
func ParseQualName(s string) (QualName, error) {
	ns, local := "", s
	if len(s) > 0 && s[0] == '{' {
		for i := 1; i < len(s); i++ {
			if s[i] == '}' {
				ns, local = s[1:i], s[i+1:]
				break
			}
		}
	}

	n, err := atom.FromString[NamespaceStaticSet](ns)
	if err != nil {
		return QualName{}, err
	}
	l, err := atom.FromString[LocalNameStaticSet](local)
	if err != nil {
		n.Release()
		return QualName{}, err
	}
	return QualName{NS: n, Local: l}, nil
}

func (q QualName) Equal(o QualName) bool {
	return q.NS == o.NS && q.Local == o.Local
}

// Clone returns a copy holding its own references.
func (q QualName) Clone() QualName {
	return QualName{NS: q.NS.Clone(), Local: q.Local.Clone()}
}

func (q *QualName) Release() {
	q.NS.Release()
	q.Local.Release()
}

// String renders the name as {ns}local, or just local without a namespace.
func (q QualName) String() string {
	if q.NS.IsEmpty() {
		return q.Local.String()
	}
	return "{" + q.NS.String() + "}" + q.Local.String()
}
