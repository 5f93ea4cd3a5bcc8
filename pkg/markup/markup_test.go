package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/atomgen"
	"github.com/grafana/stringcache/pkg/phf"
)

// TestGeneratedTablesUpToDate fails when a definition changed without
// running go generate.
func TestGeneratedTablesUpToDate(t *testing.T) {
	for path, table := range map[string]*phf.Set{
		"local_names.yaml": LocalNameStaticSet{}.StaticTable(),
		"namespaces.yaml":  NamespaceStaticSet{}.StaticTable(),
	} {
		t.Run(path, func(t *testing.T) {
			def, err := atomgen.LoadDefinition(path, false)
			require.NoError(t, err)

			values := make([]string, 0, len(def.Atoms))
			for _, a := range def.Atoms {
				values = append(values, a.Value)
			}
			want, err := phf.Generate(values)
			require.NoError(t, err)
			assert.Equal(t, want, table)
		})
	}
}

func TestLocalNames(t *testing.T) {
	table := LocalNameStaticSet{}.StaticTable()
	require.Len(t, LocalNames, table.Len())

	for i, a := range LocalNames {
		assert.True(t, a.IsStatic())
		assert.Equal(t, table.Atoms[i], a.String())

		got, err := atom.FromString[LocalNameStaticSet](a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	assert.Equal(t, "", LocalNameEmpty.String())
	assert.Equal(t, "font-weight", LocalNameFontWeight.String())
	assert.Equal(t, "❤💯❤💯", LocalNameHeartHundredHeartHundred.String())
	assert.Equal(t, table.MustIndex(""), LocalNameStaticSet{}.EmptyStringIndex())

	for _, s := range []string{"blockquote", "c", "e", "hello"} {
		assert.False(t, table.Contains(s), s)
	}
}

func TestNamespaces(t *testing.T) {
	assert.Len(t, Namespaces, 7)
	for ns, uri := range map[Namespace]string{
		NamespaceEmpty:  "",
		NamespaceHTML:   "http://www.w3.org/1999/xhtml",
		NamespaceXML:    "http://www.w3.org/XML/1998/namespace",
		NamespaceXMLNS:  "http://www.w3.org/2000/xmlns/",
		NamespaceXLink:  "http://www.w3.org/1999/xlink",
		NamespaceSVG:    "http://www.w3.org/2000/svg",
		NamespaceMathML: "http://www.w3.org/1998/Math/MathML",
	} {
		got, err := atom.FromString[NamespaceStaticSet](uri)
		require.NoError(t, err)
		assert.Equal(t, ns, got, uri)
	}
}

func TestQualName(t *testing.T) {
	empty := atom.Empty[LocalNameStaticSet]()
	assert.Equal(t, NewQualName(NamespaceEmpty, LocalNameEmpty), QualName{NS: NamespaceEmpty, Local: empty})

	base, err := atom.FromString[LocalNameStaticSet]("base")
	require.NoError(t, err)
	q := NewQualName(NamespaceXML, base)
	assert.True(t, q.Equal(QualName{NS: NamespaceXML, Local: LocalNameBase}))
	assert.Equal(t, "{http://www.w3.org/XML/1998/namespace}base", q.String())
	assert.Equal(t, "div", NewQualName(NamespaceEmpty, LocalNameDiv).String())

	parsed, err := ParseQualName(q.String())
	require.NoError(t, err)
	assert.Equal(t, q, parsed)

	dyn, err := ParseQualName("{urn:example}custom-element")
	require.NoError(t, err)
	assert.True(t, dyn.NS.IsDynamic())
	assert.True(t, dyn.Local.IsDynamic())
	c := dyn.Clone()
	assert.Equal(t, int64(2), dyn.Local.RefCount())
	c.Release()
	dyn.Release()
	assert.False(t, dyn.NS.IsValid())

	_, err = ParseQualName("{urn:x}\xff")
	require.ErrorIs(t, err, atom.ErrInvalidEncoding)
}
