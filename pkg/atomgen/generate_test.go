package atomgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition() *Definition {
	return &Definition{
		Package: "testatoms",
		Type:    "TestAtom",
		Set:     "TestAtoms",
		Atoms: []AtomDef{
			{Value: "a"},
			{Value: "address"},
			{Value: "font-weight"},
			{Name: "Heart", Value: "❤"},
		},
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	first, err := Generate(testDefinition())
	require.NoError(t, err)
	second, err := Generate(testDefinition())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// order of the definition does not matter
	def := testDefinition()
	for i, j := 0, len(def.Atoms)-1; i < j; i, j = i+1, j-1 {
		def.Atoms[i], def.Atoms[j] = def.Atoms[j], def.Atoms[i]
	}
	third, err := Generate(def)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestGenerateOutput(t *testing.T) {
	src, err := Generate(testDefinition())
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by atomgen. DO NOT EDIT.\n"))
	for _, want := range []string{
		"package testatoms",
		"type TestAtomStaticSet struct{}",
		"type TestAtom = atom.Atom[TestAtomStaticSet]",
		"var testAtomStaticTable = &phf.Set{",
		"func (TestAtomStaticSet) StaticTable() *phf.Set { return testAtomStaticTable }",
		"TestAtomEmpty",
		"TestAtomFontWeight",
		"TestAtomHeart",
		"var TestAtoms = []TestAtom{",
		`"❤"`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, testDefinition()))

	src, err := Generate(testDefinition())
	require.NoError(t, err)
	assert.Equal(t, src, buf.Bytes())
}

func TestAssignNames(t *testing.T) {
	tests := []struct {
		name    string
		atoms   []AtomDef
		want    map[string]string
		wantErr string
	}{
		{
			name:  "derived",
			atoms: []AtomDef{{Value: "font-weight"}, {Value: "h1"}, {Value: "xml:lang"}},
			want:  map[string]string{"": "Empty", "font-weight": "FontWeight", "h1": "H1", "xml:lang": "XmlLang"},
		},
		{
			name:  "explicit wins",
			atoms: []AtomDef{{Name: "XMLLang", Value: "xml:lang"}},
			want:  map[string]string{"": "Empty", "xml:lang": "XMLLang"},
		},
		{
			name:    "collision",
			atoms:   []AtomDef{{Value: "font-weight"}, {Value: "font_weight"}},
			wantErr: `atoms "font-weight" and "font_weight" both map to name FontWeight`,
		},
		{
			name:    "underivable",
			atoms:   []AtomDef{{Value: "❤"}},
			wantErr: `cannot derive a name for atom "❤"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			names, err := assignNames(&Definition{Atoms: tc.atoms})
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestValidate(t *testing.T) {
	def := &Definition{
		Package: "not a package",
		Type:    "lowercase",
		Set:     "Set",
		Atoms:   []AtomDef{{Value: "\xff"}},
	}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")
	assert.Contains(t, err.Error(), "exported")
	assert.Contains(t, err.Error(), "UTF-8")

	require.NoError(t, testDefinition().Validate())
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atoms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: ${ATOM_PACKAGE}
type: TestAtom
set: TestAtoms
atoms:
  - a
  - font-weight
  - {name: Heart, value: "❤"}
`), 0o600))
	t.Setenv("ATOM_PACKAGE", "testatoms")

	def, err := LoadDefinition(path, true)
	require.NoError(t, err)
	assert.Equal(t, "testatoms", def.Package)
	assert.Equal(t, []AtomDef{
		{Value: "a"},
		{Value: "font-weight"},
		{Name: "Heart", Value: "❤"},
	}, def.Atoms)

	def, err = LoadDefinition(path, false)
	require.NoError(t, err)
	assert.Equal(t, "${ATOM_PACKAGE}", def.Package)

	_, err = LoadDefinition(filepath.Join(dir, "missing.yaml"), false)
	require.Error(t, err)
}

func TestDeriveName(t *testing.T) {
	assert.Equal(t, "FontWeight", deriveName("font-weight"))
	assert.Equal(t, "Br", deriveName("br"))
	assert.Equal(t, "HttpWwwW3Org1999Xhtml", deriveName("http://www.w3.org/1999/xhtml"))
	assert.Equal(t, "", deriveName("❤💯"))
}
