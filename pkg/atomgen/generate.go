package atomgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"go.uber.org/multierr"

	"github.com/grafana/stringcache/pkg/phf"
)

const emptyName = "Empty"

type constant struct {
	Ident string
	Index int
	Value string
}

type templateData struct {
	Package    string
	Type       string
	Set        string
	TableVar   string
	EmptyIndex int
	Table      *phf.Set
	Consts     []constant
}

var tmpl = template.Must(template.New("atoms").Funcs(template.FuncMap{
	"hex": func(v uint64) string { return fmt.Sprintf("0x%016x", v) },
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(`// Code generated by atomgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/grafana/stringcache/pkg/atom"
	"github.com/grafana/stringcache/pkg/phf"
)

// {{.Type}}StaticSet is the static table {{.Type}} atoms are checked against.
type {{.Type}}StaticSet struct{}

// {{.Type}} is an interned string backed by {{.Type}}StaticSet.
type {{.Type}} = atom.Atom[{{.Type}}StaticSet]

var {{.TableVar}} = &phf.Set{
	Key: {{hex .Table.Key}},
	Disps: []phf.Disp{
{{- range .Table.Disps}}
		{D1: {{.D1}}, D2: {{.D2}}},
{{- end}}
	},
	Atoms: []string{
{{- range .Table.Atoms}}
		{{quote .}},
{{- end}}
	},
	Hashes: []uint64{
{{- range .Table.Hashes}}
		{{hex .}},
{{- end}}
	},
}

// StaticTable implements atom.StaticSet.
func ({{.Type}}StaticSet) StaticTable() *phf.Set { return {{.TableVar}} }

// EmptyStringIndex implements atom.StaticSet.
func ({{.Type}}StaticSet) EmptyStringIndex() uint32 { return {{.EmptyIndex}} }

// Static {{.Type}} atoms.
var (
{{- range .Consts}}
	{{.Ident}} = atom.PackStatic[{{$.Type}}StaticSet]({{.Index}}) // {{quote .Value}}
{{- end}}
)

// {{.Set}} lists every static {{.Type}} in table order.
var {{.Set}} = []{{.Type}}{
{{- range .Consts}}
	{{.Ident}},
{{- end}}
}
`))

// Generate renders the Go source for def.
func Generate(def *Definition) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	names, err := assignNames(def)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(def.Atoms))
	for _, a := range def.Atoms {
		values = append(values, a.Value)
	}
	table, err := phf.Generate(values)
	if err != nil {
		return nil, err
	}

	data := templateData{
		Package:  def.Package,
		Type:     def.Type,
		Set:      def.Set,
		TableVar: lowerFirst(def.Type) + "StaticTable",
		Table:    table,
	}
	for i, v := range table.Atoms {
		if v == "" {
			data.EmptyIndex = i
		}
		data.Consts = append(data.Consts, constant{
			Ident: def.Type + names[v],
			Index: i,
			Value: v,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// WriteTo renders def into w.
func WriteTo(w io.Writer, def *Definition) error {
	src, err := Generate(def)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// assignNames maps every value, including the implicit empty string, to the
// suffix of its generated variable.
func assignNames(def *Definition) (map[string]string, error) {
	names := map[string]string{"": emptyName}
	explicit := map[string]bool{}
	for _, a := range def.Atoms {
		if a.Name != "" {
			names[a.Value] = a.Name
			explicit[a.Value] = true
		}
	}

	var errs error
	for _, a := range def.Atoms {
		if explicit[a.Value] || a.Value == "" {
			continue
		}
		n := deriveName(a.Value)
		if n == "" {
			errs = multierr.Append(errs, fmt.Errorf("cannot derive a name for atom %q, set one explicitly", a.Value))
			continue
		}
		names[a.Value] = n
	}

	owners := map[string]string{}
	for v, n := range names {
		if prev, ok := owners[n]; ok {
			first, second := prev, v
			if second < first {
				first, second = second, first
			}
			errs = multierr.Append(errs, fmt.Errorf("atoms %q and %q both map to name %s", first, second, n))
			continue
		}
		owners[n] = v
	}
	if errs != nil {
		return nil, errs
	}
	return names, nil
}

// deriveName turns "font-weight" into "FontWeight". Only ASCII letters and
// digits are kept; anything else separates words.
func deriveName(v string) string {
	var sb strings.Builder
	upper := true
	for i := 0; i < len(v); i++ {
		c := v[i]
		isAlnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !isAlnum {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(c)
	}
	return sb.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
