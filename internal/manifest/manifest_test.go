package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/codewriter/ir"
)

const addressYAML = `
name: address
documentation: Postal addresses.
properties:
  - name: allow
    identifiers: [dead_code]
content:
  - import:
      namespace: std::io
      items: [Write, {name: Error, alias: IoError}]
  - comment: hello world!
  - struct:
      name: Address
      visibility: package
      properties:
        - name: derive
          identifiers: [Clone, Debug]
      fields:
        - {name: line_one, type: string}
        - {name: line_two, type: string, optional: true}
        - {name: zip, type: u32, default: 10001}
  - enum:
      name: AddressType
      variants:
        - name: Commercial
        - {name: Home, value: 2}
  - const: {name: LIMIT, type: i32, value: 3}
  - var: {name: ratio, value: 0.5}
  - function:
      name: lookup
      parameters:
        - {name: key, type: string}
      returns: "Option<Address>"
  - alias: {name: AddrType, type: AddressType}
  - module:
      name: detail
      inline: true
      content:
        - block_comment: Helpers.
`

const addressJSON = `{
  "name": "address",
  "content": [
    {"import": {"namespace": "std::io", "items": ["Write", {"name": "Error", "alias": "IoError"}]}},
    {"const": {"name": "LIMIT", "type": "i32", "value": 3}},
    {"var": {"name": "ratio", "value": 0.5}},
    {"const": {"name": "sizes", "type": "map<string, u8>", "value": {"b": 2, "a": 1}}}
  ]
}`

func TestParseYAML(t *testing.T) {
	m, err := Parse([]byte(addressYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name().String() != "address" {
		t.Errorf("name = %s", m.Name())
	}
	if m.Documentation() != "Postal addresses." {
		t.Errorf("documentation = %q", m.Documentation())
	}
	if len(m.Properties()) != 1 {
		t.Errorf("properties = %d, want 1", len(m.Properties()))
	}

	var kinds []string
	for _, item := range m.Content() {
		kinds = append(kinds, item.ElementKind().String())
	}
	want := "import comment record enumeration constant variable function_decl type_alias module"
	if got := strings.Join(kinds, " "); got != want {
		t.Fatalf("kinds = %q, want %q", got, want)
	}

	imp := m.Content()[0].(ir.Import)
	if imp.Namespace().Join("::") != "std::io" {
		t.Errorf("import namespace = %s", imp.Namespace())
	}
	items := imp.Items()
	if len(items) != 2 {
		t.Fatalf("import items = %d, want 2", len(items))
	}
	if _, ok := items[0].Alias(); ok {
		t.Error("Write should not have an alias")
	}
	if alias, ok := items[1].Alias(); !ok || alias.String() != "IoError" {
		t.Errorf("alias = %v, %v", alias, ok)
	}

	st := m.Content()[2].(ir.StructuredType)
	if st.Kind() != ir.KindStructure || st.Visibility() != ir.VisibilityPackage {
		t.Errorf("struct kind %s visibility %s", st.Kind(), st.Visibility())
	}
	fields := st.Fields()
	if len(fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(fields))
	}
	if !fields[1].IsOptional() {
		t.Error("line_two should be optional")
	}
	if v, ok := fields[2].Default(); !ok || v != ir.Value(ir.U32(10001)) {
		t.Errorf("zip default = %v, %v", v, ok)
	}
	derive, _ := st.Properties()[0].Value()
	if vs, ok := derive.(ir.Values); !ok || len(vs) != 2 || vs[0] != ir.Value(ir.MustIdentifier("Clone")) {
		t.Errorf("derive = %#v", derive)
	}

	en := m.Content()[3].(ir.Enumeration)
	variants := en.Variants()
	if v, ok := variants[1].Value(); !ok || v != ir.Value(ir.I64(2)) {
		t.Errorf("Home value = %v, %v", v, ok)
	}

	c := m.Content()[4].(ir.Constant)
	if c.Type() != ir.ValueType(ir.KnownI32) || c.Value() != ir.Value(ir.I32(3)) {
		t.Errorf("LIMIT = %v: %v", c.Value(), c.Type())
	}
	v := m.Content()[5].(ir.Variable)
	if v.Type() != ir.ValueType(ir.KnownF64) || v.Value() != ir.Value(ir.F64(0.5)) {
		t.Errorf("ratio = %v: %v", v.Value(), v.Type())
	}

	fn := m.Content()[6].(ir.FunctionDecl)
	if res, ok := fn.Result(); !ok {
		t.Error("lookup should have a result")
	} else if g, isGeneric := res.(ir.GenericType); !isGeneric || g.Name.String() != "Option" {
		t.Errorf("result = %#v", res)
	}

	sub := m.Content()[8].(ir.Module)
	if !sub.IsInline() {
		t.Error("detail should be inline")
	}
	if c := sub.Content()[0].(ir.Comment); !c.IsBlock() || c.Text() != "Helpers." {
		t.Errorf("detail comment = %#v", c)
	}
}

func TestParseJSON(t *testing.T) {
	m, err := Parse([]byte(addressJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	content := m.Content()
	if len(content) != 4 {
		t.Fatalf("content = %d, want 4", len(content))
	}
	if items := content[0].(ir.Import).Items(); len(items) != 2 {
		t.Errorf("import items = %d, want 2", len(items))
	}
	if c := content[1].(ir.Constant); c.Value() != ir.Value(ir.I32(3)) {
		t.Errorf("LIMIT = %#v", c.Value())
	}
	if v := content[2].(ir.Variable); v.Value() != ir.Value(ir.F64(0.5)) {
		t.Errorf("ratio = %#v", v.Value())
	}
	sizes, ok := content[3].(ir.Constant).Value().(ir.NamedValues)
	if !ok || len(sizes) != 2 {
		t.Fatalf("sizes = %#v", content[3].(ir.Constant).Value())
	}
	if sizes[0].Key != ir.Value(ir.String("a")) || sizes[0].Value != ir.Value(ir.U8(1)) {
		t.Errorf("sizes[0] = %#v", sizes[0])
	}
	if sizes[1].Key != ir.Value(ir.String("b")) || sizes[1].Value != ir.Value(ir.U8(2)) {
		t.Errorf("sizes[1] = %#v", sizes[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   string
	}{
		{"empty yaml", FormatYAML, "", "empty document"},
		{"unknown key", FormatYAML, "name: a\nbogus: 1\n", "yaml"},
		{"unknown json key", FormatJSON, `{"name": "a", "bogus": 1}`, "json"},
		{"bad module name", FormatYAML, "name: ''\n", "module name"},
		{"two elements", FormatYAML, "name: a\ncontent:\n  - comment: x\n    block_comment: y\n", "exactly one element, found 2"},
		{"no element", FormatYAML, "name: a\ncontent:\n  - {}\n", "exactly one element, found 0"},
		{"bad type", FormatYAML, "name: a\ncontent:\n  - alias: {name: A, type: 'list<>'}\n", "type alias A"},
		{"out of range", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: u8, value: 300}\n", "cannot use 300 as u8"},
		{"negative unsigned", FormatJSON, `{"name": "a", "content": [{"const": {"name": "A", "type": "u32", "value": -1}}]}`, "cannot use -1 as u32"},
		{"fraction as integer", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: i32, value: 1.5}\n", "cannot use 1.5 as i32"},
		{"wrong scalar", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: bool, value: yes please}\n", "as bool"},
		{"long char", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: char, value: ab}\n", "as char"},
		{"missing value", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: i32}\n", "missing value"},
		{"untyped composite", FormatYAML, "name: a\ncontent:\n  - const: {name: A, value: [1, 2]}\n", "type is required"},
		{"list for map", FormatYAML, "name: a\ncontent:\n  - const: {name: A, type: 'map<string, i32>', value: [1]}\n", "expected a mapping"},
		{"bad visibility", FormatYAML, "name: a\nvisibility: friends\n", "unknown visibility"},
		{"bad kind", FormatYAML, "name: a\ncontent:\n  - struct: {name: S, kind: record}\n", "unknown structured type kind"},
		{"property forms", FormatYAML, "name: a\nproperties:\n  - {name: p, value: 1, identifiers: [x]}\n", "mutually exclusive"},
		{"bad namespace", FormatYAML, "name: a\ncontent:\n  - import: {namespace: 'std::'}\n", "import"},
		{"nested error", FormatYAML, "name: a\ncontent:\n  - module:\n      name: b\n      content:\n        - var: {name: '', value: 1}\n", "module a: item 0: module b: item 0: variable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestTypedValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ir.Value
	}{
		{"i8", "{name: A, type: i8, value: -128}", ir.I8(-128)},
		{"u64", "{name: A, type: u64, value: 18446744073709551615}", ir.U64(18446744073709551615)},
		{"f32 from integer", "{name: A, type: f32, value: 2}", ir.F32(2)},
		{"char", "{name: A, type: char, value: z}", ir.Char('z')},
		{"string", "{name: A, type: string, value: hi}", ir.String("hi")},
		{"bool", "{name: A, type: bool, value: true}", ir.Bool(true)},
		{"reference", "{name: A, type: AddressType, value: Commercial}", ir.MustIdentifier("Commercial")},
		{"untyped string", "{name: A, value: hi}", ir.String("hi")},
		{"untyped bool", "{name: A, value: false}", ir.Bool(false)},
		{"untyped integer", "{name: A, value: 7}", ir.I64(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "name: a\ncontent:\n  - const: " + tt.input + "\n"
			m, err := Parse([]byte(input), FormatYAML)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := m.Content()[0].(ir.Constant).Value()
			if got != tt.want {
				t.Errorf("value = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompositeValues(t *testing.T) {
	input := `
name: a
content:
  - const: {name: L, type: 'list<i16>', value: [1, 2]}
  - const: {name: S, type: 'set<string>', value: [x]}
  - const: {name: M, type: 'map<i32, bool>', value: {2: true, 1: false}}
`
	m, err := Parse([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	list := m.Content()[0].(ir.Constant).Value().(ir.Values)
	if len(list) != 2 || list[0] != ir.Value(ir.I16(1)) || list[1] != ir.Value(ir.I16(2)) {
		t.Errorf("L = %#v", list)
	}
	set := m.Content()[1].(ir.Constant).Value().(ir.Values)
	if len(set) != 1 || set[0] != ir.Value(ir.String("x")) {
		t.Errorf("S = %#v", set)
	}
	mapping := m.Content()[2].(ir.Constant).Value().(ir.NamedValues)
	if len(mapping) != 2 {
		t.Fatalf("M = %#v", mapping)
	}
	if mapping[0].Key != ir.Value(ir.I32(1)) || mapping[0].Value != ir.Value(ir.Bool(false)) {
		t.Errorf("M[0] = %#v", mapping[0])
	}
	if mapping[1].Key != ir.Value(ir.I32(2)) || mapping[1].Value != ir.Value(ir.Bool(true)) {
		t.Errorf("M[1] = %#v", mapping[1])
	}
}

func TestPropertyForms(t *testing.T) {
	input := `
name: a
properties:
  - name: inline
  - name: path
    value: gen/a.rs
  - name: serde
    pairs: {rename: x, default: true}
`
	m, err := Parse([]byte(input), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	props := m.Properties()
	if len(props) != 3 {
		t.Fatalf("properties = %d, want 3", len(props))
	}
	if _, ok := props[0].Value(); ok {
		t.Error("inline should have no value")
	}
	if v, _ := props[1].Value(); v != ir.Value(ir.String("gen/a.rs")) {
		t.Errorf("path = %#v", v)
	}
	v, _ := props[2].Value()
	nv, ok := v.(ir.NamedValues)
	if !ok || len(nv) != 2 {
		t.Fatalf("serde = %#v", v)
	}
	if nv[0].Key != ir.Value(ir.MustIdentifier("default")) || nv[0].Value != ir.Value(ir.Bool(true)) {
		t.Errorf("serde[0] = %#v", nv[0])
	}
	if nv[1].Key != ir.Value(ir.MustIdentifier("rename")) || nv[1].Value != ir.Value(ir.String("x")) {
		t.Errorf("serde[1] = %#v", nv[1])
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.yaml", FormatYAML, true},
		{"dir/a.YML", FormatYAML, true},
		{"a.json", FormatJSON, true},
		{"a.toml", 0, false},
		{"noext", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if (err == nil) != tt.ok {
				t.Fatalf("FormatOf(%q) error = %v", tt.path, err)
			}
			if tt.ok && got != tt.want {
				t.Errorf("FormatOf(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "address.yaml")
	if err := os.WriteFile(yamlPath, []byte(addressYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "address.json")
	if err := os.WriteFile(jsonPath, []byte(addressJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{yamlPath, jsonPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			m, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if m.Name().String() != "address" {
				t.Errorf("name = %s", m.Name())
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load(missing) = %v, want ErrNotExist", err)
		}
	})
	t.Run("extension", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "address.txt")); err == nil {
			t.Error("expected error for unknown extension")
		}
	})
}
