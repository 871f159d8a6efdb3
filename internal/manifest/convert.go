// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/codewriter/ir"
)

// Convert builds the module described by m.
func (m *Module) Convert() (ir.Module, error) {
	name, err := identifier(m.Name)
	if err != nil {
		return ir.Module{}, fmt.Errorf("module name: %w", err)
	}
	vis, err := visibility(m.Visibility)
	if err != nil {
		return ir.Module{}, fmt.Errorf("module %s: %w", m.Name, err)
	}
	props, err := properties(m.Properties)
	if err != nil {
		return ir.Module{}, fmt.Errorf("module %s: %w", m.Name, err)
	}
	b := ir.NewModule(name).
		Documentation(m.Documentation).
		Visibility(vis).
		Inline(m.Inline)
	for _, p := range props {
		b.Property(p)
	}
	for i := range m.Content {
		item, err := m.Content[i].convert()
		if err != nil {
			return ir.Module{}, fmt.Errorf("module %s: item %d: %w", m.Name, i, err)
		}
		b.Content(item)
	}
	return b.Build(), nil
}

func (it *Item) convert() (ir.ModuleContent, error) {
	set := 0
	for _, present := range []bool{
		it.Import != nil, it.Comment != nil, it.BlockComment != nil,
		it.Struct != nil, it.Enum != nil, it.Const != nil, it.Var != nil,
		it.Function != nil, it.Alias != nil, it.Module != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("expected exactly one element, found %d", set)
	}

	switch {
	case it.Import != nil:
		return it.Import.convert()
	case it.Comment != nil:
		return ir.NewLineComment(*it.Comment), nil
	case it.BlockComment != nil:
		return ir.NewBlockComment(*it.BlockComment), nil
	case it.Struct != nil:
		return it.Struct.convert()
	case it.Enum != nil:
		return it.Enum.convert()
	case it.Const != nil:
		v, err := it.Const.convert()
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", it.Const.Name, err)
		}
		return ir.Constant{NamedValue: v}, nil
	case it.Var != nil:
		v, err := it.Var.convert()
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", it.Var.Name, err)
		}
		return ir.Variable{NamedValue: v}, nil
	case it.Function != nil:
		f, err := it.Function.convert()
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", it.Function.Name, err)
		}
		return f, nil
	case it.Alias != nil:
		return it.Alias.convert()
	default:
		return it.Module.Convert()
	}
}

func (imp *Import) convert() (ir.Import, error) {
	ns, err := ir.ParseNamespace(imp.Namespace)
	if err != nil {
		return ir.Import{}, fmt.Errorf("import: %w", err)
	}
	vis, err := visibility(imp.Visibility)
	if err != nil {
		return ir.Import{}, fmt.Errorf("import %s: %w", imp.Namespace, err)
	}
	b := ir.NewImport(ns).Visibility(vis)
	for _, item := range imp.Items {
		name, err := identifier(item.Name)
		if err != nil {
			return ir.Import{}, fmt.Errorf("import %s: %w", imp.Namespace, err)
		}
		if item.Alias == "" {
			b.Item(name)
			continue
		}
		alias, err := identifier(item.Alias)
		if err != nil {
			return ir.Import{}, fmt.Errorf("import %s: %w", imp.Namespace, err)
		}
		b.ItemAs(name, alias)
	}
	return b.Build(), nil
}

func (s *Struct) convert() (ir.StructuredType, error) {
	wrap := func(err error) (ir.StructuredType, error) {
		return ir.StructuredType{}, fmt.Errorf("structured type %s: %w", s.Name, err)
	}
	name, err := identifier(s.Name)
	if err != nil {
		return wrap(err)
	}
	kind, err := structuredKind(s.Kind)
	if err != nil {
		return wrap(err)
	}
	vis, err := visibility(s.Visibility)
	if err != nil {
		return wrap(err)
	}
	props, err := properties(s.Properties)
	if err != nil {
		return wrap(err)
	}
	b := ir.NewStructuredType(name, kind).Documentation(s.Documentation).Visibility(vis)
	for _, p := range props {
		b.Property(p)
	}
	for _, text := range s.Extends {
		t, err := ir.ParseValueType(text)
		if err != nil {
			return wrap(err)
		}
		b.Extends(t)
	}
	for i := range s.Fields {
		f, err := s.Fields[i].convert()
		if err != nil {
			return wrap(fmt.Errorf("field %s: %w", s.Fields[i].Name, err))
		}
		b.Field(f)
	}
	for i := range s.Methods {
		m, err := s.Methods[i].convert()
		if err != nil {
			return wrap(fmt.Errorf("method %s: %w", s.Methods[i].Name, err))
		}
		b.Method(m)
	}
	return b.Build(), nil
}

func (f *Field) convert() (ir.Field, error) {
	name, err := identifier(f.Name)
	if err != nil {
		return ir.Field{}, err
	}
	t, err := ir.ParseValueType(f.Type)
	if err != nil {
		return ir.Field{}, err
	}
	vis, err := visibility(f.Visibility)
	if err != nil {
		return ir.Field{}, err
	}
	props, err := properties(f.Properties)
	if err != nil {
		return ir.Field{}, err
	}
	b := ir.NewField(name, t).Documentation(f.Documentation).Visibility(vis)
	if f.Optional {
		b.Optional()
	}
	if f.Default != nil {
		v, err := value(f.Default, t)
		if err != nil {
			return ir.Field{}, fmt.Errorf("default: %w", err)
		}
		b.Default(v)
	}
	for _, p := range props {
		b.Property(p)
	}
	return b.Build(), nil
}

func (e *Enum) convert() (ir.Enumeration, error) {
	wrap := func(err error) (ir.Enumeration, error) {
		return ir.Enumeration{}, fmt.Errorf("enumeration %s: %w", e.Name, err)
	}
	name, err := identifier(e.Name)
	if err != nil {
		return wrap(err)
	}
	vis, err := visibility(e.Visibility)
	if err != nil {
		return wrap(err)
	}
	props, err := properties(e.Properties)
	if err != nil {
		return wrap(err)
	}
	b := ir.NewEnumeration(name).Documentation(e.Documentation).Visibility(vis)
	for _, p := range props {
		b.Property(p)
	}
	for i := range e.Variants {
		v, err := e.Variants[i].convert()
		if err != nil {
			return wrap(fmt.Errorf("variant %s: %w", e.Variants[i].Name, err))
		}
		b.Variant(v)
	}
	return b.Build(), nil
}

func (v *Variant) convert() (ir.EnumerationVariant, error) {
	name, err := identifier(v.Name)
	if err != nil {
		return ir.EnumerationVariant{}, err
	}
	props, err := properties(v.Properties)
	if err != nil {
		return ir.EnumerationVariant{}, err
	}
	b := ir.NewVariant(name).Documentation(v.Documentation)
	if v.Type != "" {
		t, err := ir.ParseValueType(v.Type)
		if err != nil {
			return ir.EnumerationVariant{}, err
		}
		b.Type(t)
	}
	if v.Value != nil {
		val, err := infer(v.Value)
		if err != nil {
			return ir.EnumerationVariant{}, err
		}
		b.Value(val)
	}
	for _, p := range props {
		b.Property(p)
	}
	return b.Build(), nil
}

func (n *Binding) convert() (ir.NamedValue, error) {
	name, err := identifier(n.Name)
	if err != nil {
		return ir.NamedValue{}, err
	}
	vis, err := visibility(n.Visibility)
	if err != nil {
		return ir.NamedValue{}, err
	}
	props, err := properties(n.Properties)
	if err != nil {
		return ir.NamedValue{}, err
	}

	var (
		t   ir.ValueType
		val ir.Value
	)
	if n.Type != "" {
		if t, err = ir.ParseValueType(n.Type); err != nil {
			return ir.NamedValue{}, err
		}
		if val, err = value(n.Value, t); err != nil {
			return ir.NamedValue{}, err
		}
	} else {
		if val, err = infer(n.Value); err != nil {
			return ir.NamedValue{}, err
		}
		var ok bool
		if t, ok = val.Type(); !ok {
			return ir.NamedValue{}, fmt.Errorf("type is required for composite values")
		}
	}

	b := ir.NewNamedValue(name, t, val).Documentation(n.Documentation).Visibility(vis)
	for _, p := range props {
		b.Property(p)
	}
	return b.Build(), nil
}

func (f *Function) convert() (ir.FunctionDecl, error) {
	name, err := identifier(f.Name)
	if err != nil {
		return ir.FunctionDecl{}, err
	}
	vis, err := visibility(f.Visibility)
	if err != nil {
		return ir.FunctionDecl{}, err
	}
	props, err := properties(f.Properties)
	if err != nil {
		return ir.FunctionDecl{}, err
	}
	b := ir.NewFunction(name).Documentation(f.Documentation).Visibility(vis)
	for _, p := range props {
		b.Property(p)
	}
	for i := range f.Parameters {
		p, err := f.Parameters[i].convert()
		if err != nil {
			return ir.FunctionDecl{}, fmt.Errorf("parameter %s: %w", f.Parameters[i].Name, err)
		}
		b.Parameter(p)
	}
	if f.Returns != "" {
		t, err := ir.ParseValueType(f.Returns)
		if err != nil {
			return ir.FunctionDecl{}, fmt.Errorf("result: %w", err)
		}
		b.Returns(t)
	}
	return b.Build(), nil
}

func (p *Parameter) convert() (ir.Parameter, error) {
	name, err := identifier(p.Name)
	if err != nil {
		return ir.Parameter{}, err
	}
	t, err := ir.ParseValueType(p.Type)
	if err != nil {
		return ir.Parameter{}, err
	}
	props, err := properties(p.Properties)
	if err != nil {
		return ir.Parameter{}, err
	}
	b := ir.NewParameter(name, t).Documentation(p.Documentation)
	if p.Optional {
		b.Optional()
	}
	if p.Default != nil {
		v, err := value(p.Default, t)
		if err != nil {
			return ir.Parameter{}, fmt.Errorf("default: %w", err)
		}
		b.Default(v)
	}
	for _, prop := range props {
		b.Property(prop)
	}
	return b.Build(), nil
}

func (a *TypeAlias) convert() (ir.TypeAlias, error) {
	wrap := func(err error) (ir.TypeAlias, error) {
		return ir.TypeAlias{}, fmt.Errorf("type alias %s: %w", a.Name, err)
	}
	name, err := identifier(a.Name)
	if err != nil {
		return wrap(err)
	}
	t, err := ir.ParseValueType(a.Type)
	if err != nil {
		return wrap(err)
	}
	vis, err := visibility(a.Visibility)
	if err != nil {
		return wrap(err)
	}
	props, err := properties(a.Properties)
	if err != nil {
		return wrap(err)
	}
	b := ir.NewTypeAlias(name, t).Documentation(a.Documentation).Visibility(vis)
	for _, p := range props {
		b.Property(p)
	}
	return b.Build(), nil
}

func properties(ps []Property) ([]ir.Property, error) {
	out := make([]ir.Property, 0, len(ps))
	for i := range ps {
		p, err := ps[i].convert()
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", ps[i].Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (p *Property) convert() (ir.Property, error) {
	name, err := identifier(p.Name)
	if err != nil {
		return ir.Property{}, err
	}
	forms := 0
	if p.Value != nil {
		forms++
	}
	if len(p.Identifiers) > 0 {
		forms++
	}
	if len(p.Pairs) > 0 {
		forms++
	}
	if forms > 1 {
		return ir.Property{}, fmt.Errorf("value, identifiers and pairs are mutually exclusive")
	}

	switch {
	case p.Value != nil:
		v, err := infer(p.Value)
		if err != nil {
			return ir.Property{}, err
		}
		return ir.PropertyWithValue(name, v), nil
	case len(p.Identifiers) > 0:
		vs := make(ir.Values, 0, len(p.Identifiers))
		for _, text := range p.Identifiers {
			id, err := identifier(text)
			if err != nil {
				return ir.Property{}, err
			}
			vs = append(vs, id)
		}
		return ir.PropertyWithValue(name, vs), nil
	case len(p.Pairs) > 0:
		keys := make([]string, 0, len(p.Pairs))
		for k := range p.Pairs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		nv := make(ir.NamedValues, 0, len(keys))
		for _, k := range keys {
			id, err := identifier(k)
			if err != nil {
				return ir.Property{}, err
			}
			v, err := infer(p.Pairs[k])
			if err != nil {
				return ir.Property{}, fmt.Errorf("%s: %w", k, err)
			}
			nv = append(nv, ir.KeyValue{Key: id, Value: v})
		}
		return ir.PropertyWithValue(name, nv), nil
	default:
		return ir.NewProperty(name), nil
	}
}

func identifier(text string) (ir.Identifier, error) {
	return ir.NewIdentifier(text)
}

func visibility(text string) (ir.Visibility, error) {
	switch strings.ToLower(text) {
	case "", "unspecified":
		return ir.VisibilityUnspecified, nil
	case "private":
		return ir.VisibilityPrivate, nil
	case "local":
		return ir.VisibilityLocal, nil
	case "package":
		return ir.VisibilityPackage, nil
	case "public":
		return ir.VisibilityPublic, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", text)
	}
}

func structuredKind(text string) (ir.StructuredTypeKind, error) {
	switch strings.ToLower(text) {
	case "", "struct", "structure":
		return ir.KindStructure, nil
	case "union":
		return ir.KindUnion, nil
	case "exception":
		return ir.KindException, nil
	case "class":
		return ir.KindClass, nil
	case "interface":
		return ir.KindInterface, nil
	case "service":
		return ir.KindService, nil
	default:
		return 0, fmt.Errorf("unknown structured type kind %q", text)
	}
}

// jsonNumber matches json.Number as produced by a decoder with UseNumber.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// value converts a decoded document value to a literal of type t.
func value(raw any, t ir.ValueType) (ir.Value, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing value")
	}
	switch t := t.(type) {
	case ir.KnownType:
		return scalar(raw, t)
	case ir.ArrayType:
		return list(raw, t.Element)
	case ir.SetType:
		return list(raw, t.Element)
	case ir.MapType:
		return pairs(raw, t.Key, t.Value)
	case ir.ReferenceType:
		if s, ok := raw.(string); ok {
			return identifier(s)
		}
		return infer(raw)
	default:
		return infer(raw)
	}
}

func scalar(raw any, k ir.KnownType) (ir.Value, error) {
	switch k {
	case ir.KnownBoolean:
		if b, ok := raw.(bool); ok {
			return ir.Bool(b), nil
		}
	case ir.KnownString:
		if s, ok := raw.(string); ok {
			return ir.String(s), nil
		}
	case ir.KnownChar:
		if s, ok := raw.(string); ok && utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			return ir.Char(r), nil
		}
	default:
		if text, ok := numberText(raw); ok {
			return parseNumber(text, k)
		}
	}
	return nil, fmt.Errorf("cannot use %v as %s", raw, k)
}

func numberText(raw any) (string, bool) {
	switch v := raw.(type) {
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case jsonNumber:
		return v.String(), true
	default:
		return "", false
	}
}

// parseNumber converts decimal text to a numeric literal of kind k,
// rejecting values outside its range.
func parseNumber(text string, k ir.KnownType) (ir.Value, error) {
	var (
		v   ir.Value
		err error
	)
	switch k {
	case ir.KnownI8, ir.KnownI16, ir.KnownI32, ir.KnownI64:
		var n int64
		n, err = strconv.ParseInt(text, 10, intBits(k))
		switch k {
		case ir.KnownI8:
			v = ir.I8(n)
		case ir.KnownI16:
			v = ir.I16(n)
		case ir.KnownI32:
			v = ir.I32(n)
		default:
			v = ir.I64(n)
		}
	case ir.KnownU8, ir.KnownU16, ir.KnownU32, ir.KnownU64:
		var n uint64
		n, err = strconv.ParseUint(text, 10, intBits(k))
		switch k {
		case ir.KnownU8:
			v = ir.U8(n)
		case ir.KnownU16:
			v = ir.U16(n)
		case ir.KnownU32:
			v = ir.U32(n)
		default:
			v = ir.U64(n)
		}
	case ir.KnownF32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = ir.F32(f)
	case ir.KnownF64:
		var f float64
		f, err = strconv.ParseFloat(text, 64)
		v = ir.F64(f)
	default:
		return nil, fmt.Errorf("cannot use %s as %s", text, k)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot use %s as %s", text, k)
	}
	return v, nil
}

func intBits(k ir.KnownType) int {
	switch k {
	case ir.KnownI8, ir.KnownU8:
		return 8
	case ir.KnownI16, ir.KnownU16:
		return 16
	case ir.KnownI32, ir.KnownU32:
		return 32
	default:
		return 64
	}
}

func list(raw any, element ir.ValueType) (ir.Value, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %v", raw)
	}
	out := make(ir.Values, 0, len(items))
	for i, item := range items {
		v, err := value(item, element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

type entry struct {
	key   string
	value any
}

// entries returns the mapping in raw sorted by key text. YAML mappings with
// non-string keys decode as map[any]any.
func entries(raw any) ([]entry, bool) {
	var out []entry
	switch m := raw.(type) {
	case map[string]any:
		for k, v := range m {
			out = append(out, entry{key: k, value: v})
		}
	case map[any]any:
		for k, v := range m {
			out = append(out, entry{key: fmt.Sprint(k), value: v})
		}
	default:
		return nil, false
	}
	slices.SortFunc(out, func(a, b entry) int { return strings.Compare(a.key, b.key) })
	return out, true
}

func pairs(raw any, key, val ir.ValueType) (ir.Value, error) {
	es, ok := entries(raw)
	if !ok {
		return nil, fmt.Errorf("expected a mapping, got %v", raw)
	}
	out := make(ir.NamedValues, 0, len(es))
	for _, e := range es {
		k, err := mapKey(e.key, key)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", e.key, err)
		}
		v, err := value(e.value, val)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", e.key, err)
		}
		out = append(out, ir.KeyValue{Key: k, Value: v})
	}
	return out, nil
}

func mapKey(text string, t ir.ValueType) (ir.Value, error) {
	k, ok := t.(ir.KnownType)
	if !ok {
		return value(text, t)
	}
	switch k {
	case ir.KnownString, ir.KnownChar:
		return scalar(text, k)
	case ir.KnownBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("cannot use %s as bool", text)
		}
		return ir.Bool(b), nil
	default:
		return parseNumber(text, k)
	}
}

// infer converts a decoded document value without a declared type.
// Integers become i64 and other numbers f64.
func infer(raw any) (ir.Value, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("missing value")
	case bool:
		return ir.Bool(v), nil
	case string:
		return ir.String(v), nil
	case int:
		return ir.I64(v), nil
	case int64:
		return ir.I64(v), nil
	case uint64:
		return ir.U64(v), nil
	case float64:
		return ir.F64(v), nil
	case jsonNumber:
		if n, err := v.Int64(); err == nil {
			return ir.I64(n), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s", v.String())
		}
		return ir.F64(f), nil
	case []any:
		out := make(ir.Values, 0, len(v))
		for i, item := range v {
			iv, err := infer(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, iv)
		}
		return out, nil
	default:
		es, ok := entries(raw)
		if !ok {
			return nil, fmt.Errorf("unsupported value %v", raw)
		}
		out := make(ir.NamedValues, 0, len(es))
		for _, e := range es {
			iv, err := infer(e.value)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", e.key, err)
			}
			out = append(out, ir.KeyValue{Key: ir.String(e.key), Value: iv})
		}
		return out, nil
	}
}
