// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rust

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// knownTypeName returns the Rust name of a primitive.
func knownTypeName(k ir.KnownType) string {
	if k == ir.KnownString {
		return "String"
	}
	return k.String()
}

// typeName returns the Rust spelling of t, wrapped in Option when optional.
func (r *Renderer) typeName(t ir.ValueType, optional bool) (string, error) {
	s, err := r.valueType(t)
	if err != nil {
		return "", err
	}
	if optional {
		return "Option<" + s + ">", nil
	}
	return s, nil
}

func (r *Renderer) valueType(t ir.ValueType) (string, error) {
	switch t := t.(type) {
	case ir.KnownType:
		return knownTypeName(t), nil
	case ir.ReferenceType:
		return t.Name.String(), nil
	case ir.ArrayType:
		elem, err := r.valueType(t.Element)
		if err != nil {
			return "", err
		}
		return "Vec<" + elem + ">", nil
	case ir.SetType:
		elem, err := r.valueType(t.Element)
		if err != nil {
			return "", err
		}
		return "HashSet<" + elem + ">", nil
	case ir.MapType:
		key, err := r.valueType(t.Key)
		if err != nil {
			return "", err
		}
		value, err := r.valueType(t.Value)
		if err != nil {
			return "", err
		}
		return "HashMap<" + key + ", " + value + ">", nil
	case ir.ConstrainedType:
		if len(t.Bounds) == 0 {
			return "", writer.Formatting("constrained type %s has no bounds", t.Name)
		}
		bounds, err := r.typeList(t.Bounds, " + ")
		if err != nil {
			return "", err
		}
		return t.Name.String() + ": " + bounds, nil
	case ir.GenericType:
		if len(t.Arguments) == 0 {
			return "", writer.Formatting("generic type %s has no arguments", t.Name)
		}
		args, err := r.typeList(t.Arguments, ", ")
		if err != nil {
			return "", err
		}
		return t.Name.String() + "<" + args + ">", nil
	case ir.FunctionType:
		params, err := r.typeList(t.Parameters, ", ")
		if err != nil {
			return "", err
		}
		s := "fn(" + params + ")"
		if t.Result != nil {
			result, err := r.valueType(t.Result)
			if err != nil {
				return "", err
			}
			s += " -> " + result
		}
		return s, nil
	case nil:
		return "", writer.Formatting("missing type")
	default:
		return "", writer.Formatting("unknown value type %T", t)
	}
}

func (r *Renderer) typeList(types []ir.ValueType, sep string) (string, error) {
	parts := make([]string, len(types))
	for i, t := range types {
		s, err := r.valueType(t)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// literal returns the Rust spelling of v. Inside attributes, lists and
// maps use the parenthesized meta-item forms.
func literal(v ir.Value, attribute bool) (string, error) {
	switch v := v.(type) {
	case ir.I8:
		return strconv.FormatInt(int64(v), 10), nil
	case ir.U8:
		return strconv.FormatUint(uint64(v), 10), nil
	case ir.I16:
		return strconv.FormatInt(int64(v), 10), nil
	case ir.U16:
		return strconv.FormatUint(uint64(v), 10), nil
	case ir.I32:
		return strconv.FormatInt(int64(v), 10), nil
	case ir.U32:
		return strconv.FormatUint(uint64(v), 10), nil
	case ir.I64:
		return strconv.FormatInt(int64(v), 10), nil
	case ir.U64:
		return strconv.FormatUint(uint64(v), 10), nil
	case ir.F32:
		return formatFloat(float64(v), 32, "f32"), nil
	case ir.F64:
		return formatFloat(float64(v), 64, "f64"), nil
	case ir.Bool:
		return strconv.FormatBool(bool(v)), nil
	case ir.Char:
		return "'" + escapeRunes(string(rune(v)), '\'') + "'", nil
	case ir.String:
		return `"` + escapeRunes(string(v), '"') + `"`, nil
	case ir.Identifier:
		return v.String(), nil
	case ir.Values:
		items, err := literalList(v, attribute)
		if err != nil {
			return "", err
		}
		if attribute {
			return "(" + items + ")", nil
		}
		return "[" + items + "]", nil
	case ir.NamedValues:
		parts := make([]string, len(v))
		for i, kv := range v {
			key, err := literal(kv.Key, attribute)
			if err != nil {
				return "", err
			}
			value, err := literal(kv.Value, attribute)
			if err != nil {
				return "", err
			}
			if attribute {
				parts[i] = key + " = " + value
			} else {
				parts[i] = "(" + key + ", " + value + ")"
			}
		}
		if attribute {
			return "(" + strings.Join(parts, ", ") + ")", nil
		}
		return "HashMap::from([" + strings.Join(parts, ", ") + "])", nil
	case nil:
		return "", writer.Formatting("missing value")
	default:
		return "", writer.Formatting("unknown value %T", v)
	}
}

func literalList(vs ir.Values, attribute bool) (string, error) {
	parts := make([]string, len(vs))
	for i, item := range vs {
		s, err := literal(item, attribute)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// formatFloat formats a float so that it always reads as a float literal.
func formatFloat(f float64, bits int, typ string) string {
	switch {
	case math.IsNaN(f):
		return typ + "::NAN"
	case math.IsInf(f, 1):
		return typ + "::INFINITY"
	case math.IsInf(f, -1):
		return typ + "::NEG_INFINITY"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// escapeRunes escapes s for a Rust string or char literal delimited by quote.
func escapeRunes(s string, quote rune) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c == quote || c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == 0:
			b.WriteString(`\0`)
		case !unicode.IsPrint(c):
			fmt.Fprintf(&b, `\u{%x}`, c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
