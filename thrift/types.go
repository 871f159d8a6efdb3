// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package thrift

import (
	"strconv"
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// knownTypeName returns the Thrift base type for a primitive. Unsigned
// integers share the signed type of the same width.
func knownTypeName(k ir.KnownType) string {
	switch k {
	case ir.KnownI8, ir.KnownChar:
		return "i8"
	case ir.KnownU8:
		return "byte"
	case ir.KnownI16, ir.KnownU16:
		return "i16"
	case ir.KnownI32, ir.KnownU32:
		return "i32"
	case ir.KnownI64, ir.KnownU64:
		return "i64"
	case ir.KnownF32, ir.KnownF64:
		return "double"
	case ir.KnownBoolean:
		return "bool"
	default:
		return "string"
	}
}

// typeName returns the Thrift spelling of t.
func typeName(t ir.ValueType) (string, error) {
	switch t := t.(type) {
	case ir.KnownType:
		return knownTypeName(t), nil
	case ir.ReferenceType:
		return t.Name.String(), nil
	case ir.ArrayType:
		elem, err := typeName(t.Element)
		if err != nil {
			return "", err
		}
		return "list<" + elem + ">", nil
	case ir.SetType:
		elem, err := typeName(t.Element)
		if err != nil {
			return "", err
		}
		return "set<" + elem + ">", nil
	case ir.MapType:
		key, err := typeName(t.Key)
		if err != nil {
			return "", err
		}
		value, err := typeName(t.Value)
		if err != nil {
			return "", err
		}
		return "map<" + key + ", " + value + ">", nil
	case ir.ConstrainedType:
		return "", writer.Formatting("constrained type %s has no Thrift form", t.Name)
	case ir.GenericType:
		return "", writer.Formatting("generic type %s has no Thrift form", t.Name)
	case ir.FunctionType:
		return "", writer.Formatting("function types have no Thrift form")
	case nil:
		return "", writer.Formatting("missing type")
	default:
		return "", writer.Formatting("unknown value type %T", t)
	}
}

// literal returns the Thrift spelling of a constant value.
func literal(v ir.Value) (string, error) {
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
		return formatFloat(float64(v), 32), nil
	case ir.F64:
		return formatFloat(float64(v), 64), nil
	case ir.Bool:
		return strconv.FormatBool(bool(v)), nil
	case ir.Char:
		// char is carried as i8.
		return strconv.FormatInt(int64(v), 10), nil
	case ir.String:
		return quote(string(v)), nil
	case ir.Identifier:
		return v.String(), nil
	case ir.Values:
		parts := make([]string, len(v))
		for i, item := range v {
			s, err := literal(item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.NamedValues:
		parts := make([]string, len(v))
		for i, kv := range v {
			key, err := literal(kv.Key)
			if err != nil {
				return "", err
			}
			value, err := literal(kv.Value)
			if err != nil {
				return "", err
			}
			parts[i] = key + ": " + value
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case nil:
		return "", writer.Formatting("missing value")
	default:
		return "", writer.Formatting("unknown value %T", v)
	}
}

// formatFloat formats a float for Thrift output.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quote returns s as a double-quoted Thrift string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
