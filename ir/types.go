// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// ValueType is a type expression.
//
// The set of implementations is closed: KnownType, ReferenceType, ArrayType,
// SetType, MapType, ConstrainedType, GenericType and FunctionType.
// Consumers switch over all of them and fail explicitly on the ones they
// cannot express.
type ValueType interface {
	valueType()
}

// KnownType is a primitive type.
type KnownType uint8

const (
	KnownI8 KnownType = iota
	KnownU8
	KnownI16
	KnownU16
	KnownI32
	KnownU32
	KnownI64
	KnownU64
	KnownF32
	KnownF64
	KnownBoolean
	KnownChar
	KnownString
)

func (KnownType) valueType() {}

// String returns the canonical lower-case name of the primitive.
func (k KnownType) String() string {
	switch k {
	case KnownI8:
		return "i8"
	case KnownU8:
		return "u8"
	case KnownI16:
		return "i16"
	case KnownU16:
		return "u16"
	case KnownI32:
		return "i32"
	case KnownU32:
		return "u32"
	case KnownI64:
		return "i64"
	case KnownU64:
		return "u64"
	case KnownF32:
		return "f32"
	case KnownF64:
		return "f64"
	case KnownBoolean:
		return "bool"
	case KnownChar:
		return "char"
	case KnownString:
		return "string"
	default:
		return "unknown"
	}
}

// ReferenceType names another type. The name is not resolved.
type ReferenceType struct {
	Name Identifier
}

func (ReferenceType) valueType() {}

// ArrayType is an ordered sequence of Element.
type ArrayType struct {
	Element ValueType
}

func (ArrayType) valueType() {}

// SetType is an unordered collection of unique Element values.
type SetType struct {
	Element ValueType
}

func (SetType) valueType() {}

// MapType associates Key values with Value values.
type MapType struct {
	Key   ValueType
	Value ValueType
}

func (MapType) valueType() {}

// ConstrainedType is a type parameter with at least one bound, such as
// T: Clone + Debug.
type ConstrainedType struct {
	Name   Identifier
	Bounds []ValueType
}

func (ConstrainedType) valueType() {}

// GenericType is a named type applied to at least one argument, such as
// Result<T, E>.
type GenericType struct {
	Name      Identifier
	Arguments []ValueType
}

func (GenericType) valueType() {}

// FunctionType is a callable type. Result is nil for functions that return
// nothing.
type FunctionType struct {
	Parameters []ValueType
	Result     ValueType
}

func (FunctionType) valueType() {}

// Reference returns a ReferenceType for name.
func Reference(name Identifier) ValueType {
	return ReferenceType{Name: name}
}

// ArrayOf returns an ArrayType of element.
func ArrayOf(element ValueType) ValueType {
	return ArrayType{Element: element}
}

// SetOf returns a SetType of element.
func SetOf(element ValueType) ValueType {
	return SetType{Element: element}
}

// MapOf returns a MapType from key to value.
func MapOf(key, value ValueType) ValueType {
	return MapType{Key: key, Value: value}
}

// Constrained returns a ConstrainedType. The signature requires one bound.
func Constrained(name Identifier, bound ValueType, more ...ValueType) ValueType {
	return ConstrainedType{Name: name, Bounds: prepend(bound, more)}
}

// Generic returns a GenericType. The signature requires one argument.
func Generic(name Identifier, argument ValueType, more ...ValueType) ValueType {
	return GenericType{Name: name, Arguments: prepend(argument, more)}
}

// FunctionOf returns a FunctionType. A nil result means no return value.
func FunctionOf(parameters []ValueType, result ValueType) ValueType {
	return FunctionType{Parameters: cloneValueTypes(parameters), Result: CloneValueType(result)}
}

// CloneValueType returns a deep copy of t. It returns nil for nil.
func CloneValueType(t ValueType) ValueType {
	switch t := t.(type) {
	case nil:
		return nil
	case KnownType, ReferenceType:
		return t
	case ArrayType:
		return ArrayType{Element: CloneValueType(t.Element)}
	case SetType:
		return SetType{Element: CloneValueType(t.Element)}
	case MapType:
		return MapType{Key: CloneValueType(t.Key), Value: CloneValueType(t.Value)}
	case ConstrainedType:
		return ConstrainedType{Name: t.Name, Bounds: cloneValueTypes(t.Bounds)}
	case GenericType:
		return GenericType{Name: t.Name, Arguments: cloneValueTypes(t.Arguments)}
	case FunctionType:
		return FunctionType{Parameters: cloneValueTypes(t.Parameters), Result: CloneValueType(t.Result)}
	default:
		panic("ir: unknown ValueType implementation")
	}
}

func cloneValueTypes(ts []ValueType) []ValueType {
	if ts == nil {
		return nil
	}
	out := make([]ValueType, len(ts))
	for i, t := range ts {
		out[i] = CloneValueType(t)
	}
	return out
}

func prepend(first ValueType, rest []ValueType) []ValueType {
	out := make([]ValueType, 0, 1+len(rest))
	out = append(out, CloneValueType(first))
	return append(out, cloneValueTypes(rest)...)
}
