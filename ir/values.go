// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// Value is a literal.
//
// The set of implementations is closed: the scalar kinds I8 through String,
// the composites Values and NamedValues, and Identifier for named constants.
type Value interface {
	// Type returns the canonical primitive type of a scalar literal.
	// Composites and identifiers report false: composites may be
	// heterogeneous and an identifier's type depends on what it names.
	Type() (ValueType, bool)

	value()
}

// Scalar literal kinds.
type (
	I8     int8
	U8     uint8
	I16    int16
	U16    uint16
	I32    int32
	U32    uint32
	I64    int64
	U64    uint64
	F32    float32
	F64    float64
	Bool   bool
	Char   rune
	String string
)

// Values is an ordered list of literals.
type Values []Value

// NamedValues is an ordered list of key/value pairs. Order is kept so that
// output is deterministic.
type NamedValues []KeyValue

// KeyValue is one entry of NamedValues.
type KeyValue struct {
	Key   Value
	Value Value
}

func (I8) value()          {}
func (U8) value()          {}
func (I16) value()         {}
func (U16) value()         {}
func (I32) value()         {}
func (U32) value()         {}
func (I64) value()         {}
func (U64) value()         {}
func (F32) value()         {}
func (F64) value()         {}
func (Bool) value()        {}
func (Char) value()        {}
func (String) value()      {}
func (Values) value()      {}
func (NamedValues) value() {}
func (Identifier) value()  {}

func (I8) Type() (ValueType, bool)          { return KnownI8, true }
func (U8) Type() (ValueType, bool)          { return KnownU8, true }
func (I16) Type() (ValueType, bool)         { return KnownI16, true }
func (U16) Type() (ValueType, bool)         { return KnownU16, true }
func (I32) Type() (ValueType, bool)         { return KnownI32, true }
func (U32) Type() (ValueType, bool)         { return KnownU32, true }
func (I64) Type() (ValueType, bool)         { return KnownI64, true }
func (U64) Type() (ValueType, bool)         { return KnownU64, true }
func (F32) Type() (ValueType, bool)         { return KnownF32, true }
func (F64) Type() (ValueType, bool)         { return KnownF64, true }
func (Bool) Type() (ValueType, bool)        { return KnownBoolean, true }
func (Char) Type() (ValueType, bool)        { return KnownChar, true }
func (String) Type() (ValueType, bool)      { return KnownString, true }
func (Values) Type() (ValueType, bool)      { return nil, false }
func (NamedValues) Type() (ValueType, bool) { return nil, false }
func (Identifier) Type() (ValueType, bool)  { return nil, false }

// Scalar is satisfied by the literal kinds that have a canonical type.
type Scalar interface {
	I8 | U8 | I16 | U16 | I32 | U32 | I64 | U64 | F32 | F64 | Bool | Char | String
	Value
}

// CloneValue returns a deep copy of v. It returns nil for nil.
func CloneValue(v Value) Value {
	switch v := v.(type) {
	case nil:
		return nil
	case Values:
		if v == nil {
			return Values(nil)
		}
		out := make(Values, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	case NamedValues:
		if v == nil {
			return NamedValues(nil)
		}
		out := make(NamedValues, len(v))
		for i, kv := range v {
			out[i] = KeyValue{Key: CloneValue(kv.Key), Value: CloneValue(kv.Value)}
		}
		return out
	default:
		// Scalars and identifiers are immutable values.
		return v
	}
}
