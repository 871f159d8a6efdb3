// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// NamedValue is a typed, named literal: the payload of constants and
// variables. It always has both a type and a value.
type NamedValue struct {
	declaration
	typ   ValueType
	value Value
}

// Type returns the declared type.
func (n NamedValue) Type() ValueType {
	return CloneValueType(n.typ)
}

// Value returns the literal.
func (n NamedValue) Value() Value {
	return CloneValue(n.value)
}

// NamedValueBuilder assembles a NamedValue.
type NamedValueBuilder struct {
	d     declaration
	typ   ValueType
	value Value
}

// NewNamedValue starts a named value with an explicit type.
func NewNamedValue(name Identifier, typ ValueType, value Value) *NamedValueBuilder {
	return &NamedValueBuilder{d: declaration{name: name}, typ: typ, value: value}
}

// NewScalar starts a named value whose type is inferred from a scalar
// literal. Composites have no canonical type and go through NewNamedValue.
func NewScalar[T Scalar](name Identifier, value T) *NamedValueBuilder {
	typ, _ := value.Type()
	return NewNamedValue(name, typ, value)
}

// Documentation sets the documentation text.
func (b *NamedValueBuilder) Documentation(text string) *NamedValueBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *NamedValueBuilder) Property(p Property) *NamedValueBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *NamedValueBuilder) Visibility(v Visibility) *NamedValueBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *NamedValueBuilder) Public() *NamedValueBuilder {
	return b.Visibility(VisibilityPublic)
}

// Type replaces the declared type.
func (b *NamedValueBuilder) Type(t ValueType) *NamedValueBuilder {
	b.typ = t
	return b
}

// Value replaces the literal.
func (b *NamedValueBuilder) Value(v Value) *NamedValueBuilder {
	b.value = v
	return b
}

// Build returns a snapshot of the named value.
func (b *NamedValueBuilder) Build() NamedValue {
	return NamedValue{
		declaration: b.d.clone(),
		typ:         CloneValueType(b.typ),
		value:       CloneValue(b.value),
	}
}
