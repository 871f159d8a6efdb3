// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "slices"

// StructuredTypeKind selects the flavor of a StructuredType.
type StructuredTypeKind uint8

const (
	KindStructure StructuredTypeKind = iota
	KindUnion
	KindException
	KindClass
	KindInterface
	KindService
)

// String returns a lower-case name for the kind.
func (k StructuredTypeKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindUnion:
		return "union"
	case KindException:
		return "exception"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Field is a typed member of a StructuredType.
type Field struct {
	declaration
	typ      ValueType
	optional bool
	value    Value
}

// Type returns the field type.
func (f Field) Type() ValueType {
	return CloneValueType(f.typ)
}

// IsOptional reports whether the field may be absent. This is separate from
// the type system: an optional string field still has type string.
func (f Field) IsOptional() bool {
	return f.optional
}

// IsRequired is the inverse of IsOptional.
func (f Field) IsRequired() bool {
	return !f.optional
}

// Default returns the default value, if any.
func (f Field) Default() (Value, bool) {
	return optionalValue(f.value)
}

// FieldBuilder assembles a Field.
type FieldBuilder struct {
	d        declaration
	typ      ValueType
	optional bool
	value    Value
}

// NewField starts a required field called name of type typ.
func NewField(name Identifier, typ ValueType) *FieldBuilder {
	return &FieldBuilder{d: declaration{name: name}, typ: typ}
}

// Documentation sets the documentation text.
func (b *FieldBuilder) Documentation(text string) *FieldBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *FieldBuilder) Property(p Property) *FieldBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *FieldBuilder) Visibility(v Visibility) *FieldBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *FieldBuilder) Public() *FieldBuilder {
	return b.Visibility(VisibilityPublic)
}

// Optional marks the field as optional.
func (b *FieldBuilder) Optional() *FieldBuilder {
	b.optional = true
	return b
}

// Required marks the field as required, the default.
func (b *FieldBuilder) Required() *FieldBuilder {
	b.optional = false
	return b
}

// Default sets the default value.
func (b *FieldBuilder) Default(v Value) *FieldBuilder {
	b.value = v
	return b
}

// Build returns a snapshot of the field.
func (b *FieldBuilder) Build() Field {
	return Field{
		declaration: b.d.clone(),
		typ:         CloneValueType(b.typ),
		optional:    b.optional,
		value:       CloneValue(b.value),
	}
}

// StructuredType is a struct, union, exception, class, interface or service.
type StructuredType struct {
	declaration
	kind    StructuredTypeKind
	extends []ValueType
	fields  []Field
	methods []FunctionDecl
}

// Kind returns the kind fixed at construction.
func (s StructuredType) Kind() StructuredTypeKind {
	return s.kind
}

// Extends returns the supertypes in declaration order.
func (s StructuredType) Extends() []ValueType {
	return cloneValueTypes(s.extends)
}

// Fields returns the fields in insertion order.
func (s StructuredType) Fields() []Field {
	return slices.Clone(s.fields)
}

// Methods returns the method declarations in insertion order.
func (s StructuredType) Methods() []FunctionDecl {
	return slices.Clone(s.methods)
}

// StructuredTypeBuilder assembles a StructuredType.
type StructuredTypeBuilder struct {
	d       declaration
	kind    StructuredTypeKind
	extends []ValueType
	fields  []Field
	methods []FunctionDecl
}

// NewStructuredType starts a structured type of the given kind.
func NewStructuredType(name Identifier, kind StructuredTypeKind) *StructuredTypeBuilder {
	return &StructuredTypeBuilder{d: declaration{name: name}, kind: kind}
}

// NewStructure starts a struct.
func NewStructure(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindStructure)
}

// NewUnion starts a union.
func NewUnion(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindUnion)
}

// NewException starts an exception.
func NewException(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindException)
}

// NewClass starts a class.
func NewClass(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindClass)
}

// NewInterface starts an interface.
func NewInterface(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindInterface)
}

// NewService starts a service.
func NewService(name Identifier) *StructuredTypeBuilder {
	return NewStructuredType(name, KindService)
}

// Documentation sets the documentation text.
func (b *StructuredTypeBuilder) Documentation(text string) *StructuredTypeBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *StructuredTypeBuilder) Property(p Property) *StructuredTypeBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *StructuredTypeBuilder) Visibility(v Visibility) *StructuredTypeBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *StructuredTypeBuilder) Public() *StructuredTypeBuilder {
	return b.Visibility(VisibilityPublic)
}

// Extends appends a supertype.
func (b *StructuredTypeBuilder) Extends(t ValueType) *StructuredTypeBuilder {
	b.extends = append(b.extends, t)
	return b
}

// Field appends a field.
func (b *StructuredTypeBuilder) Field(f Field) *StructuredTypeBuilder {
	b.fields = append(b.fields, f)
	return b
}

// Method appends a method declaration.
func (b *StructuredTypeBuilder) Method(m FunctionDecl) *StructuredTypeBuilder {
	b.methods = append(b.methods, m)
	return b
}

// Build returns a snapshot of the structured type.
func (b *StructuredTypeBuilder) Build() StructuredType {
	return StructuredType{
		declaration: b.d.clone(),
		kind:        b.kind,
		extends:     cloneValueTypes(b.extends),
		fields:      slices.Clone(b.fields),
		methods:     slices.Clone(b.methods),
	}
}

// EnumerationVariant is one member of an Enumeration. It may carry a payload
// type, a value, both or neither.
type EnumerationVariant struct {
	declaration
	typ   ValueType
	value Value
}

// Type returns the payload type, if any.
func (v EnumerationVariant) Type() (ValueType, bool) {
	if v.typ == nil {
		return nil, false
	}
	return CloneValueType(v.typ), true
}

// Value returns the explicit value, if any.
func (v EnumerationVariant) Value() (Value, bool) {
	return optionalValue(v.value)
}

// VariantBuilder assembles an EnumerationVariant.
type VariantBuilder struct {
	d     declaration
	typ   ValueType
	value Value
}

// NewVariant starts a bare variant.
func NewVariant(name Identifier) *VariantBuilder {
	return &VariantBuilder{d: declaration{name: name}}
}

// Documentation sets the documentation text.
func (b *VariantBuilder) Documentation(text string) *VariantBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *VariantBuilder) Property(p Property) *VariantBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Type sets the payload type.
func (b *VariantBuilder) Type(t ValueType) *VariantBuilder {
	b.typ = t
	return b
}

// Value sets the explicit value.
func (b *VariantBuilder) Value(v Value) *VariantBuilder {
	b.value = v
	return b
}

// Build returns a snapshot of the variant.
func (b *VariantBuilder) Build() EnumerationVariant {
	return EnumerationVariant{
		declaration: b.d.clone(),
		typ:         CloneValueType(b.typ),
		value:       CloneValue(b.value),
	}
}

// Enumeration is a closed, ordered set of variants.
type Enumeration struct {
	declaration
	variants []EnumerationVariant
}

// Variants returns the variants in insertion order.
func (e Enumeration) Variants() []EnumerationVariant {
	return slices.Clone(e.variants)
}

// EnumerationBuilder assembles an Enumeration.
type EnumerationBuilder struct {
	d        declaration
	variants []EnumerationVariant
}

// NewEnumeration starts an empty enumeration.
func NewEnumeration(name Identifier) *EnumerationBuilder {
	return &EnumerationBuilder{d: declaration{name: name}}
}

// Documentation sets the documentation text.
func (b *EnumerationBuilder) Documentation(text string) *EnumerationBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *EnumerationBuilder) Property(p Property) *EnumerationBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *EnumerationBuilder) Visibility(v Visibility) *EnumerationBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *EnumerationBuilder) Public() *EnumerationBuilder {
	return b.Visibility(VisibilityPublic)
}

// Variant appends a variant.
func (b *EnumerationBuilder) Variant(v EnumerationVariant) *EnumerationBuilder {
	b.variants = append(b.variants, v)
	return b
}

// NamedVariant appends a bare variant called name.
func (b *EnumerationBuilder) NamedVariant(name Identifier) *EnumerationBuilder {
	return b.Variant(NewVariant(name).Build())
}

// Build returns a snapshot of the enumeration.
func (b *EnumerationBuilder) Build() Enumeration {
	return Enumeration{
		declaration: b.d.clone(),
		variants:    slices.Clone(b.variants),
	}
}

func optionalValue(v Value) (Value, bool) {
	if v == nil {
		return nil, false
	}
	return CloneValue(v), true
}
