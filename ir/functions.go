// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "slices"

// Parameter is a typed argument of a FunctionDecl.
type Parameter struct {
	declaration
	typ      ValueType
	optional bool
	value    Value
}

// Type returns the parameter type.
func (p Parameter) Type() ValueType {
	return CloneValueType(p.typ)
}

// IsOptional reports whether the argument may be omitted.
func (p Parameter) IsOptional() bool {
	return p.optional
}

// IsRequired is the inverse of IsOptional.
func (p Parameter) IsRequired() bool {
	return !p.optional
}

// Default returns the default value, if any.
func (p Parameter) Default() (Value, bool) {
	return optionalValue(p.value)
}

// ParameterBuilder assembles a Parameter.
type ParameterBuilder struct {
	d        declaration
	typ      ValueType
	optional bool
	value    Value
}

// NewParameter starts a required parameter.
func NewParameter(name Identifier, typ ValueType) *ParameterBuilder {
	return &ParameterBuilder{d: declaration{name: name}, typ: typ}
}

// Documentation sets the documentation text.
func (b *ParameterBuilder) Documentation(text string) *ParameterBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *ParameterBuilder) Property(p Property) *ParameterBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Optional marks the parameter as optional.
func (b *ParameterBuilder) Optional() *ParameterBuilder {
	b.optional = true
	return b
}

// Required marks the parameter as required, the default.
func (b *ParameterBuilder) Required() *ParameterBuilder {
	b.optional = false
	return b
}

// Default sets the default value.
func (b *ParameterBuilder) Default(v Value) *ParameterBuilder {
	b.value = v
	return b
}

// Build returns a snapshot of the parameter.
func (b *ParameterBuilder) Build() Parameter {
	return Parameter{
		declaration: b.d.clone(),
		typ:         CloneValueType(b.typ),
		optional:    b.optional,
		value:       CloneValue(b.value),
	}
}

// FunctionDecl is a callable signature. The IR never holds bodies.
type FunctionDecl struct {
	declaration
	parameters []Parameter
	result     ValueType
}

// Parameters returns the parameters in order.
func (f FunctionDecl) Parameters() []Parameter {
	return slices.Clone(f.parameters)
}

// Result returns the return type, if any.
func (f FunctionDecl) Result() (ValueType, bool) {
	if f.result == nil {
		return nil, false
	}
	return CloneValueType(f.result), true
}

// FunctionBuilder assembles a FunctionDecl.
type FunctionBuilder struct {
	d          declaration
	parameters []Parameter
	result     ValueType
}

// NewFunction starts a function without parameters or result.
func NewFunction(name Identifier) *FunctionBuilder {
	return &FunctionBuilder{d: declaration{name: name}}
}

// Documentation sets the documentation text.
func (b *FunctionBuilder) Documentation(text string) *FunctionBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *FunctionBuilder) Property(p Property) *FunctionBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *FunctionBuilder) Visibility(v Visibility) *FunctionBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *FunctionBuilder) Public() *FunctionBuilder {
	return b.Visibility(VisibilityPublic)
}

// Parameter appends a parameter.
func (b *FunctionBuilder) Parameter(p Parameter) *FunctionBuilder {
	b.parameters = append(b.parameters, p)
	return b
}

// Returns sets the return type. nil clears it.
func (b *FunctionBuilder) Returns(t ValueType) *FunctionBuilder {
	b.result = t
	return b
}

// Build returns a snapshot of the function declaration.
func (b *FunctionBuilder) Build() FunctionDecl {
	return FunctionDecl{
		declaration: b.d.clone(),
		parameters:  slices.Clone(b.parameters),
		result:      CloneValueType(b.result),
	}
}
