// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

import "github.com/gogpu/codewriter/ir"

// Renderer converts IR elements into one target syntax.
//
// Each method writes one element through w and returns with w at the start
// of a fresh line. Declarations emit their parts in a fixed order:
// documentation, attributes, visibility, then the declaration itself.
//
// Embed Unimplemented to inherit ErrUnsupportedElementKind failures for
// the kinds a target cannot express.
type Renderer interface {
	// WriteModule writes the header of a module, before its content.
	// It may write nothing.
	WriteModule(w *CodeWriter, m ir.Module) error

	// WriteSubModule writes the declaration of a nested module. IsInline
	// reports whether the module's content follows in the same stream.
	WriteSubModule(w *CodeWriter, m ir.Module) error

	// WriteImport writes an import of a namespace or some of its items.
	WriteImport(w *CodeWriter, i ir.Import) error

	// WriteComment writes a line or block comment.
	WriteComment(w *CodeWriter, c ir.Comment) error

	// WriteStructuredType writes a struct, class, union, interface or service.
	WriteStructuredType(w *CodeWriter, s ir.StructuredType) error

	// WriteEnumeration writes an enumeration and its variants.
	WriteEnumeration(w *CodeWriter, e ir.Enumeration) error

	// WriteConstant writes a named constant value.
	WriteConstant(w *CodeWriter, c ir.Constant) error

	// WriteVariable writes a named mutable value.
	WriteVariable(w *CodeWriter, v ir.Variable) error

	// WriteFunction writes a function signature.
	WriteFunction(w *CodeWriter, f ir.FunctionDecl) error

	// WriteTypeAlias writes a new name for an existing type.
	WriteTypeAlias(w *CodeWriter, a ir.TypeAlias) error
}

// SubModuleCloser is implemented by renderers that must terminate an
// inline sub-module after its content, for example with a closing brace.
type SubModuleCloser interface {
	CloseSubModule(w *CodeWriter, m ir.Module) error
}

// Unimplemented rejects every element kind.
type Unimplemented struct{}

var _ Renderer = Unimplemented{}

// WriteModule reports a module header as an unsupported element kind.
func (Unimplemented) WriteModule(*CodeWriter, ir.Module) error {
	return Unsupported(ir.ElementModule)
}

// WriteSubModule reports a sub-module as an unsupported element kind.
func (Unimplemented) WriteSubModule(*CodeWriter, ir.Module) error {
	return Unsupported(ir.ElementModule)
}

// WriteImport reports an import as an unsupported element kind.
func (Unimplemented) WriteImport(*CodeWriter, ir.Import) error {
	return Unsupported(ir.ElementImport)
}

// WriteComment reports a comment as an unsupported element kind.
func (Unimplemented) WriteComment(*CodeWriter, ir.Comment) error {
	return Unsupported(ir.ElementComment)
}

// WriteStructuredType reports a structured type as an unsupported element kind.
func (Unimplemented) WriteStructuredType(*CodeWriter, ir.StructuredType) error {
	return Unsupported(ir.ElementStructuredType)
}

// WriteEnumeration reports an enumeration as an unsupported element kind.
func (Unimplemented) WriteEnumeration(*CodeWriter, ir.Enumeration) error {
	return Unsupported(ir.ElementEnumeration)
}

// WriteConstant reports a constant as an unsupported element kind.
func (Unimplemented) WriteConstant(*CodeWriter, ir.Constant) error {
	return Unsupported(ir.ElementConstant)
}

// WriteVariable reports a variable as an unsupported element kind.
func (Unimplemented) WriteVariable(*CodeWriter, ir.Variable) error {
	return Unsupported(ir.ElementVariable)
}

// WriteFunction reports a function as an unsupported element kind.
func (Unimplemented) WriteFunction(*CodeWriter, ir.FunctionDecl) error {
	return Unsupported(ir.ElementFunction)
}

// WriteTypeAlias reports a type alias as an unsupported element kind.
func (Unimplemented) WriteTypeAlias(*CodeWriter, ir.TypeAlias) error {
	return Unsupported(ir.ElementTypeAlias)
}

// whitespaceOf returns the layout policy a renderer asks for.
func whitespaceOf(r Renderer) Whitespace {
	if p, ok := r.(interface{ Whitespace() Whitespace }); ok {
		return p.Whitespace()
	}
	return DefaultWhitespace()
}
