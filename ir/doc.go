// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ir defines the intermediate representation for codewriter.
//
// The IR is designed to be:
//   - Language-agnostic: Not tied to any specific output syntax
//   - Declarative: Types, constants and signatures, never executable bodies
//   - Immutable: Finalized entities have no mutators
//
// # Structure
//
// The IR is organized around a Module type that contains an ordered,
// heterogeneous sequence of content items:
//   - Import: a namespace brought into scope, with optional items
//   - Comment: a line or block remark
//   - StructuredType: struct, union, exception, class, interface or service
//   - Enumeration: a closed set of variants
//   - Constant and Variable: named, typed values
//   - FunctionDecl: a callable signature
//   - TypeAlias: a named synonym for a type expression
//   - Module: a nested sub-module
//
// # Builders
//
// Every entity with more than a couple of attributes is constructed through a
// builder. Builder methods chain and a final Build call snapshots the value:
//
//	field := ir.NewField(ir.MustIdentifier("city"), ir.KnownString).
//	    Documentation("The city in which the property exists.").
//	    Public().
//	    Build()
//
// Later calls on the builder never affect values it already produced.
//
// # References
//
// Cross-entity references (a field typed as ReferenceType) are by name only.
// The IR does not resolve them.
package ir
