// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package manifest loads declarative module descriptions and converts them
// to ir.Module trees.
//
// A description is a YAML or JSON document:
//
//	name: address
//	content:
//	  - import:
//	      namespace: std::io
//	      items: [Write, {name: Error, alias: IoError}]
//	  - comment: hello world!
//	  - struct:
//	      name: Address
//	      visibility: package
//	      fields:
//	        - {name: line_one, type: string}
//	        - {name: line_two, type: string, optional: true}
//
// Types are written as type expressions understood by ir.ParseValueType.
// Values are converted according to the declared type.
package manifest

// Module describes an ir.Module.
type Module struct {
	Name          string     `yaml:"name" json:"name"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Inline        bool       `yaml:"inline,omitempty" json:"inline,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Content       []Item     `yaml:"content,omitempty" json:"content,omitempty"`
}

// Item is one module content entry. Exactly one field must be set.
type Item struct {
	Import       *Import    `yaml:"import,omitempty" json:"import,omitempty"`
	Comment      *string    `yaml:"comment,omitempty" json:"comment,omitempty"`
	BlockComment *string    `yaml:"block_comment,omitempty" json:"block_comment,omitempty"`
	Struct       *Struct    `yaml:"struct,omitempty" json:"struct,omitempty"`
	Enum         *Enum      `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const        *Binding   `yaml:"const,omitempty" json:"const,omitempty"`
	Var          *Binding   `yaml:"var,omitempty" json:"var,omitempty"`
	Function     *Function  `yaml:"function,omitempty" json:"function,omitempty"`
	Alias        *TypeAlias `yaml:"alias,omitempty" json:"alias,omitempty"`
	Module       *Module    `yaml:"module,omitempty" json:"module,omitempty"`
}

// Import describes an ir.Import.
type Import struct {
	Namespace  string       `yaml:"namespace" json:"namespace"`
	Visibility string       `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Items      []ImportItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// ImportItem is a name with an optional alias. In YAML and JSON it may also
// be written as a bare string.
type ImportItem struct {
	Name  string `yaml:"name" json:"name"`
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// Property describes an ir.Property. At most one of the value forms may
// be set.
type Property struct {
	Name string `yaml:"name" json:"name"`

	// Value is a scalar literal.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`

	// Identifiers is a list of bare names, such as derive(Clone, Debug).
	Identifiers []string `yaml:"identifiers,omitempty" json:"identifiers,omitempty"`

	// Pairs maps bare names to scalar literals, such as serde(rename = "x").
	Pairs map[string]any `yaml:"pairs,omitempty" json:"pairs,omitempty"`
}

// Struct describes an ir.StructuredType.
type Struct struct {
	Name          string     `yaml:"name" json:"name"`
	Kind          string     `yaml:"kind,omitempty" json:"kind,omitempty"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Extends       []string   `yaml:"extends,omitempty" json:"extends,omitempty"`
	Fields        []Field    `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods       []Function `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// Field describes an ir.Field.
type Field struct {
	Name          string     `yaml:"name" json:"name"`
	Type          string     `yaml:"type" json:"type"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Optional      bool       `yaml:"optional,omitempty" json:"optional,omitempty"`
	Default       any        `yaml:"default,omitempty" json:"default,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Enum describes an ir.Enumeration.
type Enum struct {
	Name          string     `yaml:"name" json:"name"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Variants      []Variant  `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// Variant describes an ir.EnumerationVariant.
type Variant struct {
	Name          string     `yaml:"name" json:"name"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Type          string     `yaml:"type,omitempty" json:"type,omitempty"`
	Value         any        `yaml:"value,omitempty" json:"value,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Binding describes the ir.NamedValue of a constant or variable. Type may
// be omitted for scalar values.
type Binding struct {
	Name          string     `yaml:"name" json:"name"`
	Type          string     `yaml:"type,omitempty" json:"type,omitempty"`
	Value         any        `yaml:"value" json:"value"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Function describes an ir.FunctionDecl.
type Function struct {
	Name          string      `yaml:"name" json:"name"`
	Documentation string      `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string      `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Properties    []Property  `yaml:"properties,omitempty" json:"properties,omitempty"`
	Parameters    []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Returns       string      `yaml:"returns,omitempty" json:"returns,omitempty"`
}

// Parameter describes an ir.Parameter.
type Parameter struct {
	Name          string     `yaml:"name" json:"name"`
	Type          string     `yaml:"type" json:"type"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Optional      bool       `yaml:"optional,omitempty" json:"optional,omitempty"`
	Default       any        `yaml:"default,omitempty" json:"default,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// TypeAlias describes an ir.TypeAlias.
type TypeAlias struct {
	Name          string     `yaml:"name" json:"name"`
	Type          string     `yaml:"type" json:"type"`
	Documentation string     `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Visibility    string     `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Properties    []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}
