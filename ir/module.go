// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "slices"

// ElementKind names the kind of a module content item. The string
// forms appear in unsupported-element errors.
type ElementKind uint8

const (
	ElementModule ElementKind = iota
	ElementImport
	ElementComment
	ElementStructuredType
	ElementEnumeration
	ElementConstant
	ElementVariable
	ElementFunction
	ElementTypeAlias
)

// String returns the element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementModule:
		return "module"
	case ElementImport:
		return "import"
	case ElementComment:
		return "comment"
	case ElementStructuredType:
		return "record"
	case ElementEnumeration:
		return "enumeration"
	case ElementConstant:
		return "constant"
	case ElementVariable:
		return "variable"
	case ElementFunction:
		return "function_decl"
	case ElementTypeAlias:
		return "type_alias"
	default:
		return "unknown"
	}
}

// ModuleContent is one item of a Module.
//
// The set of implementations is closed: Import, Comment, StructuredType,
// Enumeration, Constant, Variable, FunctionDecl, TypeAlias and Module.
type ModuleContent interface {
	ElementKind() ElementKind
	moduleContent()
}

// Constant is a module-level constant.
type Constant struct {
	NamedValue
}

// Variable is a module-level variable.
type Variable struct {
	NamedValue
}

func (Import) ElementKind() ElementKind         { return ElementImport }
func (Comment) ElementKind() ElementKind        { return ElementComment }
func (StructuredType) ElementKind() ElementKind { return ElementStructuredType }
func (Enumeration) ElementKind() ElementKind    { return ElementEnumeration }
func (Constant) ElementKind() ElementKind       { return ElementConstant }
func (Variable) ElementKind() ElementKind       { return ElementVariable }
func (FunctionDecl) ElementKind() ElementKind   { return ElementFunction }
func (TypeAlias) ElementKind() ElementKind      { return ElementTypeAlias }
func (Module) ElementKind() ElementKind         { return ElementModule }

func (Import) moduleContent()         {}
func (Comment) moduleContent()        {}
func (StructuredType) moduleContent() {}
func (Enumeration) moduleContent()    {}
func (Constant) moduleContent()       {}
func (Variable) moduleContent()       {}
func (FunctionDecl) moduleContent()   {}
func (TypeAlias) moduleContent()      {}
func (Module) moduleContent()         {}

// Comment is a line or block remark.
type Comment struct {
	text  string
	block bool
}

// NewLineComment returns a line comment.
func NewLineComment(text string) Comment {
	return Comment{text: text}
}

// NewBlockComment returns a block comment.
func NewBlockComment(text string) Comment {
	return Comment{text: text, block: true}
}

// Text returns the comment text. It may span several lines.
func (c Comment) Text() string {
	return c.text
}

// IsBlock reports whether this is a block comment.
func (c Comment) IsBlock() bool {
	return c.block
}

// IsLine reports whether this is a line comment.
func (c Comment) IsLine() bool {
	return !c.block
}

// ImportItem is one name brought into scope by an Import.
type ImportItem struct {
	name  Identifier
	alias Identifier
}

// NewImportItem returns an item without alias.
func NewImportItem(name Identifier) ImportItem {
	return ImportItem{name: name}
}

// NewImportItemAs returns an item renamed to alias.
func NewImportItemAs(name, alias Identifier) ImportItem {
	return ImportItem{name: name, alias: alias}
}

// Name returns the imported name.
func (i ImportItem) Name() Identifier {
	return i.name
}

// Alias returns the alias, if any.
func (i ImportItem) Alias() (Identifier, bool) {
	return i.alias, !i.alias.IsZero()
}

// Import brings a namespace, or specific items from it, into scope.
type Import struct {
	visibility Visibility
	namespace  Namespace
	items      []ImportItem
}

// Visibility returns the re-export visibility.
func (i Import) Visibility() Visibility {
	return i.visibility
}

// Namespace returns the imported namespace.
func (i Import) Namespace() Namespace {
	return i.namespace
}

// Items returns the imported items in order.
func (i Import) Items() []ImportItem {
	return slices.Clone(i.items)
}

// ImportBuilder assembles an Import.
type ImportBuilder struct {
	visibility Visibility
	namespace  Namespace
	items      []ImportItem
}

// NewImport starts an import of ns without items.
func NewImport(ns Namespace) *ImportBuilder {
	return &ImportBuilder{namespace: ns}
}

// Visibility sets the re-export visibility.
func (b *ImportBuilder) Visibility(v Visibility) *ImportBuilder {
	b.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *ImportBuilder) Public() *ImportBuilder {
	return b.Visibility(VisibilityPublic)
}

// Item appends an item.
func (b *ImportBuilder) Item(name Identifier) *ImportBuilder {
	b.items = append(b.items, NewImportItem(name))
	return b
}

// ItemAs appends an aliased item.
func (b *ImportBuilder) ItemAs(name, alias Identifier) *ImportBuilder {
	b.items = append(b.items, NewImportItemAs(name, alias))
	return b
}

// Build returns a snapshot of the import.
func (b *ImportBuilder) Build() Import {
	return Import{
		visibility: b.visibility,
		namespace:  Namespace{path: slices.Clone(b.namespace.path)},
		items:      slices.Clone(b.items),
	}
}

// TypeAlias is a named synonym for a type expression.
type TypeAlias struct {
	declaration
	target ValueType
}

// Target returns the aliased type.
func (a TypeAlias) Target() ValueType {
	return CloneValueType(a.target)
}

// TypeAliasBuilder assembles a TypeAlias.
type TypeAliasBuilder struct {
	d      declaration
	target ValueType
}

// NewTypeAlias starts an alias of target called name.
func NewTypeAlias(name Identifier, target ValueType) *TypeAliasBuilder {
	return &TypeAliasBuilder{d: declaration{name: name}, target: target}
}

// Documentation sets the documentation text.
func (b *TypeAliasBuilder) Documentation(text string) *TypeAliasBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *TypeAliasBuilder) Property(p Property) *TypeAliasBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *TypeAliasBuilder) Visibility(v Visibility) *TypeAliasBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *TypeAliasBuilder) Public() *TypeAliasBuilder {
	return b.Visibility(VisibilityPublic)
}

// Build returns a snapshot of the alias.
func (b *TypeAliasBuilder) Build() TypeAlias {
	return TypeAlias{declaration: b.d.clone(), target: CloneValueType(b.target)}
}

// Module is an ordered, heterogeneous sequence of declarations.
// Modules nest through sub-module content items and form a tree.
type Module struct {
	declaration
	inline  bool
	content []ModuleContent
}

// IsInline reports whether the module should be merged into its parent's
// output rather than written on its own.
func (m Module) IsInline() bool {
	return m.inline
}

// WithInline returns a copy of m with the inline flag set to inline.
func (m Module) WithInline(inline bool) Module {
	m.inline = inline
	return m
}

// Content returns the content items in order.
func (m Module) Content() []ModuleContent {
	return slices.Clone(m.content)
}

// SubModules returns the direct sub-modules in content order.
func (m Module) SubModules() []Module {
	var subs []Module
	for _, item := range m.content {
		if sub, ok := item.(Module); ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// ModuleBuilder assembles a Module.
type ModuleBuilder struct {
	d       declaration
	inline  bool
	content []ModuleContent
}

// NewModule starts an empty module.
func NewModule(name Identifier) *ModuleBuilder {
	return &ModuleBuilder{d: declaration{name: name}}
}

// NewInlineModule starts an empty inline module.
func NewInlineModule(name Identifier) *ModuleBuilder {
	return &ModuleBuilder{d: declaration{name: name}, inline: true}
}

// Documentation sets the documentation text.
func (b *ModuleBuilder) Documentation(text string) *ModuleBuilder {
	b.d.documentation = text
	return b
}

// Property appends a property.
func (b *ModuleBuilder) Property(p Property) *ModuleBuilder {
	b.d.properties = append(b.d.properties, p)
	return b
}

// Visibility sets the visibility.
func (b *ModuleBuilder) Visibility(v Visibility) *ModuleBuilder {
	b.d.visibility = v
	return b
}

// Public sets VisibilityPublic.
func (b *ModuleBuilder) Public() *ModuleBuilder {
	return b.Visibility(VisibilityPublic)
}

// Inline sets the inline flag.
func (b *ModuleBuilder) Inline(inline bool) *ModuleBuilder {
	b.inline = inline
	return b
}

// Content appends any content item.
func (b *ModuleBuilder) Content(item ModuleContent) *ModuleBuilder {
	b.content = append(b.content, item)
	return b
}

// Import appends an import.
func (b *ModuleBuilder) Import(i Import) *ModuleBuilder {
	return b.Content(i)
}

// Comment appends a comment.
func (b *ModuleBuilder) Comment(c Comment) *ModuleBuilder {
	return b.Content(c)
}

// Structure appends a structured type.
func (b *ModuleBuilder) Structure(s StructuredType) *ModuleBuilder {
	return b.Content(s)
}

// Enumeration appends an enumeration.
func (b *ModuleBuilder) Enumeration(e Enumeration) *ModuleBuilder {
	return b.Content(e)
}

// Constant appends a constant.
func (b *ModuleBuilder) Constant(v NamedValue) *ModuleBuilder {
	return b.Content(Constant{NamedValue: v})
}

// Variable appends a variable.
func (b *ModuleBuilder) Variable(v NamedValue) *ModuleBuilder {
	return b.Content(Variable{NamedValue: v})
}

// Function appends a function declaration.
func (b *ModuleBuilder) Function(f FunctionDecl) *ModuleBuilder {
	return b.Content(f)
}

// Alias appends a type alias.
func (b *ModuleBuilder) Alias(a TypeAlias) *ModuleBuilder {
	return b.Content(a)
}

// SubModule appends a nested module.
func (b *ModuleBuilder) SubModule(m Module) *ModuleBuilder {
	return b.Content(m)
}

// Build returns a snapshot of the module.
func (b *ModuleBuilder) Build() Module {
	return Module{
		declaration: b.d.clone(),
		inline:      b.inline,
		content:     slices.Clone(b.content),
	}
}
