// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package thrift

import "github.com/gogpu/codewriter/ir"

// thriftKeywords contains Thrift IDL keywords and the reserved words the
// compiler rejects as identifiers.
var thriftKeywords = map[string]struct{}{
	// IDL keywords
	"include": {}, "cpp_include": {}, "namespace": {}, "const": {}, "typedef": {},
	"enum": {}, "struct": {}, "union": {}, "exception": {}, "service": {},
	"extends": {}, "required": {}, "optional": {}, "oneway": {}, "void": {},
	"throws": {}, "list": {}, "set": {}, "map": {}, "true": {}, "false": {},

	// Base types
	"bool": {}, "byte": {}, "i8": {}, "i16": {}, "i32": {}, "i64": {},
	"double": {}, "string": {}, "binary": {}, "uuid": {},

	// Reserved words of target languages
	"BEGIN": {}, "END": {}, "__CLASS__": {}, "__DIR__": {}, "__FILE__": {},
	"__FUNCTION__": {}, "__LINE__": {}, "__METHOD__": {}, "__NAMESPACE__": {},
	"abstract": {}, "alias": {}, "and": {}, "args": {}, "as": {}, "assert": {},
	"begin": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "clone": {},
	"continue": {}, "declare": {}, "def": {}, "default": {}, "del": {},
	"delete": {}, "do": {}, "dynamic": {}, "elif": {}, "else": {}, "elseif": {},
	"except": {}, "exec": {}, "finally": {}, "float": {}, "for": {},
	"foreach": {}, "from": {}, "function": {}, "global": {}, "goto": {},
	"if": {}, "implements": {}, "import": {}, "in": {}, "inline": {},
	"instanceof": {}, "interface": {}, "is": {}, "lambda": {}, "module": {},
	"native": {}, "new": {}, "next": {}, "nil": {}, "not": {}, "or": {},
	"package": {}, "pass": {}, "public": {}, "print": {}, "private": {},
	"protected": {}, "raise": {}, "redo": {}, "rescue": {}, "retry": {},
	"register": {}, "return": {}, "self": {}, "sizeof": {}, "static": {},
	"super": {}, "switch": {}, "synchronized": {}, "then": {}, "this": {},
	"throw": {}, "transient": {}, "try": {}, "undef": {}, "unless": {},
	"unsigned": {}, "until": {}, "use": {}, "var": {}, "virtual": {},
	"volatile": {}, "when": {}, "while": {}, "with": {}, "xor": {}, "yield": {},
}

// isKeyword checks if a name is a Thrift reserved word.
func isKeyword(name string) bool {
	_, ok := thriftKeywords[name]
	return ok
}

// escapeKeyword appends an underscore to reserved names.
func escapeKeyword(name string) string {
	if isKeyword(name) {
		return name + "_"
	}
	return name
}

// name returns the output form of a declared name.
func (r *Renderer) name(id ir.Identifier) string {
	if r.options.EscapeKeywords {
		return escapeKeyword(id.String())
	}
	return id.String()
}
