// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rust

import "github.com/gogpu/codewriter/ir"

// rustKeywords contains strict and reserved keywords of the 2021 edition.
var rustKeywords = map[string]struct{}{
	// Strict keywords
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {}, "else": {},
	"enum": {}, "extern": {}, "false": {}, "fn": {}, "for": {}, "if": {},
	"impl": {}, "in": {}, "let": {}, "loop": {}, "match": {}, "mod": {},
	"move": {}, "mut": {}, "pub": {}, "ref": {}, "return": {}, "self": {},
	"Self": {}, "static": {}, "struct": {}, "super": {}, "trait": {}, "true": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
	"async": {}, "await": {}, "dyn": {},

	// Reserved keywords
	"abstract": {}, "become": {}, "box": {}, "do": {}, "final": {}, "macro": {},
	"override": {}, "priv": {}, "typeof": {}, "unsized": {}, "virtual": {},
	"yield": {}, "try": {},
}

// rawForbidden lists keywords that cannot be used as raw identifiers.
var rawForbidden = map[string]struct{}{
	"crate": {}, "self": {}, "Self": {}, "super": {},
}

// isKeyword checks if a name is a Rust keyword.
func isKeyword(name string) bool {
	_, ok := rustKeywords[name]
	return ok
}

// escapeKeyword returns name as a raw identifier if it is a keyword.
func escapeKeyword(name string) string {
	if !isKeyword(name) {
		return name
	}
	if _, ok := rawForbidden[name]; ok {
		return name + "_"
	}
	return "r#" + name
}

// name returns the output form of a declared name.
func (r *Renderer) name(id ir.Identifier) string {
	if r.options.EscapeKeywords {
		return escapeKeyword(id.String())
	}
	return id.String()
}
