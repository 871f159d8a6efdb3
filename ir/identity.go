// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"slices"
	"strings"
)

// Identifier is a validated, non-empty name token.
//
// The zero Identifier is not valid and is only used to signal "no name",
// for example an ImportItem without an alias.
type Identifier struct {
	text string
}

// NewIdentifier returns an Identifier for text. Empty text fails with an
// *IdentifierError.
func NewIdentifier(text string) (Identifier, error) {
	if text == "" {
		return Identifier{}, &IdentifierError{Text: text}
	}
	return Identifier{text: text}, nil
}

// MustIdentifier is like NewIdentifier but panics on invalid text.
// It simplifies building models from literals.
func MustIdentifier(text string) Identifier {
	id, err := NewIdentifier(text)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the underlying text.
func (id Identifier) String() string {
	return id.text
}

// IsZero reports whether id is the zero Identifier.
func (id Identifier) IsZero() bool {
	return id.text == ""
}

// Compare orders identifiers by their exact text.
func (id Identifier) Compare(other Identifier) int {
	return strings.Compare(id.text, other.text)
}

// Namespace is a non-empty path of identifiers, such as std::io.
type Namespace struct {
	path []Identifier
}

// NewNamespace returns a namespace made of first followed by rest.
func NewNamespace(first Identifier, rest ...Identifier) Namespace {
	path := make([]Identifier, 0, 1+len(rest))
	path = append(path, first)
	path = append(path, rest...)
	return Namespace{path: path}
}

// ParseNamespace splits text on "::", "." or "/" and validates every segment.
func ParseNamespace(text string) (Namespace, error) {
	normalized := strings.NewReplacer("::", "\x00", ".", "\x00", "/", "\x00").Replace(text)
	parts := strings.Split(normalized, "\x00")
	path := make([]Identifier, 0, len(parts))
	for _, part := range parts {
		id, err := NewIdentifier(strings.TrimSpace(part))
		if err != nil {
			return Namespace{}, err
		}
		path = append(path, id)
	}
	return Namespace{path: path}, nil
}

// Path returns a copy of the namespace segments.
func (ns Namespace) Path() []Identifier {
	return slices.Clone(ns.path)
}

// Len returns the number of segments.
func (ns Namespace) Len() int {
	return len(ns.path)
}

// With returns a new namespace extended by name.
func (ns Namespace) With(name Identifier) Namespace {
	path := make([]Identifier, 0, len(ns.path)+1)
	path = append(path, ns.path...)
	path = append(path, name)
	return Namespace{path: path}
}

// Parent returns the namespace without its last segment. It reports false
// for single-segment namespaces, which have no parent.
func (ns Namespace) Parent() (Namespace, bool) {
	if len(ns.path) < 2 {
		return Namespace{}, false
	}
	return Namespace{path: slices.Clone(ns.path[:len(ns.path)-1])}, true
}

// Last returns the final segment.
func (ns Namespace) Last() Identifier {
	if len(ns.path) == 0 {
		return Identifier{}
	}
	return ns.path[len(ns.path)-1]
}

// Contains reports whether name is one of the segments.
func (ns Namespace) Contains(name Identifier) bool {
	return slices.Contains(ns.path, name)
}

// Join concatenates the segments with separator.
func (ns Namespace) Join(separator string) string {
	parts := make([]string, len(ns.path))
	for i, id := range ns.path {
		parts[i] = id.text
	}
	return strings.Join(parts, separator)
}

// String joins the segments with ".".
func (ns Namespace) String() string {
	return ns.Join(".")
}

// Equal reports whether both namespaces have the same segments.
func (ns Namespace) Equal(other Namespace) bool {
	return slices.Equal(ns.path, other.path)
}
