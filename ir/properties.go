// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "slices"

// Visibility controls how far a declaration is exposed.
type Visibility uint8

const (
	// VisibilityUnspecified leaves the choice to the target language.
	VisibilityUnspecified Visibility = iota
	VisibilityPrivate
	VisibilityLocal
	VisibilityPackage
	VisibilityPublic
)

// String returns a lower-case name for the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityUnspecified:
		return "unspecified"
	case VisibilityPrivate:
		return "private"
	case VisibilityLocal:
		return "local"
	case VisibilityPackage:
		return "package"
	case VisibilityPublic:
		return "public"
	default:
		return "unknown"
	}
}

// Property is a named, optionally valued attribute attached to a declaration,
// such as derive(Clone, Debug).
type Property struct {
	name  Identifier
	value Value
}

// NewProperty returns a property without a value.
func NewProperty(name Identifier) Property {
	return Property{name: name}
}

// PropertyWithValue returns a property carrying value.
func PropertyWithValue(name Identifier, value Value) Property {
	return Property{name: name, value: CloneValue(value)}
}

// Name returns the property name.
func (p Property) Name() Identifier {
	return p.name
}

// Value returns the property value, if any.
func (p Property) Value() (Value, bool) {
	if p.value == nil {
		return nil, false
	}
	return CloneValue(p.value), true
}

func cloneProperties(ps []Property) []Property {
	if ps == nil {
		return nil
	}
	out := make([]Property, len(ps))
	for i, p := range ps {
		out[i] = Property{name: p.name, value: CloneValue(p.value)}
	}
	return out
}

// declaration holds the attributes shared by named declarations.
// Finalized entities embed it for its accessors; builders keep one to fill in.
type declaration struct {
	name          Identifier
	documentation string
	visibility    Visibility
	properties    []Property
}

// Name returns the declared name.
func (d declaration) Name() Identifier {
	return d.name
}

// Documentation returns the documentation text, or "" when there is none.
func (d declaration) Documentation() string {
	return d.documentation
}

// HasDocumentation reports whether documentation text is present.
func (d declaration) HasDocumentation() bool {
	return d.documentation != ""
}

// Visibility returns the declared visibility.
func (d declaration) Visibility() Visibility {
	return d.visibility
}

// Properties returns a copy of the attached properties in insertion order.
func (d declaration) Properties() []Property {
	return slices.Clone(d.properties)
}

// HasProperties reports whether any property is attached.
func (d declaration) HasProperties() bool {
	return len(d.properties) > 0
}

func (d declaration) clone() declaration {
	d.properties = cloneProperties(d.properties)
	return d
}
