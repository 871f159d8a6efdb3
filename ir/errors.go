// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is matched by every IdentifierError.
var ErrInvalidIdentifier = errors.New("invalid identifier value")

// IdentifierError reports text that cannot be used as an Identifier.
type IdentifierError struct {
	// Text is the rejected input.
	Text string
}

// Error implements the error interface.
func (e *IdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier value: '%s'", e.Text)
}

// Is reports whether target is ErrInvalidIdentifier.
func (e *IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// TypeSyntaxError reports a malformed type expression passed to
// ParseValueType.
type TypeSyntaxError struct {
	Text   string
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *TypeSyntaxError) Error() string {
	return fmt.Sprintf("type expression %q at offset %d: %s", e.Text, e.Offset, e.Msg)
}
