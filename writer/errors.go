// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

import (
	"errors"
	"fmt"

	"github.com/gogpu/codewriter/ir"
)

// ErrorKind categorizes rendering errors.
type ErrorKind uint8

const (
	// ErrUnsupportedElementKind indicates a renderer has no output form for
	// an element kind.
	ErrUnsupportedElementKind ErrorKind = iota

	// ErrIO indicates a write to the output sink failed.
	ErrIO

	// ErrFormatting indicates an element whose shape the target syntax
	// cannot express.
	ErrFormatting
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedElementKind:
		return "UnsupportedElementKind"
	case ErrIO:
		return "IO"
	case ErrFormatting:
		return "Formatting"
	default:
		return "Unknown"
	}
}

// Error represents a rendering error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Element names the rejected element kind for ErrUnsupportedElementKind.
	Element ir.ElementKind

	// Message provides details for ErrFormatting.
	Message string

	// Err is the underlying cause for ErrIO.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnsupportedElementKind:
		return fmt.Sprintf("writer %s: %s", e.Kind, e.Element)
	case ErrIO:
		return fmt.Sprintf("writer %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("writer %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Unsupported creates an ErrUnsupportedElementKind error for kind.
func Unsupported(kind ir.ElementKind) *Error {
	return &Error{Kind: ErrUnsupportedElementKind, Element: kind}
}

// IOError wraps a sink failure.
func IOError(err error) *Error {
	return &Error{Kind: ErrIO, Err: err}
}

// Formatting creates an ErrFormatting error.
func Formatting(format string, args ...any) *Error {
	return &Error{Kind: ErrFormatting, Message: fmt.Sprintf(format, args...)}
}

// IsUnsupported returns true if the error is ErrUnsupportedElementKind.
func (e *Error) IsUnsupported() bool {
	return e.Kind == ErrUnsupportedElementKind
}

// IsIO returns true if the error is ErrIO.
func (e *Error) IsIO() bool {
	return e.Kind == ErrIO
}

// UnsupportedKind reports the element kind carried by an
// ErrUnsupportedElementKind anywhere in err's chain.
func UnsupportedKind(err error) (ir.ElementKind, bool) {
	var we *Error
	if errors.As(err, &we) && we.IsUnsupported() {
		return we.Element, true
	}
	return 0, false
}
