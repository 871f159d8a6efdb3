// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

// NewLine selects the line terminator.
type NewLine uint8

const (
	// LF terminates lines with "\n".
	LF NewLine = iota

	// CRLF terminates lines with "\r\n".
	CRLF
)

// String returns the terminator bytes.
func (n NewLine) String() string {
	if n == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Whitespace is the layout policy of a CodeWriter.
type Whitespace struct {
	// Indent is written once per indentation level.
	Indent string

	// NewLine is the line terminator.
	NewLine NewLine

	// TrimTrailing removes trailing spaces and tabs from every line.
	TrimTrailing bool
}

// DefaultWhitespace returns four-space indentation, LF terminators and
// trailing whitespace trimming.
func DefaultWhitespace() Whitespace {
	return Whitespace{
		Indent:       "    ",
		NewLine:      LF,
		TrimTrailing: true,
	}
}
