// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// BlockPlacement controls where block delimiters sit relative to line breaks.
type BlockPlacement uint8

const (
	// PlaceTrailing keeps the block on the current line: "x { a }".
	PlaceTrailing BlockPlacement = iota

	// PlaceTrailingNewLine opens at the end of the current line and indents
	// the content. The closing marker starts its own line and is left
	// pending so callers may append to it.
	PlaceTrailingNewLine

	// PlaceOwnLine puts both markers on their own lines.
	PlaceOwnLine

	// PlaceOwnLineIndented is PlaceOwnLine with the markers one level
	// deeper than the surrounding code and the content two levels deeper.
	PlaceOwnLineIndented
)

// Block is a pair of delimiters with a placement policy.
type Block struct {
	Open      string
	Close     string
	Placement BlockPlacement
}

// Braces is the "{" "}" block trailing its header line.
var Braces = Block{Open: "{", Close: "}", Placement: PlaceTrailingNewLine}

// CodeWriter is a line-buffered layout engine.
//
// Text accumulates in a pending line that is written to the sink, prefixed
// by the current indentation, when a line ends. A failed write is sticky:
// every later operation returns the same *Error.
type CodeWriter struct {
	out   io.Writer
	ws    Whitespace
	line  strings.Builder
	depth int
	lines int
	err   error
}

// NewCodeWriter returns a CodeWriter using DefaultWhitespace.
func NewCodeWriter(out io.Writer) *CodeWriter {
	return NewCodeWriterWith(out, DefaultWhitespace())
}

// NewCodeWriterWith returns a CodeWriter using ws.
func NewCodeWriterWith(out io.Writer, ws Whitespace) *CodeWriter {
	return &CodeWriter{out: out, ws: ws}
}

// Whitespace returns the layout policy.
func (w *CodeWriter) Whitespace() Whitespace {
	return w.ws
}

// Err returns the first sink error, if any.
func (w *CodeWriter) Err() error {
	return w.err
}

// Text appends s to the current line. Every "\n" or "\r\n" inside s ends
// the line in progress.
func (w *CodeWriter) Text(s string) error {
	if w.err != nil {
		return w.err
	}
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			w.line.WriteString(s)
			return nil
		}
		w.line.WriteString(strings.TrimSuffix(s[:i], "\r"))
		if err := w.NewLine(); err != nil {
			return err
		}
		s = s[i+1:]
	}
}

// Textf appends formatted text to the current line.
func (w *CodeWriter) Textf(format string, args ...any) error {
	return w.Text(fmt.Sprintf(format, args...))
}

// Write implements io.Writer on top of Text.
func (w *CodeWriter) Write(p []byte) (int, error) {
	if err := w.Text(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Space appends a single space.
func (w *CodeWriter) Space() error {
	return w.Text(" ")
}

// NewLine writes the current line and a terminator.
func (w *CodeWriter) NewLine() error {
	if w.err != nil {
		return w.err
	}
	line := w.line.String()
	w.line.Reset()
	if w.ws.TrimTrailing {
		line = strings.TrimRight(line, " \t")
	}

	// Empty lines carry no indentation once trimming is on.
	if line != "" || !w.ws.TrimTrailing {
		line = w.indentation() + line
	}
	return w.emit(line + w.ws.NewLine.String())
}

// BlankLine ends any pending text, then writes one empty line.
func (w *CodeWriter) BlankLine() error {
	if w.err != nil {
		return w.err
	}
	if strings.TrimSpace(w.line.String()) != "" {
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	w.line.Reset()
	return w.emit(w.ws.NewLine.String())
}

// EndLine ends the current line if it holds any text.
func (w *CodeWriter) EndLine() error {
	if w.err != nil {
		return w.err
	}
	if w.line.Len() == 0 {
		return nil
	}
	return w.NewLine()
}

func (w *CodeWriter) indentation() string {
	return strings.Repeat(w.ws.Indent, w.depth)
}

func (w *CodeWriter) emit(s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = IOError(err)
		return w.err
	}
	w.lines++
	return nil
}

// Indent increases the indentation depth.
func (w *CodeWriter) Indent() {
	w.depth++
}

// Outdent decreases the indentation depth. It panics below zero.
func (w *CodeWriter) Outdent() {
	if w.depth == 0 {
		panic("writer: unbalanced Outdent")
	}
	w.depth--
}

// Depth returns the indentation depth.
func (w *CodeWriter) Depth() int {
	return w.depth
}

// Position returns the number of lines written and the column the next
// character would occupy, counting indentation.
func (w *CodeWriter) Position() (lines, column int) {
	column = w.depth*utf8.RuneCountInString(w.ws.Indent) + utf8.RuneCountInString(w.line.String())
	return w.lines, column
}

// AtLineStart reports whether no text is pending.
func (w *CodeWriter) AtLineStart() bool {
	return w.line.Len() == 0
}

// OpenBlock writes the opening marker of b.
func (w *CodeWriter) OpenBlock(b Block) error {
	switch b.Placement {
	case PlaceTrailing:
		if err := w.Space(); err != nil {
			return err
		}
		if err := w.Text(b.Open); err != nil {
			return err
		}
		return w.Space()
	case PlaceTrailingNewLine:
		if err := w.Space(); err != nil {
			return err
		}
		if err := w.Text(b.Open); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	case PlaceOwnLine:
		if err := w.ownLine(b.Open); err != nil {
			return err
		}
	case PlaceOwnLineIndented:
		if err := w.EndLine(); err != nil {
			return err
		}
		w.Indent()
		if err := w.ownLine(b.Open); err != nil {
			return err
		}
	default:
		return Formatting("unknown block placement %d", b.Placement)
	}
	w.Indent()
	return nil
}

// CloseBlock writes the closing marker of b, undoing the indentation added
// by OpenBlock.
func (w *CodeWriter) CloseBlock(b Block) error {
	switch b.Placement {
	case PlaceTrailing:
		if err := w.Space(); err != nil {
			return err
		}
		return w.Text(b.Close)
	case PlaceTrailingNewLine:
		if err := w.EndLine(); err != nil {
			return err
		}
		w.Outdent()
		return w.Text(b.Close)
	case PlaceOwnLine:
		if err := w.EndLine(); err != nil {
			return err
		}
		w.Outdent()
		return w.ownLine(b.Close)
	case PlaceOwnLineIndented:
		if err := w.EndLine(); err != nil {
			return err
		}
		w.Outdent()
		if err := w.ownLine(b.Close); err != nil {
			return err
		}
		w.Outdent()
		return nil
	default:
		return Formatting("unknown block placement %d", b.Placement)
	}
}

// ownLine writes marker on a line of its own.
func (w *CodeWriter) ownLine(marker string) error {
	if err := w.EndLine(); err != nil {
		return err
	}
	if err := w.Text(marker); err != nil {
		return err
	}
	return w.NewLine()
}

// Flush writes any pending text without a terminator and flushes the sink
// if it buffers.
func (w *CodeWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.line.Len() > 0 {
		line := w.line.String()
		w.line.Reset()
		if w.ws.TrimTrailing {
			line = strings.TrimRight(line, " \t")
		}
		if _, err := io.WriteString(w.out, w.indentation()+line); err != nil {
			w.err = IOError(err)
			return w.err
		}
	}
	if f, ok := w.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			w.err = IOError(err)
			return w.err
		}
	}
	return nil
}
