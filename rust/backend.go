// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rust

import (
	"fmt"
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// FileExtension is the extension used for generated files.
const FileExtension = ".rs"

// DocStyle selects the documentation comment form.
type DocStyle uint8

const (
	// DocBlock writes /** ... */ and /*! ... */ comments.
	DocBlock DocStyle = iota

	// DocLine writes /// and //! comments.
	DocLine
)

// Options configures Rust code generation.
type Options struct {
	// Whitespace is the layout policy.
	Whitespace writer.Whitespace

	// DocStyle selects the documentation comment form.
	DocStyle DocStyle

	// EscapeKeywords rewrites declared names that are Rust keywords.
	EscapeKeywords bool
}

// DefaultOptions returns sensible default options for Rust generation.
func DefaultOptions() Options {
	return Options{
		Whitespace:     writer.DefaultWhitespace(),
		DocStyle:       DocBlock,
		EscapeKeywords: true,
	}
}

// Renderer implements writer.Renderer for Rust.
type Renderer struct {
	options Options
}

var (
	_ writer.Renderer        = (*Renderer)(nil)
	_ writer.SubModuleCloser = (*Renderer)(nil)
)

// New returns a Renderer using options.
func New(options Options) *Renderer {
	if options.Whitespace.Indent == "" {
		options.Whitespace = writer.DefaultWhitespace()
	}
	return &Renderer{options: options}
}

// Whitespace returns the layout policy the driver should use.
func (r *Renderer) Whitespace() writer.Whitespace {
	return r.options.Whitespace
}

// Compile generates Rust source code for module and all of its sub-modules.
func Compile(module ir.Module, options Options) (string, error) {
	var out strings.Builder
	if err := writer.Render(module, New(options), &out); err != nil {
		return "", fmt.Errorf("rust: %w", err)
	}
	return out.String(), nil
}

// Locate places the top-level module at <root>/<name>.rs and every
// sub-module in a directory named after its parent's file.
var Locate writer.LocateFunc = writer.NestedFiles(FileExtension)
