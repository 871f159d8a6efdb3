// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package thrift

import (
	"fmt"
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// FileExtension is the extension used for generated files.
const FileExtension = ".thrift"

// Options configures Thrift IDL generation.
type Options struct {
	// Whitespace is the layout policy.
	Whitespace writer.Whitespace

	// IncludeSuffix is appended to include paths.
	// Defaults to FileExtension if empty.
	IncludeSuffix string

	// NamespaceScopes lists the languages for which a
	// "namespace <scope> <module>" header line is written, such as "go".
	NamespaceScopes []string

	// EscapeKeywords rewrites declared names that are Thrift reserved words.
	EscapeKeywords bool
}

// DefaultOptions returns sensible default options for Thrift generation.
func DefaultOptions() Options {
	return Options{
		Whitespace:     writer.DefaultWhitespace(),
		IncludeSuffix:  FileExtension,
		EscapeKeywords: true,
	}
}

// Renderer implements writer.Renderer for Thrift. A Renderer remembers the
// first module it writes, so use one per output file.
type Renderer struct {
	writer.Unimplemented

	options Options
	module  string
}

var _ writer.Renderer = (*Renderer)(nil)

// New returns a Renderer using options.
func New(options Options) *Renderer {
	if options.Whitespace.Indent == "" {
		options.Whitespace = writer.DefaultWhitespace()
	}
	if options.IncludeSuffix == "" {
		options.IncludeSuffix = FileExtension
	}
	return &Renderer{options: options}
}

// Whitespace returns the layout policy the driver should use.
func (r *Renderer) Whitespace() writer.Whitespace {
	return r.options.Whitespace
}

// Compile generates Thrift IDL for module.
func Compile(module ir.Module, options Options) (string, error) {
	var out strings.Builder
	if err := writer.Render(module, New(options), &out); err != nil {
		return "", fmt.Errorf("thrift: %w", err)
	}
	return out.String(), nil
}

// Locate places the top-level module at <root>/<name>.thrift and every
// sub-module in a directory named after its parent's file.
var Locate writer.LocateFunc = writer.NestedFiles(FileExtension)
