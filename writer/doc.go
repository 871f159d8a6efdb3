// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package writer turns an ir.Module tree into text.
//
// It has three layers:
//   - CodeWriter: a line-buffered layout engine with indentation, block
//     placement and a configurable whitespace policy
//   - Renderer: the per-element capability set a target syntax implements;
//     embed Unimplemented to reject the kinds a target cannot express
//   - Render and Tree: the traversal driver, writing either one stream or
//     one file per module
//
// # Single stream
//
//	var buf bytes.Buffer
//	if err := writer.Render(module, rust.New(rust.DefaultOptions()), &buf); err != nil {
//	    return err
//	}
//
// # Multiple files
//
//	err := writer.RenderTree(module, "out", writer.NestedFiles(".rs"),
//	    func() writer.Renderer { return rust.New(rust.DefaultOptions()) })
//
// Every error returned by this package wraps an *Error.
package writer
