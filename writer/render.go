// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

import (
	"fmt"
	"io"

	"github.com/gogpu/codewriter/ir"
)

// Render writes m and all of its sub-modules to out in document order.
// Renderers that provide a Whitespace() Whitespace method choose the
// layout policy; others get DefaultWhitespace.
func Render(m ir.Module, r Renderer, out io.Writer) error {
	w := NewCodeWriterWith(out, whitespaceOf(r))
	if err := RenderTo(w, m, r); err != nil {
		return err
	}
	return w.Flush()
}

// RenderTo writes m and all of its sub-modules through w.
func RenderTo(w *CodeWriter, m ir.Module, r Renderer) error {
	t := &walker{w: w, r: r}
	return t.module(m, ir.NewNamespace(m.Name()))
}

// pendingFile is a sub-module routed to its own output location.
type pendingFile struct {
	module    ir.Module
	namespace ir.Namespace
	location  string
}

// walker visits one output stream.
type walker struct {
	w *CodeWriter
	r Renderer

	// tree is nil for single-stream output.
	tree     *Tree
	location string
	deferred []pendingFile
}

// module writes the header and content of m. Items are separated by one
// blank line, as is the header when it wrote anything.
func (t *walker) module(m ir.Module, ns ir.Namespace) error {
	lines, column := t.w.Position()
	if err := t.r.WriteModule(t.w, m); err != nil {
		return fmt.Errorf("module %s: %w", ns, err)
	}
	afterLines, afterColumn := t.w.Position()
	separate := afterLines != lines || afterColumn != column

	for _, item := range m.Content() {
		if separate {
			if err := t.w.BlankLine(); err != nil {
				return err
			}
		}
		separate = true
		if err := t.item(item, ns); err != nil {
			return err
		}
	}
	return nil
}

func (t *walker) item(item ir.ModuleContent, ns ir.Namespace) error {
	var err error
	switch item := item.(type) {
	case ir.Import:
		err = t.r.WriteImport(t.w, item)
	case ir.Comment:
		err = t.r.WriteComment(t.w, item)
	case ir.StructuredType:
		err = t.r.WriteStructuredType(t.w, item)
	case ir.Enumeration:
		err = t.r.WriteEnumeration(t.w, item)
	case ir.Constant:
		err = t.r.WriteConstant(t.w, item)
	case ir.Variable:
		err = t.r.WriteVariable(t.w, item)
	case ir.FunctionDecl:
		err = t.r.WriteFunction(t.w, item)
	case ir.TypeAlias:
		err = t.r.WriteTypeAlias(t.w, item)
	case ir.Module:
		return t.subModule(item, ns.With(item.Name()))
	default:
		return Formatting("unknown module content %T", item)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", item.ElementKind(), itemName(item), err)
	}
	return nil
}

func (t *walker) subModule(sub ir.Module, ns ir.Namespace) error {
	if t.tree != nil {
		if loc := t.tree.Locate(ns, t.location); loc != t.location {
			if err := t.r.WriteSubModule(t.w, sub.WithInline(false)); err != nil {
				return fmt.Errorf("module %s: %w", ns, err)
			}
			t.deferred = append(t.deferred, pendingFile{module: sub, namespace: ns, location: loc})
			return nil
		}
	}

	sub = sub.WithInline(true)
	if err := t.r.WriteSubModule(t.w, sub); err != nil {
		return fmt.Errorf("module %s: %w", ns, err)
	}
	if err := t.module(sub, ns); err != nil {
		return err
	}
	if c, ok := t.r.(SubModuleCloser); ok {
		if err := c.CloseSubModule(t.w, sub); err != nil {
			return fmt.Errorf("module %s: %w", ns, err)
		}
	}
	return nil
}

// itemName returns a printable name for error messages.
func itemName(item ir.ModuleContent) string {
	switch item := item.(type) {
	case ir.Import:
		return item.Namespace().String()
	case ir.Comment:
		return fmt.Sprintf("%q", item.Text())
	case interface{ Name() ir.Identifier }:
		return item.Name().String()
	default:
		return ""
	}
}
