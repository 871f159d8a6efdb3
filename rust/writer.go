// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rust

import (
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// WriteModule writes inner documentation and inner attributes.
func (r *Renderer) WriteModule(w *writer.CodeWriter, m ir.Module) error {
	if m.HasDocumentation() {
		if err := r.writeDoc(w, m.Documentation(), true); err != nil {
			return err
		}
	}
	return r.writeAttributes(w, m.Properties(), true)
}

// WriteSubModule writes "mod name;" or, for inline modules, opens
// "mod name {".
func (r *Renderer) WriteSubModule(w *writer.CodeWriter, m ir.Module) error {
	if err := w.Text(visibility(m.Visibility()) + "mod " + r.name(m.Name())); err != nil {
		return err
	}
	if m.IsInline() {
		return w.OpenBlock(writer.Braces)
	}
	if err := w.Text(";"); err != nil {
		return err
	}
	return w.NewLine()
}

// CloseSubModule closes an inline module opened by WriteSubModule.
func (r *Renderer) CloseSubModule(w *writer.CodeWriter, _ ir.Module) error {
	if err := w.CloseBlock(writer.Braces); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteImport writes a use declaration.
func (r *Renderer) WriteImport(w *writer.CodeWriter, i ir.Import) error {
	path := i.Namespace().Join("::")
	items := i.Items()
	parts := make([]string, len(items))
	for n, item := range items {
		parts[n] = r.name(item.Name())
		if alias, ok := item.Alias(); ok {
			parts[n] += " as " + r.name(alias)
		}
	}

	var target string
	switch len(parts) {
	case 0:
		target = path
	case 1:
		target = path + "::" + parts[0]
	default:
		target = path + "::{" + strings.Join(parts, ", ") + "}"
	}
	if err := w.Textf("%suse %s;", visibility(i.Visibility()), target); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteComment writes a // or /* */ comment.
func (r *Renderer) WriteComment(w *writer.CodeWriter, c ir.Comment) error {
	if c.IsBlock() {
		return writeBlockComment(w, "/*", c.Text())
	}
	return writeLineComment(w, "//", c.Text())
}

// WriteStructuredType writes a struct, union or trait.
func (r *Renderer) WriteStructuredType(w *writer.CodeWriter, s ir.StructuredType) error {
	switch s.Kind() {
	case ir.KindStructure, ir.KindException, ir.KindClass:
		return r.writeStruct(w, s, "struct")
	case ir.KindUnion:
		return r.writeStruct(w, s, "union")
	case ir.KindInterface, ir.KindService:
		return r.writeTrait(w, s)
	default:
		return writer.Formatting("unknown structured type kind %d", s.Kind())
	}
}

func (r *Renderer) writeStruct(w *writer.CodeWriter, s ir.StructuredType, keyword string) error {
	if len(s.Extends()) > 0 {
		return writer.Formatting("%s %s cannot extend other types", keyword, s.Name())
	}
	if err := r.writePrefix(w, s.Documentation(), s.Properties(), s.Visibility()); err != nil {
		return err
	}
	if err := w.Textf("%s %s", keyword, r.name(s.Name())); err != nil {
		return err
	}

	fields := s.Fields()
	if len(fields) == 0 {
		if err := w.Text(" {}"); err != nil {
			return err
		}
	} else {
		if err := w.OpenBlock(writer.Braces); err != nil {
			return err
		}
		for _, f := range fields {
			if err := r.writeField(w, f); err != nil {
				return err
			}
		}
		if err := w.CloseBlock(writer.Braces); err != nil {
			return err
		}
	}
	if err := w.NewLine(); err != nil {
		return err
	}

	methods := s.Methods()
	if len(methods) == 0 {
		return nil
	}
	if err := w.BlankLine(); err != nil {
		return err
	}
	if err := w.Textf("impl %s", r.name(s.Name())); err != nil {
		return err
	}
	return r.writeMethods(w, methods, false)
}

func (r *Renderer) writeField(w *writer.CodeWriter, f ir.Field) error {
	if err := r.writePrefix(w, f.Documentation(), f.Properties(), f.Visibility()); err != nil {
		return err
	}
	typ, err := r.typeName(f.Type(), f.IsOptional())
	if err != nil {
		return err
	}
	if err := w.Textf("%s: %s,", r.name(f.Name()), typ); err != nil {
		return err
	}
	return w.NewLine()
}

func (r *Renderer) writeTrait(w *writer.CodeWriter, s ir.StructuredType) error {
	if len(s.Fields()) > 0 {
		return writer.Formatting("trait %s cannot declare fields", s.Name())
	}
	if err := r.writePrefix(w, s.Documentation(), s.Properties(), s.Visibility()); err != nil {
		return err
	}
	if err := w.Text("trait " + r.name(s.Name())); err != nil {
		return err
	}
	if extends := s.Extends(); len(extends) > 0 {
		bounds, err := r.typeList(extends, " + ")
		if err != nil {
			return err
		}
		if err := w.Text(": " + bounds); err != nil {
			return err
		}
	}
	methods := s.Methods()
	if len(methods) == 0 {
		if err := w.Text(" {}"); err != nil {
			return err
		}
		return w.NewLine()
	}
	return r.writeMethods(w, methods, true)
}

// writeMethods writes a braced block of function signatures after the
// pending header. Trait items carry no visibility of their own.
func (r *Renderer) writeMethods(w *writer.CodeWriter, methods []ir.FunctionDecl, trait bool) error {
	if err := w.OpenBlock(writer.Braces); err != nil {
		return err
	}
	for i, m := range methods {
		if i > 0 {
			if err := w.BlankLine(); err != nil {
				return err
			}
		}
		vis := m.Visibility()
		if trait {
			vis = ir.VisibilityUnspecified
		}
		if err := r.writeFunction(w, m, vis); err != nil {
			return err
		}
	}
	if err := w.CloseBlock(writer.Braces); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteEnumeration writes an enum.
func (r *Renderer) WriteEnumeration(w *writer.CodeWriter, e ir.Enumeration) error {
	if err := r.writePrefix(w, e.Documentation(), e.Properties(), e.Visibility()); err != nil {
		return err
	}
	if err := w.Text("enum " + r.name(e.Name())); err != nil {
		return err
	}

	variants := e.Variants()
	if len(variants) == 0 {
		if err := w.Text(" {}"); err != nil {
			return err
		}
		return w.NewLine()
	}
	if err := w.OpenBlock(writer.Braces); err != nil {
		return err
	}
	for _, v := range variants {
		if err := r.writeVariant(w, v); err != nil {
			return err
		}
	}
	if err := w.CloseBlock(writer.Braces); err != nil {
		return err
	}
	return w.NewLine()
}

func (r *Renderer) writeVariant(w *writer.CodeWriter, v ir.EnumerationVariant) error {
	if err := r.writePrefix(w, v.Documentation(), v.Properties(), ir.VisibilityUnspecified); err != nil {
		return err
	}
	text := r.name(v.Name())
	if t, ok := v.Type(); ok {
		typ, err := r.typeName(t, false)
		if err != nil {
			return err
		}
		text += "(" + typ + ")"
	}
	if value, ok := v.Value(); ok {
		lit, err := literal(value, false)
		if err != nil {
			return err
		}
		text += " = " + lit
	}
	if err := w.Text(text + ","); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteConstant writes a const item.
func (r *Renderer) WriteConstant(w *writer.CodeWriter, c ir.Constant) error {
	if err := r.writePrefix(w, c.Documentation(), c.Properties(), c.Visibility()); err != nil {
		return err
	}
	return r.writeBinding(w, "const", c.NamedValue)
}

// WriteVariable writes a let binding. Bindings have no visibility.
func (r *Renderer) WriteVariable(w *writer.CodeWriter, v ir.Variable) error {
	if err := r.writePrefix(w, v.Documentation(), v.Properties(), ir.VisibilityUnspecified); err != nil {
		return err
	}
	return r.writeBinding(w, "let", v.NamedValue)
}

func (r *Renderer) writeBinding(w *writer.CodeWriter, keyword string, nv ir.NamedValue) error {
	typ, err := r.typeName(nv.Type(), false)
	if err != nil {
		return err
	}
	value, err := literal(nv.Value(), false)
	if err != nil {
		return err
	}
	if err := w.Textf("%s %s: %s = %s;", keyword, r.name(nv.Name()), typ, value); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteFunction writes a function signature.
func (r *Renderer) WriteFunction(w *writer.CodeWriter, f ir.FunctionDecl) error {
	return r.writeFunction(w, f, f.Visibility())
}

func (r *Renderer) writeFunction(w *writer.CodeWriter, f ir.FunctionDecl, vis ir.Visibility) error {
	if err := r.writePrefix(w, f.Documentation(), f.Properties(), vis); err != nil {
		return err
	}
	params := f.Parameters()
	parts := make([]string, len(params))
	for i, p := range params {
		typ, err := r.typeName(p.Type(), p.IsOptional())
		if err != nil {
			return err
		}
		parts[i] = r.name(p.Name()) + ": " + typ
	}
	text := "fn " + r.name(f.Name()) + "(" + strings.Join(parts, ", ") + ")"
	if result, ok := f.Result(); ok {
		typ, err := r.typeName(result, false)
		if err != nil {
			return err
		}
		text += " -> " + typ
	}
	if err := w.Text(text + ";"); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteTypeAlias writes a type alias.
func (r *Renderer) WriteTypeAlias(w *writer.CodeWriter, a ir.TypeAlias) error {
	if err := r.writePrefix(w, a.Documentation(), a.Properties(), a.Visibility()); err != nil {
		return err
	}
	typ, err := r.typeName(a.Target(), false)
	if err != nil {
		return err
	}
	if err := w.Textf("type %s = %s;", r.name(a.Name()), typ); err != nil {
		return err
	}
	return w.NewLine()
}

// writePrefix writes documentation, attributes and visibility, in that order.
// Visibility is left pending on the declaration line.
func (r *Renderer) writePrefix(w *writer.CodeWriter, doc string, props []ir.Property, vis ir.Visibility) error {
	if doc != "" {
		if err := r.writeDoc(w, doc, false); err != nil {
			return err
		}
	}
	if err := r.writeAttributes(w, props, false); err != nil {
		return err
	}
	return w.Text(visibility(vis))
}

func (r *Renderer) writeDoc(w *writer.CodeWriter, text string, inner bool) error {
	if r.options.DocStyle == DocLine {
		if inner {
			return writeLineComment(w, "//!", text)
		}
		return writeLineComment(w, "///", text)
	}
	if inner {
		return writeBlockComment(w, "/*!", text)
	}
	return writeBlockComment(w, "/**", text)
}

func (r *Renderer) writeAttributes(w *writer.CodeWriter, props []ir.Property, inner bool) error {
	open := "#["
	if inner {
		open = "#!["
	}
	for _, p := range props {
		text := open + p.Name().String()
		if value, ok := p.Value(); ok {
			lit, err := literal(value, true)
			if err != nil {
				return err
			}
			switch value.(type) {
			case ir.Values, ir.NamedValues:
				text += lit
			default:
				text += " = " + lit
			}
		}
		if err := w.Text(text + "]"); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	return nil
}

// visibility returns the visibility qualifier with a trailing space.
func visibility(v ir.Visibility) string {
	switch v {
	case ir.VisibilityLocal:
		return "pub(super) "
	case ir.VisibilityPackage:
		return "pub(crate) "
	case ir.VisibilityPublic:
		return "pub "
	default:
		return ""
	}
}

// writeLineComment writes text with prefix at the start of every line.
func writeLineComment(w *writer.CodeWriter, prefix, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if err := w.Text(prefix + " " + strings.TrimSuffix(line, "\r")); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	return nil
}

// writeBlockComment writes text between open and " */", one " * " prefixed
// line per text line.
func writeBlockComment(w *writer.CodeWriter, open, text string) error {
	if err := w.Text(open); err != nil {
		return err
	}
	if err := w.NewLine(); err != nil {
		return err
	}
	if err := writeLineComment(w, " *", text); err != nil {
		return err
	}
	if err := w.Text(" */"); err != nil {
		return err
	}
	return w.NewLine()
}
