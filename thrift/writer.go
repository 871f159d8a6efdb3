// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package thrift

import (
	"strconv"
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/writer"
)

// WriteModule writes the module documentation and namespace declarations.
func (r *Renderer) WriteModule(w *writer.CodeWriter, m ir.Module) error {
	if r.module == "" {
		r.module = m.Name().String()
	}
	if m.HasDocumentation() {
		if err := writeBlockComment(w, "/**", m.Documentation()); err != nil {
			return err
		}
	}
	for _, scope := range r.options.NamespaceScopes {
		if err := w.Textf("namespace %s %s", scope, m.Name()); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	return nil
}

// WriteSubModule includes the file a non-inline sub-module is written to.
func (r *Renderer) WriteSubModule(w *writer.CodeWriter, m ir.Module) error {
	if m.IsInline() {
		return writer.Unsupported(ir.ElementModule)
	}
	path := m.Name().String() + r.options.IncludeSuffix
	if r.module != "" {
		path = r.module + "/" + path
	}
	if err := w.Textf("include %s", quote(path)); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteImport writes an include of the namespace's file. Thrift includes
// whole files, so import items are not written.
func (r *Renderer) WriteImport(w *writer.CodeWriter, i ir.Import) error {
	path := i.Namespace().Join("/") + r.options.IncludeSuffix
	if err := w.Textf("include %s", quote(path)); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteComment writes a # or /* */ comment.
func (r *Renderer) WriteComment(w *writer.CodeWriter, c ir.Comment) error {
	if c.IsBlock() {
		return writeBlockComment(w, "/*", c.Text())
	}
	for _, line := range strings.Split(c.Text(), "\n") {
		if err := w.Text("# " + strings.TrimSuffix(line, "\r")); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	return nil
}

// WriteStructuredType writes a struct, union, exception or service.
// Classes and interfaces are written as structs.
func (r *Renderer) WriteStructuredType(w *writer.CodeWriter, s ir.StructuredType) error {
	switch s.Kind() {
	case ir.KindStructure, ir.KindClass, ir.KindInterface:
		return r.writeStruct(w, s, "struct")
	case ir.KindUnion:
		return r.writeStruct(w, s, "union")
	case ir.KindException:
		return r.writeStruct(w, s, "exception")
	case ir.KindService:
		return r.writeService(w, s)
	default:
		return writer.Formatting("unknown structured type kind %d", s.Kind())
	}
}

func (r *Renderer) writeStruct(w *writer.CodeWriter, s ir.StructuredType, keyword string) error {
	switch {
	case len(s.Extends()) > 0:
		return writer.Formatting("%s %s cannot extend other types", keyword, s.Name())
	case len(s.Methods()) > 0:
		return writer.Formatting("%s %s cannot declare methods", keyword, s.Name())
	}
	if err := r.writeDoc(w, s.Documentation()); err != nil {
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
		for i, f := range fields {
			if err := r.writeField(w, i+1, f); err != nil {
				return err
			}
		}
		if err := w.CloseBlock(writer.Braces); err != nil {
			return err
		}
	}
	return r.endDefinition(w, s.Properties())
}

func (r *Renderer) writeField(w *writer.CodeWriter, ordinal int, f ir.Field) error {
	if err := r.writeDoc(w, f.Documentation()); err != nil {
		return err
	}
	typ, err := typeName(f.Type())
	if err != nil {
		return err
	}
	qualifier := "required"
	if f.IsOptional() {
		qualifier = "optional"
	}
	text := strconv.Itoa(ordinal) + ": " + qualifier + " " + typ + " " + r.name(f.Name())
	if value, ok := f.Default(); ok {
		lit, err := literal(value)
		if err != nil {
			return err
		}
		text += " = " + lit
	}
	annotations, err := annotations(f.Properties())
	if err != nil {
		return err
	}
	if err := w.Text(text + annotations + ","); err != nil {
		return err
	}
	return w.NewLine()
}

func (r *Renderer) writeService(w *writer.CodeWriter, s ir.StructuredType) error {
	if len(s.Fields()) > 0 {
		return writer.Formatting("service %s cannot declare fields", s.Name())
	}
	if err := r.writeDoc(w, s.Documentation()); err != nil {
		return err
	}
	if err := w.Text("service " + r.name(s.Name())); err != nil {
		return err
	}
	switch extends := s.Extends(); len(extends) {
	case 0:
	case 1:
		base, err := typeName(extends[0])
		if err != nil {
			return err
		}
		if err := w.Text(" extends " + base); err != nil {
			return err
		}
	default:
		return writer.Formatting("service %s can extend only one service", s.Name())
	}

	methods := s.Methods()
	if len(methods) == 0 {
		if err := w.Text(" {}"); err != nil {
			return err
		}
		return r.endDefinition(w, s.Properties())
	}
	if err := w.OpenBlock(writer.Braces); err != nil {
		return err
	}
	for _, m := range methods {
		if err := r.writeMethod(w, m); err != nil {
			return err
		}
	}
	if err := w.CloseBlock(writer.Braces); err != nil {
		return err
	}
	return r.endDefinition(w, s.Properties())
}

func (r *Renderer) writeMethod(w *writer.CodeWriter, f ir.FunctionDecl) error {
	if err := r.writeDoc(w, f.Documentation()); err != nil {
		return err
	}
	head, err := r.functionHead(f)
	if err != nil {
		return err
	}
	if err := w.Text(head + ","); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteFunction writes a standalone function signature terminated by ";".
func (r *Renderer) WriteFunction(w *writer.CodeWriter, f ir.FunctionDecl) error {
	if err := r.writeDoc(w, f.Documentation()); err != nil {
		return err
	}
	head, err := r.functionHead(f)
	if err != nil {
		return err
	}
	if err := w.Text(head + ";"); err != nil {
		return err
	}
	return w.NewLine()
}

// functionHead returns "R name(1: T a = d) (annotations)".
func (r *Renderer) functionHead(f ir.FunctionDecl) (string, error) {
	result := "void"
	if t, ok := f.Result(); ok {
		s, err := typeName(t)
		if err != nil {
			return "", err
		}
		result = s
	}

	params := f.Parameters()
	parts := make([]string, len(params))
	for i, p := range params {
		typ, err := typeName(p.Type())
		if err != nil {
			return "", err
		}
		parts[i] = strconv.Itoa(i+1) + ": " + typ + " " + r.name(p.Name())
		if value, ok := p.Default(); ok {
			lit, err := literal(value)
			if err != nil {
				return "", err
			}
			parts[i] += " = " + lit
		}
	}
	annotations, err := annotations(f.Properties())
	if err != nil {
		return "", err
	}
	return result + " " + r.name(f.Name()) + "(" + strings.Join(parts, ", ") + ")" + annotations, nil
}

// WriteEnumeration writes an enum. Variant values must be integers.
func (r *Renderer) WriteEnumeration(w *writer.CodeWriter, e ir.Enumeration) error {
	if err := r.writeDoc(w, e.Documentation()); err != nil {
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
		return r.endDefinition(w, e.Properties())
	}
	if err := w.OpenBlock(writer.Braces); err != nil {
		return err
	}
	for _, v := range variants {
		if _, ok := v.Type(); ok {
			return writer.Formatting("enum variant %s cannot carry a type", v.Name())
		}
		if err := r.writeDoc(w, v.Documentation()); err != nil {
			return err
		}
		text := r.name(v.Name())
		if value, ok := v.Value(); ok {
			if !isInteger(value) {
				return writer.Formatting("enum variant %s needs an integer value", v.Name())
			}
			lit, err := literal(value)
			if err != nil {
				return err
			}
			text += " = " + lit
		}
		annotations, err := annotations(v.Properties())
		if err != nil {
			return err
		}
		if err := w.Text(text + annotations + ","); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	if err := w.CloseBlock(writer.Braces); err != nil {
		return err
	}
	return r.endDefinition(w, e.Properties())
}

// WriteConstant writes a const definition.
func (r *Renderer) WriteConstant(w *writer.CodeWriter, c ir.Constant) error {
	if err := r.writeDoc(w, c.Documentation()); err != nil {
		return err
	}
	typ, err := typeName(c.Type())
	if err != nil {
		return err
	}
	value, err := literal(c.Value())
	if err != nil {
		return err
	}
	if err := w.Textf("const %s %s = %s", typ, r.name(c.Name()), value); err != nil {
		return err
	}
	return w.NewLine()
}

// WriteTypeAlias writes a typedef.
func (r *Renderer) WriteTypeAlias(w *writer.CodeWriter, a ir.TypeAlias) error {
	if err := r.writeDoc(w, a.Documentation()); err != nil {
		return err
	}
	typ, err := typeName(a.Target())
	if err != nil {
		return err
	}
	annotations, err := annotations(a.Properties())
	if err != nil {
		return err
	}
	if err := w.Textf("typedef %s%s %s", typ, annotations, r.name(a.Name())); err != nil {
		return err
	}
	return w.NewLine()
}

// endDefinition writes the postfix annotations of a definition and ends
// its line.
func (r *Renderer) endDefinition(w *writer.CodeWriter, props []ir.Property) error {
	annotations, err := annotations(props)
	if err != nil {
		return err
	}
	if err := w.Text(annotations); err != nil {
		return err
	}
	return w.NewLine()
}

func (r *Renderer) writeDoc(w *writer.CodeWriter, doc string) error {
	if doc == "" {
		return nil
	}
	return writeBlockComment(w, "/**", doc)
}

// annotations returns " (k = "v", ...)" for props, or "" when empty.
func annotations(props []ir.Property) (string, error) {
	if len(props) == 0 {
		return "", nil
	}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Name().String()
		value, ok := p.Value()
		if !ok {
			continue
		}
		switch v := value.(type) {
		case ir.Values, ir.NamedValues:
			return "", writer.Formatting("annotation %s needs a scalar value", p.Name())
		case ir.String:
			parts[i] += " = " + quote(string(v))
		default:
			lit, err := literal(v)
			if err != nil {
				return "", err
			}
			parts[i] += " = " + quote(lit)
		}
	}
	return " (" + strings.Join(parts, ", ") + ")", nil
}

func isInteger(v ir.Value) bool {
	switch v.(type) {
	case ir.I8, ir.U8, ir.I16, ir.U16, ir.I32, ir.U32, ir.I64, ir.U64:
		return true
	default:
		return false
	}
}

func writeBlockComment(w *writer.CodeWriter, open, text string) error {
	if err := w.Text(open); err != nil {
		return err
	}
	if err := w.NewLine(); err != nil {
		return err
	}
	for _, line := range strings.Split(text, "\n") {
		if err := w.Text(" * " + strings.TrimSuffix(line, "\r")); err != nil {
			return err
		}
		if err := w.NewLine(); err != nil {
			return err
		}
	}
	if err := w.Text(" */"); err != nil {
		return err
	}
	return w.NewLine()
}
