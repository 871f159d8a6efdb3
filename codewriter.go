// Package codewriter generates source code from a language-agnostic
// description of declarations.
//
// A module is built with the ir package, or loaded from a YAML or JSON
// description, and rendered by one of the registered targets:
//   - rust — Rust modules, with nested sub-modules as nested files
//   - thrift — Apache Thrift IDL, with sub-modules as included files
//
// Example usage:
//
//	module := ir.NewModule(ir.MustIdentifier("address")).
//	    Structure(ir.NewStructure(ir.MustIdentifier("Address")).
//	        Field(ir.NewField(ir.MustIdentifier("city"), ir.KnownString).Build()).
//	        Build()).
//	    Build()
//	source, err := codewriter.Compile(module, "rust")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For multi-file output, use Generate:
//
//	err := codewriter.Generate(module, "gen", "thrift")
//
// For finer control, use the rust and thrift packages directly with their
// own Options.
package codewriter

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/codewriter/ir"
	"github.com/gogpu/codewriter/rust"
	"github.com/gogpu/codewriter/thrift"
	"github.com/gogpu/codewriter/writer"
)

// ErrUnknownTarget is returned by Lookup for unregistered target names.
var ErrUnknownTarget = errors.New("unknown target")

// Target is a registered output language.
type Target struct {
	// Name is the lower-case target name, such as "rust".
	Name string

	// Extension is the file extension of generated files, including the dot.
	Extension string

	// NewRenderer returns a renderer using the target's default options.
	NewRenderer func() writer.Renderer

	// Locate assigns sub-modules to files for multi-file output.
	Locate writer.LocateFunc
}

var targets = []Target{
	{
		Name:      "rust",
		Extension: rust.FileExtension,
		NewRenderer: func() writer.Renderer {
			return rust.New(rust.DefaultOptions())
		},
		Locate: rust.Locate,
	},
	{
		Name:      "thrift",
		Extension: thrift.FileExtension,
		NewRenderer: func() writer.Renderer {
			return thrift.New(thrift.DefaultOptions())
		},
		Locate: thrift.Locate,
	},
}

// Targets returns the registered targets sorted by name.
func Targets() []Target {
	out := slices.Clone(targets)
	slices.SortFunc(out, func(a, b Target) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// TargetNames returns the registered target names sorted.
func TargetNames() []string {
	ts := Targets()
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the target called name. Names are case-insensitive.
func Lookup(name string) (Target, error) {
	for _, t := range targets {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownTarget, name, strings.Join(TargetNames(), ", "))
}

// Compile renders module and all of its sub-modules into a single string
// using the named target.
func Compile(module ir.Module, target string) (string, error) {
	t, err := Lookup(target)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := writer.Render(module, t.NewRenderer(), &buf); err != nil {
		return "", fmt.Errorf("%s: %w", t.Name, err)
	}
	return buf.String(), nil
}

// Generate renders module into files under root using the named target.
// Sub-modules marked inline stay in their parent's file; the rest are
// placed by the target's Locate function.
func Generate(module ir.Module, root, target string) error {
	t, err := Lookup(target)
	if err != nil {
		return err
	}
	tree := t.Tree(root)
	tree.Locate = writer.KeepInline(module, tree.Locate)
	if err := tree.Render(module); err != nil {
		return fmt.Errorf("%s: %w", t.Name, err)
	}
	return nil
}

// Tree returns a writer.Tree that renders below root with the target's
// defaults. Set its Create field to redirect output.
func (t Target) Tree(root string) *writer.Tree {
	return &writer.Tree{Root: root, Locate: t.Locate, NewRenderer: t.NewRenderer}
}
