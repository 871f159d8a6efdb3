// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/codewriter/ir"
)

// LocateFunc maps a module namespace to an output location. current is
// the root directory for the top-level module and the parent module's
// location otherwise. Returning current keeps a sub-module in its parent's
// stream.
type LocateFunc func(ns ir.Namespace, current string) string

// Tree writes a module tree to one file per location.
type Tree struct {
	// Root is passed as the current location of the top-level module.
	Root string

	// Locate chooses every output location. The driver never decides file
	// boundaries itself.
	Locate LocateFunc

	// NewRenderer returns a fresh renderer for each file.
	NewRenderer func() Renderer

	// Create opens a location for writing. It defaults to creating the
	// file and its parent directories.
	Create func(location string) (io.WriteCloser, error)
}

// RenderTree writes m below root using a Tree.
func RenderTree(m ir.Module, root string, locate LocateFunc, newRenderer func() Renderer) error {
	t := &Tree{Root: root, Locate: locate, NewRenderer: newRenderer}
	return t.Render(m)
}

// Render writes m and its sub-modules. Each file is completed and closed
// before the sub-modules it routes elsewhere are written.
func (t *Tree) Render(m ir.Module) error {
	ns := ir.NewNamespace(m.Name())
	return t.file(pendingFile{module: m, namespace: ns, location: t.Locate(ns, t.Root)})
}

func (t *Tree) file(p pendingFile) error {
	out, err := t.create(p.location)
	if err != nil {
		return fmt.Errorf("module %s: %w", p.namespace, IOError(err))
	}

	r := t.NewRenderer()
	wk := &walker{
		w:        NewCodeWriterWith(out, whitespaceOf(r)),
		r:        r,
		tree:     t,
		location: p.location,
	}
	err = wk.module(p.module, p.namespace)
	if err == nil {
		err = wk.w.Flush()
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("module %s: %w", p.namespace, IOError(cerr))
	}
	if err != nil {
		return err
	}

	for _, child := range wk.deferred {
		if err := t.file(child); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) create(location string) (io.WriteCloser, error) {
	if t.Create != nil {
		return t.Create(location)
	}
	return CreateFile(location)
}

// CreateFile creates the file at location and its parent directories.
// It is the default Tree.Create.
func CreateFile(location string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return nil, err
	}
	return os.Create(location)
}

// NestedFiles places the top-level module at <root>/<name><ext> and every
// sub-module in a directory named after its parent's file:
// <root>/a.rs, <root>/a/b.rs, <root>/a/b/c.rs.
func NestedFiles(ext string) LocateFunc {
	return func(ns ir.Namespace, current string) string {
		name := ns.Last().String() + ext
		if ns.Len() == 1 {
			return filepath.Join(current, name)
		}
		return filepath.Join(strings.TrimSuffix(current, ext), name)
	}
}

// SingleFile writes the whole tree to <root>/<name>.
func SingleFile(name string) LocateFunc {
	return func(ns ir.Namespace, current string) string {
		if ns.Len() == 1 {
			return filepath.Join(current, name)
		}
		return current
	}
}

// KeepInline wraps locate so that every sub-module of m marked inline stays
// in its parent's stream. Other modules are placed by locate.
func KeepInline(m ir.Module, locate LocateFunc) LocateFunc {
	inline := make(map[string]bool)
	var collect func(m ir.Module, ns ir.Namespace)
	collect = func(m ir.Module, ns ir.Namespace) {
		for _, sub := range m.SubModules() {
			path := ns.With(sub.Name())
			if sub.IsInline() {
				inline[path.String()] = true
			}
			collect(sub, path)
		}
	}
	collect(m, ir.NewNamespace(m.Name()))

	return func(ns ir.Namespace, current string) string {
		if ns.Len() > 1 && inline[ns.String()] {
			return current
		}
		return locate(ns, current)
	}
}
