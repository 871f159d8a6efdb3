// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/codewriter/ir"
)

// Format selects the document syntax.
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("manifest: unrecognized extension %q", filepath.Ext(path))
	}
}

// Load reads the file at path and converts it to a module. The format is
// chosen from the extension.
func Load(path string) (ir.Module, error) {
	format, err := FormatOf(path)
	if err != nil {
		return ir.Module{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Module{}, fmt.Errorf("manifest: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data and converts it to a module.
func Parse(data []byte, format Format) (ir.Module, error) {
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return ir.Module{}, err
	}
	m, err := doc.Convert()
	if err != nil {
		return ir.Module{}, fmt.Errorf("manifest: %w", err)
	}
	return m, nil
}

// Decode reads a single document. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Module, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, fmt.Errorf("manifest: unsupported format %d", format)
	}
}

// DecodeYAML reads a YAML document.
func DecodeYAML(r io.Reader) (*Module, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Module
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("manifest: empty document")
		}
		return nil, fmt.Errorf("manifest: yaml: %w", err)
	}
	return &doc, nil
}

// DecodeJSON reads a JSON document. Numbers are kept as json.Number until
// their declared type is known.
func DecodeJSON(r io.Reader) (*Module, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	var doc Module
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("manifest: empty document")
		}
		return nil, fmt.Errorf("manifest: json: %w", err)
	}
	return &doc, nil
}

// UnmarshalYAML accepts either a bare name or a mapping.
func (i *ImportItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*i = ImportItem{Name: node.Value}
		return nil
	}
	type plain ImportItem
	return node.Decode((*plain)(i))
}

// UnmarshalJSON accepts either a bare name or an object.
func (i *ImportItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := j.Unmarshal(data, &name); err == nil {
		*i = ImportItem{Name: name}
		return nil
	}
	type plain ImportItem
	return j.Unmarshal(data, (*plain)(i))
}
