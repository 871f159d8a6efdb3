// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"unicode"
	"unicode/utf8"
)

// knownTypeNames maps textual primitive names to KnownType.
var knownTypeNames = map[string]KnownType{
	"i8":     KnownI8,
	"u8":     KnownU8,
	"i16":    KnownI16,
	"u16":    KnownU16,
	"i32":    KnownI32,
	"u32":    KnownU32,
	"i64":    KnownI64,
	"u64":    KnownU64,
	"f32":    KnownF32,
	"f64":    KnownF64,
	"bool":   KnownBoolean,
	"char":   KnownChar,
	"string": KnownString,
}

// ParseValueType parses a textual type expression.
//
// Grammar:
//
//	type    = "fn" "(" [type {"," type}] ")" ["->" type]
//	        | "[" type "]"
//	        | name "<" type {"," type} ">"
//	        | name ":" type {"+" type}
//	        | name
//
// Primitive names (i8 ... string) yield KnownType. The generic names list,
// array, set and map yield ArrayType, SetType and MapType; any other
// application yields GenericType. Remaining names are references.
func ParseValueType(text string) (ValueType, error) {
	p := &typeParser{text: text}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.text) {
		return nil, p.errorf("unexpected trailing input")
	}
	return t, nil
}

// MustParseValueType is like ParseValueType but panics on error.
func MustParseValueType(text string) ValueType {
	t, err := ParseValueType(text)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	text string
	pos  int
}

func (p *typeParser) errorf(msg string) error {
	return &TypeSyntaxError{Text: p.text, Offset: p.pos, Msg: msg}
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.text) {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// accept consumes tok if it is next.
func (p *typeParser) accept(tok string) bool {
	p.skipSpace()
	if len(p.text)-p.pos >= len(tok) && p.text[p.pos:p.pos+len(tok)] == tok {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *typeParser) expect(tok string) error {
	if !p.accept(tok) {
		return p.errorf("expected " + tok)
	}
	return nil
}

// peekSingleColon reports whether the next token is ":" but not "::".
func (p *typeParser) peekSingleColon() bool {
	p.skipSpace()
	if p.pos >= len(p.text) || p.text[p.pos] != ':' {
		return false
	}
	return p.pos+1 >= len(p.text) || p.text[p.pos+1] != ':'
}

// name scans a possibly qualified name such as std::io::Error.
func (p *typeParser) name() (string, error) {
	p.skipSpace()
	start := p.pos
scan:
	for p.pos < len(p.text) {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		switch {
		case r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r):
			p.pos += size
		case r == ':' && p.pos+1 < len(p.text) && p.text[p.pos+1] == ':':
			p.pos += 2
		default:
			break scan
		}
	}
	if p.pos == start {
		return "", p.errorf("expected a type name")
	}
	return p.text[start:p.pos], nil
}

func (p *typeParser) parseList(closing string) ([]ValueType, error) {
	var list []ValueType
	if p.accept(closing) {
		return list, nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		list = append(list, t)
		if p.accept(closing) {
			return list, nil
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

func (p *typeParser) parseType() (ValueType, error) {
	if p.accept("[") {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		return ArrayType{Element: elem}, nil
	}

	text, err := p.name()
	if err != nil {
		return nil, err
	}

	if text == "fn" && p.accept("(") {
		params, err := p.parseList(")")
		if err != nil {
			return nil, err
		}
		var result ValueType
		if p.accept("->") {
			if result, err = p.parseType(); err != nil {
				return nil, err
			}
		}
		return FunctionType{Parameters: params, Result: result}, nil
	}

	id := Identifier{text: text}

	if p.accept("<") {
		args, err := p.parseList(">")
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, p.errorf("generic type needs at least one argument")
		}
		switch text {
		case "list", "array":
			if len(args) != 1 {
				return nil, p.errorf(text + " takes exactly one argument")
			}
			return ArrayType{Element: args[0]}, nil
		case "set":
			if len(args) != 1 {
				return nil, p.errorf("set takes exactly one argument")
			}
			return SetType{Element: args[0]}, nil
		case "map":
			if len(args) != 2 {
				return nil, p.errorf("map takes exactly two arguments")
			}
			return MapType{Key: args[0], Value: args[1]}, nil
		}
		return GenericType{Name: id, Arguments: args}, nil
	}

	if p.peekSingleColon() {
		p.pos++
		var bounds []ValueType
		for {
			bound, err := p.parseBound()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, bound)
			if !p.accept("+") {
				break
			}
		}
		return ConstrainedType{Name: id, Bounds: bounds}, nil
	}

	if k, ok := knownTypeNames[text]; ok {
		return k, nil
	}
	return ReferenceType{Name: id}, nil
}

// parseBound parses one bound of a constrained type. Bounds are not
// themselves constrained, so "T: A + B" binds both A and B to T.
func (p *typeParser) parseBound() (ValueType, error) {
	save := p.pos
	text, err := p.name()
	if err != nil {
		return nil, err
	}
	if p.accept("<") {
		args, err := p.parseList(">")
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, p.errorf("generic type needs at least one argument")
		}
		return GenericType{Name: Identifier{text: text}, Arguments: args}, nil
	}
	if k, ok := knownTypeNames[text]; ok {
		return k, nil
	}
	if text == "fn" {
		p.pos = save
		return nil, p.errorf("function bounds are not supported")
	}
	return ReferenceType{Name: Identifier{text: text}}, nil
}
