// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package rust provides a Rust declaration backend for codewriter.
//
// It renders IR modules as Rust items: use declarations, structs, unions,
// traits, enums, constants, let bindings, function signatures, type aliases
// and modules.
//
// # Basic Usage
//
//	source, err := rust.Compile(module, rust.DefaultOptions())
//
// # Type Mapping
//
//	string        String
//	array<T>      Vec<T>
//	set<T>        HashSet<T>
//	map<K, V>     HashMap<K, V>
//	optional T    Option<T>
//
// Interfaces and services become traits. Exceptions and classes become
// structs.
//
// # Reserved Words
//
// Names that collide with Rust keywords are written as raw identifiers
// (r#type). Keywords that cannot be raw, such as self and crate, get an
// underscore suffix.
package rust
