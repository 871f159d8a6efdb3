// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package thrift provides an Apache Thrift IDL backend for codewriter.
//
// Structures, unions, exceptions and services map to their Thrift
// definitions. Fields are numbered from 1 in declaration order and always
// carry an explicit required or optional qualifier. Properties become
// postfix annotations:
//
//	struct Address {
//	    1: required string city (go.tag = "json:\"city\""),
//	} (cpp.type = "Addr")
//
// Thrift has no variables, free functions, generic types or inline
// modules. Variables and functions fail with
// writer.ErrUnsupportedElementKind. A non-inline sub-module becomes an
// include of the file it is written to, matching writer.NestedFiles.
package thrift
