// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document holds the in-memory form of a parsed JSON configuration
// file.
//
// A [Value] is a tagged variant over the six JSON kinds: null, boolean,
// number, string, sequence and mapping. Numbers keep their literal text so
// no precision is lost between parse and re-encode, and mappings keep the
// key order of the source document.
//
// [Parse] builds a Value from raw bytes and reports malformed input as a
// [*SyntaxError] carrying the line and column of the failure.
package document
