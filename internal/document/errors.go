// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongKind is returned by typed accessors called on a value of a
	// different kind.
	ErrWrongKind = errors.New("value has wrong kind")
	// ErrUnsupportedNumber is returned for floats with no JSON form (NaN, ±Inf).
	ErrUnsupportedNumber = errors.New("number has no JSON representation")
	// ErrUnsupportedType is returned by [FromInterface] for Go values that do
	// not map onto a JSON kind.
	ErrUnsupportedType = errors.New("unsupported Go type")
	// ErrPathNotFound is returned by [Value.Lookup] when a path segment does
	// not resolve.
	ErrPathNotFound = errors.New("path not found")
)

// SyntaxError describes malformed JSON text. Line and Column are 1-based;
// Offset is the 0-based character position of the failure.
type SyntaxError struct {
	Msg    string
	Offset int64
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}
