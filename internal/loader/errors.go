// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
)

// Kind classifies why a configuration file could not be loaded.
type Kind uint8

const (
	// KindOther covers permissions, directories, read failures and text
	// that is not valid UTF-8.
	KindOther Kind = iota
	// KindNotFound means nothing exists at the path.
	KindNotFound
	// KindParse means the file was read but is not a single valid JSON document.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	default:
		return "other"
	}
}

// Sentinel errors matched by [LoadError.Is], one per [Kind].
var (
	ErrNotFound = errors.New("configuration file not found")
	ErrParse    = errors.New("error parsing JSON file")
	ErrOther    = errors.New("error loading configuration")
)

// ErrInvalidEncoding is the cause reported when a file is not UTF-8 text.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// LoadError is returned by [Loader.Load] for every failure.
type LoadError struct {
	Kind Kind
	Path string
	// Err is the underlying cause: a *fs.PathError, a *document.SyntaxError,
	// [ErrInvalidEncoding], or whatever the read returned.
	Err error
}

func (e *LoadError) Error() string {
	if e.Kind == KindNotFound {
		return e.sentinel().Error() + ": " + e.Path
	}
	return e.sentinel().Error() + ": " + e.Diagnostic()
}

// Diagnostic is the cause text shown to users.
func (e *LoadError) Diagnostic() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *LoadError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *LoadError) sentinel() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindParse:
		return ErrParse
	default:
		return ErrOther
	}
}
