// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

// Status is the outcome of one load attempt as handed to a [Reporter].
type Status struct {
	Path string
	// Err is nil on success.
	Err *LoadError
}

// OK reports whether the load succeeded.
func (s Status) OK() bool {
	return s.Err == nil
}

// Line renders the one-line human-readable form of s.
func (s Status) Line() string {
	if s.Err == nil {
		return "✓ Configuration loaded from: " + s.Path
	}

	switch s.Err.Kind {
	case KindNotFound:
		return "✗ Configuration file not found: " + s.Path
	case KindParse:
		return "✗ Error parsing JSON file: " + s.Err.Diagnostic()
	default:
		return "✗ Error loading configuration: " + s.Err.Diagnostic()
	}
}
