// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader reads JSON configuration files for the seismology
// notebooks (elastic constants, source parameters, array geometry).
//
// A [Loader] makes a single synchronous attempt per call: it opens the file,
// parses it into a [document.Value] and sends exactly one [Status] to its
// [Reporter]. Failures are classified as not found, parse error or other
// and returned as a [*LoadError]; [Loader.LoadConfig] and the package-level
// [LoadConfig] swallow the error and return nil instead.
//
// The status lines are:
//
//	✓ Configuration loaded from: <path>
//	✗ Configuration file not found: <path>
//	✗ Error parsing JSON file: <diagnostic>
//	✗ Error loading configuration: <diagnostic>
package loader
