// Package config assembles the settings of the loadconfig command.
//
// Settings are assembled from two sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables with the SEISCFG_ prefix
//  2. Command-line flags and positional arguments
//
// The merged result is validated before use. The entry point is
// [GetSettings]. These settings configure the tool itself; the JSON files
// it loads are handled by package loader.
package config
