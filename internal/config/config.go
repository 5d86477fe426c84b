// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Status sinks accepted by [Output.Status].
const (
	StatusConsole = "console"
	StatusLog     = "log"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "SEISCFG_"

// Settings is the top-level configuration of the loadconfig command.
//
// Struct tags:
//   - env / envPrefix — environment variable names (caarlos0/env), relative
//     to [EnvPrefix].
//   - flag     — the command-line flag name, also used in validation messages.
//   - validate — go-playground/validator rules checked by [Settings.validate].
type Settings struct {
	// Paths lists the JSON files to load, in order.
	// Env: SEISCFG_CONFIG (comma separated)
	Paths []string `env:"CONFIG" flag:"config" validate:"required,min=1,dive,required"`

	// Log holds structured-logging settings.
	Log Log `envPrefix:"LOG_"`

	// Output controls what is printed to standard output.
	Output Output
}

// Log holds structured-logging settings. Logs go to standard error.
type Log struct {
	// Level is the minimum zerolog level name. Empty means info.
	// Env: SEISCFG_LOG_LEVEL
	Level string `env:"LEVEL" flag:"log-level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Output controls the standard-output rendering.
type Output struct {
	// NoColor disables coloured status lines.
	// Env: SEISCFG_NO_COLOR
	NoColor bool `env:"NO_COLOR" flag:"no-color"`

	// Dump prints each loaded document as indented JSON after its status line.
	// Env: SEISCFG_DUMP
	Dump bool `env:"DUMP" flag:"dump"`

	// Query is a dotted path printed from each loaded document,
	// e.g. "source.depth_km" or "array.stations.0".
	// Env: SEISCFG_QUERY
	Query string `env:"QUERY" flag:"query"`

	// Status selects where status lines go: "console" (standard output, the
	// default) or "log" (the structured logger on standard error).
	// Env: SEISCFG_STATUS
	Status string `env:"STATUS" flag:"status" validate:"omitempty,oneof=console log"`
}

// GetSettings loads, merges, and validates the command settings from the
// environment and from args (the command line without the program name).
func GetSettings(args []string) (*Settings, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		build()
}
