// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/MKhiriev/seis-config/internal/logger"
)

// ConsoleReporter prints status lines to a writer, green on success and
// red on failure.
type ConsoleReporter struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
}

// NewConsoleReporter returns a reporter writing to w. Colour is emitted only
// when noColor is false and the process output is a terminal.
func NewConsoleReporter(w io.Writer, noColor bool) *ConsoleReporter {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	if noColor {
		ok.DisableColor()
		fail.DisableColor()
	}

	return &ConsoleReporter{w: w, ok: ok, fail: fail}
}

// Report writes s.Line() followed by a newline.
func (r *ConsoleReporter) Report(s Status) error {
	c := r.ok
	if !s.OK() {
		c = r.fail
	}

	if _, err := c.Fprintln(r.w, s.Line()); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	return nil
}

// LogReporter sends status lines through a structured logger instead of a
// plain writer.
type LogReporter struct {
	log *logger.Logger
}

// NewLogReporter returns a reporter logging through log.
func NewLogReporter(log *logger.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs success at info level and failures at error level.
func (r *LogReporter) Report(s Status) error {
	if s.OK() {
		r.log.Info().Str("path", s.Path).Msg(s.Line())
		return nil
	}

	r.log.Error().
		Str("path", s.Path).
		Stringer("kind", s.Err.Kind).
		Msg(s.Line())
	return nil
}
