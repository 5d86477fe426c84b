// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/seis-config/internal/document"
	"github.com/MKhiriev/seis-config/internal/logger"
)

// Loader reads JSON configuration files and reports each attempt.
type Loader struct {
	reporter Reporter
	log      *logger.Logger
	open     func(name string) (io.ReadCloser, error)
}

// NewLoader returns a Loader sending statuses to reporter and structured
// events to log. A nil reporter prints to standard output and a nil log
// discards events.
func NewLoader(reporter Reporter, log *logger.Logger) *Loader {
	if reporter == nil {
		reporter = NewConsoleReporter(os.Stdout, false)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		reporter: reporter,
		log:      log,
		open:     openFile,
	}
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// LoadConfig reads path and reports the outcome on standard output. It
// returns nil when the file could not be loaded.
func LoadConfig(path string) *document.Value {
	return NewLoader(NewConsoleReporter(os.Stdout, false), nil).LoadConfig(path)
}

// LoadConfig is like Load but returns nil instead of an error.
func (l *Loader) LoadConfig(path string) *document.Value {
	doc, err := l.Load(path)
	if err != nil {
		return nil
	}
	return &doc
}

// Load reads and parses the JSON file at path. It reports exactly one
// Status and returns a *LoadError on failure.
func (l *Loader) Load(path string) (document.Value, error) {
	doc, size, loadErr := l.read(path)

	if err := l.reporter.Report(Status{Path: path, Err: loadErr}); err != nil {
		l.log.Warn().Err(err).Str("path", path).Msg("error reporting load status")
	}

	if loadErr != nil {
		l.log.Debug().
			Err(loadErr.Err).
			Str("path", path).
			Stringer("kind", loadErr.Kind).
			Msg("configuration not loaded")
		return document.Value{}, loadErr
	}

	l.log.Debug().
		Str("path", path).
		Int("bytes", size).
		Stringer("root", doc.Kind()).
		Msg("configuration loaded")
	return doc, nil
}

func (l *Loader) read(path string) (document.Value, int, *LoadError) {
	f, err := l.open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document.Value{}, 0, &LoadError{Kind: KindNotFound, Path: path, Err: err}
		}
		return document.Value{}, 0, &LoadError{Kind: KindOther, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return document.Value{}, 0, &LoadError{Kind: KindOther, Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return document.Value{}, len(data), &LoadError{Kind: KindOther, Path: path, Err: ErrInvalidEncoding}
	}

	doc, err := document.Parse(data)
	if err != nil {
		var se *document.SyntaxError
		if errors.As(err, &se) {
			return document.Value{}, len(data), &LoadError{Kind: KindParse, Path: path, Err: se}
		}
		return document.Value{}, len(data), &LoadError{Kind: KindOther, Path: path, Err: err}
	}

	return doc, len(data), nil
}
