// Command loadconfig loads JSON configuration files for the seismology
// notebooks and prints one status line per file.
//
//	loadconfig [-log-level level] [-no-color] [-dump] [-q path] [-status console|log] [-c file]... [file...]
//
// With -status log the status lines go to the structured log on standard
// error and standard output only carries -dump and -q output.
//
// The exit status is 0 when every file loaded, 1 when any failed and 2 when
// the command line or environment is invalid.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/seis-config/internal/config"
	"github.com/MKhiriev/seis-config/internal/document"
	"github.com/MKhiriev/seis-config/internal/loader"
	"github.com/MKhiriev/seis-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.GetSettings(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	log := logger.NewLoggerTo(stderr, "loadconfig", level)
	logBuildInfo(log)
	log.Debug().Any("settings", cfg).Msg("received settings")

	l := loader.NewLoader(newReporter(cfg.Output, stdout, log), log.GetChildLogger("loader"))

	failed := 0
	for _, path := range cfg.Paths {
		doc, err := l.Load(path)
		if err != nil {
			failed++
			continue
		}

		if err := render(stdout, doc, cfg.Output); err != nil {
			log.Error().Err(err).Str("path", path).Msg("error rendering document")
			failed++
		}
	}

	if failed > 0 {
		log.Debug().Int("failed", failed).Int("total", len(cfg.Paths)).Msg("some configurations were not loaded")
		return exitFailed
	}
	return exitOK
}

func newReporter(out config.Output, stdout io.Writer, log *logger.Logger) loader.Reporter {
	if out.Status == config.StatusLog {
		return loader.NewLogReporter(log.GetChildLogger("status"))
	}
	return loader.NewConsoleReporter(stdout, out.NoColor)
}

// render prints the parts of doc selected by out after its status line.
func render(w io.Writer, doc document.Value, out config.Output) error {
	if out.Query != "" {
		v, err := doc.Lookup(document.SplitPath(out.Query)...)
		if err != nil {
			return err
		}

		// strings print bare, everything else as JSON
		text, ok := v.Str()
		if !ok {
			text = v.String()
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	if out.Dump {
		data, err := doc.MarshalIndent("", "  ")
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	return nil
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
