package config

import (
	"errors"
	"flag"
	"strings"
)

// PathList collects repeated path flags.
// It implements the flag.Value interface.
type PathList []string

// String returns the paths joined by commas.
func (p *PathList) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

// Set appends one path. Empty values are rejected.
func (p *PathList) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("path must not be empty")
	}
	*p = append(*p, s)
	return nil
}

// ParseFlags parses the command line (without the program name).
//
// Flags:
//
//	-c/-config JSON file to load (repeatable)
//	-log-level minimum log level (trace, debug, info, warn, error, disabled)
//	-no-color  disable coloured status lines
//	-dump      print each loaded document as indented JSON
//	-q/-query  dotted path to print from each loaded document
//	-status    where status lines go (console, log)
//
// Positional arguments are further paths, loaded after the -c ones.
func ParseFlags(args []string) (*Settings, error) {
	cfg, _, err := parseFlags(args)
	return cfg, err
}

// parseFlags is ParseFlags that also returns the names of the flags given
// explicitly on the command line.
func parseFlags(args []string) (*Settings, map[string]bool, error) {
	var paths PathList
	var logLevel string
	var noColor, dump bool
	var query, status string

	fs := flag.NewFlagSet("loadconfig", flag.ContinueOnError)
	fs.Var(&paths, "c", "JSON config file path")
	fs.Var(&paths, "config", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	fs.BoolVar(&dump, "dump", false, "Print loaded documents as JSON")
	fs.StringVar(&query, "q", "", "Dotted path to print")
	fs.StringVar(&query, "query", "", "Dotted path to print (alias)")
	fs.StringVar(&status, "status", "", "Status line sink: console or log")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	paths = append(paths, fs.Args()...)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return &Settings{
		Paths: paths,
		Log: Log{
			Level: logLevel,
		},
		Output: Output{
			NoColor: noColor,
			Dump:    dump,
			Query:   query,
			Status:  status,
		},
	}, set, nil
}

// applyExplicit copies onto dst every field of src whose flag is in set,
// zero values included, so "-dump=false" clears an environment "true".
func applyExplicit(dst, src *Settings, set map[string]bool) {
	if set["log-level"] {
		dst.Log.Level = src.Log.Level
	}
	if set["no-color"] {
		dst.Output.NoColor = src.Output.NoColor
	}
	if set["dump"] {
		dst.Output.Dump = src.Output.Dump
	}
	if set["q"] || set["query"] {
		dst.Output.Query = src.Output.Query
	}
	if set["status"] {
		dst.Output.Status = src.Output.Status
	}
}
