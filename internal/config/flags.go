package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// (and environment overrides) hold unless the flag is set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, stray positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("vidmeta", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	fs.StringVar(&cfg.InputDir, "input", cfg.InputDir, "Directory to scan for video files")
	fs.StringVar(&cfg.InputDir, "i", cfg.InputDir, "Same as --input")
	fs.StringVar(&cfg.OutputCSV, "output", cfg.OutputCSV, "Destination CSV path")
	fs.StringVar(&cfg.OutputCSV, "o", cfg.OutputCSV, "Same as --output")

	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&negated.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&negated.noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run ffprobe diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&negated.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&negated.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&negated.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&negated.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "vidmeta v"+version)
		os.Exit(0)
	}

	if negated.noColor {
		cfg.ColorMode = ColorNever
	} else if negated.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (all inputs are flags)", fs.Arg(0))
	}

	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	return nil
}

// negatedFlags holds boolean flags applied after Parse. These either invert
// a default (noColor -> ColorNever) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "vidmeta v" + version + " — video metadata extraction to CSV"},
		{"", ""},
		{"  vidmeta [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -i, --input <dir>", "Directory to scan (default: ./videos, env VIDMETA_INPUT)"},
		{"  -o, --output <file>", "Destination CSV (default: ./video_metadata.csv, env VIDMETA_OUTPUT)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "ffprobe diagnostics and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
