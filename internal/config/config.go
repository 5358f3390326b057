// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation. Defaults match the legacy
// extraction script for parity.
package config

import (
	"errors"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig]
// (built-in defaults plus VIDMETA_* environment overrides) and then mutated
// by [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string `env:"VIDMETA_INPUT" env-default:"./videos"`
	OutputCSV string `env:"VIDMETA_OUTPUT" env-default:"./video_metadata.csv"`

	// Display and logging.
	Verbose   bool      `env:"VIDMETA_VERBOSE"`
	ColorMode ColorMode `env:"VIDMETA_COLOR" env-default:"auto"`
	LogFile   string    `env:"VIDMETA_LOG"` // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with built-in defaults, with any VIDMETA_*
// environment variables applied on top. CLI flags (applied later by
// [ParseFlags]) take precedence over both.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that ColorMode holds a valid value. When not in CheckOnly
// mode, it also requires non-empty input and output paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	if c.OutputCSV == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}
