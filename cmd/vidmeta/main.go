// Command vidmeta is the CLI entrypoint for the video metadata extractor.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the extraction batch: probe every video file in
// the input directory with ffprobe and write one CSV row per file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediaforge/vidmeta/internal/check"
	"github.com/mediaforge/vidmeta/internal/config"
	"github.com/mediaforge/vidmeta/internal/display"
	"github.com/mediaforge/vidmeta/internal/logging"
	"github.com/mediaforge/vidmeta/internal/pipeline"
	"github.com/mediaforge/vidmeta/internal/probe"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output goes
	// through the logger for consistent formatting and log-file capture.
	cfg, err := config.DefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidmeta: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "vidmeta: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vidmeta: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidmeta: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	log.Info("=== vidmeta v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputCSV)
	log.Info("")

	// Fail fast if ffprobe is unavailable; one clear error beats a null row
	// per file.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// batch stops between files; the row in flight is still written.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run the batch. Per-file failures are contained inside Run and
	// do not affect the exit code; only fatal environment errors do.
	if _, err := pipeline.Run(ctx, &cfg, log, probe.FFProber{}); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
