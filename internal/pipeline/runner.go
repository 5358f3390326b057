package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediaforge/vidmeta/internal/config"
	"github.com/mediaforge/vidmeta/internal/csvout"
	"github.com/mediaforge/vidmeta/internal/display"
	"github.com/mediaforge/vidmeta/internal/extract"
	"github.com/mediaforge/vidmeta/internal/logging"
	"github.com/mediaforge/vidmeta/internal/probe"
	"github.com/mediaforge/vidmeta/internal/term"
)

// Run is the top-level batch entry point. It verifies the input directory,
// discovers eligible files, extracts metadata from each one sequentially,
// and streams one CSV row per file to cfg.OutputCSV.
//
// Per-file extraction failures are contained: they log a diagnostic, write a
// null-field row, and the batch continues. A returned error is fatal to the
// whole run (missing input directory, unwritable output); in the missing
// input case no output file is created.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, prober probe.Prober) (RunStats, error) {
	var stats RunStats

	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		return stats, fmt.Errorf("input directory does not exist: %s", cfg.InputDir)
	}

	files, err := Discover(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", cfg.InputDir, err)
	}
	stats.Total = len(files)
	log.Info("Found %d %s files in %s", stats.Total, videoExtension, cfg.InputDir)

	out, err := os.Create(cfg.OutputCSV)
	if err != nil {
		return stats, fmt.Errorf("create output: %w", err)
	}
	// The handle is scoped to the run: closed on every exit path. The
	// explicit Close below surfaces flush errors; this defer only covers
	// early returns.
	defer out.Close()

	w := csvout.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return stats, fmt.Errorf("write header: %w", err)
	}

	ex := &extract.Extractor{Prober: prober}
	isTTY := term.IsTerminal(os.Stdout)

	for i, name := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			display.ClearProgress(isTTY)
			log.Warn("Interrupted")
			break
		}

		display.PrintProgress(isTTY, stats.Current, stats.Total, stats.Failed, name)

		path := filepath.Join(cfg.InputDir, name)
		rec, err := ex.Extract(ctx, path)
		if err != nil {
			display.ClearProgress(isTTY)
			log.Error("Extraction failed for %s: %v", path, err)
			stats.Failed++
		} else {
			stats.Extracted++
			log.Debug(cfg.Verbose, "Extracted %s: duration=%s width=%s height=%s has_audio=%d",
				name, fmtPtrFloat(rec.Duration), fmtPtrInt(rec.Width), fmtPtrInt(rec.Height), rec.HasAudio)
		}

		// Failed or not, every eligible file gets exactly one row.
		if werr := w.WriteRecord(rec); werr != nil {
			display.ClearProgress(isTTY)
			return stats, fmt.Errorf("write row for %s: %w", name, werr)
		}
	}

	display.ClearProgress(isTTY)

	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return stats, fmt.Errorf("close output: %w", err)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Success("Done: %d extracted, %d failed", stats.Extracted, stats.Failed)

	sizeLabel := ""
	if fi, err := os.Stat(cfg.OutputCSV); err == nil {
		sizeLabel = ", " + display.FormatBytes(fi.Size())
	}
	log.Info("Results written to %s (%d rows%s)", cfg.OutputCSV, stats.Rows(), sizeLabel)
}

// Debug-line helpers: render pointer fields as their CSV representation.

func fmtPtrFloat(p *float64) string {
	if p == nil {
		return "null"
	}
	return fmt.Sprintf("%g", *p)
}

func fmtPtrInt(p *int) string {
	if p == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *p)
}
