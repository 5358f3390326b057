// Package extract derives the fixed per-file metadata record from a probe
// result. The extraction contract is "never fails": every call produces a
// usable record, falling back to null fields when the probe itself fails.
package extract

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mediaforge/vidmeta/internal/probe"
)

// Record holds the technical metadata of one video file. Pointer fields are
// nil when the value could not be extracted; they serialize as empty CSV
// cells, never "0". HasAudio is always 0 or 1.
type Record struct {
	ID       string
	Duration *float64 // Seconds, container-level.
	Width    *int     // Primary video stream.
	Height   *int     // Primary video stream.
	FPS      *float64 // Rounded to 2 decimal places.
	HasAudio int
	Bitrate  *int64 // Container-level, bits per second.
}

// Extractor turns file paths into Records using the injected Prober.
type Extractor struct {
	Prober probe.Prober
}

// Extract probes path and derives its Record. The returned record is always
// valid: on any probe or parse failure the fields stay at their null
// defaults and the error is returned for diagnostic logging only. The
// caller's "continue on error" policy is an explicit branch, not an
// exception scope.
func (e *Extractor) Extract(ctx context.Context, path string) (Record, error) {
	rec := Record{ID: IDFromPath(path)}

	res, err := e.Prober.Probe(ctx, path)
	if err != nil {
		return rec, err
	}

	// Container-level fields. A successful probe sets them even when ffprobe
	// omitted the key (zero value), matching the legacy extraction script;
	// only a failed probe leaves them nil.
	duration := res.Format.Duration
	bitrate := res.Format.BitRate
	rec.Duration = &duration
	rec.Bitrate = &bitrate

	if v := res.PrimaryVideo; v != nil {
		width, height := v.Width, v.Height
		rec.Width = &width
		rec.Height = &height
		fps := ParseFrameRate(v.RFrameRate)
		rec.FPS = &fps
	}

	if res.HasAudio() {
		rec.HasAudio = 1
	}
	return rec, nil
}

// IDFromPath derives the record identifier: base name minus extension.
func IDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFrameRate computes frames per second from a rational "num/den"
// expression, rounded to 2 decimal places. Malformed expressions and zero
// denominators yield 0 rather than an error; a bad rate string must not
// discard the rest of the record.
func ParseFrameRate(expr string) float64 {
	parts := strings.Split(expr, "/")
	if len(parts) != 2 {
		return 0
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || den == 0 {
		return 0
	}
	return math.Round(num/den*100) / 100
}
