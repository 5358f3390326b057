// Package csvout writes metadata records as a CSV table with the fixed
// column order Id,duration,width,height,fps,has_audio,bitrate.
package csvout

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mediaforge/vidmeta/internal/extract"
)

// Header is the fixed column row, written exactly once per output file.
var Header = []string{"Id", "duration", "width", "height", "fps", "has_audio", "bitrate"}

// Writer streams records to an underlying io.Writer as CSV rows.
// encoding/csv handles quoting and row termination, so output is free of
// spurious blank rows regardless of platform.
type Writer struct {
	cw *csv.Writer
}

// NewWriter wraps w for CSV output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// WriteHeader emits the fixed header row.
func (w *Writer) WriteHeader() error {
	return w.cw.Write(Header)
}

// WriteRecord emits one data row. Nil numeric fields become empty cells;
// HasAudio is always "0" or "1".
func (w *Writer) WriteRecord(rec extract.Record) error {
	return w.cw.Write([]string{
		rec.ID,
		formatFloat(rec.Duration),
		formatInt(rec.Width),
		formatInt(rec.Height),
		formatFloat(rec.FPS),
		strconv.Itoa(rec.HasAudio),
		formatInt64(rec.Bitrate),
	})
}

// Flush writes buffered rows through and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatInt64(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}
