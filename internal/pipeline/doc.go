// Package pipeline orchestrates file discovery, per-file metadata
// extraction, CSV emission, and batch summary reporting.
//
// The batch is strictly sequential: one blocking ffprobe subprocess per
// file, no overlap, no retry. A single file's extraction failure never
// aborts the run; it produces a row of null fields and a logged diagnostic.
// Only a missing input directory aborts the whole run before any output is
// produced. Output-file write errors propagate as fatal.
package pipeline
