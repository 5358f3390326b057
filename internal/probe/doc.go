// Package probe provides ffprobe-based media inspection behind a narrow
// [Prober] interface so callers can substitute a stub in tests.
//
// One JSON call per file (-show_format -show_streams) is the entire contract
// with the external tool: a non-zero exit status or unparseable output is an
// error for that file only. ffprobe's output shape is not a versioned
// contract we control, so parsing is best-effort: numeric fields arrive as
// strings and degrade to zero values instead of failing the whole result.
package probe
