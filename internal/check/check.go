// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for ffprobe, the one external tool this program
// invokes.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrFfprobeNotFound is returned by CheckDeps when ffprobe is missing from PATH.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps verifies that ffprobe is available before the batch starts, so a
// missing binary fails the run with one clear error instead of one per file.
func CheckDeps() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck runs the interactive --check flow: prints ffprobe availability
// and version. Informational only; it reports rather than aborts. Returns
// false when ffprobe is unusable.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")
	return checkFfprobe(log)
}

// checkFfprobe verifies ffprobe is on PATH and logs its version string.
func checkFfprobe(log Logger) bool {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found")
		return false
	}
	cmd := exec.Command("ffprobe", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffprobe: %s", firstLine)
	return true
}
