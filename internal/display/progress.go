package display

import (
	"fmt"
	"os"
	"strings"
)

// PrintProgress shows a live extraction counter. On a TTY it writes an
// inline \r-overwritten line; otherwise it is a no-op (the per-file failure
// logs already provide enough breadcrumbs in piped/logged output).
func PrintProgress(isTTY bool, current, total, failed int, name string) {
	if !isTTY || total == 0 {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Extracting [%d/%d] %d%% ", current, total, pct)
	if failed > 0 {
		status += fmt.Sprintf("(%d failed) ", failed)
	}

	maxName := 40
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}
	status += name

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// ClearProgress erases the inline progress line on a TTY.
func ClearProgress(isTTY bool) {
	if !isTTY {
		return
	}
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}
