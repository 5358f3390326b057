package pipeline

import (
	"os"
	"strings"
)

// videoExtension is the single eligible extension, matched case-insensitively.
const videoExtension = ".mp4"

// Discover lists the names of eligible video files directly inside inputDir.
// No recursion into subdirectories. Directory entries whose names happen to
// match the extension are excluded; only non-directory entries qualify.
// os.ReadDir yields names sorted by filename, which is accepted as the
// enumeration order (ordering is not a correctness requirement).
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), videoExtension) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
