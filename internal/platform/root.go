package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveExportDir returns the absolute form of dir, which must be an existing
// directory. A leading "~" expands to the user's home directory.
func ResolveExportDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("export directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("export directory %s is not a directory", abs)
	}
	return abs, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
