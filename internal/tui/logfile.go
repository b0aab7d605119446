package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If STACK_LOG_FILE is set, uses that path.
// Otherwise, uses <user cache dir>/stack/stack.log. It must not live in a
// .stack directory, or root discovery would stop at the home directory.
func GetLogFilePath() string {
	if customPath := os.Getenv("STACK_LOG_FILE"); customPath != "" {
		return customPath
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "stack.log")
	}

	return filepath.Join(cacheDir, "stack", "stack.log")
}
