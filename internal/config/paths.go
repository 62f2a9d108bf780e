package config

import (
	"os"
	"path/filepath"
)

const (
	dirName        = ".sith"
	configFileName = "config.json"
	summaryFile    = "summary.json"

	// Summary location used by releases before the data directory existed.
	legacySummaryFile = ".khanh_clock_summary.json"
)

// Dir returns the application data directory, creating it if needed.
// An empty override means ~/.sith.
func Dir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configFileName)
}

// SummaryPath returns the summary file path inside dir.
func SummaryPath(dir string) string {
	return filepath.Join(dir, summaryFile)
}

// LegacySummaryPath returns the pre-datadir summary location in the
// user's home directory, or "" if the home directory is unknown.
func LegacySummaryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, legacySummaryFile)
}
