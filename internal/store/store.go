// Package store persists daily time summaries as a JSON document keyed by
// ISO date. Writes are whole-file and atomic (temp file + rename) so a crash
// mid-write never leaves a truncated summary behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DaySummary holds accumulated seconds for one calendar day.
type DaySummary struct {
	Total float64            `json:"total"`
	ByApp map[string]float64 `json:"by_app"`
}

// NewDaySummary returns an empty summary for a new day.
func NewDaySummary() *DaySummary {
	return &DaySummary{ByApp: map[string]float64{}}
}

// Add accrues seconds to app and to the day total.
func (d *DaySummary) Add(app string, seconds float64) {
	if d.ByApp == nil {
		d.ByApp = map[string]float64{}
	}
	d.ByApp[app] += seconds
	d.Total += seconds
}

// Summary maps ISO date keys ("2006-01-02") to per-day summaries.
type Summary map[string]*DaySummary

// Day returns the summary for key, creating an empty one if absent.
func (s Summary) Day(key string) *DaySummary {
	if d, ok := s[key]; ok && d != nil {
		if d.ByApp == nil {
			d.ByApp = map[string]float64{}
		}
		return d
	}
	d := NewDaySummary()
	s[key] = d
	return d
}

// Store reads and writes the summary file.
type Store struct {
	path string
}

// New returns a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the summary file. A missing file yields an empty summary and
// no error. A corrupt or unreadable file yields an empty summary and an
// error for the caller to log; tracking continues either way.
func (s *Store) Load() (Summary, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Summary{}, nil
		}
		return Summary{}, fmt.Errorf("read summary %s: %w", s.path, err)
	}
	var sum Summary
	if err := json.Unmarshal(b, &sum); err != nil {
		return Summary{}, fmt.Errorf("parse summary %s: %w", s.path, err)
	}
	if sum == nil {
		sum = Summary{}
	}
	return sum, nil
}

// Save writes the whole summary atomically: encode to a temp file in the
// same directory, then rename over the target.
func (s *Store) Save(sum Summary) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp summary: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		tmp.Close()
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp summary: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace summary %s: %w", s.path, err)
	}
	return nil
}

// MigrateLegacy copies the legacy summary file to the store path once:
// only when the legacy file exists and the store path does not. The legacy
// file is left untouched. Returns true when a copy happened.
func (s *Store) MigrateLegacy(legacyPath string) (bool, error) {
	if legacyPath == "" {
		return false, nil
	}
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	}
	b, err := os.ReadFile(legacyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read legacy summary %s: %w", legacyPath, err)
	}

	// Validate before adopting so a corrupt legacy file doesn't poison
	// the new location.
	var sum Summary
	if err := json.Unmarshal(b, &sum); err != nil {
		return false, fmt.Errorf("parse legacy summary %s: %w", legacyPath, err)
	}
	if err := s.Save(sum); err != nil {
		return false, err
	}
	return true, nil
}
