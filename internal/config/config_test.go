package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}
	if cfg.IdleThreshold != 2 {
		t.Errorf("IdleThreshold = %d, want 2", cfg.IdleThreshold)
	}
	if !cfg.Allowed("Firefox") {
		t.Errorf("default allowlist missing Firefox: %v", cfg.Allowlist)
	}
}

func TestLoadMergesPartialConfigOverDefaults(t *testing.T) {
	dir := t.TempDir()
	partial := `{"allowlist": ["Editor"], "idle_threshold": 30}`
	if err := os.WriteFile(Path(dir), []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IdleThreshold != 30 {
		t.Errorf("IdleThreshold = %d, want 30", cfg.IdleThreshold)
	}
	if !cfg.Allowed("Editor") || cfg.Allowed("Firefox") {
		t.Errorf("allowlist not replaced: %v", cfg.Allowlist)
	}
	// Keys absent from the file keep their defaults.
	if cfg.UpdateInterval != 1000 {
		t.Errorf("UpdateInterval = %d, want default 1000", cfg.UpdateInterval)
	}
	if cfg.Colors.Working != "#0077ff" {
		t.Errorf("Colors.Working = %q, want default", cfg.Colors.Working)
	}
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for corrupt config")
	}
	if cfg.IdleThreshold != Default().IdleThreshold {
		t.Errorf("fallback config = %+v, want defaults", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Allowlist = []string{"Terminal", "Xcode"}
	cfg.IdleThreshold = 120
	cfg.RecentApps = []string{"Mail"}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.IdleThreshold != 120 {
		t.Errorf("IdleThreshold = %d, want 120", got.IdleThreshold)
	}
	if !got.Allowed("Xcode") {
		t.Errorf("allowlist lost on round trip: %v", got.Allowlist)
	}
	if len(got.RecentApps) != 1 || got.RecentApps[0] != "Mail" {
		t.Errorf("RecentApps = %v", got.RecentApps)
	}
}

func TestDirCreatesDirectory(t *testing.T) {
	base := t.TempDir()
	want := filepath.Join(base, "nested", "data")

	got, err := Dir(want)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != want {
		t.Errorf("Dir = %q, want %q", got, want)
	}
	if fi, err := os.Stat(got); err != nil || !fi.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}
