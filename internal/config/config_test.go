package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := CratedigDir()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	cfg.BaseURL = "https://samples.example.com"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BaseURL != "https://samples.example.com" {
		t.Fatalf("unexpected base URL: %q", loaded.BaseURL)
	}
	if loaded.SamplesRoot != cfg.SamplesRoot {
		t.Fatalf("samples root changed: %q vs %q", loaded.SamplesRoot, cfg.SamplesRoot)
	}
	if len(loaded.Instruments) != len(DefaultInstruments) {
		t.Fatalf("unexpected vocabulary: %v", loaded.Instruments)
	}
	if loaded.Extension != DefaultExtension {
		t.Fatalf("unexpected extension: %q", loaded.Extension)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".cratedig")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Minimal config: vocabulary and extension fall back to defaults,
	// ~ is expanded at load time.
	doc := "samples_root: ~/beats\nmanifest_path: ~/beats/soundkits.json\n"
	if err := os.WriteFile(filepath.Join(dir, "cratedig.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SamplesRoot != filepath.Join(home, "beats") {
		t.Fatalf("~ not expanded: %q", cfg.SamplesRoot)
	}
	if len(cfg.Instruments) != len(DefaultInstruments) {
		t.Fatalf("default vocabulary not applied: %v", cfg.Instruments)
	}
	if cfg.Extension != ".wav" {
		t.Fatalf("default extension not applied: %q", cfg.Extension)
	}
}

func TestLoad_MissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(); err == nil {
		t.Fatal("expected error when config is absent")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/x")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x") {
		t.Fatalf("unexpected expansion: %q", got)
	}

	got, err = ExpandPath("/abs/path")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/abs/path" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
