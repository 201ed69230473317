package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if !cfg.SwitchDesktop {
		t.Fatal("expected switch_desktop to default to true")
	}
	if cfg.Output != OutputText {
		t.Fatalf("expected output %q, got %q", OutputText, cfg.Output)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`display: ":1"`,
		"switch_desktop: false",
		"output: json",
		"log_level: debug",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Display != ":1" {
		t.Fatalf("display = %q, want %q", cfg.Display, ":1")
	}
	if cfg.SwitchDesktop {
		t.Fatal("expected switch_desktop false")
	}
	if cfg.Output != OutputJSON {
		t.Fatalf("output = %q, want %q", cfg.Output, OutputJSON)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if !cfg.TruncateTitles {
		t.Fatal("expected truncate_titles to keep its default")
	}
}

func TestLoadFromPath_UnknownKeyRejected(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "hotkey: Mod4-t\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "hotkey") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestLoadFromPath_InvalidOutputHasPosition(t *testing.T) {
	path := writeConfig(t, "switch_desktop: true\noutput: xml\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "output" {
		t.Fatalf("path = %q, want output", verr.Path)
	}
	if verr.Source.File != path || verr.Source.Line != 2 {
		t.Fatalf("source = %+v, want %s line 2", verr.Source, path)
	}
	if !strings.HasPrefix(err.Error(), path+":2:") {
		t.Fatalf("error %q lacks file position", err)
	}
}

func TestLoadFromPath_InvalidLogLevel(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "log_level: loud\n"))
	if err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Fatalf("expected log_level error, got %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	want := filepath.Join(home, ".config", "swmctrl", "config.yaml")
	if got != want {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, want)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"info", slog.LevelInfo},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
