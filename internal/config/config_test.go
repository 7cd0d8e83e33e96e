package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HistoryLimit != 1000 {
		t.Errorf("Expected HistoryLimit to be 1000, got %d", cfg.HistoryLimit)
	}
	if cfg.Divider != "\n\n-----\n\n" {
		t.Errorf("Expected default divider, got %q", cfg.Divider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "negative history", mutate: func(c *Config) { c.HistoryLimit = -1 }, wantErr: true},
		{name: "empty divider", mutate: func(c *Config) { c.Divider = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
		{name: "hex colour", mutate: func(c *Config) { c.Style.HighlightLine = "#223344" }},
		{name: "ansi colour", mutate: func(c *Config) { c.Style.Cursor = "212" }},
		{name: "bad colour", mutate: func(c *Config) { c.Style.Selection = "blue-ish" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	old := ConfigPath
	defer func() { ConfigPath = old }()
	ConfigPath = func() string { return filepath.Join(t.TempDir(), "missing.yaml") }

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistoryLimit != DefaultConfig().HistoryLimit {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "history_limit: 50\n" +
		"show_line_numbers: true\n" +
		"log_file: " + filepath.Join(dir, "markline.log") + "\n" +
		"preview:\n  sanitize: true\n" +
		"style:\n  highlight_mark: \"#ffcc00\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	old := ConfigPath
	defer func() { ConfigPath = old }()
	ConfigPath = func() string { return path }

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistoryLimit != 50 || !cfg.ShowLineNumbers || !cfg.Preview.Sanitize {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Style.HighlightMark != "#ffcc00" {
		t.Errorf("Expected highlight_mark colour, got %q", cfg.Style.HighlightMark)
	}
	if cfg.Divider != DefaultConfig().Divider {
		t.Errorf("Divider should keep its default, got %q", cfg.Divider)
	}
	if cfg.LogFile != filepath.Join(dir, "markline.log") {
		t.Errorf("Unexpected log_file %q", cfg.LogFile)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("log_level: shout\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if _, err := Parse([]byte("history_limit: [1\n")); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandPath("~/logs/markline.log")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "logs", "markline.log"); got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}
}
