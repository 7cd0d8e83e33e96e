package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the markline configuration
type Config struct {
	HistoryLimit    int           `yaml:"history_limit"`
	ShowLineNumbers bool          `yaml:"show_line_numbers"`
	Divider         string        `yaml:"divider"`
	LogFile         string        `yaml:"log_file,omitempty"`
	LogLevel        string        `yaml:"log_level"`
	Preview         PreviewConfig `yaml:"preview"`
	Style           StyleConfig   `yaml:"style"`
}

// PreviewConfig controls the HTML preview.
type PreviewConfig struct {
	Sanitize bool `yaml:"sanitize"`
}

// StyleConfig holds terminal colours as hex ("#ffcc00") or ANSI ("212")
// values. Empty values leave the default style untouched.
type StyleConfig struct {
	Text          string `yaml:"text,omitempty"`
	HighlightLine string `yaml:"highlight_line,omitempty"`
	HighlightMark string `yaml:"highlight_mark,omitempty"`
	Selection     string `yaml:"selection,omitempty"`
	Cursor        string `yaml:"cursor,omitempty"`
	LineNumber    string `yaml:"line_number,omitempty"`
	Status        string `yaml:"status,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		HistoryLimit: 1000,
		Divider:      "\n\n-----\n\n",
		LogLevel:     "info",
	}
}

// ConfigPath returns the path to the config file.
// Can be overridden for testing
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "markline", "config.yaml")
}

// Load reads configuration from the XDG config directory. A missing file
// yields the defaults.
func Load() (*Config, error) {
	cfg, err := LoadFile(ConfigPath())
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from path. Fields absent from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}
	return cfg, nil
}

var (
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	reColour    = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|\d{1,3})$`)
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalid)
	}
	if c.Divider == "" {
		return fmt.Errorf("%w: divider cannot be empty", ErrInvalid)
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: invalid log_level '%s': must be one of: debug, info, warn, error", ErrInvalid, c.LogLevel)
	}

	colours := map[string]string{
		"text":           c.Style.Text,
		"highlight_line": c.Style.HighlightLine,
		"highlight_mark": c.Style.HighlightMark,
		"selection":      c.Style.Selection,
		"cursor":         c.Style.Cursor,
		"line_number":    c.Style.LineNumber,
		"status":         c.Style.Status,
	}
	for name, v := range colours {
		if v != "" && !reColour.MatchString(v) {
			return fmt.Errorf("%w: style.%s: invalid colour '%s'", ErrInvalid, name, v)
		}
	}
	return nil
}

// ExpandPaths expands ~ in path settings and makes them absolute
func (c *Config) ExpandPaths() error {
	var err error
	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Abs(path)
}
