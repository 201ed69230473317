package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Output formats for window listings.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the application configuration.
type Config struct {
	Display        string `yaml:"display,omitempty"`
	SwitchDesktop  bool   `yaml:"switch_desktop"`
	Output         string `yaml:"output"`
	LogLevel       string `yaml:"log_level"`
	TruncateTitles bool   `yaml:"truncate_titles"`
}

func DefaultConfig() *Config {
	return &Config{
		SwitchDesktop:  true,
		Output:         OutputText,
		LogLevel:       "warn",
		TruncateTitles: true,
	}
}

// ValidationError reports an invalid config value, with its file position
// when it came from a file.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return &ValidationError{Path: "output", Err: fmt.Errorf("output must be one of: text, json")}
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
