package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// Settings holds process-level configuration
type Settings struct {
	OutputFile      string
	ExcludePatterns []string
	Workers         int
	NoCodeStats     bool
	NoGitInfo       bool

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		ExcludePatterns: []string{},
		Workers:         0, // 0 means GOMAXPROCS
		LogLevel:        slog.LevelError,
		LogFormat:       "text",
	}
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if outputFile := os.Getenv("LANG_DETECT_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if excludePatterns := os.Getenv("LANG_DETECT_EXCLUDE"); excludePatterns != "" {
		settings.ExcludePatterns = strings.Split(excludePatterns, ",")
		for i, pattern := range settings.ExcludePatterns {
			settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if logLevel := os.Getenv("LANG_DETECT_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("LANG_DETECT_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("LANG_DETECT_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// ApplyLogFlags overrides logging settings with CLI flag values
func (s *Settings) ApplyLogFlags(level, format, file string) {
	if parsed, err := parseLogLevel(level); err == nil {
		s.LogLevel = parsed
	}
	if format != "" {
		s.LogFormat = format
	}
	if file != "" {
		s.LogFile = file
	}
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelError, fmt.Errorf("unknown log level: %s", level)
}

// NewLogger builds a slog.Logger from the settings
func (s *Settings) NewLogger() (*slog.Logger, error) {
	var out io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
	}

	opts := &slog.HandlerOptions{Level: s.LogLevel}
	var handler slog.Handler
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), nil
}
