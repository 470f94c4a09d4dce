package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, slog.LevelError, s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
	assert.Empty(t, s.OutputFile)
	assert.Zero(t, s.Workers)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("LANG_DETECT_OUTPUT", "report.json")
	t.Setenv("LANG_DETECT_EXCLUDE", "vendor/**, *.min.js ,dist/**")
	t.Setenv("LANG_DETECT_LOG_LEVEL", "debug")
	t.Setenv("LANG_DETECT_LOG_FORMAT", "json")

	s := LoadSettings()

	assert.Equal(t, "report.json", s.OutputFile)
	assert.Equal(t, []string{"vendor/**", "*.min.js", "dist/**"}, s.ExcludePatterns)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestLoadSettingsIgnoresBadLogLevel(t *testing.T) {
	t.Setenv("LANG_DETECT_LOG_LEVEL", "verbose")
	s := LoadSettings()
	assert.Equal(t, slog.LevelError, s.LogLevel)
}

func TestApplyLogFlags(t *testing.T) {
	s := DefaultSettings()
	s.ApplyLogFlags("info", "json", "/tmp/out.log")

	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "/tmp/out.log", s.LogFile)

	// unparseable level and empty values leave settings untouched
	s.ApplyLogFlags("nope", "", "")
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "/tmp/out.log", s.LogFile)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNewLogger(t *testing.T) {
	s := DefaultSettings()
	logger, err := s.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	s.LogFormat = "json"
	s.LogFile = filepath.Join(t.TempDir(), "app.log")
	logger, err = s.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLoggerBadFile(t *testing.T) {
	s := DefaultSettings()
	s.LogFile = filepath.Join(t.TempDir(), "missing", "app.log")
	_, err := s.NewLogger()
	assert.Error(t, err)
}
