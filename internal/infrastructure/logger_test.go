package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventascli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.level), "level %q", tt.level)
	}
}

func TestCreateLoggerConsole(t *testing.T) {
	logger, err := createLogger(config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "console",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestCreateLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	logger, err := createLogger(config.LoggingConfig{
		Level:    "debug",
		Format:   "text",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)

	logger.Info("hello", slog.String("k", "v"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello")
	assert.Contains(t, string(content), "k=v")
}

func TestGetLoggerFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
