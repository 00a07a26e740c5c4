package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarning, false},
		{"warn", LevelWarning, false},
		{" error ", LevelError, false},
		{"critical", LevelCritical, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_Slog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelDebug.Slog())
	assert.Equal(t, slog.LevelWarn, LevelWarning.Slog())
	assert.Greater(t, LevelCritical.Slog(), slog.LevelError)
	assert.Equal(t, "critical", LevelCritical.String())
}

func TestNewWithWriter_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewWithWriter(&buf, LevelWarning, config.LogConfig{})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNewWithWriter_TraceIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewWithWriter(&buf, LevelInfo, config.LogConfig{})
	require.NoError(t, err)
	defer closer.Close()

	ctx := WithTraceID(context.Background(), "trace-123")
	logger.InfoContext(ctx, "with trace")

	assert.Contains(t, buf.String(), "trace_id=trace-123")
}

func TestNewWithWriter_PerLevelFiles(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger, closer, err := NewWithWriter(&buf, LevelInfo, config.LogConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	Critical(context.Background(), logger, "critical message")
	require.NoError(t, closer.Close())

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "info message")
	assert.NotContains(t, string(info), "warning message")
	assert.NotContains(t, string(info), "error message")
	assert.NotContains(t, string(info), "critical message")

	warning, err := os.ReadFile(filepath.Join(dir, "warning.log"))
	require.NoError(t, err)
	assert.Contains(t, string(warning), "warning message")
	assert.NotContains(t, string(warning), "error message")

	errorsLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errorsLog), "info message")
	assert.Contains(t, string(errorsLog), "error message")
	assert.NotContains(t, string(errorsLog), "critical message")

	critical, err := os.ReadFile(filepath.Join(dir, "critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(critical), "critical message")
	assert.Contains(t, string(critical), "CRITICAL")
	assert.NotContains(t, string(critical), "error message")
}

func TestLog_DispatchesEnumeratedLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewWithWriter(&buf, LevelDebug, config.LogConfig{})
	require.NoError(t, err)
	defer closer.Close()

	Log(context.Background(), logger, LevelDebug, "debug line")
	Log(context.Background(), logger, LevelWarning, "warning line")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=WARN")
}

func TestNewWithWriter_FilesBelowConsoleLevelAreSkipped(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewWithWriter(io.Discard, LevelError, config.LogConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("info message")
	logger.Error("error message")
	require.NoError(t, closer.Close())

	_, err = os.Stat(filepath.Join(dir, "info.log"))
	assert.True(t, os.IsNotExist(err))

	errorsLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errorsLog), "error message")
}
