package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLILogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger := NewCLILogger(level)
			require.NotNil(t, logger)
			logger.Info("test message")
		})
	}
}

func TestCLIHandler_LevelColors(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*slog.Logger)
		color   string
	}{
		{"debug is gray", func(l *slog.Logger) { l.Debug("msg") }, colorGray},
		{"info is green", func(l *slog.Logger) { l.Info("msg") }, colorGreen},
		{"warn is yellow", func(l *slog.Logger) { l.Warn("msg") }, colorYellow},
		{"error is red", func(l *slog.Logger) { l.Error("msg") }, colorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, slog.LevelDebug))

			tt.logFunc(logger)

			output := buf.String()
			assert.Contains(t, output, "msg")
			assert.Contains(t, output, tt.color)
			assert.Contains(t, output, colorReset)
		})
	}
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		logFunc      func(*slog.Logger)
		shouldLog    bool
	}{
		{"info handler logs info", slog.LevelInfo, func(l *slog.Logger) { l.Info("test") }, true},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("test") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("test") }, true},
		{"error handler filters info", slog.LevelError, func(l *slog.Logger) { l.Info("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, tt.handlerLevel))

			tt.logFunc(logger)

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandler_IncludesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("test message", "score", 843, "format", "json")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "score=843")
	assert.Contains(t, output, "format=json")
}

func TestCLIHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	logger := slog.New(handler).With("component", "credit_mix")
	logger.Info("computed")

	output := buf.String()
	assert.Contains(t, output, "component=credit_mix")

	// Empty attr set returns the same handler.
	assert.Equal(t, slog.Handler(handler), handler.WithAttrs(nil))
}

func TestCLIHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo)

	logger := slog.New(handler).WithGroup("score")
	logger.Info("hello")

	output := buf.String()
	assert.Contains(t, output, "[score]")
	assert.Contains(t, output, "hello")

	// Empty group name is a no-op.
	assert.Equal(t, slog.Handler(handler), handler.WithGroup(""))
}

func TestSetDefaultCLILogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetDefaultCLILogger("debug")

	require.NotNil(t, slog.Default())
	slog.Default().Debug("default logger message")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"  debug  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}
