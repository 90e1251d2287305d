package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		msg      string
		expected string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", expected: "information message\n"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", expected: "! warning message\n"},
		{name: "error level", level: slog.LevelError, msg: "error message", expected: "✗ error message\n"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)

			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newTestHandler(t)

	lg := slog.New(handler).With("path", "/tmp/kiln").WithGroup("cache").WithGroup("entry")
	lg.Info("deleted", "size", 42, "ok", true)

	assert.Equal(t, "deleted path=/tmp/kiln cache.entry.size=42 cache.entry.ok=true\n", buf.String())
}

func TestPrettyHandler_WithGroup_EmptyName(t *testing.T) {
	handler, _ := newTestHandler(t)

	assert.Same(t, handler, handler.WithGroup(""))
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, nil)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	handler := logger.NewPrettyHandler(failingWriter{}, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0)
	err := handler.Handle(context.Background(), r)

	require.Error(t, err)
}
