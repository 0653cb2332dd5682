package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("returns a usable logger without OTel", func(t *testing.T) {
		logger := Init(false)

		assert.NotNil(t, logger)
		assert.Same(t, logger, slog.Default())
	})

	t.Run("returns a usable logger with OTel", func(t *testing.T) {
		logger := Init(true)

		assert.NotNil(t, logger)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestTraceContextHandler(t *testing.T) {
	t.Run("passes records through without a span", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))
		logger := slog.New(handler)

		logger.InfoContext(context.Background(), "hello", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
		assert.NotContains(t, record, "trace_id")
	})

	t.Run("preserves attrs and groups", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, nil))
		logger := slog.New(handler).With("service", "yoga-front").WithGroup("req")

		logger.Info("handled", "path", "/sessions")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "yoga-front", record["service"])
		req, ok := record["req"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/sessions", req["path"])
	})
}

func TestMultiHandler(t *testing.T) {
	t.Run("enabled respects level", func(t *testing.T) {
		handler := NewMultiHandler(slog.LevelWarn)

		assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	})
}
