package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	require.Equal(t, slog.LevelDebug, LevelFromString("DEBUG"))
	require.Equal(t, slog.LevelWarn, LevelFromString("warning"))
	require.Equal(t, slog.LevelError, LevelFromString("error"))
	require.Equal(t, slog.LevelInfo, LevelFromString("nonsense"))
	require.Greater(t, LevelFromString("silent"), slog.LevelError)
}

func TestNew(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buff bytes.Buffer
		logger := New(&buff, slog.LevelInfo)
		logger.Debug("hidden")
		logger.Info("listening", "addr", "localhost:8080")
		require.NotContains(t, buff.String(), "hidden")
		require.Contains(t, buff.String(), "addr=localhost:8080")
	})

	t.Run("json", func(t *testing.T) {
		var buff bytes.Buffer
		NewFormatted(&buff, slog.LevelInfo, JSON).Info("listening", "addr", "localhost:8080")
		require.Contains(t, buff.String(), `"addr":"localhost:8080"`)
	})

	t.Run("discard", func(t *testing.T) {
		require.False(t, Discard().Enabled(context.Background(), slog.LevelError))
	})
}
