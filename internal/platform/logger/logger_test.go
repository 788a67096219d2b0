package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklet/tracker-api/internal/config"
)

func TestSetup_ReturnsConfiguredLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		log, err := Setup(config.ServerConfig{LogLevel: level})
		require.NoError(t, err, level)
		assert.NotNil(t, log, level)
	}
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), base)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, fallback))

	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}
