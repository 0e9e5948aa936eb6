package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"travelmate/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment falls back to info",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	var buf bytes.Buffer
	prev := output
	output = &buf
	t.Cleanup(func() { output = prev })

	logger := setupPrettySlog()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger.With(slog.String("component", "test")).Info("запрос выполнен", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "запрос выполнен")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"status": 200`)
}

func TestQuiet(t *testing.T) {
	ctx := context.Background()
	logger := Quiet()

	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}
