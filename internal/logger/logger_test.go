package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/sarf-quiz/internal/config"
	"github.com/aliskhannn/sarf-quiz/internal/logger"
)

func TestNewPicksLevelByEnv(t *testing.T) {
	dev, err := logger.New(&config.Config{Env: "local"})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := logger.New(&config.Config{Env: "production"})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
}

func TestNewAppliesLevelOverride(t *testing.T) {
	log, err := logger.New(&config.Config{Env: "local", Log: config.Log{Level: "warn"}})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = logger.New(&config.Config{Env: "production", Log: config.Log{Level: "debug"}})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logger.New(&config.Config{Env: "local", Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}
