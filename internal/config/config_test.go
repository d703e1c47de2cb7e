package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/sarf-quiz/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 10, cfg.Quiz.TestLength)
	assert.True(t, cfg.Quiz.ScoringEnabled)
	assert.False(t, cfg.Quiz.ShowHint)
	assert.Equal(t, 16, cfg.UI.FontSize)
	assert.Equal(t, 10, cfg.UI.MinFontSize)
	assert.Equal(t, 32, cfg.UI.MaxFontSize)
	assert.NotEmpty(t, cfg.UI.FontSizes)
	assert.True(t, cfg.Text.Shape)
	assert.True(t, cfg.Text.KeepHarakat)
	assert.Equal(t, config.EngineSarf, cfg.Conjugation.Engine)
	assert.Empty(t, cfg.Log.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUIZ_TEST_LENGTH", "5")
	t.Setenv("UI_FONT_SIZE", "20")
	t.Setenv("TEXT_SHAPE", "false")
	t.Setenv("CONJUGATION_ENGINE", "Fallback")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5, cfg.Quiz.TestLength)
	assert.Equal(t, 20, cfg.UI.FontSize)
	assert.False(t, cfg.Text.Shape)
	assert.Equal(t, config.EngineFallback, cfg.Conjugation.Engine)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"test length": {"QUIZ_TEST_LENGTH": "0"},
		"font range":  {"UI_MIN_FONT_SIZE": "40"},
		"window":      {"UI_WINDOW_WIDTH": "-1"},
		"engine":      {"CONJUGATION_ENGINE": "qamus"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
