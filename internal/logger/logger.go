package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/config"
)

const name = "sarf-quiz"

// New builds the production preset when Env is "production" and the
// development preset otherwise. cfg.Log.Level overrides the preset's level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		zcfg.Level = level
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return log.Named(name), nil
}
