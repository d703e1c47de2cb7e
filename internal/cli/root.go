package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/config"
	"github.com/aliskhannn/sarf-quiz/internal/conjugation"
	"github.com/aliskhannn/sarf-quiz/internal/delivery/gui"
	"github.com/aliskhannn/sarf-quiz/internal/logger"
	"github.com/aliskhannn/sarf-quiz/internal/repository"
	"github.com/aliskhannn/sarf-quiz/internal/service"
	"github.com/aliskhannn/sarf-quiz/internal/storage"
	"github.com/aliskhannn/sarf-quiz/internal/textshape"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sarf-quiz",
		Short:        "Multiple-choice quiz for Arabic verb conjugation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow()
		},
	}

	cmd.AddCommand(newTableCmd())
	return cmd
}

func runWindow() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.NewVerbRepository()
	if err != nil {
		return fmt.Errorf("load verbs: %w", err)
	}

	controller, err := newController(cfg, repo, log, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	shaper := textshape.New(cfg.Text.Shape, textshape.Options{DeleteHarakat: !cfg.Text.KeepHarakat})

	window, err := gui.NewWindow(cfg, controller, shaper, log)
	if err != nil {
		return err
	}

	log.Info("starting sarf-quiz",
		zap.String("env", cfg.Env),
		zap.String("engine", cfg.Conjugation.Engine),
		zap.Bool("shaping", cfg.Text.Shape),
	)
	window.ShowAndRun()

	return nil
}

// newConjugator wires the configured primary provider in front of the fallback.
func newConjugator(cfg *config.Config, log *zap.Logger) *conjugation.Service {
	var primary conjugation.Provider = conjugation.NewEngine()
	if cfg.Conjugation.Engine == config.EngineFallback {
		primary = conjugation.Unavailable{}
	}
	return conjugation.NewService(primary, conjugation.Fallback{}, log.Named("conjugation"))
}

func newController(cfg *config.Config, repo *repository.VerbRepository, log *zap.Logger, rng *rand.Rand) (*service.SessionController, error) {
	generator, err := service.NewQuestionGenerator(repo, newConjugator(cfg, log), rng)
	if err != nil {
		return nil, fmt.Errorf("init question generator: %w", err)
	}

	return service.NewSessionController(generator, storage.NewResultStore(), service.SessionSettings{
		TestLength:     cfg.Quiz.TestLength,
		ScoringEnabled: cfg.Quiz.ScoringEnabled,
		ShowHint:       cfg.Quiz.ShowHint,
		FontSize:       cfg.UI.FontSize,
		MinFontSize:    cfg.UI.MinFontSize,
		MaxFontSize:    cfg.UI.MaxFontSize,
	}, log.Named("session")), nil
}
