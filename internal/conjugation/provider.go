// Package conjugation supplies conjugated verb forms. A Provider may be unable to
// conjugate a verb; Service hides that behind a deterministic fallback.
package conjugation

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

var (
	ErrProviderUnavailable = errors.New("conjugation provider unavailable")
	ErrUnsupportedRoot     = errors.New("unsupported verb root")
	ErrInvalidSlot         = errors.New("invalid conjugation slot")
)

// Provider returns the surface form of a verb for a pronoun, tense and mood.
type Provider interface {
	Conjugate(v entities.Verb, p entities.Pronoun, t entities.Tense, m entities.Mood) (string, error)
}

// Unavailable is a Provider that can never conjugate anything.
type Unavailable struct{}

// Conjugate always fails with ErrProviderUnavailable.
func (Unavailable) Conjugate(entities.Verb, entities.Pronoun, entities.Tense, entities.Mood) (string, error) {
	return "", ErrProviderUnavailable
}

// Service conjugates with a primary provider and falls back to synthetic forms
// when the primary fails. It never returns an error.
type Service struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewService creates a Service. A nil fallback means Fallback{}.
func NewService(primary, fallback Provider, logger *zap.Logger) *Service {
	if primary == nil {
		primary = Unavailable{}
	}
	if fallback == nil {
		fallback = Fallback{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		warned:   make(map[string]struct{}),
	}
}

// Conjugate returns the form for the given slot, degrading to the fallback form.
func (s *Service) Conjugate(v entities.Verb, p entities.Pronoun, t entities.Tense, m entities.Mood) string {
	m = entities.NormalizeMood(t, m)

	form, err := s.primary.Conjugate(v, p, t, m)
	if err == nil && form != "" {
		return form
	}
	s.warnOnce(v, err)

	form, err = s.fallback.Conjugate(v, p, t, m)
	if err != nil || form == "" {
		s.logger.Error("fallback conjugation failed",
			zap.String("verb", v.Transliteration),
			zap.Error(err),
		)
		form, _ = Fallback{}.Conjugate(v, p, t, m)
	}

	return form
}

// Table returns the fourteen forms of a tense/mood slot in pronoun order.
func (s *Service) Table(v entities.Verb, slot entities.Slot) []string {
	forms := make([]string, 0, entities.PronounCount)
	for _, p := range entities.Pronouns() {
		forms = append(forms, s.Conjugate(v, p, slot.Tense, slot.Mood))
	}
	return forms
}

func (s *Service) warnOnce(v entities.Verb, err error) {
	if err == nil {
		err = ErrProviderUnavailable
	}

	s.mu.Lock()
	_, seen := s.warned[v.Past]
	s.warned[v.Past] = struct{}{}
	s.mu.Unlock()

	if seen {
		s.logger.Debug("using fallback conjugation",
			zap.String("verb", v.Transliteration),
			zap.Error(err),
		)
		return
	}

	s.logger.Warn("conjugation provider failed, using fallback forms",
		zap.String("verb", v.Transliteration),
		zap.String("root", v.RootString()),
		zap.Error(err),
	)
}
