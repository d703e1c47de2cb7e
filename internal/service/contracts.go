package service

import (
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

type VerbRepository interface {
	GetAll() []entities.Verb
}

// Conjugator supplies conjugated forms and never fails; unavailable
// providers are replaced by synthetic forms behind this interface.
type Conjugator interface {
	Conjugate(v entities.Verb, p entities.Pronoun, t entities.Tense, m entities.Mood) string
	Table(v entities.Verb, slot entities.Slot) []string
}

type QuestionSource interface {
	Random() *entities.Question
}

// ResultStore keeps the results of finished tests.
type ResultStore interface {
	Store(result entities.TestResult)
	Best() (entities.TestResult, bool)
	All() []entities.TestResult
}
