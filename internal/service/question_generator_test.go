package service_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/sarf-quiz/internal/conjugation"
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/repository"
	"github.com/aliskhannn/sarf-quiz/internal/service"
)

func newGenerator(t *testing.T, primary conjugation.Provider, seed int64) (*service.QuestionGenerator, *repository.VerbRepository) {
	t.Helper()

	repo, err := repository.NewVerbRepository()
	require.NoError(t, err)

	conj := conjugation.NewService(primary, conjugation.Fallback{}, zap.NewNop())
	gen, err := service.NewQuestionGenerator(repo, conj, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return gen, repo
}

func assertWellFormed(t *testing.T, q *entities.Question) {
	t.Helper()

	require.Len(t, q.Options, entities.OptionCount)
	require.True(t, q.ValidIndex(q.CorrectIndex))

	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		key := norm.NFC.String(o)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate option %q in %v", o, q.Options)
		seen[key] = struct{}{}
	}

	matches := 0
	for i := range q.Options {
		if q.IsCorrect(i) {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestGenerateKatabaPresentIndicative(t *testing.T) {
	gen, repo := newGenerator(t, conjugation.NewEngine(), 1)
	kataba, err := repo.GetByTransliteration("kataba")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		q := gen.Generate(kataba, entities.PronounAt(0), entities.TensePresent, entities.MoodIndicative)
		assertWellFormed(t, q)

		assert.Equal(t, entities.StyleConjugate, q.Style)
		assert.Equal(t, "يَكْتُبُ", q.CorrectAnswer())
		assert.Equal(t, "yaktubu", conjugation.Transliterate(q.CorrectAnswer()))

		count := 0
		for _, o := range q.Options {
			if o == "يَكْتُبُ" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestRandomQuestionsAreWellFormed(t *testing.T) {
	providers := map[string]conjugation.Provider{
		"engine":      conjugation.NewEngine(),
		"unavailable": conjugation.Unavailable{},
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			gen, _ := newGenerator(t, p, 42)
			styles := make(map[entities.QuestionStyle]int)

			for i := 0; i < 500; i++ {
				q := gen.Random()
				require.NotNil(t, q)
				assertWellFormed(t, q)
				assert.NotEmpty(t, q.Prompt)
				styles[q.Style]++
			}

			assert.Len(t, styles, 4)
		})
	}
}

func TestIdentifyCorrectOptionIsSlotLabel(t *testing.T) {
	gen, repo := newGenerator(t, conjugation.NewEngine(), 7)
	conj := conjugation.NewService(conjugation.NewEngine(), nil, zap.NewNop())

	for _, v := range repo.GetAll() {
		for i := 0; i < 20; i++ {
			q := gen.Identify(v)
			assertWellFormed(t, q)
			assert.Equal(t, entities.NewSlot(q.Tense, q.Mood).Label(), q.CorrectAnswer())

			// the shown form belongs to exactly one slot
			shown := conj.Conjugate(v, q.Pronoun, q.Tense, q.Mood)
			matches := 0
			for _, s := range entities.Slots() {
				if conj.Conjugate(v, q.Pronoun, s.Tense, s.Mood) == shown {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "%s %s", v.Transliteration, q.Pronoun.Label)
		}
	}
}

func TestIdentifySkipsPronounsWithSharedForms(t *testing.T) {
	gen, repo := newGenerator(t, conjugation.NewEngine(), 11)
	kataba, err := repo.GetByTransliteration("kataba")
	require.NoError(t, err)

	// هم: subjunctive and jussive are both يَكْتُبُوا
	for i := 0; i < 200; i++ {
		assert.NotEqual(t, 2, gen.Identify(kataba).Pronoun.Index)
	}
}

func TestTransformTargetsSecondSlot(t *testing.T) {
	gen, repo := newGenerator(t, conjugation.NewEngine(), 3)
	v, err := repo.GetByTransliteration("kataba")
	require.NoError(t, err)

	from := entities.NewSlot(entities.TensePast, entities.MoodNone)
	to := entities.NewSlot(entities.TensePresent, entities.MoodJussive)
	q := gen.Transform(v, entities.PronounAt(0), from, to)

	assertWellFormed(t, q)
	assert.Equal(t, "يَكْتُبْ", q.CorrectAnswer())
	assert.Contains(t, q.Prompt, "كَتَبَ")
}

func TestBaseVerbCorrectOptionIsPastForm(t *testing.T) {
	gen, repo := newGenerator(t, conjugation.NewEngine(), 5)
	verbs := repo.GetAll()[:entities.OptionCount]

	q := gen.BaseVerb(verbs, entities.PronounAt(2), entities.NewSlot(entities.TensePast, entities.MoodNone))

	assertWellFormed(t, q)
	assert.Equal(t, verbs[0].Past, q.CorrectAnswer())
	assert.ElementsMatch(t, []string{verbs[0].Past, verbs[1].Past, verbs[2].Past, verbs[3].Past}, q.Options)
}

type singleVerb struct{}

func (singleVerb) GetAll() []entities.Verb {
	return []entities.Verb{{Past: "كَتَبَ"}}
}

func TestNewQuestionGeneratorNeedsVerbs(t *testing.T) {
	_, err := service.NewQuestionGenerator(singleVerb{}, nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, service.ErrNotEnoughVerbs)
}
