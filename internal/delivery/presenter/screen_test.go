package presenter_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/sarf-quiz/internal/delivery/presenter"
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/service"
	"github.com/aliskhannn/sarf-quiz/internal/storage"
	"github.com/aliskhannn/sarf-quiz/internal/textshape"
)

type stubQuestions struct {
	n int
}

func (s *stubQuestions) Random() *entities.Question {
	s.n++
	return &entities.Question{
		Prompt:       fmt.Sprintf("Select the correct conjugation %d", s.n),
		Meta:         "Tense: past",
		Options:      []string{"كَتَبَ", "كَتَبَا", "كَتَبُوا", "كَتَبَتْ"},
		CorrectIndex: 2,
		Hint:         "Pattern",
	}
}

func newController(t *testing.T) (*service.SessionController, *time.Time) {
	t.Helper()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := service.NewSessionController(&stubQuestions{}, storage.NewResultStore(), service.SessionSettings{
		TestLength:     3,
		ScoringEnabled: true,
		FontSize:       18,
		MinFontSize:    10,
		MaxFontSize:    32,
	}, nil, service.WithClock(func() time.Time { return now }))

	return c, &now
}

func marks(s presenter.Screen) []presenter.Mark {
	out := make([]presenter.Mark, len(s.Options))
	for i, o := range s.Options {
		out[i] = o.Mark
	}
	return out
}

func TestBuildIdle(t *testing.T) {
	c, _ := newController(t)

	s := presenter.Build(c, nil)

	assert.Equal(t, entities.StateIdle, s.State)
	assert.Equal(t, "Sarf Quiz", s.Header)
	assert.NotEmpty(t, s.Prompt)
	require.Len(t, s.Options, entities.OptionCount)
	for _, o := range s.Options {
		assert.False(t, o.Enabled)
	}
	assert.Equal(t, "Score: 0/0 (0%)", s.Status)
	assert.Empty(t, s.Timer)
	assert.Equal(t, 18, s.FontSize)
	assert.False(t, s.CanNext)
}

func TestBuildPracticeQuestion(t *testing.T) {
	c, _ := newController(t)
	c.Start(false, 0)

	s := presenter.Build(c, textshape.Identity{})

	assert.Equal(t, "Practice · question 1", s.Header)
	assert.Equal(t, "Select the correct conjugation 1", s.Prompt)
	assert.Equal(t, "كَتَبُوا", s.Options[2].Text)
	for _, o := range s.Options {
		assert.True(t, o.Enabled)
		assert.Equal(t, presenter.MarkNone, o.Mark)
	}
	assert.Equal(t, "Skip", s.NextLabel)
	assert.True(t, s.CanNext)
	assert.True(t, s.CanStop)
	assert.Empty(t, s.Timer)
	assert.False(t, s.HintVisible)
}

func TestBuildAnsweredWrong(t *testing.T) {
	c, _ := newController(t)
	c.Start(false, 0)
	c.Answer(0)

	s := presenter.Build(c, textshape.Identity{})

	assert.Equal(t, []presenter.Mark{presenter.MarkWrong, presenter.MarkNone, presenter.MarkMissed, presenter.MarkNone}, marks(s))
	assert.Equal(t, "❌ Wrong. Correct answer: كَتَبُوا", s.Feedback)
	assert.Equal(t, "Score: 0/1 (0%)", s.Status)
	for _, o := range s.Options {
		assert.False(t, o.Enabled)
	}
}

func TestBuildAnsweredCorrectWithScoringOff(t *testing.T) {
	c, _ := newController(t)
	c.ToggleScoring()
	c.ToggleHint()
	c.Start(false, 0)
	c.Answer(2)

	s := presenter.Build(c, textshape.Identity{})

	assert.Equal(t, presenter.MarkCorrect, s.Options[2].Mark)
	assert.Equal(t, "✅ Correct!", s.Feedback)
	assert.Equal(t, "Scoring off", s.Status)
	assert.True(t, s.HintVisible)
	assert.Equal(t, "💡 Pattern", s.Hint)
}

func TestBuildTestAndReview(t *testing.T) {
	c, now := newController(t)
	c.Start(true, 0)

	*now = now.Add(65 * time.Second)
	s := presenter.Build(c, textshape.Identity{})
	assert.Equal(t, "Test · question 1 of 3", s.Header)
	assert.Equal(t, "⏱ 01:05", s.Timer)
	assert.False(t, s.CanNext)

	for i := 0; i < 3; i++ {
		c.Answer(2 - i)
		if i == 2 {
			assert.Equal(t, "Finish", presenter.Build(c, nil).NextLabel)
		}
		c.Next()
	}
	require.Equal(t, entities.StateReview, c.State())

	s = presenter.Build(c, textshape.Identity{})
	assert.True(t, s.Reviewing)
	assert.Equal(t, "Review · 1 of 3", s.Header)
	assert.Equal(t, "Your answer: كَتَبُوا (correct)", s.Feedback)
	assert.True(t, s.CanNext)
	assert.False(t, s.CanPrevious)
	assert.Contains(t, s.Status, "Test finished: 1/3 correct in 01:05")
	assert.Contains(t, s.Status, "Best test: 1/3 in 01:05")
	assert.Contains(t, s.Status, "Tests this run: 1 · last: 1/3")

	c.Next()
	c.Next()
	s = presenter.Build(c, textshape.Identity{})
	assert.Equal(t, "Review · 3 of 3", s.Header)
	assert.Equal(t, "Your answer: كَتَبَ (wrong), correct: كَتَبُوا", s.Feedback)
	assert.False(t, s.CanNext)
	assert.True(t, s.CanPrevious)
	assert.Equal(t, []presenter.Mark{presenter.MarkWrong, presenter.MarkNone, presenter.MarkMissed, presenter.MarkNone}, marks(s))
}

func TestBuildShapesArabic(t *testing.T) {
	c, _ := newController(t)
	c.Start(false, 0)

	shaper := textshape.New(true, textshape.Options{})
	s := presenter.Build(c, shaper)

	assert.Equal(t, shaper.Shape("كَتَبَ"), s.Options[0].Text)
	assert.NotEqual(t, "كَتَبَ", s.Options[0].Text)
	assert.Equal(t, "Select the correct conjugation 1", s.Prompt)
}
