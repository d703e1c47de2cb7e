// Package presenter turns the state of the quiz session controller into a
// toolkit-independent screen description.
package presenter

import (
	"fmt"
	"time"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/textshape"
)

// Controller is the read side of the session controller.
type Controller interface {
	State() entities.SessionState
	Current() *entities.Question
	Chosen() int
	Score() entities.Score
	ScoringEnabled() bool
	HintVisible() bool
	FontSize() int
	Elapsed() time.Duration
	Session() (entities.QuizSession, bool)
	ReviewEntry() (entities.AnswerRecord, int, bool)
	Records() []entities.AnswerRecord
	BestResult() (entities.TestResult, bool)
	Results() []entities.TestResult
}

// Mark tells how an option button is highlighted.
type Mark int

const (
	MarkNone    Mark = iota
	MarkCorrect      // the correct option, chosen
	MarkWrong        // a wrong option that was chosen
	MarkMissed       // the correct option when a wrong one was chosen
)

// Option is one answer button.
type Option struct {
	Text    string
	Enabled bool
	Mark    Mark
}

// Screen describes everything the window shows.
type Screen struct {
	State       entities.SessionState
	Header      string
	Prompt      string
	Meta        string
	Hint        string
	HintVisible bool
	Options     []Option
	Feedback    string
	Status      string
	Timer       string
	FontSize    int

	NextLabel   string
	CanNext     bool
	CanPrevious bool
	CanStop     bool
	CanExit     bool
	Reviewing   bool
}

// Build describes the screen for the current controller state. Every
// question text goes through shaper.
func Build(c Controller, shaper textshape.Shaper) Screen {
	if shaper == nil {
		shaper = textshape.Identity{}
	}

	s := Screen{
		State:       c.State(),
		Header:      msgTitle,
		Options:     emptyOptions(),
		Status:      status(c),
		HintVisible: c.HintVisible(),
		FontSize:    c.FontSize(),
		NextLabel:   labelNext,
	}

	session, started := c.Session()
	if started && session.IsTest() {
		s.Timer = fmt.Sprintf(msgTimer, formatDuration(c.Elapsed()))
	}

	switch s.State {
	case entities.StatePresenting, entities.StateAnswered:
		q := c.Current()
		if q == nil {
			break
		}
		s.Header = progressHeader(session)
		fillQuestion(&s, q, shaper)
		s.CanStop = true

		if s.State == entities.StatePresenting {
			for i := range s.Options {
				s.Options[i].Enabled = true
			}
			if !session.IsTest() {
				s.NextLabel = labelSkip
				s.CanNext = true
			}
			break
		}

		markOptions(s.Options, q, c.Chosen())
		s.Feedback = feedback(q, c.Chosen(), shaper)
		s.CanNext = true
		if session.IsTest() && session.CurrentQuestionNum >= session.TotalQuestions {
			s.NextLabel = labelFinish
		}

	case entities.StateReview:
		entry, pos, ok := c.ReviewEntry()
		if !ok {
			break
		}
		total := len(c.Records())
		s.Reviewing = true
		s.CanExit = true
		s.Header = fmt.Sprintf(msgReview, pos+1, total)
		fillQuestion(&s, &entry.Question, shaper)
		markOptions(s.Options, &entry.Question, entry.ChosenIndex)
		s.Feedback = reviewFeedback(entry, shaper)
		s.CanNext = pos+1 < total
		s.CanPrevious = pos > 0
		if started {
			s.Status = fmt.Sprintf(msgTestDone, correctCount(c.Records()), total, formatDuration(c.Elapsed())) + "\n" + s.Status
		}

	default:
		s.Prompt = msgWelcome
	}

	return s
}

func emptyOptions() []Option {
	return make([]Option, entities.OptionCount)
}

func fillQuestion(s *Screen, q *entities.Question, shaper textshape.Shaper) {
	s.Prompt = shaper.Shape(q.Prompt)
	s.Meta = shaper.Shape(q.Meta)
	if q.Hint != "" {
		s.Hint = msgHintPrefix + shaper.Shape(q.Hint)
	}
	for i := 0; i < len(s.Options) && i < len(q.Options); i++ {
		s.Options[i].Text = shaper.Shape(q.Options[i])
	}
}

func markOptions(opts []Option, q *entities.Question, chosen int) {
	for i := range opts {
		opts[i].Enabled = false
		switch {
		case i == q.CorrectIndex && i == chosen:
			opts[i].Mark = MarkCorrect
		case i == q.CorrectIndex:
			opts[i].Mark = MarkMissed
		case i == chosen:
			opts[i].Mark = MarkWrong
		}
	}
}

func feedback(q *entities.Question, chosen int, shaper textshape.Shaper) string {
	if q.IsCorrect(chosen) {
		return msgCorrect
	}
	return fmt.Sprintf(msgWrong, shaper.Shape(q.CorrectAnswer()))
}

func reviewFeedback(rec entities.AnswerRecord, shaper textshape.Shaper) string {
	chosen := shaper.Shape(rec.ChosenAnswer())
	if rec.IsCorrect {
		return fmt.Sprintf(msgReviewRight, chosen)
	}
	return fmt.Sprintf(msgReviewWrong, chosen, shaper.Shape(rec.Question.CorrectAnswer()))
}

func progressHeader(s entities.QuizSession) string {
	if s.IsTest() {
		return fmt.Sprintf(msgTest, s.CurrentQuestionNum, s.TotalQuestions)
	}
	return fmt.Sprintf(msgPractice, s.CurrentQuestionNum)
}

func status(c Controller) string {
	text := msgScoringOff
	if c.ScoringEnabled() {
		sc := c.Score()
		text = fmt.Sprintf(msgScore, sc.Correct, sc.Total, sc.Percentage())
	}
	if best, ok := c.BestResult(); ok {
		text += " · " + fmt.Sprintf(msgBest, best.Correct, best.Questions, formatDuration(best.Duration))
	}
	if results := c.Results(); len(results) > 0 {
		last := results[len(results)-1]
		text += "\n" + fmt.Sprintf(msgHistory, len(results), last.Correct, last.Questions)
	}
	return text
}

func correctCount(records []entities.AnswerRecord) int {
	n := 0
	for _, r := range records {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// formatDuration renders d as mm:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, sec := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
